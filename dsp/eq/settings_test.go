package eq

import "testing"

func TestSlopeStages(t *testing.T) {
	tests := []struct {
		slope  Slope
		stages int
		order  int
	}{
		{Slope12, 1, 12},
		{Slope24, 2, 24},
		{Slope36, 3, 36},
		{Slope48, 4, 48},
		{Slope(-3), 1, 12},
		{Slope(9), 4, 48},
	}

	for _, tc := range tests {
		if got := tc.slope.Stages(); got != tc.stages {
			t.Fatalf("Slope(%d).Stages() = %d, want %d", int(tc.slope), got, tc.stages)
		}

		if got := tc.slope.Order(); got != tc.order {
			t.Fatalf("Slope(%d).Order() = %d, want %d", int(tc.slope), got, tc.order)
		}
	}

	if got := Slope36.String(); got != "36dB/oct" {
		t.Fatalf("String() = %q", got)
	}
}

func TestSlopeFromOrder(t *testing.T) {
	for _, s := range []Slope{Slope12, Slope24, Slope36, Slope48} {
		got, err := SlopeFromOrder(s.Order())
		if err != nil || got != s {
			t.Fatalf("SlopeFromOrder(%d) = %v, %v", s.Order(), got, err)
		}
	}

	for _, order := range []int{0, 6, 18, 60} {
		if _, err := SlopeFromOrder(order); err == nil {
			t.Fatalf("SlopeFromOrder(%d) accepted", order)
		}
	}
}

func TestSettingsSources(t *testing.T) {
	s := DefaultChainSettings()
	s.PeakGainDB = 3

	if got := StaticSettings(s).ChainSettings(); got != s {
		t.Fatalf("StaticSettings = %+v", got)
	}

	calls := 0
	f := SettingsFunc(func() ChainSettings {
		calls++
		return s
	})
	f.ChainSettings()
	f.ChainSettings()

	if calls != 2 {
		t.Fatalf("SettingsFunc called %d times, want 2", calls)
	}
}
