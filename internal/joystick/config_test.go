package joystick

import (
	"errors"
	"math"
	"testing"
)

func TestResolveDefaults(t *testing.T) {
	cfg := Resolve(Overrides{})
	def := DefaultConfig()

	if cfg.BoundSize != 100 || cfg.HandleSize != 16 {
		t.Errorf("unexpected sizes %f/%f", cfg.BoundSize, cfg.HandleSize)
	}
	if cfg.MinAxis != -100 || cfg.MaxAxis != 100 || cfg.Step != 1 {
		t.Errorf("unexpected axis %f..%f step %f", cfg.MinAxis, cfg.MaxAxis, cfg.Step)
	}
	if cfg.StickOnXAxis || cfg.StickOnYAxis || !cfg.ReturnToCenter {
		t.Error("unexpected flag defaults")
	}
	if cfg.OnChange != nil {
		t.Error("expected no callback by default")
	}
	if cfg.MaxDistance() != def.MaxDistance() || cfg.MaxDistance() != 42 {
		t.Errorf("expected max distance 42, got %f", cfg.MaxDistance())
	}
}

func TestResolveOverrides(t *testing.T) {
	called := false
	cfg := Resolve(Overrides{
		BoundSize:      Float(200),
		MinAxis:        Float(0),
		MaxAxis:        Float(0),
		Step:           Float(5),
		StickOnXAxis:   Bool(true),
		ReturnToCenter: Bool(false),
		OnChange:       func(Coordinate) { called = true },
	})

	if cfg.BoundSize != 200 || cfg.HandleSize != 16 || cfg.Step != 5 {
		t.Errorf("unexpected sizes %+v", cfg)
	}
	if cfg.MinAxis != 0 || cfg.MaxAxis != 0 {
		t.Error("explicit zero axis bounds should be kept")
	}
	if !cfg.StickOnXAxis || cfg.StickOnYAxis || cfg.ReturnToCenter {
		t.Error("unexpected flags")
	}
	cfg.OnChange(Coordinate{})
	if !called {
		t.Error("callback not kept")
	}
}

func TestResolveZeroSizesFallBack(t *testing.T) {
	cfg := Resolve(Overrides{BoundSize: Float(0), HandleSize: Float(0), Step: Float(0)})

	if cfg.BoundSize != DefaultBoundSize || cfg.HandleSize != DefaultHandleSize || cfg.Step != DefaultStep {
		t.Errorf("zero overrides should fall back to defaults, got %+v", cfg)
	}
}

func TestAnomalies(t *testing.T) {
	if errs := DefaultConfig().Anomalies(); len(errs) != 0 {
		t.Errorf("default config should be clean, got %v", errs)
	}

	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"handle too large", Config{BoundSize: 10, HandleSize: 10, MinAxis: -1, MaxAxis: 1, Step: 1}, ErrHandleTooLarge},
		{"axis range", Config{BoundSize: 100, HandleSize: 10, MinAxis: 1, MaxAxis: 1, Step: 1}, ErrAxisRange},
		{"step", Config{BoundSize: 100, HandleSize: 10, MinAxis: -1, MaxAxis: 1, Step: -1}, ErrStep},
		{"nan", Config{BoundSize: math.NaN(), HandleSize: 10, MinAxis: -1, MaxAxis: 1, Step: 1}, ErrNonFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := false
			for _, err := range tt.cfg.Anomalies() {
				if errors.Is(err, tt.want) {
					found = true
				}
			}
			if !found {
				t.Errorf("expected %v in %v", tt.want, tt.cfg.Anomalies())
			}
		})
	}
}

func TestParseEventKind(t *testing.T) {
	for _, k := range []EventKind{Down, Move, Up} {
		got, err := ParseEventKind(k.String())
		if err != nil || got != k {
			t.Errorf("round trip of %s failed: %v %v", k, got, err)
		}
	}
	if _, err := ParseEventKind("hover"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestEventKindText(t *testing.T) {
	for _, k := range []EventKind{Down, Move, Up} {
		b, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back EventKind
		if err := back.UnmarshalText(b); err != nil || back != k {
			t.Errorf("%s: got %v, %v", k, back, err)
		}
	}

	var k EventKind
	if err := k.UnmarshalText([]byte("hover")); err == nil {
		t.Error("expected error for unknown kind")
	}
}
