package storage

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/vstick/internal/config"
	"github.com/san-kum/vstick/internal/joystick"
	"github.com/san-kum/vstick/internal/trace"
)

func testSession(start time.Time) Session {
	return Session{
		Source:   "replay",
		Preset:   "dpad",
		Start:    start,
		Joystick: config.DefaultConfig().Joystick,
		Events: []trace.Event{
			{T: 0, Kind: joystick.Down, X: 60, Y: 60},
			{T: 0.1, Kind: joystick.Move, X: 110, Y: 60},
			{T: 0.2, Kind: joystick.Up, X: 110, Y: 60},
		},
		Samples: []trace.Sample{
			{T: 0.1, X: 100, Y: 0},
			{T: 0.2, X: 0, Y: 0},
		},
		Stats: map[string]float64{"peak": 100},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	runID, err := st.Save(testSession(start))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Source != "replay" || meta.Preset != "dpad" {
		t.Errorf("unexpected metadata %+v", meta)
	}
	if meta.Samples != 2 || meta.Events != 3 {
		t.Errorf("expected 2 samples and 3 events, got %d/%d", meta.Samples, meta.Events)
	}
	if meta.Stats["peak"] != 100 {
		t.Errorf("expected peak 100, got %f", meta.Stats["peak"])
	}
	if !meta.Timestamp.Equal(start) {
		t.Errorf("expected timestamp %v, got %v", start, meta.Timestamp)
	}

	samples, err := st.LoadSamples(runID)
	if err != nil {
		t.Fatalf("load samples failed: %v", err)
	}
	if len(samples) != 2 || samples[0] != (trace.Sample{T: 0.1, X: 100}) {
		t.Errorf("unexpected samples %+v", samples)
	}

	events, err := st.LoadEvents(runID)
	if err != nil {
		t.Fatalf("load events failed: %v", err)
	}
	if len(events) != 3 || events[1].Kind != joystick.Move {
		t.Errorf("unexpected events %+v", events)
	}
}

func TestStoreUniqueIDs(t *testing.T) {
	st := New(t.TempDir())
	start := time.Unix(1700000000, 0)

	a, err := st.Save(testSession(start))
	if err != nil {
		t.Fatal(err)
	}
	b, err := st.Save(testSession(start))
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Errorf("expected distinct ids, got %s twice", a)
	}
}

func TestStoreList(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)

	runs, err := st.List()
	if err != nil || len(runs) != 0 {
		t.Fatalf("expected empty list, got %v %v", runs, err)
	}

	later := time.Unix(1700000100, 0)
	earlier := time.Unix(1700000000, 0)
	if _, err := st.Save(testSession(later)); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Save(testSession(earlier)); err != nil {
		t.Fatal(err)
	}
	// stray directory without metadata is skipped
	if err := os.MkdirAll(filepath.Join(dir, "junk"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if !runs[0].Timestamp.Equal(earlier) {
		t.Errorf("expected oldest first, got %v", runs[0].Timestamp)
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "nope"))
	runs, err := st.List()
	if err != nil || len(runs) != 0 {
		t.Errorf("expected empty list, got %v %v", runs, err)
	}
}

func TestStoreNotFound(t *testing.T) {
	st := New(t.TempDir())

	if _, err := st.Load("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := st.LoadSamples("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := st.LoadEvents("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreSaveFailureLeavesNoSession(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)

	sess := testSession(time.Unix(1700000000, 0))
	sess.Stats = map[string]float64{"peak": math.NaN()} // not encodable as JSON

	if _, err := st.Save(sess); err == nil {
		t.Fatal("expected metadata encoding to fail")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected the partial session to be removed, found %d entries", len(entries))
	}
	runs, err := st.List()
	if err != nil || len(runs) != 0 {
		t.Errorf("expected no sessions, got %v %v", runs, err)
	}
}
