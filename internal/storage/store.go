package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/vstick/internal/config"
	"github.com/san-kum/vstick/internal/trace"
)

var ErrNotFound = errors.New("storage: session not found")

const (
	metadataFile = "metadata.json"
	samplesFile  = "samples.csv"
	eventsFile   = "events.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type SessionMetadata struct {
	ID        string                `json:"id"`
	Source    string                `json:"source"` // tui, gui, replay
	Preset    string                `json:"preset,omitempty"`
	Timestamp time.Time             `json:"timestamp"`
	Joystick  config.JoystickConfig `json:"joystick"`
	Samples   int                   `json:"samples"`
	Events    int                   `json:"events"`
	Stats     map[string]float64    `json:"stats,omitempty"`
}

// Session is everything saved for one run of the joystick.
type Session struct {
	Source   string
	Preset   string
	Start    time.Time
	Joystick config.JoystickConfig
	Events   []trace.Event
	Samples  []trace.Sample
	Stats    map[string]float64
}

func (s *Store) Save(sess Session) (string, error) {
	if sess.Start.IsZero() {
		sess.Start = time.Now()
	}
	runID := s.nextID(sess.Source, sess.Start)
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := SessionMetadata{
		ID:        runID,
		Source:    sess.Source,
		Preset:    sess.Preset,
		Timestamp: sess.Start,
		Joystick:  sess.Joystick,
		Samples:   len(sess.Samples),
		Events:    len(sess.Events),
		Stats:     sess.Stats,
	}

	if err := writeSession(runDir, meta, sess); err != nil {
		os.RemoveAll(runDir)
		return "", err
	}

	return runID, nil
}

// writeSession writes metadata.json last, so a directory without it was
// never a complete session.
func writeSession(runDir string, meta SessionMetadata, sess Session) error {
	if err := writeSamples(filepath.Join(runDir, samplesFile), sess.Samples); err != nil {
		return err
	}

	eventsOut, err := os.Create(filepath.Join(runDir, eventsFile))
	if err != nil {
		return err
	}
	defer eventsOut.Close()

	if err := trace.Write(eventsOut, sess.Events); err != nil {
		return err
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// nextID is unique within the store even for sessions started in the same
// second.
func (s *Store) nextID(source string, start time.Time) string {
	if source == "" {
		source = "session"
	}
	base := fmt.Sprintf("%s_%d", source, start.Unix())
	id := base
	for n := 1; ; n++ {
		if _, err := os.Stat(filepath.Join(s.baseDir, id)); os.IsNotExist(err) {
			return id
		}
		id = fmt.Sprintf("%s_%d", base, n)
	}
}

func writeSamples(path string, samples []trace.Sample) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"t", "x", "y"}); err != nil {
		return err
	}
	for _, sm := range samples {
		row := []string{
			strconv.FormatFloat(sm.T, 'f', 6, 64),
			strconv.FormatFloat(sm.X, 'g', -1, 64),
			strconv.FormatFloat(sm.Y, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns all sessions, oldest first.
func (s *Store) List() ([]SessionMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SessionMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]SessionMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		if runs[i].Timestamp.Equal(runs[j].Timestamp) {
			return runs[i].ID < runs[j].ID
		}
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})

	return runs, nil
}

func (s *Store) Load(runID string) (*SessionMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", runID, ErrNotFound)
		}
		return nil, err
	}

	var meta SessionMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadSamples(runID string) ([]trace.Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, samplesFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", runID, ErrNotFound)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []trace.Sample{}, nil
	}

	samples := make([]trace.Sample, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 3 {
			continue
		}
		var vals [3]float64
		ok := true
		for j := range vals {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				ok = false
				break
			}
			vals[j] = v
		}
		if !ok {
			continue
		}
		samples = append(samples, trace.Sample{T: vals[0], X: vals[1], Y: vals[2]})
	}

	return samples, nil
}

func (s *Store) LoadEvents(runID string) ([]trace.Event, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, eventsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", runID, ErrNotFound)
		}
		return nil, err
	}
	defer file.Close()

	return trace.Read(file)
}
