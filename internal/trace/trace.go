package trace

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/san-kum/vstick/internal/joystick"
)

var (
	ErrHeader = errors.New("trace: missing or invalid header")
	ErrFields = errors.New("trace: wrong number of fields")
	ErrOrder  = errors.New("trace: times must be finite and non-decreasing")
)

var header = []string{"t", "kind", "x", "y"}

// ParseError wraps a failure with the 1-based line it occurred on.
type ParseError struct {
	Line    int
	Wrapped error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("trace: line %d: %v", e.Line, e.Wrapped)
}

func (e *ParseError) Unwrap() error {
	return e.Wrapped
}

// Event is a timestamped pointer event. T is seconds since the trace start.
type Event struct {
	T    float64            `json:"t"`
	Kind joystick.EventKind `json:"kind"`
	X    float64            `json:"x"`
	Y    float64            `json:"y"`
}

func (e Event) Event() joystick.Event {
	return joystick.Event{Kind: e.Kind, Pos: joystick.Point{X: e.X, Y: e.Y}}
}

// Sample is one coordinate emitted by the engine.
type Sample struct {
	T float64 `json:"t"`
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func Read(r io.Reader) ([]Event, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.Comment = '#'

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 || !isHeader(records[0]) {
		return nil, &ParseError{Line: 1, Wrapped: ErrHeader}
	}

	events := make([]Event, 0, len(records)-1)
	for i, rec := range records[1:] {
		line := i + 2
		if len(rec) != len(header) {
			return nil, &ParseError{Line: line, Wrapped: ErrFields}
		}

		var ev Event
		if ev.T, err = strconv.ParseFloat(rec[0], 64); err != nil {
			return nil, &ParseError{Line: line, Wrapped: err}
		}
		if math.IsNaN(ev.T) || math.IsInf(ev.T, 0) || (len(events) > 0 && ev.T < events[len(events)-1].T) {
			return nil, &ParseError{Line: line, Wrapped: ErrOrder}
		}
		if ev.Kind, err = joystick.ParseEventKind(rec[1]); err != nil {
			return nil, &ParseError{Line: line, Wrapped: err}
		}
		if ev.X, err = strconv.ParseFloat(rec[2], 64); err != nil {
			return nil, &ParseError{Line: line, Wrapped: err}
		}
		if ev.Y, err = strconv.ParseFloat(rec[3], 64); err != nil {
			return nil, &ParseError{Line: line, Wrapped: err}
		}
		events = append(events, ev)
	}

	return events, nil
}

func Write(w io.Writer, events []Event) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, ev := range events {
		row := []string{
			strconv.FormatFloat(ev.T, 'f', 6, 64),
			ev.Kind.String(),
			strconv.FormatFloat(ev.X, 'g', -1, 64),
			strconv.FormatFloat(ev.Y, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func isHeader(rec []string) bool {
	if len(rec) != len(header) {
		return false
	}
	for i := range header {
		if rec[i] != header[i] {
			return false
		}
	}
	return true
}
