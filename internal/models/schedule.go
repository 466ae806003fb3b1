package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedSchedule is returned when a serialized schedule does not cover
// every (day, slot) cell with a well-formed entry.
var ErrMalformedSchedule = errors.New("malformed schedule")

// Row holds the entries of a single day, indexed by Slot.
type Row [SlotsPerDay]Entry

// With returns a copy of the row with the entry at slot replaced.
func (r Row) With(slot Slot, e Entry) Row {
	r[slot] = e
	return r
}

// Schedule maps every (Day, Slot) pair to exactly one Entry. Rows are shared
// between schedules derived from one another; only the row touched by an
// update is copied. The zero value behaves like a fresh schedule.
type Schedule struct {
	days [DaysPerWeek]*Row
}

// NewSchedule returns a schedule with all 63 entries at their defaults.
func NewSchedule() Schedule {
	var s Schedule
	for i := range s.days {
		s.days[i] = &Row{}
	}
	return s
}

// Entry returns the entry at (day, slot).
func (s Schedule) Entry(day Day, slot Slot) Entry {
	row := s.days[day]
	if row == nil {
		return Entry{}
	}
	return row[slot]
}

// Row returns a copy of the entries for day.
func (s Schedule) Row(day Day) Row {
	if row := s.days[day]; row != nil {
		return *row
	}
	return Row{}
}

// With returns a new schedule where only the row for day differs from s.
func (s Schedule) With(day Day, slot Slot, e Entry) Schedule {
	next := s.Row(day).With(slot, e)
	s.days[day] = &next
	return s
}

// SharesRow reports whether s and other point at the same row for day, i.e.
// the day was not touched by any update between them.
func (s Schedule) SharesRow(other Schedule, day Day) bool {
	return s.days[day] != nil && s.days[day] == other.days[day]
}

// Equal compares all 63 entries.
func (s Schedule) Equal(other Schedule) bool {
	for _, d := range Days() {
		if s.Row(d) != other.Row(d) {
			return false
		}
	}
	return true
}

// Each calls fn for every cell in display order (day-major).
func (s Schedule) Each(fn func(day Day, slot Slot, e Entry)) {
	for _, d := range Days() {
		row := s.Row(d)
		for _, sl := range Slots() {
			fn(d, sl, row[sl])
		}
	}
}

func (s Schedule) MarshalJSON() ([]byte, error) {
	out := make(map[string]map[string]Entry, DaysPerWeek)
	for _, d := range Days() {
		row := s.Row(d)
		cells := make(map[string]Entry, SlotsPerDay)
		for _, sl := range Slots() {
			cells[sl.Label()] = row[sl]
		}
		out[d.Label()] = cells
	}
	return json.Marshal(out)
}

type storedEntry struct {
	Text     *string   `json:"text"`
	Done     *bool     `json:"done"`
	Priority *Priority `json:"priority"`
}

// UnmarshalJSON accepts only payloads that define every day, every slot and
// every entry field. Unknown extra keys are ignored.
func (s *Schedule) UnmarshalJSON(data []byte) error {
	var raw map[string]map[string]storedEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedSchedule, err)
	}

	next := NewSchedule()
	for _, d := range Days() {
		cells, ok := raw[d.Label()]
		if !ok || cells == nil {
			return fmt.Errorf("%w: missing day %q", ErrMalformedSchedule, d.Label())
		}
		row := next.days[d]
		for _, sl := range Slots() {
			stored, ok := cells[sl.Label()]
			if !ok {
				return fmt.Errorf("%w: missing slot %q on %s", ErrMalformedSchedule, sl.Label(), d.Label())
			}
			if stored.Text == nil || stored.Done == nil || stored.Priority == nil {
				return fmt.Errorf("%w: incomplete entry at %s %s", ErrMalformedSchedule, d.Label(), sl.Label())
			}
			if !stored.Priority.Valid() {
				return fmt.Errorf("%w: unknown priority %q at %s %s", ErrMalformedSchedule, *stored.Priority, d.Label(), sl.Label())
			}
			row[sl] = Entry{Text: *stored.Text, Done: *stored.Done, Priority: *stored.Priority}
		}
	}

	*s = next
	return nil
}
