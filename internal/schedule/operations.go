// Package schedule holds the week grid operations: pure update functions over
// models.Schedule, the derived progress metrics, the priority filter and the
// Store container that drives both the TUI and the CLI.
package schedule

import "github.com/julianstephens/agenda/internal/models"

// Loader yields a previously persisted schedule, if any.
type Loader interface {
	Load() (models.Schedule, bool)
}

// Fresh returns a week with all 63 entries empty.
func Fresh() models.Schedule {
	return models.NewSchedule()
}

// Initialize returns the persisted schedule when one is available, otherwise
// a fresh week.
func Initialize(l Loader) models.Schedule {
	if l != nil {
		if s, ok := l.Load(); ok {
			return s
		}
	}
	return Fresh()
}

// SetText replaces the text at (day, slot), keeping done and priority.
func SetText(s models.Schedule, day models.Day, slot models.Slot, text string) models.Schedule {
	return s.With(day, slot, s.Entry(day, slot).WithText(text))
}

// ToggleDone flips the done flag at (day, slot).
func ToggleDone(s models.Schedule, day models.Day, slot models.Slot) models.Schedule {
	e := s.Entry(day, slot)
	return s.With(day, slot, e.WithDone(!e.Done))
}

// SetPriority replaces the priority at (day, slot). PriorityNone clears it.
func SetPriority(s models.Schedule, day models.Day, slot models.Slot, p models.Priority) models.Schedule {
	return s.With(day, slot, s.Entry(day, slot).WithPriority(p))
}

// Reset discards every entry.
func Reset() models.Schedule {
	return Fresh()
}
