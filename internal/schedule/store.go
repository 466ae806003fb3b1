package schedule

import (
	"github.com/julianstephens/agenda/internal/logger"
	"github.com/julianstephens/agenda/internal/models"
)

// Persister loads the initial week and saves every subsequent change.
type Persister interface {
	Loader
	Save(models.Schedule) error
}

// Store owns the current schedule and filter for one session. Each mutation
// replaces the schedule and then runs the subscribers in registration order.
// A Store is not safe for concurrent use.
type Store struct {
	current     models.Schedule
	filter      models.Priority
	subscribers []func(models.Schedule)
}

// New loads the week from p and persists every change back to it. A nil p
// gives an in-memory store.
func New(p Persister) *Store {
	s := &Store{current: Fresh()}
	if p == nil {
		return s
	}

	s.current = Initialize(p)
	s.Subscribe(func(next models.Schedule) {
		if err := p.Save(next); err != nil {
			// Durability is lost, the session keeps working from memory.
			logger.Warn("Schedule save failed", "error", err)
		}
	})
	return s
}

// Subscribe registers fn to run after every mutation.
func (s *Store) Subscribe(fn func(models.Schedule)) {
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) commit(next models.Schedule) {
	s.current = next
	for _, fn := range s.subscribers {
		fn(next)
	}
}

func (s *Store) Schedule() models.Schedule {
	return s.current
}

func (s *Store) Entry(day models.Day, slot models.Slot) models.Entry {
	return s.current.Entry(day, slot)
}

func (s *Store) Filter() models.Priority {
	return s.filter
}

// SetFilter changes the view only; it neither persists nor notifies.
func (s *Store) SetFilter(p models.Priority) {
	s.filter = p
}

func (s *Store) SetText(day models.Day, slot models.Slot, text string) {
	s.commit(SetText(s.current, day, slot, text))
}

func (s *Store) ToggleDone(day models.Day, slot models.Slot) {
	s.commit(ToggleDone(s.current, day, slot))
}

func (s *Store) SetPriority(day models.Day, slot models.Slot, p models.Priority) {
	s.commit(SetPriority(s.current, day, slot, p))
}

func (s *Store) Reset() {
	s.commit(Reset())
}

// Progress is recomputed from the full schedule on every call.
func (s *Store) Progress() Progress {
	return ComputeProgress(s.current)
}

// Visible reports whether the cell passes the current filter.
func (s *Store) Visible(day models.Day, slot models.Slot) bool {
	return IsVisible(s.current.Entry(day, slot), s.filter)
}
