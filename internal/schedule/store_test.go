package schedule

import (
	"errors"
	"testing"

	"github.com/julianstephens/agenda/internal/models"
)

type memPersister struct {
	stored  models.Schedule
	has     bool
	saves   int
	saveErr error
}

func (m *memPersister) Load() (models.Schedule, bool) { return m.stored, m.has }

func (m *memPersister) Save(s models.Schedule) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.stored, m.has = s, true
	return nil
}

func TestStoreLoadsPersistedWeek(t *testing.T) {
	p := &memPersister{stored: SetText(Fresh(), models.Monday, 0, "Gym"), has: true}
	s := New(p)
	if got := s.Entry(models.Monday, 0).Text; got != "Gym" {
		t.Errorf("Entry().Text = %q, want %q", got, "Gym")
	}
	if p.saves != 0 {
		t.Errorf("loading triggered %d saves", p.saves)
	}
}

func TestStorePersistsEveryMutation(t *testing.T) {
	p := &memPersister{}
	s := New(p)

	s.SetText(models.Tuesday, 1, "a")
	s.SetText(models.Tuesday, 1, "ab")
	s.ToggleDone(models.Tuesday, 1)
	s.SetPriority(models.Tuesday, 1, models.PriorityMedium)

	if p.saves != 4 {
		t.Errorf("saves = %d, want 4", p.saves)
	}
	if !p.stored.Equal(s.Schedule()) {
		t.Error("persisted schedule lags behind the store")
	}
	want := models.Entry{Text: "ab", Done: true, Priority: models.PriorityMedium}
	if got := p.stored.Entry(models.Tuesday, 1); got != want {
		t.Errorf("persisted entry = %+v, want %+v", got, want)
	}
}

func TestStoreResetPersistsImmediately(t *testing.T) {
	p := &memPersister{}
	s := New(p)
	s.SetText(models.Sunday, 8, "x")
	s.ToggleDone(models.Sunday, 8)

	s.Reset()
	if !p.stored.Equal(Fresh()) {
		t.Error("reset did not reach storage")
	}
	if got := s.Progress(); got != (Progress{}) {
		t.Errorf("Progress() after reset = %+v", got)
	}
}

func TestStoreSaveFailureKeepsMemoryState(t *testing.T) {
	p := &memPersister{saveErr: errors.New("disk full")}
	s := New(p)

	s.SetText(models.Friday, 2, "sigue")
	if got := s.Entry(models.Friday, 2).Text; got != "sigue" {
		t.Errorf("Entry().Text = %q after failed save", got)
	}
	if p.saves != 1 {
		t.Errorf("saves = %d, want 1", p.saves)
	}
}

func TestStoreFilterDoesNotPersist(t *testing.T) {
	p := &memPersister{}
	s := New(p)
	s.SetText(models.Monday, 0, "alta")
	s.SetPriority(models.Monday, 0, models.PriorityHigh)
	s.SetText(models.Monday, 1, "baja")
	s.SetPriority(models.Monday, 1, models.PriorityLow)
	before := p.saves

	s.SetFilter(models.PriorityHigh)
	if p.saves != before {
		t.Error("SetFilter triggered a save")
	}
	if s.Filter() != models.PriorityHigh {
		t.Errorf("Filter() = %q", s.Filter())
	}
	if !s.Visible(models.Monday, 0) || s.Visible(models.Monday, 1) || s.Visible(models.Monday, 2) {
		t.Error("Visible() does not follow the filter")
	}

	// Progress ignores the filter.
	if got := s.Progress(); got.Total != 2 {
		t.Errorf("Progress().Total = %d under filter, want 2", got.Total)
	}

	s.SetFilter(models.PriorityNone)
	if !s.Visible(models.Monday, 2) {
		t.Error("empty filter should show every cell")
	}
}

func TestStoreSubscribersRunInOrder(t *testing.T) {
	s := New(nil)
	var calls []string
	s.Subscribe(func(models.Schedule) { calls = append(calls, "first") })
	s.Subscribe(func(next models.Schedule) {
		if next.Entry(models.Saturday, 0).Text != "z" {
			t.Error("subscriber saw a stale schedule")
		}
		calls = append(calls, "second")
	})

	s.SetText(models.Saturday, 0, "z")
	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Errorf("calls = %v", calls)
	}
}

func TestStoreWithoutPersister(t *testing.T) {
	s := New(nil)
	if !s.Schedule().Equal(Fresh()) {
		t.Error("in-memory store should start fresh")
	}
	s.ToggleDone(models.Monday, 0)
	if !s.Entry(models.Monday, 0).Done {
		t.Error("ToggleDone had no effect")
	}
}
