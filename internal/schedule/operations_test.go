package schedule

import (
	"testing"

	"github.com/julianstephens/agenda/internal/models"
)

type stubLoader struct {
	s  models.Schedule
	ok bool
}

func (l stubLoader) Load() (models.Schedule, bool) { return l.s, l.ok }

func TestFreshIsEmpty(t *testing.T) {
	s := Fresh()
	s.Each(func(d models.Day, sl models.Slot, e models.Entry) {
		if e != (models.Entry{}) {
			t.Errorf("Fresh()[%s][%s] = %+v, want zero entry", d, sl, e)
		}
	})
}

func TestInitialize(t *testing.T) {
	stored := SetText(Fresh(), models.Monday, 0, "Gym")

	tests := []struct {
		name   string
		loader Loader
		want   models.Schedule
	}{
		{"nil loader", nil, Fresh()},
		{"nothing stored", stubLoader{}, Fresh()},
		{"stored week", stubLoader{s: stored, ok: true}, stored},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Initialize(tt.loader); !got.Equal(tt.want) {
				t.Errorf("Initialize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSetTextTouchesOnlyTarget(t *testing.T) {
	base := Fresh()
	for _, d := range models.Days() {
		for _, sl := range models.Slots() {
			next := SetText(base, d, sl, "x")
			next.Each(func(d2 models.Day, sl2 models.Slot, e models.Entry) {
				want := models.Entry{}
				if d2 == d && sl2 == sl {
					want.Text = "x"
				}
				if e != want {
					t.Fatalf("SetText(%s, %s): cell (%s, %s) = %+v, want %+v", d, sl, d2, sl2, e, want)
				}
			})
			if !base.Entry(d, sl).Blank() {
				t.Fatalf("SetText mutated the input schedule at (%s, %s)", d, sl)
			}
		}
	}
}

func TestSetTextKeepsFlags(t *testing.T) {
	s := SetPriority(ToggleDone(Fresh(), models.Friday, 3), models.Friday, 3, models.PriorityHigh)
	s = SetText(s, models.Friday, 3, "Informe")

	want := models.Entry{Text: "Informe", Done: true, Priority: models.PriorityHigh}
	if got := s.Entry(models.Friday, 3); got != want {
		t.Errorf("Entry() = %+v, want %+v", got, want)
	}

	// Clearing the text keeps done and priority as well.
	s = SetText(s, models.Friday, 3, "")
	if got := s.Entry(models.Friday, 3); !got.Done || got.Priority != models.PriorityHigh {
		t.Errorf("Entry() after clearing text = %+v", got)
	}
}

func TestToggleDoneIsInvolution(t *testing.T) {
	s := SetText(Fresh(), models.Wednesday, 5, "Leer")
	once := ToggleDone(s, models.Wednesday, 5)
	if !once.Entry(models.Wednesday, 5).Done {
		t.Fatal("ToggleDone did not set done")
	}
	twice := ToggleDone(once, models.Wednesday, 5)
	if !twice.Equal(s) {
		t.Errorf("ToggleDone twice = %+v, want %+v", twice.Entry(models.Wednesday, 5), s.Entry(models.Wednesday, 5))
	}
}

func TestToggleDoneOnBlankEntry(t *testing.T) {
	s := ToggleDone(Fresh(), models.Sunday, 0)
	if !s.Entry(models.Sunday, 0).Done {
		t.Error("blank entries can be marked done")
	}
	if p := ComputeProgress(s); p != (Progress{}) {
		t.Errorf("blank done entry counted: %+v", p)
	}
}

func TestSetPriority(t *testing.T) {
	s := SetText(Fresh(), models.Tuesday, 2, "Pagar")
	for _, p := range append([]models.Priority{models.PriorityNone}, models.Priorities...) {
		got := SetPriority(s, models.Tuesday, 2, p).Entry(models.Tuesday, 2)
		if got.Priority != p || got.Text != "Pagar" || got.Done {
			t.Errorf("SetPriority(%q) = %+v", p, got)
		}
	}
}

func TestUpdatesShareUntouchedRows(t *testing.T) {
	base := Fresh()
	next := SetText(base, models.Thursday, 4, "Clase")
	for _, d := range models.Days() {
		shared := next.SharesRow(base, d)
		if d == models.Thursday && shared {
			t.Error("updated row is still shared")
		}
		if d != models.Thursday && !shared {
			t.Errorf("row %s was copied", d)
		}
	}
}

func TestResetIsFresh(t *testing.T) {
	if !Reset().Equal(Fresh()) {
		t.Error("Reset() differs from Fresh()")
	}
}
