package schedule

import (
	"testing"

	"github.com/julianstephens/agenda/internal/models"
)

func TestComputeProgress(t *testing.T) {
	type cell struct {
		day  models.Day
		slot models.Slot
		text string
		done bool
	}

	tests := []struct {
		name  string
		cells []cell
		want  Progress
	}{
		{"fresh week", nil, Progress{}},
		{"whitespace only", []cell{{models.Monday, 0, "   ", true}}, Progress{}},
		{"two of three", []cell{
			{models.Monday, 0, "a", true},
			{models.Monday, 1, "b", true},
			{models.Tuesday, 0, "c", false},
		}, Progress{Total: 3, Done: 2, Percent: 67}},
		{"one of three", []cell{
			{models.Monday, 0, "a", true},
			{models.Monday, 1, "b", false},
			{models.Monday, 2, "c", false},
		}, Progress{Total: 3, Done: 1, Percent: 33}},
		{"half rounds up", []cell{
			{models.Sunday, 0, "a", true},
			{models.Sunday, 1, "b", false},
			{models.Sunday, 2, "c", false},
			{models.Sunday, 3, "d", false},
			{models.Sunday, 4, "e", false},
			{models.Sunday, 5, "f", false},
			{models.Sunday, 6, "g", false},
			{models.Sunday, 7, "h", false},
		}, Progress{Total: 8, Done: 1, Percent: 13}},
		{"all done", []cell{
			{models.Saturday, 8, "fin", true},
		}, Progress{Total: 1, Done: 1, Percent: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Fresh()
			for _, c := range tt.cells {
				s = SetText(s, c.day, c.slot, c.text)
				if c.done {
					s = ToggleDone(s, c.day, c.slot)
				}
			}
			if got := ComputeProgress(s); got != tt.want {
				t.Errorf("ComputeProgress() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProgressBounds(t *testing.T) {
	s := Fresh()
	for _, d := range models.Days() {
		for _, sl := range models.Slots() {
			s = SetText(s, d, sl, "t")
			if int(sl)%2 == 0 {
				s = ToggleDone(s, d, sl)
			}
			p := ComputeProgress(s)
			if p.Done > p.Total || p.Percent < 0 || p.Percent > 100 {
				t.Fatalf("ComputeProgress() = %+v out of bounds", p)
			}
		}
	}
	if p := ComputeProgress(s); p.Total != 63 || p.Done != 35 || p.Percent != 56 {
		t.Errorf("full week progress = %+v", p)
	}
}
