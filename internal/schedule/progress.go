package schedule

import "github.com/julianstephens/agenda/internal/models"

// Progress counts non-blank entries and how many of them are done.
type Progress struct {
	Total   int
	Done    int
	Percent int
}

// ComputeProgress scans all 63 cells. Percent is rounded half up and is 0
// for a week without tasks.
func ComputeProgress(s models.Schedule) Progress {
	var p Progress
	s.Each(func(_ models.Day, _ models.Slot, e models.Entry) {
		if e.Blank() {
			return
		}
		p.Total++
		if e.Done {
			p.Done++
		}
	})
	if p.Total > 0 {
		p.Percent = (p.Done*200 + p.Total) / (2 * p.Total)
	}
	return p
}
