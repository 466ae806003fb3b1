package schedule

import "github.com/julianstephens/agenda/internal/models"

// IsVisible reports whether e is shown under filter. PriorityNone shows all.
func IsVisible(e models.Entry, filter models.Priority) bool {
	return filter == models.PriorityNone || e.Priority == filter
}
