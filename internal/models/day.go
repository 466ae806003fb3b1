package models

import (
	"strconv"
	"strings"
)

// Day identifies one column of the weekly grid. Values outside Sunday..Saturday
// are programming errors.
type Day int

const (
	Sunday Day = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// DaysPerWeek is the number of columns in the grid.
const DaysPerWeek = 7

var dayLabels = [DaysPerWeek]string{
	"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado",
}

// Days returns every day in display order.
func Days() []Day {
	days := make([]Day, DaysPerWeek)
	for i := range days {
		days[i] = Day(i)
	}
	return days
}

// Label returns the persisted/display name of the day.
func (d Day) Label() string {
	return dayLabels[d]
}

func (d Day) String() string {
	return d.Label()
}

// ParseDay resolves a day from its label (case-insensitive) or a 1-based index.
func ParseDay(s string) (Day, bool) {
	s = strings.TrimSpace(s)
	for i, label := range dayLabels {
		if strings.EqualFold(label, s) {
			return Day(i), true
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= DaysPerWeek {
		return Day(n - 1), true
	}
	return 0, false
}
