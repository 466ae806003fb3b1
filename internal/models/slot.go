package models

import (
	"strconv"
	"strings"
)

// Slot identifies one row of the weekly grid.
type Slot int

// SlotsPerDay is the number of rows in the grid.
const SlotsPerDay = 9

var slotLabels = [SlotsPerDay]string{
	"08:00–09:30", "09:30–11:00", "11:00–12:30", "12:30–14:00",
	"14:00–15:30", "15:30–17:00", "17:00–18:30", "18:30–20:00", "20:00–22:30",
}

// Slots returns every slot in display order.
func Slots() []Slot {
	slots := make([]Slot, SlotsPerDay)
	for i := range slots {
		slots[i] = Slot(i)
	}
	return slots
}

// Label returns the time-range label, e.g. "08:00–09:30".
func (s Slot) Label() string {
	return slotLabels[s]
}

func (s Slot) String() string {
	return s.Label()
}

// Start returns the HH:MM start of the slot.
func (s Slot) Start() string {
	start, _, _ := strings.Cut(slotLabels[s], "–")
	return start
}

// ParseSlot resolves a slot from its label, its start time or a 1-based index.
func ParseSlot(s string) (Slot, bool) {
	s = strings.TrimSpace(s)
	for i, label := range slotLabels {
		if label == s || Slot(i).Start() == s {
			return Slot(i), true
		}
	}
	// Accept a plain hyphen in place of the en dash.
	if strings.Contains(s, "-") {
		if slot, ok := ParseSlot(strings.Replace(s, "-", "–", 1)); ok {
			return slot, true
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= SlotsPerDay {
		return Slot(n - 1), true
	}
	return 0, false
}
