package models

import "strings"

// Priority is the level attached to an entry and used as the view filter.
type Priority string

const (
	PriorityNone   Priority = ""
	PriorityLow    Priority = "Baja"
	PriorityMedium Priority = "Media"
	PriorityHigh   Priority = "Alta"
)

// Priorities lists the selectable levels in the order the selectors show them.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Valid reports whether p is one of the four known levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityNone, PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ParsePriority accepts the stored labels, their English names or "none".
func ParsePriority(s string) (Priority, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "ninguna":
		return PriorityNone, true
	case "baja", "low":
		return PriorityLow, true
	case "media", "medium":
		return PriorityMedium, true
	case "alta", "high":
		return PriorityHigh, true
	}
	return PriorityNone, false
}
