package models

import "strings"

// Entry is the content of one (day, slot) cell.
type Entry struct {
	Text     string   `json:"text"`
	Done     bool     `json:"done"`
	Priority Priority `json:"priority"`
}

// Blank reports whether the entry has no meaningful text.
func (e Entry) Blank() bool {
	return strings.TrimSpace(e.Text) == ""
}

func (e Entry) WithText(text string) Entry {
	e.Text = text
	return e
}

func (e Entry) WithDone(done bool) Entry {
	e.Done = done
	return e
}

func (e Entry) WithPriority(p Priority) Entry {
	e.Priority = p
	return e
}
