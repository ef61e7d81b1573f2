// Package navigation tracks which of a fixed set of tabs is showing.
package navigation

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownTab is returned when activating a tab that is not in the set
var ErrUnknownTab = errors.New("unknown tab")

// Site sections
const (
	Reading   = "reading"
	Writing   = "writing"
	Speaking  = "speaking"
	Listening = "listening"
	Dictation = "dictation"
	Quiz      = "quiz"
)

// SiteSections is the top-level navigation in display order
var SiteSections = []string{Reading, Writing, Speaking, Listening, Dictation, Quiz}

// Tab is one entry of a TabSet
type Tab struct {
	ID     string `json:"id"`
	Active bool   `json:"active"`
}

// TabSet is an ordered set of tabs with exactly one active
type TabSet struct {
	ids    []string
	active int
}

// New builds a TabSet over ids with the first one active. It panics when ids is empty.
func New(ids ...string) *TabSet {
	if len(ids) == 0 {
		panic("navigation: TabSet needs at least one tab")
	}
	return &TabSet{ids: slices.Clone(ids)}
}

// Activate makes id the only active tab. The set is unchanged on error.
func (t *TabSet) Activate(id string) error {
	i := slices.Index(t.ids, id)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownTab, id)
	}
	t.active = i
	return nil
}

func (t *TabSet) Active() string {
	return t.ids[t.active]
}

func (t *TabSet) IsActive(id string) bool {
	return t.Active() == id
}

// Tabs lists every tab in order with its active flag
func (t *TabSet) Tabs() []Tab {
	tabs := make([]Tab, len(t.ids))
	for i, id := range t.ids {
		tabs[i] = Tab{ID: id, Active: i == t.active}
	}
	return tabs
}

// Clone returns an independent copy
func (t *TabSet) Clone() *TabSet {
	return &TabSet{ids: slices.Clone(t.ids), active: t.active}
}

func (t *TabSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Active string `json:"active"`
		Tabs   []Tab  `json:"tabs"`
	}{t.Active(), t.Tabs()})
}
