package query

import (
	"fmt"
	"strings"

	"github.com/hrsuite/cvadmin/internal/models"
)

// Draft is one language-scoped value not yet sent to the server.
type Draft struct {
	Language string
	Text     string
}

// DraftList is the component-local tier of the two-tier value list:
// drafts live here until each one is explicitly committed through the
// value create endpoint; confirmed values live in the cache. Editing a
// draft removes it and hands the text back for prefill; there is no
// in-place update.
type DraftList struct {
	drafts []Draft
}

// Add appends a draft after presence and language checks.
func (d *DraftList) Add(lang, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("value text is required")
	}
	if !models.KnownLanguage(lang) {
		return fmt.Errorf("unknown language %q", lang)
	}
	d.drafts = append(d.drafts, Draft{Language: lang, Text: text})
	return nil
}

// Edit removes the draft at i and returns it so the caller can prefill
// the input. Only the freshly retyped value will be persisted.
func (d *DraftList) Edit(i int) (Draft, bool) {
	if i < 0 || i >= len(d.drafts) {
		return Draft{}, false
	}
	draft := d.drafts[i]
	d.drafts = append(d.drafts[:i], d.drafts[i+1:]...)
	return draft, true
}

// Remove discards the draft at i.
func (d *DraftList) Remove(i int) bool {
	_, ok := d.Edit(i)
	return ok
}

// Peek returns the first pending draft without removing it.
func (d *DraftList) Peek() (Draft, bool) {
	if len(d.drafts) == 0 {
		return Draft{}, false
	}
	return d.drafts[0], true
}

// Pop removes the first pending draft after it has been committed.
func (d *DraftList) Pop() {
	if len(d.drafts) > 0 {
		d.drafts = d.drafts[1:]
	}
}

// Drafts returns a copy of the pending drafts.
func (d *DraftList) Drafts() []Draft {
	out := make([]Draft, len(d.drafts))
	copy(out, d.drafts)
	return out
}

// Len returns the number of pending drafts.
func (d *DraftList) Len() int {
	return len(d.drafts)
}
