package profile

import "strings"

// Filterable is implemented by the sub-entity types. ContentFields lists the
// user-entered string fields that decide whether an item is filled in; ids
// and auto-populated values are excluded.
type Filterable interface {
	ContentFields() []string
}

// FilterEmpty keeps an item iff at least one content field is non-blank
// after trimming whitespace. An item whose only content is a boolean toggle
// is dropped. The result is never nil; filtering everything out yields an
// empty slice, which is a valid persisted state.
func FilterEmpty[T Filterable](items []T) []T {
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if hasContent(item) {
			kept = append(kept, item)
		}
	}
	return kept
}

func hasContent(item Filterable) bool {
	for _, field := range item.ContentFields() {
		if strings.TrimSpace(field) != "" {
			return true
		}
	}
	return false
}
