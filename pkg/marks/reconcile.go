package marks

import (
	"strings"
	"unicode"
)

// Reconcile computes the canonical mark string for a target given the raw
// stored value and the directive set for this run. It returns the new
// string and whether the raw value was well-formed (no duplicates, no
// unknown characters).
//
// The scan consumes the directive set: each mark's entry is removed on
// its first occurrence in raw, so a second occurrence — or a character
// that never identified a known mark — is skipped and flags the input as
// malformed. Marks never seen in raw are appended afterwards in canonical
// table order, cased by their directive; a mark absent from the stored
// value defaults to enabled unless explicitly disabled.
//
// Reconcile never fails. An empty raw value is valid: it simply means
// every mark takes its default.
func Reconcile(raw string, directives Set) (string, bool) {
	pending := make(Set, len(Table))
	for _, info := range Table {
		pending[info.Mark] = directives[info.Mark]
	}

	var out strings.Builder
	out.Grow(len(Table))
	valid := true

	for _, r := range raw {
		id := Mark(unicode.ToUpper(r))
		directive, ok := pending[id]
		if !ok {
			// Duplicate of an already-consumed mark, or not a mark at all.
			valid = false
			continue
		}
		delete(pending, id)
		out.WriteRune(directive.apply(r))
	}

	for _, info := range Table {
		if directive, ok := pending[info.Mark]; ok {
			out.WriteRune(directive.apply(rune(info.Mark)))
		}
	}

	return out.String(), valid
}

// States canonicalizes raw without changing any state and reports each
// mark's enabled flag, plus whether raw was well-formed.
func States(raw string) (map[Mark]bool, bool) {
	canonical, valid := Reconcile(raw, KeepAll())

	states := make(map[Mark]bool, len(Table))
	for _, r := range canonical {
		states[Mark(unicode.ToUpper(r))] = unicode.IsUpper(r)
	}
	return states, valid
}
