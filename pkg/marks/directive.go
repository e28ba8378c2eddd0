package marks

import "unicode"

// Directive is the resolved per-mark instruction for one reconciliation run.
type Directive int

// Directive values. Keep is the zero value so that a missing entry in a
// directive set behaves as "no opinion".
const (
	// Keep retains the mark's current state.
	Keep Directive = iota
	// Enable forces the mark on.
	Enable
	// Disable forces the mark off.
	Disable
)

// String returns a human-readable directive name.
func (d Directive) String() string {
	switch d {
	case Enable:
		return "enable"
	case Disable:
		return "disable"
	default:
		return "keep"
	}
}

// apply resolves the directive against a mark character's current case.
func (d Directive) apply(r rune) rune {
	switch d {
	case Enable:
		return unicode.ToUpper(r)
	case Disable:
		return unicode.ToLower(r)
	default:
		return r
	}
}

// Request captures the raw user intent for a single mark: the two command
// line flags that may be set for it.
type Request struct {
	Enable  bool
	Disable bool
}

// Set maps each known mark to its resolved directive.
type Set map[Mark]Directive

// KeepAll returns a directive set with no opinion on any mark.
func KeepAll() Set {
	set := make(Set, len(Table))
	for _, info := range Table {
		set[info.Mark] = Keep
	}
	return set
}

// BuildDirectives resolves one directive per known mark from the user's
// flag pairs. Enable wins over Disable when both are requested; neither
// yields Keep. Marks absent from reqs get Keep.
func BuildDirectives(reqs map[Mark]Request) Set {
	set := make(Set, len(Table))
	for _, info := range Table {
		req := reqs[info.Mark]
		switch {
		case req.Enable:
			set[info.Mark] = Enable
		case req.Disable:
			set[info.Mark] = Disable
		default:
			set[info.Mark] = Keep
		}
	}
	return set
}
