// Package marks implements the PaX security-feature mark model: the fixed
// table of known marks, per-mark directives built from user requests, and
// the reconciliation of a stored mark string against those directives.
//
// A mark string encodes the state of all five marks in a single short
// string, one character per mark, where the character identifies the mark
// and its case carries the state (uppercase = enabled, lowercase =
// disabled). Stored values may be corrupted — duplicated, truncated, or
// polluted with unknown characters — so everything in this package treats
// its input defensively and never fails.
package marks

import "strings"

// Mark identifies one of the five known security-feature toggles.
// The value is the mark's uppercase identifier character.
type Mark rune

// The five known marks, in canonical output order.
const (
	PageExec Mark = 'P'
	EmuTramp Mark = 'E'
	MProtect Mark = 'M'
	RandMmap Mark = 'R'
	SegmExec Mark = 'S'
)

// Info describes a single mark for help text and display.
type Info struct {
	Mark Mark
	Name string
}

// Table lists every known mark in canonical order. Marks are appended to
// reconciled output in this order, so it also fixes the layout of the
// default all-enabled string.
var Table = [5]Info{
	{PageExec, "PAGEEXEC"},
	{EmuTramp, "EMUTRAMP"},
	{MProtect, "MPROTECT"},
	{RandMmap, "RANDMMAP"},
	{SegmExec, "SEGMEXEC"},
}

// Letter returns the mark's uppercase identifier character.
func (m Mark) Letter() string {
	return string(rune(m))
}

// Name returns the mark's feature name, or "" for an unknown mark.
func (m Mark) Name() string {
	for _, info := range Table {
		if info.Mark == m {
			return info.Name
		}
	}
	return ""
}

// Known reports whether m is one of the five known marks.
func (m Mark) Known() bool {
	return m.Name() != ""
}

// AllEnabled returns the canonical mark string with every mark enabled.
// This is the value a target without any stored marks is treated as having.
func AllEnabled() string {
	var b strings.Builder
	b.Grow(len(Table))
	for _, info := range Table {
		b.WriteRune(rune(info.Mark))
	}
	return b.String()
}
