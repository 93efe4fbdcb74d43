package utils

import (
	"strings"

	"golang.org/x/text/cases"
)

// FoldName returns the case-insensitive comparison key of a tree name.
//
// Surrounding whitespace is trimmed and the result is Unicode case folded,
// so "Oak", " OAK " and "oak" share one key. Keys are compared for
// equality only; input is never turned into a pattern.
func FoldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// SameNames reports whether two name pairs are equal ignoring case.
func SameNames(common1, scientific1, common2, scientific2 string) bool {
	return FoldName(common1) == FoldName(common2) &&
		FoldName(scientific1) == FoldName(scientific2)
}
