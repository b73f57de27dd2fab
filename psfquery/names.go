package psfquery

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/runenames"
)

// Describe returns a human readable description of a code-point, consisting
// of its U+ notation and its Unicode character name, e.g.
//
//	U+00E9 LATIN SMALL LETTER E WITH ACUTE
func Describe(r rune) string {
	name := runenames.Name(r)
	if name == "" {
		return fmt.Sprintf("%U", r)
	}
	return fmt.Sprintf("%U %s", r, name)
}

// DescribeSequence describes every code-point of a UTF-8 sequence,
// separated by " + ".
func DescribeSequence(seq string) string {
	var parts []string
	for _, r := range seq {
		parts = append(parts, Describe(r))
	}
	return strings.Join(parts, " + ")
}
