package testutil

import (
	"regexp"
	"strings"
)

var ansiSequence = regexp.MustCompile("\x1b\\[[0-9;]*m")

// StripANSI removes SGR escape sequences so rendered boards can be compared
// as plain text.
func StripANSI(s string) string {
	return ansiSequence.ReplaceAllString(s, "")
}

// Lines splits rendered output into lines, dropping a trailing empty line.
func Lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
