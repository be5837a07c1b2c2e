package util

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var folder = cases.Fold()

// NormalizeName trims and case-folds a name so "Go", " go " and "GO" compare equal.
func NormalizeName(name string) string {
	return folder.String(strings.TrimSpace(name))
}

// SplitList accepts either a comma-separated string or a list and returns
// the trimmed, non-empty entries.
func SplitList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// TitleCase is used for display names in outgoing mail.
func TitleCase(s string) string {
	return cases.Title(language.Und).String(s)
}
