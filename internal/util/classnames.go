package util

import "strings"

// ClassNames joins CSS class lists, splitting on whitespace, dropping empty
// entries and keeping only the first occurrence of each class.
func ClassNames(classes ...string) string {
	seen := make(map[string]struct{}, len(classes))
	out := make([]string, 0, len(classes))
	for _, group := range classes {
		for _, class := range strings.Fields(group) {
			if _, ok := seen[class]; ok {
				continue
			}
			seen[class] = struct{}{}
			out = append(out, class)
		}
	}
	return strings.Join(out, " ")
}

// ClassIf returns class when cond holds, otherwise an empty string.
func ClassIf(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}
