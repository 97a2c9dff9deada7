package stringsx

import (
	"slices"
	"strings"
)

// SplitMulti slices s into all substrings separated by any of seps.  Empty
// substrings between adjacent separators are kept.
func SplitMulti(s string, seps []string) []string {
	out := make([]string, 0, 8)

	var i int
	for j := 0; j < len(s); j++ {
		for _, sep := range seps {
			if !strings.HasPrefix(s[j:], sep) {
				continue
			}
			out = append(out, s[i:j])
			j += len(sep) - 1
			i = j + 1
			break
		}
	}
	if i < len(s) {
		out = append(out, s[i:])
	}

	return out
}

// FieldsMulti is like SplitMulti, but drops the empty substrings
func FieldsMulti(s string, seps []string) []string {
	return slices.DeleteFunc(SplitMulti(s, seps), func(s string) bool {
		return s == ""
	})
}
