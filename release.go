package lxinfo

import "strings"

// ParseReleaseKey extracts the value of key from os-release formatted text.
// The value runs from the first occurrence of "KEY=" to the end of that
// line, with every double quote removed. The second return is false when
// the key is absent or carries no usable value.
func ParseReleaseKey(osRelease, key string) (string, bool) {
	_, rest, found := strings.Cut(osRelease, key+"=")
	if !found {
		return "", false
	}
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[:i]
	}
	rest = strings.ReplaceAll(rest, `"`, "")
	if rest == "" {
		return "", false
	}
	return rest, true
}
