package lxinfo

import "strings"

// ParseMemInfoKey extracts the numeric column of a /proc/meminfo style row.
// The first line whose prefix matches key decides the result: its second
// whitespace-separated field is returned as written, the "kB" unit column
// is dropped. The second return is false when no line matches or the
// matching line has no value column.
func ParseMemInfoKey(meminfo, key string) (string, bool) {
	for _, line := range strings.Split(meminfo, "\n") {
		if !strings.HasPrefix(line, key) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return "", false
		}
		return fields[1], true
	}
	return "", false
}
