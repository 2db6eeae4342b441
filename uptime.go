package lxinfo

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"go.uber.org/zap"
)

// Uptime is the decomposed elapsed time since boot. Hours counts total
// hours since boot rather than the remainder after days, so a host up for
// 25 hours reports Days 1 and Hours 25.
type Uptime struct {
	Seconds   uint64 `json:"seconds"`
	Minutes   uint64 `json:"minutes"`
	Hours     uint64 `json:"hours"`
	Days      uint64 `json:"days"`
	Formatted string `json:"formatted"`
}

// GetUptime reads the kernel uptime counter at path and decomposes it for
// display. A missing or malformed counter degrades to zero seconds instead
// of failing; the degradation is logged.
func GetUptime(path string, log *zap.SugaredLogger) Uptime {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	var secs uint64
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warnw("failed to read uptime counter, reporting zero",
			"path", path, "error", err)
	} else {
		// "12345.67 8910.11": only the integer part of the first
		// column matters.
		head := string(data)
		if i := strings.IndexAny(head, ". \t\n"); i >= 0 {
			head = head[:i]
		}

		secs, err = cast.ToUint64E(head)
		if err != nil {
			log.Warnw("unreadable uptime counter, reporting zero",
				"path", path, "raw", head)
			secs = 0
		}
	}

	days := secs / 86400
	hours := secs / 3600
	minutes := secs % 3600 / 60

	var clauses []string
	if days > 0 {
		clauses = append(clauses, plural(days, "day"))
	}
	if hours > 0 {
		clauses = append(clauses, plural(hours, "hour"))
	}
	if minutes > 0 {
		clauses = append(clauses, plural(minutes, "minute"))
	}

	formatted := strings.Join(clauses, ", ")
	if formatted == "" {
		formatted = plural(secs, "second")
	}

	return Uptime{
		Seconds:   secs,
		Minutes:   minutes,
		Hours:     hours,
		Days:      days,
		Formatted: formatted,
	}
}

func plural(n uint64, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.FormatUint(n, 10) + " " + unit + "s"
}
