package lxinfo

import "go.uber.org/zap"

// Default locations of the kernel and distribution text sources.
const (
	DefaultOSReleasePath = "/etc/os-release"
	DefaultMemInfoPath   = "/proc/meminfo"
	DefaultUptimePath    = "/proc/uptime"
)

// SystemInfo represents one complete host snapshot
type SystemInfo struct {
	DistroName      string `json:"distro_name"`
	DistroID        string `json:"distro_id"`
	DistroBuildID   string `json:"distro_build_id"`
	Username        string `json:"username"`
	Hostname        string `json:"hostname"`
	Shell           string `json:"shell"`
	Kernel          string `json:"kernel"`
	Arch            string `json:"arch"`
	UptimeSeconds   uint64 `json:"uptime_seconds"`
	UptimeMinutes   uint64 `json:"uptime_minutes"`
	UptimeHours     uint64 `json:"uptime_hours"`
	UptimeDays      uint64 `json:"uptime_days"`
	UptimeFormatted string `json:"uptime_formatted"`
	TotalMem        string `json:"total_mem"`
	CachedMem       string `json:"cached_mem"`
	AvailableMem    string `json:"available_mem"`
	UsedMem         string `json:"used_mem"`
}

// Options carries the inputs of a single gather pass. Empty path fields
// fall back to the standard Linux locations. Shell holds the login shell
// executable path, typically the caller's $SHELL value; the library never
// reads the process environment itself.
type Options struct {
	OSReleasePath string
	MemInfoPath   string
	UptimePath    string
	Shell         string

	// Log receives degradation notices. Nil disables logging.
	Log *zap.SugaredLogger
}

func (o Options) osReleasePath() string {
	if o.OSReleasePath != "" {
		return o.OSReleasePath
	}
	return DefaultOSReleasePath
}

func (o Options) memInfoPath() string {
	if o.MemInfoPath != "" {
		return o.MemInfoPath
	}
	return DefaultMemInfoPath
}

func (o Options) uptimePath() string {
	if o.UptimePath != "" {
		return o.UptimePath
	}
	return DefaultUptimePath
}

func (o Options) logger() *zap.SugaredLogger {
	if o.Log != nil {
		return o.Log
	}
	return zap.NewNop().Sugar()
}
