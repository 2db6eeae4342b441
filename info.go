package lxinfo

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// GetSystemInfo gathers one complete host snapshot. Every field except
// uptime is mandatory: the first source that cannot be read or parsed
// fails the whole call and no partial snapshot escapes. The uptime counter
// is the one lenient input, see GetUptime.
func GetSystemInfo(opts Options) (*SystemInfo, error) {
	osRelease, err := os.ReadFile(opts.osReleasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to read release metadata: %w", err)
	}

	memInfo, err := os.ReadFile(opts.memInfoPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read memory statistics: %w", err)
	}

	distroName, ok := ParseReleaseKey(string(osRelease), "NAME")
	if !ok {
		return nil, errors.New("release metadata has no NAME entry")
	}

	distroID, ok := ParseReleaseKey(string(osRelease), "ID")
	if !ok {
		return nil, errors.New("release metadata has no ID entry")
	}

	distroBuildID, ok := ParseReleaseKey(string(osRelease), "BUILD_ID")
	if !ok {
		return nil, errors.New("release metadata has no BUILD_ID entry")
	}

	shell, err := shellName(opts.Shell)
	if err != nil {
		return nil, err
	}

	totalKB, err := memValueKB(string(memInfo), "MemTotal")
	if err != nil {
		return nil, err
	}

	cachedKB, err := memValueKB(string(memInfo), "Cached")
	if err != nil {
		return nil, err
	}

	availableKB, err := memValueKB(string(memInfo), "MemAvailable")
	if err != nil {
		return nil, err
	}

	if availableKB > totalKB {
		return nil, fmt.Errorf(
			"memory statistics report more available (%v kB) than total (%v kB)",
			availableKB, totalKB)
	}

	totalMem, err := ProperUnitKB(totalKB)
	if err != nil {
		return nil, fmt.Errorf("failed to convert MemTotal: %w", err)
	}

	cachedMem, err := ProperUnitKB(cachedKB)
	if err != nil {
		return nil, fmt.Errorf("failed to convert Cached: %w", err)
	}

	availableMem, err := ProperUnitKB(availableKB)
	if err != nil {
		return nil, fmt.Errorf("failed to convert MemAvailable: %w", err)
	}

	usedMem, err := ProperUnitKB(totalKB - availableKB)
	if err != nil {
		return nil, fmt.Errorf("failed to convert used memory: %w", err)
	}

	uptime := GetUptime(opts.uptimePath(), opts.logger())

	username, err := GetIdentity(Username)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve username: %w", err)
	}

	hostname, err := GetIdentity(HostName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve hostname: %w", err)
	}

	kernel, err := GetIdentity(KernelVersion)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve kernel version: %w", err)
	}

	arch, err := GetIdentity(Machine)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve architecture: %w", err)
	}

	return &SystemInfo{
		DistroName:      distroName,
		DistroID:        distroID,
		DistroBuildID:   distroBuildID,
		Username:        username,
		Hostname:        hostname,
		Shell:           shell,
		Kernel:          kernel,
		Arch:            arch,
		UptimeSeconds:   uptime.Seconds,
		UptimeMinutes:   uptime.Minutes,
		UptimeHours:     uptime.Hours,
		UptimeDays:      uptime.Days,
		UptimeFormatted: uptime.Formatted,
		TotalMem:        totalMem,
		CachedMem:       cachedMem,
		AvailableMem:    availableMem,
		UsedMem:         usedMem,
	}, nil
}

// memValueKB reads one numeric meminfo row as a kilobyte count.
func memValueKB(meminfo, key string) (float64, error) {
	raw, ok := ParseMemInfoKey(meminfo, key)
	if !ok {
		return 0, fmt.Errorf("memory statistics have no %s entry", key)
	}

	kb, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s value %q: %w", key, raw, err)
	}
	return kb, nil
}

// shellName reduces a shell executable path such as /bin/bash to its
// program name.
func shellName(shellPath string) (string, error) {
	name := shellPath[strings.LastIndexByte(shellPath, '/')+1:]
	if name == "" {
		return "", errors.New("no shell configured")
	}
	return name, nil
}
