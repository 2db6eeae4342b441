package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/vars1ty/lxinfo"
	"github.com/vars1ty/lxinfo/internal/conf"
	"github.com/vars1ty/lxinfo/lxlog"
)

func main() {
	conf.LoadConfig("config.toml")

	logConf := conf.GetLog()
	logger, err := lxlog.New("lxinfo", logConf.Level, logConf.File, logConf.Dev)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	sources := conf.GetSources()
	info, err := lxinfo.GetSystemInfo(lxinfo.Options{
		OSReleasePath: sources.OSReleasePath,
		MemInfoPath:   sources.MemInfoPath,
		UptimePath:    sources.UptimePath,
		Shell:         conf.GetShell(),
		Log:           logger.Logger,
	})
	if err != nil {
		logger.Logger.Fatalw("failed to gather system information", "error", err)
	}

	out, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		logger.Logger.Fatalw("failed to encode system information", "error", err)
	}

	fmt.Println(string(out))
}
