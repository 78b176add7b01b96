// File: system.go
// Title: System Properties
// Description: Read-only host and process properties backing the reserved
//              system section.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial implementation

package config

import (
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/bmc/grizzled-go/utils/mapx"
)

var (
	systemOnce  sync.Once
	systemProps map[string]string
)

// SystemProperty returns a property of the running system. Known names:
// os.name, os.arch, os.version, os.platform, host.name, user.name,
// user.home, user.dir, tmp.dir, file.separator, path.separator,
// line.separator, go.version, cpu.count, mem.total and pid.
func SystemProperty(name string) (string, bool) {
	systemOnce.Do(func() { systemProps = loadSystemProperties() })
	v, ok := systemProps[name]
	return v, ok
}

// SystemProperties returns a copy of all system properties.
func SystemProperties() map[string]string {
	systemOnce.Do(func() { systemProps = loadSystemProperties() })
	return mapx.Clone(systemProps)
}

func loadSystemProperties() map[string]string {
	props := map[string]string{
		"os.name":        runtime.GOOS,
		"os.arch":        runtime.GOARCH,
		"file.separator": string(filepath.Separator),
		"path.separator": string(filepath.ListSeparator),
		"line.separator": "\n",
		"go.version":     runtime.Version(),
		"cpu.count":      strconv.Itoa(runtime.NumCPU()),
		"pid":            strconv.Itoa(os.Getpid()),
		"tmp.dir":        os.TempDir(),
	}
	if runtime.GOOS == "windows" {
		props["line.separator"] = "\r\n"
	}

	if info, err := host.Info(); err == nil {
		props["host.name"] = info.Hostname
		props["os.platform"] = info.Platform
		props["os.version"] = info.PlatformVersion
		if info.PlatformVersion == "" {
			props["os.version"] = info.KernelVersion
		}
	}
	if _, ok := props["host.name"]; !ok {
		if h, err := os.Hostname(); err == nil {
			props["host.name"] = h
		}
	}

	if n, err := cpu.Counts(true); err == nil && n > 0 {
		props["cpu.count"] = strconv.Itoa(n)
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		props["mem.total"] = strconv.FormatUint(vm.Total, 10)
	}

	if u, err := user.Current(); err == nil {
		props["user.name"] = u.Username
		props["user.home"] = u.HomeDir
	} else if home, err := os.UserHomeDir(); err == nil {
		props["user.home"] = home
	}
	if wd, err := os.Getwd(); err == nil {
		props["user.dir"] = wd
	}
	return props
}
