package system

import (
	"context"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
)

// GetSystemInfo returns general system information
// Provider errors are swallowed; whatever was reported is kept
func GetSystemInfo(ctx context.Context) *SystemInfo {
	info := &SystemInfo{
		OSName:         PlatformName(runtime.GOOS),
		MachineArch:    runtime.GOARCH,
		RuntimeVersion: runtime.Version(),
	}

	// gopsutil may return a partially filled struct alongside an error
	hostInfo, _ := host.InfoWithContext(ctx)
	if hostInfo != nil {
		info.OSRelease = hostInfo.KernelVersion
		info.OSVersion = strings.TrimSpace(hostInfo.Platform + " " + hostInfo.PlatformVersion)
		if hostInfo.KernelArch != "" {
			info.MachineArch = hostInfo.KernelArch
		}
	}

	cpuInfo, _ := cpu.InfoWithContext(ctx)
	if len(cpuInfo) > 0 {
		info.Processor = strings.TrimSpace(cpuInfo[0].ModelName)
	}

	return info
}

// PlatformName maps a GOOS value to the name the OS calls itself
func PlatformName(goos string) string {
	switch goos {
	case "windows":
		return "Windows"
	case "linux":
		return "Linux"
	case "darwin":
		return "Darwin"
	case "freebsd":
		return "FreeBSD"
	case "openbsd":
		return "OpenBSD"
	case "netbsd":
		return "NetBSD"
	case "":
		return ""
	default:
		return strings.ToUpper(goos[:1]) + goos[1:]
	}
}
