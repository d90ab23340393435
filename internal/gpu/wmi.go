package gpu

import (
	"strconv"
	"time"
)

// Win32_VideoController.VideoMemoryType
var memoryTypes = map[uint16]string{
	1:  "Other",
	2:  "Unknown",
	3:  "VRAM",
	4:  "DRAM",
	5:  "SRAM",
	6:  "WRAM",
	7:  "EDO RAM",
	8:  "Burst Synchronous DRAM",
	9:  "Pipelined Burst SRAM",
	10: "CDRAM",
	11: "3DRAM",
	12: "SDRAM",
	13: "SGRAM",
}

// Win32_VideoController.VideoArchitecture
var architectures = map[uint16]string{
	1:   "Other",
	2:   "Unknown",
	3:   "CGA",
	4:   "EGA",
	5:   "VGA",
	6:   "SVGA",
	7:   "MDA",
	8:   "HGC",
	9:   "MCGA",
	10:  "8514A",
	11:  "XGA",
	12:  "Linear Frame Buffer",
	160: "PC-98",
}

// MemoryTypeName returns the documented name of a VideoMemoryType code
func MemoryTypeName(code *uint16) string {
	return enumName(memoryTypes, code)
}

// ArchitectureName returns the documented name of a VideoArchitecture code
func ArchitectureName(code *uint16) string {
	return enumName(architectures, code)
}

func enumName(names map[uint16]string, code *uint16) string {
	if code == nil || *code == 0 {
		return ""
	}
	if name, ok := names[*code]; ok {
		return name
	}
	return strconv.FormatUint(uint64(*code), 10)
}

// FormatDriverDate shortens a CIM datetime (yyyymmddHHMMSS.mmmmmmsUUU) to yyyy-mm-dd
func FormatDriverDate(raw string) string {
	if len(raw) < 8 {
		return raw
	}
	t, err := time.Parse("20060102", raw[:8])
	if err != nil {
		return raw
	}
	return t.Format(time.DateOnly)
}

// widen converts a reported uint32 into the optional uint64 field, treating 0 as unreported
func widen(v *uint32) *uint64 {
	if v == nil || *v == 0 {
		return nil
	}
	w := uint64(*v)
	return &w
}

// nonZero drops a reported 0, which the platform uses for "not available"
func nonZero(v *uint32) *uint32 {
	if v == nil || *v == 0 {
		return nil
	}
	return v
}
