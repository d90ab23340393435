package system

// SystemInfo represents general system information
// Every field is best effort; unavailable values are empty strings
type SystemInfo struct {
	OSName         string
	OSRelease      string
	OSVersion      string
	MachineArch    string
	Processor      string
	RuntimeVersion string
}
