package gpu

import (
	"context"
	"errors"
)

var (
	// ErrProviderUnavailable is returned when the hardware inventory cannot be queried
	ErrProviderUnavailable = errors.New("hardware enumeration provider unavailable")
	// ErrNoControllers is returned when a single controller is requested but none exist
	ErrNoControllers = errors.New("no video controllers reported")
	// ErrDiagnosticFailed wraps a non-zero exit of the diagnostic executable
	ErrDiagnosticFailed = errors.New("diagnostic executable exited with failure")
)

// VideoController is one display adapter as reported by the OS.
// Pointer fields are nil when the platform did not report a value.
type VideoController struct {
	Name                 string
	AdapterRAM           *uint64
	DriverVersion        string
	DriverDate           string
	VideoModeDescription string
	CurrentRefreshRate   *uint32
	MaxRefreshRate       *uint32
	MinRefreshRate       *uint32
	Status               string
	VideoProcessor       string
	VideoMemoryType      string
	VideoArchitecture    string
}

// Provider enumerates the video controllers of the local machine
type Provider interface {
	VideoControllers(ctx context.Context) ([]VideoController, error)
}

// First returns the first controller reported by p
func First(ctx context.Context, p Provider) (*VideoController, error) {
	if p == nil {
		return nil, ErrProviderUnavailable
	}
	controllers, err := p.VideoControllers(ctx)
	if err != nil {
		return nil, err
	}
	if len(controllers) == 0 {
		return nil, ErrNoControllers
	}
	return &controllers[0], nil
}

// Diagnostic runs the vendor diagnostic executable and returns its stdout
type Diagnostic interface {
	Run(ctx context.Context) (string, error)
}
