//go:build windows

package gpu

import (
	"context"
	"fmt"

	"github.com/yusufpapurcu/wmi"
)

const videoControllerQuery = "SELECT Name, AdapterRAM, DriverVersion, DriverDate, VideoModeDescription, " +
	"CurrentRefreshRate, MaxRefreshRate, MinRefreshRate, Status, VideoProcessor, " +
	"VideoMemoryType, VideoArchitecture FROM Win32_VideoController"

// win32VideoController mirrors the queried Win32_VideoController columns.
// Pointers stay nil for NULL properties.
type win32VideoController struct {
	Name                 string
	AdapterRAM           *uint32
	DriverVersion        string
	DriverDate           string
	VideoModeDescription string
	CurrentRefreshRate   *uint32
	MaxRefreshRate       *uint32
	MinRefreshRate       *uint32
	Status               string
	VideoProcessor       string
	VideoMemoryType      *uint16
	VideoArchitecture    *uint16
}

// WMI queries Win32_VideoController through a single SWbemServices handle
type WMI struct {
	services *wmi.SWbemServices
}

// Open initializes the WMI handle used for the rest of the run
func Open() (*WMI, error) {
	services, err := wmi.InitializeSWbemServices(wmi.DefaultClient)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SWbemServices: %w", err)
	}
	return &WMI{services: services}, nil
}

// VideoControllers returns every video controller WMI knows about
func (w *WMI) VideoControllers(ctx context.Context) ([]VideoController, error) {
	if w == nil || w.services == nil {
		return nil, ErrProviderUnavailable
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []win32VideoController
	if err := w.services.Query(videoControllerQuery, &rows); err != nil {
		return nil, fmt.Errorf("failed to query Win32_VideoController: %w", err)
	}

	controllers := make([]VideoController, 0, len(rows))
	for _, row := range rows {
		controllers = append(controllers, VideoController{
			Name:                 row.Name,
			AdapterRAM:           widen(row.AdapterRAM),
			DriverVersion:        row.DriverVersion,
			DriverDate:           FormatDriverDate(row.DriverDate),
			VideoModeDescription: row.VideoModeDescription,
			CurrentRefreshRate:   nonZero(row.CurrentRefreshRate),
			MaxRefreshRate:       nonZero(row.MaxRefreshRate),
			MinRefreshRate:       nonZero(row.MinRefreshRate),
			Status:               row.Status,
			VideoProcessor:       row.VideoProcessor,
			VideoMemoryType:      MemoryTypeName(row.VideoMemoryType),
			VideoArchitecture:    ArchitectureName(row.VideoArchitecture),
		})
	}
	return controllers, nil
}

// Close releases the SWbemServices handle
func (w *WMI) Close() error {
	if w == nil || w.services == nil {
		return nil
	}
	return w.services.Close()
}
