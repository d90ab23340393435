//go:build !windows

package gpu

import "context"

// WMI is only backed by a real handle on Windows
type WMI struct{}

// Open always fails off Windows
func Open() (*WMI, error) {
	return nil, ErrProviderUnavailable
}

func (w *WMI) VideoControllers(ctx context.Context) ([]VideoController, error) {
	return nil, ErrProviderUnavailable
}

func (w *WMI) Close() error {
	return nil
}
