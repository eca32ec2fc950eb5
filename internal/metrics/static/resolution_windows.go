//go:build windows

package static

import (
	"context"
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/monify-labs/sysfetch/internal/metrics"
)

var procGetSystemMetrics = windows.NewLazySystemDLL("user32.dll").NewProc("GetSystemMetrics")

const (
	smCXScreen = 0
	smCYScreen = 1
)

// ScreenMetrics returns the primary display size from GetSystemMetrics
func ScreenMetrics(_ context.Context) ([]string, error) {
	if err := procGetSystemMetrics.Find(); err != nil {
		return nil, err
	}
	w, _, _ := procGetSystemMetrics.Call(uintptr(smCXScreen))
	h, _, _ := procGetSystemMetrics.Call(uintptr(smCYScreen))
	if w == 0 || h == 0 {
		return nil, metrics.Unavailable("GetSystemMetrics")
	}
	return []string{fmt.Sprintf("%dx%d", w, h)}, nil
}
