package static

import (
	"context"

	"github.com/monify-labs/sysfetch/internal/metrics"
)

// SysctlModel returns hw.model through sysctl
func SysctlModel(exec metrics.CommandExecutor) func(context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		out, err := exec.Execute(ctx, "sysctl", "-n", "hw.model")
		if err != nil {
			return "", err
		}
		if out == "" {
			return "", metrics.Unavailable("hw.model")
		}
		return out, nil
	}
}
