package static

import (
	"context"
	"os"
	"os/user"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/process"

	"github.com/monify-labs/sysfetch/internal/metrics"
)

// ProcessOwner returns the user owning the current process
func ProcessOwner(ctx context.Context) (string, error) {
	p, err := process.NewProcessWithContext(ctx, int32(os.Getpid()))
	if err != nil {
		return "", err
	}

	name, err := p.UsernameWithContext(ctx)
	if err != nil {
		return "", err
	}

	return accountName(name)
}

// CurrentUser returns the user name reported by the OS account database
func CurrentUser(_ context.Context) (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return accountName(u.Username)
}

// EnvUser returns the login name from the environment
func EnvUser(_ context.Context) (string, error) {
	for _, key := range []string{"USER", "USERNAME", "LOGNAME"} {
		if name := os.Getenv(key); name != "" {
			return accountName(name)
		}
	}
	return "", metrics.Unavailable("user environment")
}

// InfoHostname returns the host name reported by gopsutil
func InfoHostname(ctx context.Context) (string, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return "", err
	}
	if info.Hostname == "" {
		return "", metrics.Unavailable("hostname")
	}
	return info.Hostname, nil
}

// OSHostname returns the kernel host name
func OSHostname(_ context.Context) (string, error) {
	name, err := os.Hostname()
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", metrics.Unavailable("hostname")
	}
	return name, nil
}

// accountName strips a Windows DOMAIN\ prefix
func accountName(name string) (string, error) {
	if i := strings.LastIndex(name, `\`); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", metrics.Unavailable("user name")
	}
	return name, nil
}
