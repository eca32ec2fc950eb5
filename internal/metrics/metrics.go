// Package metrics holds what the static and dynamic providers share: the
// not-available signal, a bounded command executor and small file readers.
package metrics

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
)

// ErrNotAvailable is returned when a provider cannot supply its fact on this machine
var ErrNotAvailable = errors.New("not available")

// CommandTimeout bounds every external command run by a provider
const CommandTimeout = 3 * time.Second

// Unavailable returns an error wrapping ErrNotAvailable with context
func Unavailable(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotAvailable)
}

// CommandExecutor runs external commands for providers that shell out
type CommandExecutor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}

// DefaultExecutor implements CommandExecutor with os/exec
type DefaultExecutor struct {
	Timeout time.Duration
}

// NewExecutor creates an executor bounded by CommandTimeout
func NewExecutor() *DefaultExecutor {
	return &DefaultExecutor{Timeout: CommandTimeout}
}

// Execute runs a command with a timeout and returns its trimmed output
func (e *DefaultExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	timeout := e.Timeout
	if timeout <= 0 {
		timeout = CommandTimeout
	}

	if _, err := exec.LookPath(name); err != nil {
		return "", Unavailable("command %q", name)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := exec.CommandContext(timeoutCtx, name, args...).Output()
	if err != nil {
		return "", fmt.Errorf("command %q failed: %w", name, err)
	}

	return strings.TrimSpace(string(out)), nil
}

// ReadTrimmed reads a small file and trims surrounding whitespace
func ReadTrimmed(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	value := strings.TrimSpace(string(data))
	if value == "" {
		return "", Unavailable("%s is empty", path)
	}
	return value, nil
}

// ParseKeyValue parses KEY<sep>VALUE lines, trimming spaces and quotes
func ParseKeyValue(r io.Reader, sep string) map[string]string {
	values := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, sep, 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		if _, seen := values[key]; seen {
			continue
		}
		values[key] = strings.Trim(strings.TrimSpace(parts[1]), `"'`)
	}
	return values
}
