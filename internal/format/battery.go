package format

import (
	"fmt"

	"github.com/monify-labs/sysfetch/pkg/models"
)

// Battery renders the battery lines from whichever sub-facts resolved.
// The shape is a pure function of which of percentage, state and health
// are known:
//
//	p s h  Battery: 80% (Charging) / Health: 95%
//	p s    Battery: 80% (Charging)
//	p   h  Battery: 80% / Health: 95%
//	  s h  Battery: Charging / Health: 95%
//	  s    Battery: Charging
//	other  Battery: N/A
func Battery(b models.BatteryInfo) ([]string, bool) {
	pct, hasPct := b.Percentage.Get()
	state, hasState := b.State.Get()
	health, hasHealth := b.Health.Get()

	healthLine := fmt.Sprintf("  Health: %d%%", health)

	switch {
	case hasPct && hasState && hasHealth:
		return []string{fmt.Sprintf("Battery: %d%% (%s)", pct, state), healthLine}, true
	case hasPct && hasState:
		return []string{fmt.Sprintf("Battery: %d%% (%s)", pct, state)}, true
	case hasPct && hasHealth:
		return []string{fmt.Sprintf("Battery: %d%%", pct), healthLine}, true
	case hasState && hasHealth:
		return []string{"Battery: " + state, healthLine}, true
	case hasState:
		return []string{"Battery: " + state}, true
	default:
		return []string{SentinelLine(models.Battery)}, false
	}
}
