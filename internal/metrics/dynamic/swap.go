package dynamic

import (
	"context"

	"github.com/shirou/gopsutil/v4/mem"

	"github.com/monify-labs/sysfetch/pkg/models"
)

// SwapMemory returns swap usage as total minus free, via gopsutil
func SwapMemory(ctx context.Context) (models.Usage, error) {
	swap, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return models.Usage{}, err
	}

	used := swap.Used
	if swap.Free <= swap.Total {
		used = swap.Total - swap.Free
	}
	return models.Usage{Used: used, Total: swap.Total}, nil
}
