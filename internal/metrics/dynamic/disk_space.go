package dynamic

import (
	"context"

	"github.com/shirou/gopsutil/v4/disk"

	"github.com/monify-labs/sysfetch/pkg/models"
)

// Disks lists usage per mounted filesystem (no aggregation)
func Disks(ctx context.Context) ([]models.DiskUsage, error) {
	partitions, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, err
	}

	var disks []models.DiskUsage
	seen := make(map[string]bool)

	for _, partition := range partitions {
		// Skip special filesystems
		if shouldSkipFilesystem(partition.Fstype) || seen[partition.Mountpoint] {
			continue
		}

		usage, err := disk.UsageWithContext(ctx, partition.Mountpoint)
		if err != nil || usage.Total == 0 {
			continue
		}
		seen[partition.Mountpoint] = true

		used := usage.Used
		if usage.Free <= usage.Total {
			used = usage.Total - usage.Free
		}

		disks = append(disks, models.DiskUsage{
			MountPoint: partition.Mountpoint,
			Device:     partition.Device,
			FSType:     partition.Fstype,
			Usage:      models.Usage{Used: used, Total: usage.Total},
		})
	}

	return disks, nil
}

// shouldSkipFilesystem determines if a filesystem type should be skipped
func shouldSkipFilesystem(fstype string) bool {
	skipTypes := map[string]bool{
		"tmpfs":    true,
		"devtmpfs": true,
		"devfs":    true,
		"proc":     true,
		"sysfs":    true,
		"cgroup":   true,
		"cgroup2":  true,
		"nsfs":     true,
		"overlay":  true,
		"squashfs": true,
		"iso9660":  true,
	}

	return skipTypes[fstype]
}
