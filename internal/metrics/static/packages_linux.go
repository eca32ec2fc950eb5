//go:build linux

package static

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/monify-labs/sysfetch/internal/metrics"
	"github.com/monify-labs/sysfetch/pkg/models"
)

// packageDB counts the entries of one on-disk package database
type packageDB struct {
	manager string
	count   func(ctx context.Context, root string) (int, error)
}

var packageDBs = []packageDB{
	{"dpkg", countDpkg},
	{"pacman", countPacman},
	{"rpm", countRPM},
	{"apk", countApk},
	{"flatpak", countFlatpak},
	{"snap", countSnap},
}

// PackageCounter counts installed packages by reading package databases
// directly; no package manager is executed on Linux.
func PackageCounter(_ metrics.CommandExecutor) func(context.Context) ([]models.PackageCount, error) {
	return func(ctx context.Context) ([]models.PackageCount, error) {
		return countPackages(ctx, "/")
	}
}

func countPackages(ctx context.Context, root string) ([]models.PackageCount, error) {
	var counts []models.PackageCount
	for _, db := range packageDBs {
		n, err := db.count(ctx, root)
		if err != nil || n == 0 {
			continue
		}
		counts = append(counts, models.PackageCount{Manager: db.manager, Count: n})
	}

	if len(counts) == 0 {
		return nil, metrics.Unavailable("package databases")
	}
	return counts, nil
}

// countDpkg counts installed stanzas in the dpkg status file
func countDpkg(_ context.Context, root string) (int, error) {
	f, err := os.Open(filepath.Join(root, "var/lib/dpkg/status"))
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == "Status: install ok installed" {
			n++
		}
	}
	return n, scanner.Err()
}

// countPacman counts package directories in the local pacman database
func countPacman(_ context.Context, root string) (int, error) {
	return countEntries(filepath.Join(root, "var/lib/pacman/local"), func(e os.DirEntry) bool {
		return e.IsDir()
	})
}

// countRPM counts rows of the sqlite rpm database used since rpm 4.16
func countRPM(ctx context.Context, root string) (int, error) {
	path := filepath.Join(root, "var/lib/rpm/rpmdb.sqlite")
	if _, err := os.Stat(path); err != nil {
		return 0, err
	}

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return 0, fmt.Errorf("open rpm db: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM Packages").Scan(&n); err != nil {
		return 0, fmt.Errorf("count rpm packages: %w", err)
	}
	return n, nil
}

// countApk counts package records in the apk installed database
func countApk(_ context.Context, root string) (int, error) {
	f, err := os.Open(filepath.Join(root, "lib/apk/db/installed"))
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.HasPrefix(scanner.Text(), "P:") {
			n++
		}
	}
	return n, scanner.Err()
}

// countFlatpak counts installed system-wide flatpak applications
func countFlatpak(_ context.Context, root string) (int, error) {
	return countEntries(filepath.Join(root, "var/lib/flatpak/app"), func(e os.DirEntry) bool {
		return e.IsDir()
	})
}

// countSnap counts mounted snap images
func countSnap(_ context.Context, root string) (int, error) {
	return countEntries(filepath.Join(root, "var/lib/snapd/snaps"), func(e os.DirEntry) bool {
		return !e.IsDir() && strings.HasSuffix(e.Name(), ".snap")
	})
}

func countEntries(dir string, keep func(os.DirEntry) bool) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, e := range entries {
		if keep(e) {
			n++
		}
	}
	return n, nil
}
