package static

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monify-labs/sysfetch/internal/metrics"
	"github.com/monify-labs/sysfetch/pkg/models"
)

// fakeExecutor returns canned output per command name
type fakeExecutor struct {
	outputs map[string]string
	calls   []string
}

func (f *fakeExecutor) Execute(_ context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, name+" "+strings.Join(args, " "))
	out, ok := f.outputs[name]
	if !ok {
		return "", metrics.Unavailable("command %q", name)
	}
	return out, nil
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDecodeSystemVersion(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>ProductBuildVersion</key>
	<string>23C64</string>
	<key>ProductName</key>
	<string>macOS</string>
	<key>ProductVersion</key>
	<string>14.2</string>
</dict>
</plist>`

	name, err := decodeSystemVersion(bytes.NewReader([]byte(doc)))
	require.NoError(t, err)
	assert.Equal(t, "macOS 14.2 23C64", name)
}

func TestCPUInfoModel(t *testing.T) {
	x86 := "processor\t: 0\nvendor_id\t: GenuineIntel\nmodel name\t: Intel(R) Core(TM) i7-8550U CPU @ 1.80GHz\n"
	assert.Equal(t, "Intel(R) Core(TM) i7-8550U CPU @ 1.80GHz", cpuInfoModel(strings.NewReader(x86)))

	arm := "processor\t: 0\nBogoMIPS\t: 108.00\nHardware\t: BCM2835\nModel\t: Raspberry Pi 4 Model B Rev 1.4\n"
	assert.Equal(t, "BCM2835", cpuInfoModel(strings.NewReader(arm)))

	assert.Empty(t, cpuInfoModel(strings.NewReader("processor : 0\n")))
}

func TestCPUFreqMHz(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpuinfo_max_freq")
	writeFile(t, path, "4000000\n")

	mhz, err := cpuFreqMHz(path)
	require.NoError(t, err)
	assert.Equal(t, 4000.0, mhz)
}

func TestParseLspci(t *testing.T) {
	out := `00:00.0 "Host bridge" "Intel Corporation" "Xeon E3-1200 v6/7th Gen Core Processor Host Bridge/DRAM Registers" -r08 "Lenovo" "Device 2258"
00:02.0 "VGA compatible controller" "Intel Corporation" "UHD Graphics 620" -r07 "Lenovo" "Device 2258"
01:00.0 "3D controller" "NVIDIA Corporation" "GP108M [GeForce MX150]" -ra1 "Lenovo" "Device 2258"`

	gpus := parseLspci(out)
	assert.Equal(t, []models.GPU{
		{Name: "Intel Corporation UHD Graphics 620"},
		{Name: "NVIDIA Corporation GP108M [GeForce MX150]"},
	}, gpus)

	assert.Empty(t, parseLspci(""))
}

func TestDRMGPUs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "card0", "device", "uevent"), "DRIVER=amdgpu\nPCI_ID=1002:73BF\n")
	writeFile(t, filepath.Join(root, "card0-DP-1", "status"), "connected\n")

	gpus, err := drmGPUs(root)
	require.NoError(t, err)
	assert.Equal(t, []models.GPU{{Name: "amdgpu (1002:73BF)"}}, gpus)
}

func TestDRMModes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "card0-eDP-1", "status"), "connected\n")
	writeFile(t, filepath.Join(root, "card0-eDP-1", "modes"), "1920x1080\n1280x720\n")
	writeFile(t, filepath.Join(root, "card0-HDMI-A-1", "status"), "disconnected\n")
	writeFile(t, filepath.Join(root, "card0-HDMI-A-1", "modes"), "")

	modes, err := drmModes(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"1920x1080"}, modes)
}

func TestParseXrandr(t *testing.T) {
	out := `Screen 0: minimum 320 x 200, current 4480 x 1440, maximum 16384 x 16384
eDP-1 connected primary 1920x1080+0+0 (normal left inverted right x axis y axis) 309mm x 174mm
   1920x1080     60.02*+
HDMI-1 disconnected (normal left inverted right x axis y axis)
DP-1 connected 2560x1440+1920+0 (normal left inverted right x axis y axis) 597mm x 336mm`

	modes, err := parseXrandr(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"1920x1080", "2560x1440"}, modes)

	_, err = parseXrandr("Screen 0: minimum 320 x 200")
	assert.ErrorIs(t, err, metrics.ErrNotAvailable)
}

func TestSystemProfilerModes(t *testing.T) {
	exec := &fakeExecutor{outputs: map[string]string{
		"system_profiler": "Graphics/Displays:\n    Apple M1:\n      Chipset Model: Apple M1\n      Displays:\n        Color LCD:\n          Resolution: 2560 x 1600 Retina\n",
	}}

	modes, err := SystemProfilerModes(exec)(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"2560x1600"}, modes)

	gpus, err := SystemProfilerGPUs(exec)(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.GPU{{Name: "Apple M1"}}, gpus)
}

func TestGSettingsTheme(t *testing.T) {
	exec := &fakeExecutor{outputs: map[string]string{"gsettings": "'prefer-dark'"}}
	mode, err := GSettingsTheme(exec)(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, mode)

	exec.outputs["gsettings"] = "'default'"
	mode, err = GSettingsTheme(exec)(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, mode)
}

func TestGTKTheme(t *testing.T) {
	t.Setenv("GTK_THEME", "Adwaita:dark")
	mode, err := GTKTheme(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, mode)

	t.Setenv("GTK_THEME", "")
	_, err = GTKTheme(context.Background())
	assert.ErrorIs(t, err, metrics.ErrNotAvailable)
}

func TestCanonicalLocale(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "en_US.UTF-8", want: "en-US"},
		{raw: "de_DE@euro", want: "de-DE"},
		{raw: "pt_BR", want: "pt-BR"},
		{raw: "C.UTF-8", wantErr: true},
		{raw: "POSIX", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := canonicalLocale(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, metrics.ErrNotAvailable)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnvLocalePrecedence(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "C")
	t.Setenv("LANG", "fr_FR.UTF-8")

	got, err := EnvLocale(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fr-FR", got)
}

func TestAppendPrivate(t *testing.T) {
	var addrs []string
	addrs = appendPrivate(addrs, "192.168.1.20/24")
	addrs = appendPrivate(addrs, "127.0.0.1/8")
	addrs = appendPrivate(addrs, "8.8.8.8")
	addrs = appendPrivate(addrs, "10.0.0.5")
	addrs = appendPrivate(addrs, "garbage")
	assert.Equal(t, []string{"192.168.1.20", "10.0.0.5"}, addrs)
}

func TestAccountName(t *testing.T) {
	name, err := accountName(`CORP\alice`)
	require.NoError(t, err)
	assert.Equal(t, "alice", name)

	_, err = accountName("  ")
	assert.ErrorIs(t, err, metrics.ErrNotAvailable)
}

func TestLocatorLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","city":"Lisbon","regionName":"Lisbon","country":"Portugal"}`))
	}))
	defer srv.Close()

	loc, err := NewLocator(srv.URL, time.Second).Lookup(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.LocationInfo{City: "Lisbon", Region: "Lisbon", Country: "Portugal"}, loc)
}

func TestLocatorLookupFailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"fail","message":"private range"}`))
	}))
	defer srv.Close()

	_, err := NewLocator(srv.URL, time.Second).Lookup(context.Background())
	assert.ErrorIs(t, err, metrics.ErrNotAvailable)
}

func TestLocatorLookupTimesOut(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	start := time.Now()
	_, err := NewLocator(srv.URL, 50*time.Millisecond).Lookup(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Timeout"),
		"unexpected error: %v", err)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestEstimateFromZone(t *testing.T) {
	loc, err := estimateFromZone("America/New_York")
	require.NoError(t, err)
	assert.Equal(t, models.LocationInfo{City: "New York", Region: "America", Estimated: true}, loc)

	loc, err = estimateFromZone("America/Argentina/Buenos_Aires")
	require.NoError(t, err)
	assert.Equal(t, "Buenos Aires", loc.City)

	_, err = estimateFromZone("UTC")
	assert.ErrorIs(t, err, metrics.ErrNotAvailable)
	_, err = estimateFromZone("Etc/GMT+3")
	assert.ErrorIs(t, err, metrics.ErrNotAvailable)
}
