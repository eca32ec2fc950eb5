package static

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/monify-labs/sysfetch/internal/metrics"
	"github.com/monify-labs/sysfetch/pkg/models"
)

const (
	// GeoEndpoint is queried for the coarse location of the public address
	GeoEndpoint = "http://ip-api.com/json/?fields=status,message,city,regionName,country"

	// LookupTimeout bounds the whole geolocation round trip
	LookupTimeout = 2 * time.Second
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Locator resolves the machine location over the network
type Locator struct {
	endpoint string
	timeout  time.Duration
	client   *http.Client
}

// NewLocator creates a locator for endpoint bounded by timeout
func NewLocator(endpoint string, timeout time.Duration) *Locator {
	if timeout <= 0 {
		timeout = LookupTimeout
	}
	return &Locator{
		endpoint: endpoint,
		timeout:  timeout,
		client:   &http.Client{Timeout: timeout},
	}
}

// geoResponse is the subset of the ip-api.com reply we read
type geoResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	models.LocationInfo
}

// Lookup performs the geolocation request; it never blocks past the timeout
func (l *Locator) Lookup(ctx context.Context) (models.LocationInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", l.endpoint, nil)
	if err != nil {
		return models.LocationInfo{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return models.LocationInfo{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return models.LocationInfo{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.LocationInfo{}, fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	var geo geoResponse
	if err := json.Unmarshal(body, &geo); err != nil {
		return models.LocationInfo{}, fmt.Errorf("failed to decode response: %w", err)
	}
	if geo.Status != "success" {
		return models.LocationInfo{}, metrics.Unavailable("geolocation %s", geo.Message)
	}
	return geo.LocationInfo, nil
}

// TimeZoneEstimate estimates the location from the configured time zone
func TimeZoneEstimate(_ context.Context) (models.LocationInfo, error) {
	return estimateFromZone(localZoneName())
}

// localZoneName finds the IANA name of the local zone: $TZ, then the
// /etc/localtime symlink target, then the Go runtime's idea of it
func localZoneName() string {
	if tz := strings.TrimPrefix(os.Getenv("TZ"), ":"); tz != "" {
		return tz
	}
	if target, err := filepath.EvalSymlinks("/etc/localtime"); err == nil {
		if i := strings.Index(target, "zoneinfo/"); i >= 0 {
			return target[i+len("zoneinfo/"):]
		}
	}
	return time.Local.String()
}

func estimateFromZone(zone string) (models.LocationInfo, error) {
	parts := strings.Split(zone, "/")
	if len(parts) < 2 || parts[0] == "Etc" {
		return models.LocationInfo{}, metrics.Unavailable("time zone %q", zone)
	}
	return models.LocationInfo{
		City:      strings.ReplaceAll(parts[len(parts)-1], "_", " "),
		Region:    parts[0],
		Estimated: true,
	}, nil
}
