package static

import (
	"context"
	"net"

	gopsutilNet "github.com/shirou/gopsutil/v4/net"

	"github.com/monify-labs/sysfetch/internal/metrics"
)

// PrivateAddresses returns the private IPs of all interfaces, via gopsutil
func PrivateAddresses(ctx context.Context) ([]string, error) {
	interfaces, err := gopsutilNet.InterfacesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	var addrs []string
	for _, iface := range interfaces {
		for _, addr := range iface.Addrs {
			addrs = appendPrivate(addrs, addr.Addr)
		}
	}

	if len(addrs) == 0 {
		return nil, metrics.Unavailable("private addresses")
	}
	return addrs, nil
}

// InterfaceAddresses returns the private IPs known to the net package
func InterfaceAddresses(_ context.Context) ([]string, error) {
	ifaceAddrs, err := net.InterfaceAddrs()
	if err != nil {
		return nil, err
	}

	var addrs []string
	for _, a := range ifaceAddrs {
		addrs = appendPrivate(addrs, a.String())
	}

	if len(addrs) == 0 {
		return nil, metrics.Unavailable("interface addresses")
	}
	return addrs, nil
}

// appendPrivate parses an address in CIDR or plain form and keeps private ones
func appendPrivate(addrs []string, raw string) []string {
	ip, _, err := net.ParseCIDR(raw)
	if err != nil {
		ip = net.ParseIP(raw)
	}
	if ip == nil || ip.IsLoopback() || ip.IsUnspecified() || !isPrivateIP(ip) {
		return addrs
	}
	return append(addrs, ip.String())
}

// isPrivateIP checks if an IP is in private address space
func isPrivateIP(ip net.IP) bool {
	privateBlocks := []string{
		"10.0.0.0/8",
		"172.16.0.0/12",
		"192.168.0.0/16",
		"fd00::/8", // IPv6 ULA
	}

	for _, block := range privateBlocks {
		_, subnet, _ := net.ParseCIDR(block)
		if subnet != nil && subnet.Contains(ip) {
			return true
		}
	}

	return false
}
