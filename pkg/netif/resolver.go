// Package netif selects the local network interface owning a given
// host IP address.
package netif

import (
	"net"
	"strings"

	dcperrors "pndcp/pkg/errors"
	"pndcp/pkg/logging"
)

// Resolve returns the MAC address (lowercase ':' form) and OS name of
// the interface whose addresses contain ip. IPv4 addresses must match
// exactly; IPv6 addresses match by prefix to accommodate zone-id
// suffixes. Returns an interface-not-found error when no interface
// matches or the match has no link-layer address.
func Resolve(ip string) (string, string, error) {
	log := logging.NewComponentLogger("netif")

	interfaces, err := net.Interfaces()
	if err != nil {
		return "", "", dcperrors.ErrInterfaceNotFound(ip).WithCause(err)
	}

	for _, ifi := range interfaces {
		addrs, err := ifi.Addrs()
		if err != nil {
			continue
		}
		if !matches(addrs, ip) {
			continue
		}
		if len(ifi.HardwareAddr) == 0 {
			log.Warn("interface matches ip but has no link-layer address", map[string]interface{}{
				"interface": ifi.Name,
				"ip":        ip,
			})
			continue
		}
		return CanonicalMAC(ifi.HardwareAddr.String()), ifi.Name, nil
	}

	log.Debug("no network interface found", map[string]interface{}{"ip": ip})
	return "", "", dcperrors.ErrInterfaceNotFound(ip)
}

// matches reports whether one of addrs carries ip
func matches(addrs []net.Addr, ip string) bool {
	for _, addr := range addrs {
		var candidate net.IP
		switch a := addr.(type) {
		case *net.IPNet:
			candidate = a.IP
		case *net.IPAddr:
			candidate = a.IP
		default:
			continue
		}

		if v4 := candidate.To4(); v4 != nil {
			if v4.String() == ip {
				return true
			}
			continue
		}
		if strings.HasPrefix(candidate.String(), ip) {
			return true
		}
	}
	return false
}

// CanonicalMAC lowercases a MAC address and replaces '-' separators
// with ':'
func CanonicalMAC(mac string) string {
	return strings.ToLower(strings.ReplaceAll(mac, "-", ":"))
}
