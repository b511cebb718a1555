// Package oui maps MAC address OUI prefixes to vendor names for
// display purposes. The table is embedded so lookups work on isolated
// industrial networks without internet access.
package oui

import "strings"

// ouiTable covers vendors commonly seen on PROFINET networks
var ouiTable = map[string]string{
	"00:0E:8C": "Siemens AG",
	"00:1B:1B": "Siemens AG",
	"00:1C:06": "Siemens Numerical Control",
	"08:00:06": "Siemens AG",
	"28:63:36": "Siemens AG",
	"00:0B:DB": "Dell",
	"00:00:BC": "Rockwell Automation",
	"00:1D:9C": "Rockwell Automation",
	"F4:54:33": "Rockwell Automation",
	"00:A0:45": "Phoenix Contact",
	"00:09:91": "GE Intelligent Platforms",
	"00:80:F4": "Telemecanique",
	"00:0F:9E": "Murata Manufacturing",
	"00:20:B5": "Yaskawa Electric",
	"00:30:DE": "WAGO Kontakttechnik",
	"00:0D:81": "Pepperl+Fuchs",
	"00:15:7B": "Leuze electronic",
	"00:02:A2": "Hilscher",
	"00:0F:69": "SEW-Eurodrive",
	"00:06:77": "Sick AG",
	"00:23:52": "Beckhoff Automation",
	"00:01:05": "Beckhoff Automation",
	"00:0A:DC": "Festo",
	"00:0E:F0": "Festo",
	"00:16:77": "Bihl+Wiedemann",
	"00:E0:4B": "Jump Industrielle Computertechnik",
	"00:A0:91": "Applicom International",
	"00:13:95": "Congatec",
	"00:05:B4": "Aceex",
	"00:0C:29": "VMware",
}

// Lookup returns the vendor name for a MAC address, or "" when its
// OUI prefix is not in the table.
func Lookup(mac string) string {
	if len(mac) < 8 {
		return ""
	}
	oui := strings.ToUpper(strings.ReplaceAll(mac[:8], "-", ":"))
	return ouiTable[oui]
}
