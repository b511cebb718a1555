package types

import (
	"fmt"
	"strings"
)

// Device is the parsed identity of a remote DCP station. Attributes a
// device did not report stay empty strings.
type Device struct {
	NameOfStation string `json:"name_of_station" yaml:"name_of_station"`
	MAC           string `json:"mac" yaml:"mac"`
	IP            string `json:"ip" yaml:"ip"`
	Netmask       string `json:"netmask" yaml:"netmask"`
	Gateway       string `json:"gateway" yaml:"gateway"`
	Family        string `json:"family" yaml:"family"`
}

// String returns a human-readable representation including all parameters
func (d *Device) String() string {
	parameters := []string{
		fmt.Sprintf("name_of_station=%s", d.NameOfStation),
		fmt.Sprintf("MAC=%s", d.MAC),
		fmt.Sprintf("IP=%s", d.IP),
		fmt.Sprintf("netmask=%s", d.Netmask),
		fmt.Sprintf("gateway=%s", d.Gateway),
		fmt.Sprintf("family=%s", d.Family),
	}
	return fmt.Sprintf("Device(%s)", strings.Join(parameters, ", "))
}
