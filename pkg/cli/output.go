package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"pndcp/pkg/oui"
	"pndcp/pkg/types"
)

// RenderDevices writes discovered devices in the selected format
func RenderDevices(w io.Writer, devices []*types.Device, format string) error {
	switch format {
	case "json":
		return renderJSON(w, devices)
	case "yaml":
		return renderYAML(w, devices)
	default:
		return renderDeviceTable(w, devices)
	}
}

// RenderResponseCode writes the outcome of a set/reset/blink request
func RenderResponseCode(w io.Writer, code *types.ResponseCode, format string) error {
	switch format {
	case "json":
		return renderJSON(w, code)
	case "yaml":
		return renderYAML(w, code)
	default:
		_, err := fmt.Fprintln(w, code.Message())
		return err
	}
}

func renderDeviceTable(w io.Writer, devices []*types.Device) error {
	if len(devices) == 0 {
		_, err := fmt.Fprintln(w, "no devices found")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tMAC\tVENDOR\tIP\tNETMASK\tGATEWAY\tFAMILY")
	for _, d := range devices {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			d.NameOfStation, d.MAC, oui.Lookup(d.MAC), d.IP, d.Netmask, d.Gateway, d.Family)
	}
	return tw.Flush()
}

func renderJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func renderYAML(w io.Writer, v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
