package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"pndcp/pkg/types"
)

func sampleDevices() []*types.Device {
	return []*types.Device{
		{NameOfStation: "plc1", MAC: "00:1b:1b:00:00:01", IP: "192.168.0.10", Netmask: "255.255.255.0", Gateway: "192.168.0.1", Family: "S7-1500"},
		{NameOfStation: "drive7", MAC: "de:ad:be:ef:00:01"},
	}
}

func TestRenderDevicesTable(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderDevices(&buf, sampleDevices(), "table"); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"NAME", "plc1", "drive7", "192.168.0.10", "Siemens AG"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderDevicesEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderDevices(&buf, nil, "table"); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "no devices found") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestRenderDevicesJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderDevices(&buf, sampleDevices(), "json"); err != nil {
		t.Fatalf("render: %v", err)
	}

	var decoded []types.Device
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 || decoded[0].NameOfStation != "plc1" {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestRenderDevicesYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderDevices(&buf, sampleDevices(), "yaml"); err != nil {
		t.Fatalf("render: %v", err)
	}

	var decoded []types.Device
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if len(decoded) != 2 || decoded[1].NameOfStation != "drive7" {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestRenderResponseCode(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderResponseCode(&buf, &types.ResponseCode{Code: 0}, "table"); err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "Code 00: Set successful" {
		t.Errorf("output = %q", buf.String())
	}

	buf.Reset()
	if err := RenderResponseCode(&buf, &types.ResponseCode{Code: 4}, "json"); err != nil {
		t.Fatalf("render: %v", err)
	}
	var decoded types.ResponseCode
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Code != 4 {
		t.Errorf("decoded code = %d", decoded.Code)
	}
}
