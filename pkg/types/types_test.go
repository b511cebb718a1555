package types

import (
	"strings"
	"testing"
)

func TestResponseCodeMessages(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "Code 00: Set successful"},
		{1, "Code 01: Option unsupported"},
		{2, "Code 02: Suboption unsupported or no DataSet available"},
		{3, "Code 03: Suboption not set"},
		{4, "Code 04: Resource Error"},
		{5, "Code 05: SET not possible by local reasons"},
		{6, "Code 06: In operation, SET not possible"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			code := &ResponseCode{Code: tt.code}
			if got := code.Message(); got != tt.want {
				t.Errorf("Message() = %q, expected %q", got, tt.want)
			}
			if ok := code.Ok(); ok != (tt.code == 0) {
				t.Errorf("Ok() = %v for code %d", ok, tt.code)
			}
		})
	}
}

func TestResponseCodeString(t *testing.T) {
	code := &ResponseCode{Code: 4}
	if got := code.String(); got != "ResponseCode(Code 04: Resource Error)" {
		t.Errorf("String() = %q", got)
	}
}

func TestDeviceString(t *testing.T) {
	device := &Device{NameOfStation: "plc1", MAC: "aa:bb:cc:dd:ee:ff", IP: "192.168.0.10"}
	s := device.String()

	if !strings.HasPrefix(s, "Device(") || !strings.HasSuffix(s, ")") {
		t.Errorf("String() = %q, expected Device(...)", s)
	}
	for _, part := range []string{"name_of_station=plc1", "MAC=aa:bb:cc:dd:ee:ff", "IP=192.168.0.10", "netmask=", "family="} {
		if !strings.Contains(s, part) {
			t.Errorf("String() = %q, missing %q", s, part)
		}
	}
}
