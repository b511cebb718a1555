package cli

import (
	"testing"
	"time"

	"pndcp/pkg/errors"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
		check   func(t *testing.T, c *Config)
	}{
		{
			name: "id_one with colon mac",
			args: []string{"id_one", "aa:bb:cc:dd:ee:ff"},
			check: func(t *testing.T, c *Config) {
				if c.Command != "id_one" || c.MAC != "aa:bb:cc:dd:ee:ff" {
					t.Errorf("config = %+v", c)
				}
				if c.Timeout != DefaultTimeout {
					t.Errorf("timeout = %v, expected default", c.Timeout)
				}
			},
		},
		{
			name: "dash mac is normalized",
			args: []string{"id_one", "AA-BB-CC-DD-EE-FF"},
			check: func(t *testing.T, c *Config) {
				if c.MAC != "aa:bb:cc:dd:ee:ff" {
					t.Errorf("mac = %q", c.MAC)
				}
			},
		},
		{
			name: "id_all with flags",
			args: []string{"id_all", "--host", "192.168.0.5", "--timeout", "3", "--format", "json"},
			check: func(t *testing.T, c *Config) {
				if c.Host != "192.168.0.5" || c.Timeout != 3*time.Second || c.Format != "json" {
					t.Errorf("config = %+v", c)
				}
			},
		},
		{
			name: "set_ip with all addresses",
			args: []string{"set_ip", "aa:bb:cc:dd:ee:ff", "10.0.0.2", "255.255.255.0", "10.0.0.1"},
			check: func(t *testing.T, c *Config) {
				if c.IPAddr != "10.0.0.2" || c.Subnet != "255.255.255.0" || c.Gateway != "10.0.0.1" {
					t.Errorf("config = %+v", c)
				}
			},
		},
		{
			name: "set_name",
			args: []string{"set_name", "aa:bb:cc:dd:ee:ff", "plc1"},
			check: func(t *testing.T, c *Config) {
				if c.Name != "plc1" {
					t.Errorf("name = %q", c.Name)
				}
			},
		},
		{
			name: "flag with equals sign",
			args: []string{"id_all", "--timeout=5"},
			check: func(t *testing.T, c *Config) {
				if c.Timeout != 5*time.Second {
					t.Errorf("timeout = %v", c.Timeout)
				}
			},
		},
		{name: "no arguments", args: nil, wantErr: true},
		{name: "unknown command", args: []string{"identify_everything"}, wantErr: true},
		{name: "missing mac", args: []string{"id_one"}, wantErr: true},
		{name: "invalid mac", args: []string{"id_one", "nope"}, wantErr: true},
		{name: "set_ip missing gateway", args: []string{"set_ip", "aa:bb:cc:dd:ee:ff", "10.0.0.2", "255.255.255.0"}, wantErr: true},
		{name: "set_ip bad address", args: []string{"set_ip", "aa:bb:cc:dd:ee:ff", "10.0.0.999", "255.255.255.0", "10.0.0.1"}, wantErr: true},
		{name: "zero timeout", args: []string{"id_all", "--timeout", "0"}, wantErr: true},
		{name: "negative timeout", args: []string{"id_all", "--timeout", "-4"}, wantErr: true},
		{name: "bad host", args: []string{"id_all", "--host", "nope"}, wantErr: true},
		{name: "bad format", args: []string{"id_all", "--format", "xml"}, wantErr: true},
		{name: "unknown flag", args: []string{"id_all", "--verbose", "yes"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := ParseArgs(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseArgs(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if err != nil {
				if !errors.IsValidation(err) {
					t.Errorf("expected a user/validation error, got %v", err)
				}
				return
			}
			if tt.check != nil {
				tt.check(t, config)
			}
		})
	}
}

func TestParseArgsHelp(t *testing.T) {
	for _, args := range [][]string{{"--help"}, {"-h"}, {"help"}} {
		config, err := ParseArgs(args)
		if err != nil {
			t.Fatalf("ParseArgs(%v): %v", args, err)
		}
		if config.Command != "help" {
			t.Errorf("ParseArgs(%v) command = %q", args, config.Command)
		}
	}
}
