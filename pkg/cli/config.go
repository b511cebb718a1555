package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"pndcp/pkg/errors"
	"pndcp/pkg/validation"
)

// Command represents a CLI command
type Command struct {
	Name        string
	Description string
	Usage       string
	Args        []string
}

// Config holds all command-line configuration
type Config struct {
	Command string // The command being executed

	// Positional arguments
	MAC     string
	Name    string
	IPAddr  string
	Subnet  string
	Gateway string

	// Flags
	Host        string
	Timeout     time.Duration
	Format      string
	MetricsAddr string
}

// DefaultTimeout applies when --timeout is not given
const DefaultTimeout = 10 * time.Second

// GetCommands returns all available commands
func GetCommands() []Command {
	return []Command{
		{Name: "id_one", Description: "Send DCP identify request to the target with the specified MAC address", Usage: "pndcp id_one <mac> [options]", Args: []string{"mac"}},
		{Name: "id_all", Description: "Broadcast DCP identify-all request on the subnet", Usage: "pndcp id_all [options]"},
		{Name: "get_ip", Description: "Get IP address of the target with the specified MAC address", Usage: "pndcp get_ip <mac> [options]", Args: []string{"mac"}},
		{Name: "set_ip", Description: "Set IP configuration of the target with the specified MAC address", Usage: "pndcp set_ip <mac> <ip> <subnet> <gateway> [options]", Args: []string{"mac", "ip", "subnet", "gateway"}},
		{Name: "get_name", Description: "Get name of the target with the specified MAC address", Usage: "pndcp get_name <mac> [options]", Args: []string{"mac"}},
		{Name: "set_name", Description: "Set name of the target with the specified MAC address", Usage: "pndcp set_name <mac> <name> [options]", Args: []string{"mac", "name"}},
		{Name: "reset", Description: "Reset communication parameters of the target to factory defaults", Usage: "pndcp reset <mac> [options]", Args: []string{"mac"}},
		{Name: "blink", Description: "Request the target device to flash its LEDs for local identification", Usage: "pndcp blink <mac> [options]", Args: []string{"mac"}},
	}
}

func commandByName(name string) (Command, bool) {
	for _, cmd := range GetCommands() {
		if cmd.Name == name {
			return cmd, true
		}
	}
	return Command{}, false
}

// ParseArgs parses command-line arguments into a Config
func ParseArgs(args []string) (*Config, error) {
	if len(args) == 0 {
		return nil, errors.ErrMissingArgument("command")
	}

	config := &Config{
		Timeout: DefaultTimeout,
		Format:  "table",
	}

	var positionals []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			positionals = append(positionals, arg)
			continue
		}

		flag := strings.TrimLeft(arg, "-")
		value := ""
		if eq := strings.Index(flag, "="); eq >= 0 {
			flag, value = flag[:eq], flag[eq+1:]
		} else if flag != "help" && flag != "h" {
			if i+1 >= len(args) {
				return nil, errors.ErrMissingArgument("value for --" + flag)
			}
			i++
			value = args[i]
		}

		switch flag {
		case "host":
			if err := validation.ValidateHostIP(value); err != nil {
				return nil, err
			}
			config.Host = value
		case "timeout":
			seconds, err := strconv.Atoi(value)
			if err != nil || seconds < 1 {
				return nil, errors.NewValidationError(errors.CodeInvalidTimeout, "invalid timeout").
					WithContext("timeout", value).
					WithDetails("timeout must be an integer number of seconds, at least 1")
			}
			config.Timeout = time.Duration(seconds) * time.Second
		case "format":
			switch value {
			case "table", "json", "yaml":
				config.Format = value
			default:
				return nil, errors.NewUserError(errors.CodeInvalidInput, "invalid output format").
					WithContext("format", value).
					WithDetails("format must be one of table, json, yaml")
			}
		case "metrics":
			config.MetricsAddr = value
		case "help", "h":
			config.Command = "help"
			return config, nil
		default:
			return nil, errors.NewUserError(errors.CodeInvalidInput, "unknown flag").
				WithContext("flag", arg)
		}
	}

	if len(positionals) == 0 {
		return nil, errors.ErrMissingArgument("command")
	}
	config.Command = strings.ToLower(positionals[0])
	positionals = positionals[1:]

	switch config.Command {
	case "help", "version":
		return config, nil
	}

	cmd, ok := commandByName(config.Command)
	if !ok {
		return nil, errors.ErrUnknownCommand(config.Command)
	}
	if len(positionals) != len(cmd.Args) {
		return nil, errors.ErrMissingArgument(fmt.Sprintf("%s expects arguments: %s", cmd.Name, strings.Join(cmd.Args, " ")))
	}

	for i, name := range cmd.Args {
		value := positionals[i]
		switch name {
		case "mac":
			normalized, err := validation.NormalizeMAC(value)
			if err != nil {
				return nil, err
			}
			config.MAC = normalized
		case "ip":
			if err := validation.ValidateIPv4(value); err != nil {
				return nil, err
			}
			config.IPAddr = value
		case "subnet":
			if err := validation.ValidateIPv4(value); err != nil {
				return nil, err
			}
			config.Subnet = value
		case "gateway":
			if err := validation.ValidateIPv4(value); err != nil {
				return nil, err
			}
			config.Gateway = value
		case "name":
			config.Name = value
		}
	}

	return config, nil
}

// ShowHelp prints usage information for all commands or one command
func ShowHelp(command string) {
	if cmd, ok := commandByName(command); ok {
		fmt.Printf("%s\n\n  %s\n  Usage: %s\n", cmd.Name, cmd.Description, cmd.Usage)
		return
	}

	fmt.Println("pndcp - a command line utility to interface with devices compatible with PROFINET DCP")
	fmt.Println()
	fmt.Println("Usage: pndcp <command> [arguments] [options]")
	fmt.Println()
	fmt.Println("Commands:")
	for _, cmd := range GetCommands() {
		fmt.Printf("  %-10s %s\n", cmd.Name, cmd.Description)
	}
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --host IP          IP address of the host running the utility (autodetected if omitted)")
	fmt.Println("  --timeout SECONDS  how long to wait for response messages in seconds (default 10)")
	fmt.Println("  --format FORMAT    output format: table, json or yaml (default table)")
	fmt.Println("  --metrics ADDR     serve prometheus metrics on ADDR while running")
}

// ShowVersion prints the tool version
func ShowVersion() {
	fmt.Println("pndcp version 1.0.0")
}
