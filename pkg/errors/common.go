package errors

import (
	"fmt"
	"time"
)

// Common error scenarios with pre-defined messages and context

// ErrInvalidMAC creates an invalid MAC address error
func ErrInvalidMAC(mac string) *DCPError {
	return NewValidationError(CodeInvalidMAC, "invalid MAC address").
		WithContext("mac", mac).
		WithDetails(fmt.Sprintf("MAC address '%s' is not in valid format, use aa:bb:cc:dd:ee:ff or aa-bb-cc-dd-ee-ff", mac))
}

// ErrInvalidIP creates an invalid IP address error
func ErrInvalidIP(ip string) *DCPError {
	return NewValidationError(CodeInvalidIP, "invalid IP address").
		WithContext("ip", ip).
		WithDetails(fmt.Sprintf("address '%s' is invalid, use format 0.0.0.0", ip))
}

// ErrInvalidStationName creates an invalid name-of-station error
func ErrInvalidStationName(name string) *DCPError {
	return NewValidationError(CodeInvalidName, "invalid name of station").
		WithContext("name", name).
		WithDetails(fmt.Sprintf("name '%s' does not correspond to the DNS standard", name))
}

// ErrInvalidTimeout creates an invalid timeout error
func ErrInvalidTimeout(timeout time.Duration) *DCPError {
	return NewValidationError(CodeInvalidTimeout, "invalid timeout").
		WithContext("timeout", timeout.String()).
		WithDetails("timeout must be at least one second")
}

// ErrInterfaceNotFound creates an interface lookup error
func ErrInterfaceNotFound(ip string) *DCPError {
	return NewNetworkError(CodeInterfaceNotFound, "no network interface found").
		WithContext("ip", ip).
		WithDetails(fmt.Sprintf("could not find a network interface for ip %s", ip))
}

// ErrRequestTimeout creates a request timeout error
func ErrRequestTimeout(mac string) *DCPError {
	return NewNetworkError(CodeTimeout, "request timed out").
		WithContext("mac", mac).
		WithDetails(fmt.Sprintf("no answer from device with MAC %s", mac))
}

// ErrSocketFailure creates an OS-level socket error
func ErrSocketFailure(op string, cause error) *DCPError {
	return NewSystemError(CodeSocketFailure, "socket failure").
		WithContext("op", op).
		WithCause(cause).
		WithDetails(fmt.Sprintf("raw socket %s failed", op))
}

// ErrUnknownCommand creates an unknown CLI command error
func ErrUnknownCommand(command string) *DCPError {
	return NewUserError(CodeUnknownCommand, "unknown command").
		WithContext("command", command).
		WithDetails(fmt.Sprintf("command '%s' is not recognized", command))
}

// ErrMissingArgument creates a missing CLI argument error
func ErrMissingArgument(arg string) *DCPError {
	return NewUserError(CodeMissingRequired, "missing required argument").
		WithContext("argument", arg).
		WithDetails(fmt.Sprintf("required argument '%s' is missing", arg))
}
