package types

import "fmt"

// ResponseCode encapsulates the return status of a set/reset/blink
// request. Code 0 is success, all other codes are failures.
type ResponseCode struct {
	Code int `json:"code" yaml:"code"`
}

var responseMessages = map[int]string{
	0: "Code 00: Set successful",
	1: "Code 01: Option unsupported",
	2: "Code 02: Suboption unsupported or no DataSet available",
	3: "Code 03: Suboption not set",
	4: "Code 04: Resource Error",
	5: "Code 05: SET not possible by local reasons",
	6: "Code 06: In operation, SET not possible",
}

// Ok reports whether the request succeeded
func (r *ResponseCode) Ok() bool {
	return r.Code == 0
}

// Message returns the human-readable response message for this code
func (r *ResponseCode) Message() string {
	if msg, ok := responseMessages[r.Code]; ok {
		return msg
	}
	return fmt.Sprintf("Code %02d: Unknown response code", r.Code)
}

// String returns a human-readable representation of the response code
func (r *ResponseCode) String() string {
	return fmt.Sprintf("ResponseCode(%s)", r.Message())
}
