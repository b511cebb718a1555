package dcp

import "net"

// EtherType is the reserved EtherType for PROFINET DCP traffic
const EtherType uint16 = 0x8892

// MulticastMACIdentify is the PROFINET identify multicast address
var MulticastMACIdentify = net.HardwareAddr{0x01, 0x0e, 0xcf, 0x00, 0x00, 0x00}

// Frame IDs
const (
	FrameIDGetSet          uint16 = 0xfefd
	FrameIDIdentifyRequest uint16 = 0xfefe
)

// Service IDs
const (
	ServiceIDGet      uint8 = 3
	ServiceIDSet      uint8 = 4
	ServiceIDIdentify uint8 = 5
)

// Service types
const (
	ServiceTypeRequest  uint8 = 0
	ServiceTypeResponse uint8 = 1
)

// Option identifies a DCP block by its (option, suboption) pair
type Option struct {
	Option    uint8
	Suboption uint8
}

var (
	OptionAll            = Option{0xff, 0xff}
	OptionIPAddress      = Option{0x01, 0x02}
	OptionDeviceFamily   = Option{0x02, 0x01}
	OptionNameOfStation  = Option{0x02, 0x02}
	OptionBlinkLED       = Option{0x05, 0x03}
	OptionResetToFactory = Option{0x05, 0x06}
)

// OptionControl is the option of the Control block carrying the return
// code in set responses.
const OptionControl uint8 = 0x05

// BlockQualifier is the 2-byte prefix in a set/reset payload selecting
// storage semantics.
type BlockQualifier [2]byte

var (
	QualifierReserved           = BlockQualifier{0x00, 0x00}
	QualifierStorePermanent     = BlockQualifier{0x00, 0x01}
	QualifierResetCommunication = BlockQualifier{0x00, 0x04}
)

// LEDBlinkValue selects the blink pattern in a blink request
var LEDBlinkValue = [2]byte{0x01, 0x00}

// ResponseDelayFactor for identify requests. Devices spread their
// identify responses over random(0..Factor-1) x 10 ms per
// IEC 61158-6-10, so 255 bounds the spread at about 2.55 s.
const ResponseDelayFactor uint16 = 0x00ff
