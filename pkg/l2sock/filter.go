package l2sock

import (
	"encoding/binary"
	"net"

	"golang.org/x/net/bpf"
)

// snapLen is the accept length returned by the filter, large enough
// for any untagged Ethernet frame.
const snapLen = 0x40000

// FilterInstructions builds the classic BPF program equivalent to
// "ether dst <mac> and ether proto <etherType>". Filtering in the
// kernel keeps unrelated traffic out of user space, which matters on
// busy industrial LANs where responses would otherwise be missed under
// load.
func FilterInstructions(mac net.HardwareAddr, etherType uint16) []bpf.Instruction {
	return []bpf.Instruction{
		// EtherType at offset 12
		bpf.LoadAbsolute{Off: 12, Size: 2},
		bpf.JumpIf{Cond: bpf.JumpEqual, Val: uint32(etherType), SkipFalse: 5},
		// destination MAC, first four bytes at offset 0
		bpf.LoadAbsolute{Off: 0, Size: 4},
		bpf.JumpIf{Cond: bpf.JumpEqual, Val: binary.BigEndian.Uint32(mac[0:4]), SkipFalse: 3},
		// destination MAC, last two bytes at offset 4
		bpf.LoadAbsolute{Off: 4, Size: 2},
		bpf.JumpIf{Cond: bpf.JumpEqual, Val: uint32(binary.BigEndian.Uint16(mac[4:6])), SkipFalse: 1},
		bpf.RetConstant{Val: snapLen},
		bpf.RetConstant{Val: 0},
	}
}

// FilterProgram assembles the receive filter into raw instructions
// suitable for SO_ATTACH_FILTER.
func FilterProgram(mac net.HardwareAddr, etherType uint16) ([]bpf.RawInstruction, error) {
	return bpf.Assemble(FilterInstructions(mac, etherType))
}
