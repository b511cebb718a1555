package dcp

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"net"
)

/*

    0                   1                   2                   3
    0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
   +-------------------------------+---------------+---------------+
   |          frame_id (2)         | service_id (1)|service_type(1)|
   +-------------------------------+---------------+---------------+
   |                            xid (4)                            |
   +-------------------------------+-------------------------------+
   |      response_delay (2)       |     dcp_data_length (2)       |
   +-------------------------------+-------------------------------+
   |                        blocks (variable)                      |
   +---------------------------------------------------------------+

   Each block:  option (1) | suboption (1) | length (2) | payload,
   padded to an even on-wire length; the length field covers the
   unpadded payload. The DCP frame travels as the payload of an
   Ethernet II frame with EtherType 0x8892.

*/

const (
	ethernetHeaderLen = 14
	dcpHeaderLen      = 12
	blockHeaderLen    = 4
)

// EthernetFrame represents an Ethernet II frame without trailer/CRC
type EthernetFrame struct {
	Destination net.HardwareAddr
	Source      net.HardwareAddr
	EtherType   uint16
	Payload     []byte
}

// Marshal serializes an EthernetFrame into a byte slice
func (f *EthernetFrame) Marshal() ([]byte, error) {
	if len(f.Destination) != 6 || len(f.Source) != 6 {
		return nil, fmt.Errorf("ethernet frame requires 6-byte addresses, got dst=%d src=%d", len(f.Destination), len(f.Source))
	}

	buf := new(bytes.Buffer)
	buf.Write(f.Destination)
	buf.Write(f.Source)
	binary.Write(buf, binary.BigEndian, f.EtherType)
	buf.Write(f.Payload)

	return buf.Bytes(), nil
}

// Unmarshal parses a byte slice into an EthernetFrame. The payload
// aliases the input buffer.
func (f *EthernetFrame) Unmarshal(data []byte) error {
	if len(data) < ethernetHeaderLen {
		return fmt.Errorf("ethernet frame too short: %d bytes", len(data))
	}

	f.Destination = net.HardwareAddr(data[0:6])
	f.Source = net.HardwareAddr(data[6:12])
	f.EtherType = binary.BigEndian.Uint16(data[12:14])
	f.Payload = data[14:]

	return nil
}

// Packet represents the DCP protocol unit carried as Ethernet payload.
// ResponseDelay has request-only semantics; in responses the field is
// reserved.
type Packet struct {
	FrameID       uint16
	ServiceID     uint8
	ServiceType   uint8
	Xid           uint32
	ResponseDelay uint16
	Length        uint16
	BlockData     []byte
}

// Marshal serializes a Packet. The length field is derived from the
// block data.
func (p *Packet) Marshal() ([]byte, error) {
	buf := new(bytes.Buffer)

	binary.Write(buf, binary.BigEndian, p.FrameID)
	binary.Write(buf, binary.BigEndian, p.ServiceID)
	binary.Write(buf, binary.BigEndian, p.ServiceType)
	binary.Write(buf, binary.BigEndian, p.Xid)
	binary.Write(buf, binary.BigEndian, p.ResponseDelay)
	binary.Write(buf, binary.BigEndian, uint16(len(p.BlockData)))
	buf.Write(p.BlockData)

	return buf.Bytes(), nil
}

// Unmarshal parses a byte slice into a Packet. A block area shorter
// than the declared length is an error so the caller can drop the
// frame.
func (p *Packet) Unmarshal(data []byte) error {
	if len(data) < dcpHeaderLen {
		return fmt.Errorf("DCP packet too short: %d bytes", len(data))
	}

	p.FrameID = binary.BigEndian.Uint16(data[0:2])
	p.ServiceID = data[2]
	p.ServiceType = data[3]
	p.Xid = binary.BigEndian.Uint32(data[4:8])
	p.ResponseDelay = binary.BigEndian.Uint16(data[8:10])
	p.Length = binary.BigEndian.Uint16(data[10:12])

	if len(data)-dcpHeaderLen < int(p.Length) {
		return fmt.Errorf("DCP block area truncated: declared %d bytes, have %d", p.Length, len(data)-dcpHeaderLen)
	}
	p.BlockData = data[dcpHeaderLen : dcpHeaderLen+int(p.Length)]

	return nil
}

// Block is one TLV of the DCP payload
type Block struct {
	Option    uint8
	Suboption uint8
	Payload   []byte
}

// Marshal serializes a Block including the trailing pad byte for
// odd-length payloads. The length field covers the unpadded payload.
func (b *Block) Marshal() []byte {
	buf := new(bytes.Buffer)

	buf.WriteByte(b.Option)
	buf.WriteByte(b.Suboption)
	binary.Write(buf, binary.BigEndian, uint16(len(b.Payload)))
	buf.Write(b.Payload)
	if len(b.Payload)%2 != 0 {
		buf.WriteByte(0x00)
	}

	return buf.Bytes()
}

// RequestBlock builds the block of a request from payload as given:
// get and identify requests pass an empty value, set/reset/blink
// requests pass a value that already starts with the block qualifier.
func RequestBlock(opt Option, payload []byte) *Block {
	return &Block{Option: opt.Option, Suboption: opt.Suboption, Payload: payload}
}

// BlockReader iterates over the block area of a received DCP packet.
// Each step advances 4 + length bytes rounded up to the next even
// number; iteration stops when fewer than 7 bytes remain.
type BlockReader struct {
	data      []byte
	remaining int
}

// NewBlockReader creates a reader over blockData with the declared
// block area length from the DCP header.
func NewBlockReader(blockData []byte, declaredLength uint16) *BlockReader {
	remaining := int(declaredLength)
	if remaining > len(blockData) {
		remaining = len(blockData)
	}
	return &BlockReader{data: blockData, remaining: remaining}
}

// Next returns the next block, or false when the block area is
// exhausted or the remainder is malformed.
func (r *BlockReader) Next() (Block, bool) {
	if r.remaining <= 6 || len(r.data) < blockHeaderLen {
		return Block{}, false
	}

	length := int(binary.BigEndian.Uint16(r.data[2:4]))
	if len(r.data) < blockHeaderLen+length {
		return Block{}, false
	}

	block := Block{
		Option:    r.data[0],
		Suboption: r.data[1],
		Payload:   r.data[blockHeaderLen : blockHeaderLen+length],
	}

	// skip the pad byte of odd-length blocks when advancing
	footprint := blockHeaderLen + length + (length % 2)
	if footprint > len(r.data) {
		footprint = len(r.data)
	}
	r.data = r.data[footprint:]
	r.remaining -= footprint

	return block, true
}

// PackIPv4 encodes a dotted IPv4 address into 4 big-endian octets
func PackIPv4(ip string) ([]byte, error) {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return nil, fmt.Errorf("invalid IPv4 address %q", ip)
	}
	v4 := parsed.To4()
	if v4 == nil {
		return nil, fmt.Errorf("invalid IPv4 address %q", ip)
	}
	return []byte(v4), nil
}

// UnpackIPv4 decodes 4 octets into a dotted IPv4 address
func UnpackIPv4(octets []byte) string {
	if len(octets) != 4 {
		return ""
	}
	return net.IP(octets).String()
}
