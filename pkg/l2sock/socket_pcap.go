//go:build !linux

package l2sock

import (
	"fmt"

	"github.com/google/gopacket/pcap"
	"github.com/pkg/errors"
)

// pcapConn is a libpcap-backed raw socket for hosts without AF_PACKET
// (BPF devices on BSD/macOS, Npcap on Windows).
type pcapConn struct {
	handle *pcap.Handle
}

// Open creates a live capture handle on the interface with the same
// receive filter the Linux path installs in the kernel.
func Open(opts Options) (Conn, error) {
	handle, err := pcap.OpenLive(opts.Interface, 65536, false, opts.pollTimeout())
	if err != nil {
		return nil, errors.Wrapf(err, "open live capture on %s", opts.Interface)
	}

	filter := fmt.Sprintf("ether dst %s and ether proto 0x%04x", opts.SourceMAC, opts.EtherType)
	if err := handle.SetBPFFilter(filter); err != nil {
		handle.Close()
		return nil, errors.Wrapf(err, "set BPF filter %q", filter)
	}

	return &pcapConn{handle: handle}, nil
}

// Send transmits one full frame on the capture handle
func (c *pcapConn) Send(frame []byte) error {
	if err := c.handle.WritePacketData(frame); err != nil {
		return errors.Wrap(err, "write packet data")
	}
	return nil
}

// Recv returns the next filtered frame, or (nil, nil) when the read
// timeout expired with nothing buffered.
func (c *pcapConn) Recv() ([]byte, error) {
	data, _, err := c.handle.ReadPacketData()
	if err != nil {
		if err == pcap.NextErrorTimeoutExpired {
			return nil, nil
		}
		return nil, errors.Wrap(err, "read packet data")
	}
	return data, nil
}

// Close releases the capture handle
func (c *pcapConn) Close() error {
	c.handle.Close()
	return nil
}
