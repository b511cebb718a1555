//go:build linux

package l2sock

import (
	"net"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// packetConn is an AF_PACKET raw socket bound to one interface
type packetConn struct {
	fd          int
	ifindex     int
	protocol    uint16
	pollTimeout time.Duration
}

// Open creates the raw socket, binds it to the interface and attaches
// the receive filter. Requires CAP_NET_RAW.
func Open(opts Options) (Conn, error) {
	ifi, err := net.InterfaceByName(opts.Interface)
	if err != nil {
		return nil, errors.Wrapf(err, "interface %s", opts.Interface)
	}

	fd, err := unix.Socket(unix.AF_PACKET, unix.SOCK_RAW, int(htons(opts.EtherType)))
	if err != nil {
		return nil, errors.Wrap(err, "create AF_PACKET socket (requires CAP_NET_RAW)")
	}

	conn := &packetConn{
		fd:          fd,
		ifindex:     ifi.Index,
		protocol:    opts.EtherType,
		pollTimeout: opts.pollTimeout(),
	}

	addr := &unix.SockaddrLinklayer{
		Protocol: htons(opts.EtherType),
		Ifindex:  ifi.Index,
	}
	if err := unix.Bind(fd, addr); err != nil {
		unix.Close(fd)
		return nil, errors.Wrapf(err, "bind to interface %s", opts.Interface)
	}

	if err := conn.attachFilter(opts.SourceMAC); err != nil {
		unix.Close(fd)
		return nil, err
	}

	if err := unix.SetNonblock(fd, true); err != nil {
		unix.Close(fd)
		return nil, errors.Wrap(err, "set non-blocking")
	}

	return conn, nil
}

// attachFilter installs the classic BPF receive filter on the socket
func (c *packetConn) attachFilter(mac net.HardwareAddr) error {
	prog, err := FilterProgram(mac, c.protocol)
	if err != nil {
		return errors.Wrap(err, "assemble BPF filter")
	}

	filter := make([]unix.SockFilter, len(prog))
	for i, ins := range prog {
		filter[i] = unix.SockFilter{
			Code: ins.Op,
			Jt:   ins.Jt,
			Jf:   ins.Jf,
			K:    ins.K,
		}
	}
	fprog := unix.SockFprog{
		Len:    uint16(len(filter)),
		Filter: &filter[0],
	}

	if err := unix.SetsockoptSockFprog(c.fd, unix.SOL_SOCKET, unix.SO_ATTACH_FILTER, &fprog); err != nil {
		return errors.Wrap(err, "attach BPF filter")
	}
	return nil
}

// Send transmits one full frame on the bound interface
func (c *packetConn) Send(frame []byte) error {
	addr := &unix.SockaddrLinklayer{
		Protocol: htons(c.protocol),
		Ifindex:  c.ifindex,
		Halen:    6,
	}
	copy(addr.Addr[:], frame[0:6])

	if err := unix.Sendto(c.fd, frame, 0, addr); err != nil {
		return errors.Wrap(err, "send frame")
	}
	return nil
}

// Recv returns the next frame passing the kernel filter, or (nil, nil)
// when nothing arrived within the poll timeout.
func (c *packetConn) Recv() ([]byte, error) {
	pfd := []unix.PollFd{{Fd: int32(c.fd), Events: unix.POLLIN}}
	n, err := unix.Poll(pfd, int(c.pollTimeout.Milliseconds()))
	if err != nil {
		if err == unix.EINTR {
			return nil, nil
		}
		return nil, errors.Wrap(err, "poll")
	}
	if n == 0 {
		return nil, nil
	}

	buf := make([]byte, 2000)
	size, _, err := unix.Recvfrom(c.fd, buf, 0)
	if err != nil {
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK || err == unix.EINTR {
			return nil, nil
		}
		return nil, errors.Wrap(err, "recvfrom")
	}
	return buf[:size], nil
}

// Close releases the socket
func (c *packetConn) Close() error {
	if c.fd < 0 {
		return nil
	}
	err := unix.Close(c.fd)
	c.fd = -1
	return err
}

// htons converts uint16 from host to network byte order
func htons(v uint16) uint16 { return (v << 8) | (v >> 8) }
