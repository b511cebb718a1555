package dcp

import (
	"bytes"
	"math/rand"
	"net"
	"strings"
	"sync"
	"time"

	dcperrors "pndcp/pkg/errors"
	"pndcp/pkg/l2sock"
	"pndcp/pkg/logging"
	"pndcp/pkg/metrics"
	"pndcp/pkg/netif"
	"pndcp/pkg/types"
	"pndcp/pkg/validation"
)

// Config holds the construction parameters of a Client
type Config struct {
	// HostIP selects the local network interface
	HostIP string

	// DefaultTimeout bounds each unicast transaction
	DefaultTimeout time.Duration

	// IdentifyAllTimeout is the collection window for IdentifyAll
	IdentifyAllTimeout time.Duration

	// WaitingTime is the settling sleep between sending a set request
	// and reading its response
	WaitingTime time.Duration
}

// DefaultConfig returns the configuration the original utility ships
// with: seven seconds for every timeout.
func DefaultConfig(hostIP string) Config {
	return Config{
		HostIP:             hostIP,
		DefaultTimeout:     7 * time.Second,
		IdentifyAllTimeout: 7 * time.Second,
		WaitingTime:        7 * time.Second,
	}
}

// Client drives DCP request/response transactions on one interface.
// One transaction is in flight at a time; concurrent callers are
// serialized so two outstanding requests can never share an XID.
type Client struct {
	mu     sync.Mutex
	conn   l2sock.Conn
	srcMAC net.HardwareAddr
	cfg    Config
	xid    uint32
	log    *logging.Logger
}

// New creates a Client bound to the interface owning cfg.HostIP
func New(cfg Config) (*Client, error) {
	if err := validation.ValidateHostIP(cfg.HostIP); err != nil {
		return nil, err
	}
	if err := validation.ValidateTimeout(cfg.DefaultTimeout); err != nil {
		return nil, err
	}

	macStr, ifname, err := netif.Resolve(cfg.HostIP)
	if err != nil {
		return nil, err
	}
	srcMAC, err := net.ParseMAC(macStr)
	if err != nil {
		return nil, dcperrors.ErrInterfaceNotFound(cfg.HostIP).WithCause(err)
	}

	conn, err := l2sock.Open(l2sock.Options{
		Interface: ifname,
		SourceMAC: srcMAC,
		EtherType: EtherType,
	})
	if err != nil {
		return nil, dcperrors.ErrSocketFailure("open", err)
	}

	c := newClient(conn, srcMAC, cfg)
	c.log.Info("DCP client ready", map[string]interface{}{
		"interface": ifname,
		"mac":       macStr,
	})
	return c, nil
}

// newClient wires a Client onto an existing connection. The XID starts
// at a random value and increases with each request.
func newClient(conn l2sock.Conn, srcMAC net.HardwareAddr, cfg Config) *Client {
	return &Client{
		conn:   conn,
		srcMAC: srcMAC,
		cfg:    cfg,
		xid:    rand.Uint32(),
		log:    logging.NewComponentLogger("dcp"),
	}
}

// Close releases the underlying socket
func (c *Client) Close() error {
	return c.conn.Close()
}

// Identify requests the identity of the device with the given MAC
// address. Fails with a timeout error when no response arrives within
// the default timeout.
func (c *Client) Identify(mac string) (*types.Device, error) {
	dst, err := validation.ParseMAC(mac)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.sendRequest(dst, FrameIDIdentifyRequest, ServiceIDIdentify, OptionAll, nil, ResponseDelayFactor); err != nil {
		return nil, err
	}

	device, _, err := c.readResponse(c.deadline(), false)
	if err != nil {
		return nil, err
	}
	if device == nil {
		c.log.Debug("timeout: no answer from device", map[string]interface{}{"mac": mac})
		return nil, c.timeout(mac)
	}
	return device, nil
}

// IdentifyAll multicasts an identify request and collects every valid
// response until the timeout elapses. The set of devices is unknown a
// priori and each one replies after an independent random delay, so
// collection never stops early; an empty list is a legitimate result.
func (c *Client) IdentifyAll(timeout time.Duration) ([]*types.Device, error) {
	if timeout <= 0 {
		timeout = c.cfg.IdentifyAllTimeout
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.sendRequest(MulticastMACIdentify, FrameIDIdentifyRequest, ServiceIDIdentify, OptionAll, nil, ResponseDelayFactor); err != nil {
		return nil, err
	}

	devices := []*types.Device{}
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		device, _, err := c.readOne(false)
		if err != nil {
			return devices, err
		}
		if device != nil {
			devices = append(devices, device)
		}
	}
	return devices, nil
}

// GetIPAddress requests the IP address of the device with the given
// MAC address.
func (c *Client) GetIPAddress(mac string) (string, error) {
	device, err := c.get(mac, OptionIPAddress)
	if err != nil {
		return "", err
	}
	return device.IP, nil
}

// GetNameOfStation requests the name of station of the device with the
// given MAC address.
func (c *Client) GetNameOfStation(mac string) (string, error) {
	device, err := c.get(mac, OptionNameOfStation)
	if err != nil {
		return "", err
	}
	return device.NameOfStation, nil
}

// get runs one unicast get transaction and returns the parsed device
func (c *Client) get(mac string, opt Option) (*types.Device, error) {
	dst, err := validation.ParseMAC(mac)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.sendRequest(dst, FrameIDGetSet, ServiceIDGet, opt, nil, 0); err != nil {
		return nil, err
	}

	device, _, err := c.readResponse(c.deadline(), false)
	if err != nil {
		return nil, err
	}
	if device == nil {
		c.log.Debug("timeout: no answer from device", map[string]interface{}{"mac": mac})
		return nil, c.timeout(mac)
	}
	return device, nil
}

// SetIPAddress sets the IP configuration (address, netmask, gateway)
// of the device with the given MAC address. The new configuration is
// stored permanently.
func (c *Client) SetIPAddress(mac string, ip, netmask, gateway string) (*types.ResponseCode, error) {
	value := QualifierStorePermanent[:]
	for _, addr := range []string{ip, netmask, gateway} {
		packed, err := PackIPv4(addr)
		if err != nil {
			return nil, dcperrors.ErrInvalidIP(addr)
		}
		value = append(value, packed...)
	}
	return c.set(mac, OptionIPAddress, value, true)
}

// SetNameOfStation sets the name of station of the device with the
// given MAC address. Names must be DNS-like: start with a lowercase
// letter, then letters, digits, '-' and '.'; the name is lowercased
// before transmission.
func (c *Client) SetNameOfStation(mac string, name string) (*types.ResponseCode, error) {
	name, err := validation.ValidateStationName(name)
	if err != nil {
		return nil, err
	}
	value := append(QualifierStorePermanent[:], []byte(name)...)
	return c.set(mac, OptionNameOfStation, value, true)
}

// Blink requests the device with the given MAC address to flash its
// LEDs for local identification.
func (c *Client) Blink(mac string) (*types.ResponseCode, error) {
	value := append(QualifierReserved[:], LEDBlinkValue[:]...)
	return c.set(mac, OptionBlinkLED, value, false)
}

// ResetToFactory resets the communication parameters of the device
// with the given MAC address to factory defaults.
func (c *Client) ResetToFactory(mac string) (*types.ResponseCode, error) {
	return c.set(mac, OptionResetToFactory, QualifierResetCommunication[:], false)
}

// set runs one unicast set transaction. settle selects the post-send
// waiting time that gives the device room to commit the change before
// its response is expected.
func (c *Client) set(mac string, opt Option, value []byte, settle bool) (*types.ResponseCode, error) {
	dst, err := validation.ParseMAC(mac)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.sendRequest(dst, FrameIDGetSet, ServiceIDSet, opt, value, 0); err != nil {
		return nil, err
	}

	if settle {
		time.Sleep(c.cfg.WaitingTime)
	}

	_, code, err := c.readResponse(c.deadline(), true)
	if err != nil {
		return nil, err
	}
	if code == nil {
		c.log.Debug("timeout: no answer to set request", map[string]interface{}{"mac": mac})
		return nil, c.timeout(mac)
	}
	if !code.Ok() {
		c.log.Debug("set unsuccessful", map[string]interface{}{"mac": mac, "message": code.Message()})
	}
	return code, nil
}

// sendRequest increments the XID, builds the request frame and
// transmits it. Callers hold c.mu.
func (c *Client) sendRequest(dst net.HardwareAddr, frameID uint16, serviceID uint8, opt Option, value []byte, responseDelay uint16) error {
	c.xid++

	block := RequestBlock(opt, value)
	packet := &Packet{
		FrameID:       frameID,
		ServiceID:     serviceID,
		ServiceType:   ServiceTypeRequest,
		Xid:           c.xid,
		ResponseDelay: responseDelay,
		BlockData:     block.Marshal(),
	}
	payload, err := packet.Marshal()
	if err != nil {
		return dcperrors.ErrSocketFailure("marshal", err)
	}

	frame := &EthernetFrame{
		Destination: dst,
		Source:      c.srcMAC,
		EtherType:   EtherType,
		Payload:     payload,
	}
	raw, err := frame.Marshal()
	if err != nil {
		return dcperrors.ErrSocketFailure("marshal", err)
	}

	if err := c.conn.Send(raw); err != nil {
		return dcperrors.ErrSocketFailure("send", err)
	}
	metrics.FramesSent.Inc()
	return nil
}

// readResponse polls the socket until a frame matching the current
// transaction arrives or the deadline expires. Exactly one of the
// returned device and code is non-nil on success; both are nil on
// timeout. Callers hold c.mu.
func (c *Client) readResponse(deadline time.Time, setRequest bool) (*types.Device, *types.ResponseCode, error) {
	for time.Now().Before(deadline) {
		device, code, err := c.readOne(setRequest)
		if err != nil {
			return nil, nil, err
		}
		if device != nil || code != nil {
			return device, code, nil
		}
	}
	metrics.RequestTimeouts.Inc()
	return nil, nil, nil
}

// readOne receives at most one frame and parses it against the current
// transaction. Non-matching frames are dropped silently; malformed
// frames are dropped with a debug log.
func (c *Client) readOne(setRequest bool) (*types.Device, *types.ResponseCode, error) {
	raw, err := c.conn.Recv()
	if err != nil {
		return nil, nil, dcperrors.ErrSocketFailure("recv", err)
	}
	if raw == nil {
		return nil, nil, nil
	}
	metrics.FramesReceived.Inc()

	packet, source, ok := c.validateFrame(raw)
	if !ok {
		metrics.FramesDropped.Inc()
		return nil, nil, nil
	}

	if setRequest {
		return nil, c.parseResponseCode(packet), nil
	}

	device := c.parseDevice(packet, source)
	metrics.DevicesDiscovered.Inc()
	return device, nil, nil
}

// validateFrame checks a received frame against the current
// transaction: addressed to this station, DCP EtherType, a response,
// and carrying the current XID.
func (c *Client) validateFrame(raw []byte) (*Packet, net.HardwareAddr, bool) {
	frame := &EthernetFrame{}
	if err := frame.Unmarshal(raw); err != nil {
		c.log.Debug("dropping malformed frame", map[string]interface{}{"error": err.Error()})
		return nil, nil, false
	}
	if !bytes.Equal(frame.Destination, c.srcMAC) || frame.EtherType != EtherType {
		return nil, nil, false
	}

	packet := &Packet{}
	if err := packet.Unmarshal(frame.Payload); err != nil {
		c.log.Debug("dropping malformed DCP packet", map[string]interface{}{"error": err.Error()})
		return nil, nil, false
	}
	if packet.ServiceType != ServiceTypeResponse || packet.Xid != c.xid {
		return nil, nil, false
	}
	return packet, frame.Source, true
}

// parseResponseCode extracts the return code of a set response. The
// first block must be a Control block; its return code sits at byte 6
// of the raw block bytes.
func (c *Client) parseResponseCode(packet *Packet) *types.ResponseCode {
	if len(packet.BlockData) < 7 || packet.BlockData[0] != OptionControl {
		c.log.Debug("set response without leading Control block")
		metrics.FramesDropped.Inc()
		return nil
	}
	return &types.ResponseCode{Code: int(packet.BlockData[6])}
}

// parseDevice assembles a Device from the block area of an identify or
// get response. Unknown options are skipped.
func (c *Client) parseDevice(packet *Packet, source net.HardwareAddr) *types.Device {
	device := &types.Device{MAC: netif.CanonicalMAC(source.String())}

	reader := NewBlockReader(packet.BlockData, packet.Length)
	for {
		block, ok := reader.Next()
		if !ok {
			break
		}
		switch (Option{block.Option, block.Suboption}) {
		case OptionNameOfStation:
			device.NameOfStation = trimNul(block.Payload)
		case OptionIPAddress:
			if len(block.Payload) >= 12 {
				device.IP = UnpackIPv4(block.Payload[0:4])
				device.Netmask = UnpackIPv4(block.Payload[4:8])
				device.Gateway = UnpackIPv4(block.Payload[8:12])
			}
		case OptionDeviceFamily:
			device.Family = trimNul(block.Payload)
		}
	}
	return device
}

// deadline converts the default timeout into an absolute deadline.
// Callers hold c.mu.
func (c *Client) deadline() time.Time {
	return time.Now().Add(c.cfg.DefaultTimeout)
}

func (c *Client) timeout(mac string) error {
	return dcperrors.ErrRequestTimeout(mac)
}

func trimNul(payload []byte) string {
	return strings.TrimRight(string(payload), "\x00")
}

