package cli

import (
	"fmt"
	"net"
	"os"

	"pndcp/pkg/dcp"
	"pndcp/pkg/metrics"
	"pndcp/pkg/types"
)

// App represents the main CLI application
type App struct {
	config *Config
}

// NewApp creates a new CLI application instance
func NewApp() (*App, error) {
	config, err := ParseArgs(os.Args[1:])
	if err != nil {
		return nil, err
	}

	return &App{
		config: config,
	}, nil
}

// Run executes the main application logic
func (a *App) Run() error {
	switch a.config.Command {
	case "help":
		ShowHelp("")
		return nil
	case "version":
		ShowVersion()
		return nil
	}

	if a.config.MetricsAddr != "" {
		metrics.Serve(a.config.MetricsAddr)
	}

	host := a.config.Host
	if host == "" {
		host = discoverHostIP()
	}

	client, err := dcp.New(dcp.Config{
		HostIP:             host,
		DefaultTimeout:     a.config.Timeout,
		IdentifyAllTimeout: a.config.Timeout,
		WaitingTime:        a.config.Timeout,
	})
	if err != nil {
		return err
	}
	defer client.Close()

	switch a.config.Command {
	case "id_all":
		return a.runIdentifyAll(client)
	case "id_one":
		return a.runIdentify(client)
	case "get_ip":
		return a.runGetIP(client)
	case "set_ip":
		return a.runSetIP(client)
	case "get_name":
		return a.runGetName(client)
	case "set_name":
		return a.runSetName(client)
	case "reset":
		return a.runReset(client)
	case "blink":
		return a.runBlink(client)
	default:
		// ParseArgs already rejected unknown commands
		return fmt.Errorf("unknown command: %s", a.config.Command)
	}
}

func (a *App) runIdentifyAll(client *dcp.Client) error {
	fmt.Println("sending dcp identify all request")
	fmt.Println("awaiting responses...")
	devices, err := client.IdentifyAll(a.config.Timeout)
	if err != nil {
		return err
	}
	return RenderDevices(os.Stdout, devices, a.config.Format)
}

func (a *App) runIdentify(client *dcp.Client) error {
	fmt.Printf("sending dcp identify request to %s\n", a.config.MAC)
	device, err := client.Identify(a.config.MAC)
	if err != nil {
		return err
	}
	return RenderDevices(os.Stdout, []*types.Device{device}, a.config.Format)
}

func (a *App) runGetIP(client *dcp.Client) error {
	fmt.Printf("requesting ip address from %s\n", a.config.MAC)
	ip, err := client.GetIPAddress(a.config.MAC)
	if err != nil {
		return err
	}
	fmt.Println(ip)
	return nil
}

func (a *App) runSetIP(client *dcp.Client) error {
	fmt.Printf("sending command to set ip config of device %s to IP:%s, SUB:%s, GW:%s\n",
		a.config.MAC, a.config.IPAddr, a.config.Subnet, a.config.Gateway)
	code, err := client.SetIPAddress(a.config.MAC, a.config.IPAddr, a.config.Subnet, a.config.Gateway)
	if err != nil {
		return err
	}
	return RenderResponseCode(os.Stdout, code, a.config.Format)
}

func (a *App) runGetName(client *dcp.Client) error {
	fmt.Printf("sending command to get name of device %s\n", a.config.MAC)
	name, err := client.GetNameOfStation(a.config.MAC)
	if err != nil {
		return err
	}
	fmt.Println(name)
	return nil
}

func (a *App) runSetName(client *dcp.Client) error {
	fmt.Printf("sending command to set name of device %s to %s\n", a.config.MAC, a.config.Name)
	code, err := client.SetNameOfStation(a.config.MAC, a.config.Name)
	if err != nil {
		return err
	}
	return RenderResponseCode(os.Stdout, code, a.config.Format)
}

func (a *App) runReset(client *dcp.Client) error {
	fmt.Printf("sending command to reset device %s to factory defaults\n", a.config.MAC)
	code, err := client.ResetToFactory(a.config.MAC)
	if err != nil {
		return err
	}
	return RenderResponseCode(os.Stdout, code, a.config.Format)
}

func (a *App) runBlink(client *dcp.Client) error {
	fmt.Printf("sending command to %s to flash its LEDs\n", a.config.MAC)
	code, err := client.Blink(a.config.MAC)
	if err != nil {
		return err
	}
	return RenderResponseCode(os.Stdout, code, a.config.Format)
}

// discoverHostIP finds the host's outbound IP by opening a UDP socket
// towards a non-routable address; no traffic is sent. Falls back to
// the loopback address.
func discoverHostIP() string {
	conn, err := net.Dial("udp", "10.254.254.254:1")
	if err != nil {
		return "127.0.0.1"
	}
	defer conn.Close()

	if addr, ok := conn.LocalAddr().(*net.UDPAddr); ok {
		return addr.IP.String()
	}
	return "127.0.0.1"
}
