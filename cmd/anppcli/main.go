package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/anpp.go/pkg/anpp"
	"github.com/robotalks/anpp.go/pkg/device"
	"github.com/robotalks/anpp.go/pkg/transport"
)

//go-build: CGO_ENABLED=0

const (
	cliKey            = "$cli"
	unconnectedPrompt = "[none] > "
)

var (
	deviceURL  string
	evalOnly   bool
	outputJSON bool
)

func init() {
	if val := os.Getenv("ANPP_DEVICE_URL"); val != "" {
		deviceURL = val
	}
	flag.StringVar(&deviceURL, "device", deviceURL, "Device URL to connect on startup.")
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
}

// CLI holds the shell state: at most one device connection.
type CLI struct {
	OutputJSON bool

	Shell  *ishell.Shell
	Stream *transport.Stream
	Driver *device.Driver
	URL    string
}

func cliFrom(c *ishell.Context) *CLI {
	return c.Get(cliKey).(*CLI)
}

func mustBeConnected(fn func(c *ishell.Context)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		if cliFrom(c).Driver == nil {
			c.Err(fmt.Errorf("not connected"))
			return
		}
		fn(c)
	}
}

func (cli *CLI) print(c *ishell.Context, v interface{}) {
	if cli.OutputJSON {
		out, err := json.Marshal(v)
		if err != nil {
			c.Err(err)
			return
		}
		c.Println(string(out))
		return
	}
	c.Printf("%+v\n", v)
}

func (cli *CLI) connect(url string) error {
	stream, err := transport.Dial(url)
	if err != nil {
		return err
	}
	cli.disconnect()
	cli.Stream = stream
	cli.Driver = device.NewDriver(stream)
	cli.URL = url
	cli.Shell.SetPrompt("[" + url + "] > ")
	return nil
}

func (cli *CLI) disconnect() {
	if cli.Stream != nil {
		cli.Stream.Close()
	}
	cli.Stream, cli.Driver, cli.URL = nil, nil, ""
	cli.Shell.SetPrompt(unconnectedPrompt)
}

var commands = []*ishell.Cmd{
	{
		Name: "connect",
		Help: "connect <device-url>",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 1 {
				c.Err(fmt.Errorf("usage: connect <device-url>"))
				return
			}
			if err := cliFrom(c).connect(c.Args[0]); err != nil {
				c.Err(err)
			}
		},
	},
	{
		Name: "disconnect",
		Help: "close the device connection",
		Func: func(c *ishell.Context) {
			cliFrom(c).disconnect()
		},
	},
	{
		Name: "info",
		Help: "read device identification",
		Func: mustBeConnected(func(c *ishell.Context) {
			cli := cliFrom(c)
			info, err := cli.Driver.ReadDeviceInformation()
			if err != nil {
				c.Err(err)
				return
			}
			if cli.OutputJSON {
				cli.print(c, info)
				return
			}
			c.Printf("device %d hw %d sw %d serial %08x-%08x-%08x\n",
				info.DeviceID, info.HardwareRevision, info.SoftwareVersion,
				info.SerialNumber[0], info.SerialNumber[1], info.SerialNumber[2])
		}),
	},
	{
		Name: "status",
		Help: "read device status",
		Func: mustBeConnected(func(c *ishell.Context) {
			cli := cliFrom(c)
			status, err := cli.Driver.ReadStatus()
			if err != nil {
				c.Err(err)
				return
			}
			cli.print(c, status)
		}),
	},
	{
		Name: "time",
		Help: "read the device clock",
		Func: mustBeConnected(func(c *ishell.Context) {
			cli := cliFrom(c)
			at, err := cli.Driver.ReadTime()
			if err != nil {
				c.Err(err)
				return
			}
			c.Println(at.Format("2006-01-02T15:04:05.000000Z07:00"))
		}),
	},
	{
		Name: "state",
		Help: "read the navigation solution",
		Func: mustBeConnected(func(c *ishell.Context) {
			cli := cliFrom(c)
			state, err := cli.Driver.ReadSystemState()
			if err != nil {
				c.Err(err)
				return
			}
			cli.print(c, state)
		}),
	},
	{
		Name: "satellites",
		Help: "satellites [detail]",
		Func: mustBeConnected(func(c *ishell.Context) {
			cli := cliFrom(c)
			if len(c.Args) > 0 && c.Args[0] == "detail" {
				sats, err := cli.Driver.ReadDetailedSatellites()
				if err != nil {
					c.Err(err)
					return
				}
				cli.print(c, sats)
				return
			}
			sats, err := cli.Driver.ReadSatellites()
			if err != nil {
				c.Err(err)
				return
			}
			cli.print(c, sats)
		}),
	},
	{
		Name: "config",
		Help: "read the device configuration",
		Func: mustBeConnected(func(c *ishell.Context) {
			cli := cliFrom(c)
			conf, err := cli.Driver.ReadConfiguration()
			if err != nil {
				c.Err(err)
				return
			}
			cli.print(c, conf)
		}),
	},
	{
		Name: "period",
		Help: "period <packet-id> <ticks>: schedule a periodic packet",
		Func: mustBeConnected(func(c *ishell.Context) {
			if len(c.Args) != 2 {
				c.Err(fmt.Errorf("usage: period <packet-id> <ticks>"))
				return
			}
			id, err := strconv.ParseUint(c.Args[0], 10, 8)
			if err != nil {
				c.Err(err)
				return
			}
			ticks, err := strconv.ParseUint(c.Args[1], 10, 32)
			if err != nil {
				c.Err(err)
				return
			}
			if err = cliFrom(c).Driver.SetPacketPeriod(byte(id), uint32(ticks)); err != nil {
				c.Err(err)
				return
			}
			c.Println("OK")
		}),
	},
	{
		Name: "clear-periods",
		Help: "unschedule all periodic packets",
		Func: mustBeConnected(func(c *ishell.Context) {
			if err := cliFrom(c).Driver.ClearPeriodicPackets(); err != nil {
				c.Err(err)
				return
			}
			c.Println("OK")
		}),
	},
	{
		Name: "device-time",
		Help: "device-time on|off: stamp samples with the device clock",
		Func: mustBeConnected(func(c *ishell.Context) {
			if len(c.Args) != 1 || (c.Args[0] != "on" && c.Args[0] != "off") {
				c.Err(fmt.Errorf("usage: device-time on|off"))
				return
			}
			if err := cliFrom(c).Driver.SetUseDeviceTime(c.Args[0] == "on"); err != nil {
				c.Err(err)
				return
			}
			c.Println("OK")
		}),
	},
	{
		Name: "reset",
		Help: "reset hot|cold|factory",
		Func: mustBeConnected(func(c *ishell.Context) {
			modes := map[string]device.ResetMode{
				"hot":     device.ResetHot,
				"cold":    device.ResetCold,
				"factory": device.ResetFactory,
			}
			if len(c.Args) != 1 {
				c.Err(fmt.Errorf("usage: reset hot|cold|factory"))
				return
			}
			mode, ok := modes[c.Args[0]]
			if !ok {
				c.Err(fmt.Errorf("unknown reset mode %q", c.Args[0]))
				return
			}
			if err := cliFrom(c).Driver.Reset(mode); err != nil {
				c.Err(err)
				return
			}
			c.Println("OK")
		}),
	},
	{
		Name: "request",
		Help: "request <packet-id...>: ask the device to send packets once",
		Func: mustBeConnected(func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(fmt.Errorf("usage: request <packet-id...>"))
				return
			}
			ids := make([]byte, len(c.Args))
			for i, arg := range c.Args {
				id, err := strconv.ParseUint(arg, 10, 8)
				if err != nil {
					c.Err(err)
					return
				}
				ids[i] = byte(id)
			}
			if err := cliFrom(c).Driver.Request(ids...); err != nil {
				c.Err(err)
				return
			}
			c.Println("OK")
		}),
	},
	{
		Name: "boot",
		Help: "boot bootloader|program",
		Func: mustBeConnected(func(c *ishell.Context) {
			modes := map[string]byte{
				"bootloader": anpp.BootToBootloader,
				"program":    anpp.BootToProgram,
			}
			if len(c.Args) != 1 {
				c.Err(fmt.Errorf("usage: boot bootloader|program"))
				return
			}
			mode, ok := modes[c.Args[0]]
			if !ok {
				c.Err(fmt.Errorf("unknown boot target %q", c.Args[0]))
				return
			}
			cli := cliFrom(c)
			err := anpp.SendAndValidate(cli.Driver.Transport, anpp.BootMode{Mode: mode}, anpp.DeadlineAfter(cli.Driver.ReadTimeout))
			if err != nil {
				c.Err(err)
				return
			}
			c.Println("OK")
		}),
	},
}

func main() {
	flag.Parse()

	cli := &CLI{
		OutputJSON: outputJSON,
		Shell:      ishell.New(),
	}
	cli.Shell.Set(cliKey, cli)
	cli.Shell.SetPrompt(unconnectedPrompt)
	for _, cmd := range commands {
		cli.Shell.AddCmd(cmd)
	}

	if deviceURL != "" {
		if err := cli.connect(deviceURL); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	defer cli.disconnect()

	if evalOnly {
		if err := cli.Shell.Process(flag.Args()...); err != nil {
			os.Exit(1)
		}
		return
	}
	if args := flag.Args(); len(args) > 0 {
		if err := cli.Shell.Process(args...); err != nil {
			os.Exit(1)
		}
	}
	cli.Shell.Println("ANPP device shell, type \"help\" for commands")
	cli.Shell.Run()
}
