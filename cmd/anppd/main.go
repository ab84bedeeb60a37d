package main

import (
	"flag"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"

	"github.com/robotalks/anpp.go/pkg/anpp"
	"github.com/robotalks/anpp.go/pkg/device"
	"github.com/robotalks/anpp.go/pkg/telemetry"
	"github.com/robotalks/anpp.go/pkg/transport"
)

//go-build: CGO_ENABLED=0

var (
	deviceURL = "/dev/ttyUSB0"
	mqttURL   = "mqtt://localhost:1883/anpp/"
	periods   = "20=10,23=10,30=50"
)

func init() {
	if val := os.Getenv("ANPP_DEVICE_URL"); val != "" {
		deviceURL = val
	}
	if val := os.Getenv("ANPP_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&deviceURL, "device", deviceURL, "Device URL.")
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
	flag.StringVar(&periods, "periods", periods, "Periodic packets as id=ticks,...")
}

func parsePeriods(s string) (map[byte]uint32, error) {
	table := make(map[byte]uint32)
	for _, entry := range strings.Split(s, ",") {
		if entry = strings.TrimSpace(entry); entry == "" {
			continue
		}
		kv := strings.SplitN(entry, "=", 2)
		if len(kv) != 2 {
			return nil, &strconv.NumError{Func: "parsePeriods", Num: entry, Err: strconv.ErrSyntax}
		}
		id, err := strconv.ParseUint(kv[0], 10, 8)
		if err != nil {
			return nil, err
		}
		ticks, err := strconv.ParseUint(kv[1], 10, 32)
		if err != nil {
			return nil, err
		}
		table[byte(id)] = uint32(ticks)
	}
	return table, nil
}

func main() {
	flag.Parse()

	table, err := parsePeriods(periods)
	if err != nil {
		log.Fatalln(err)
	}

	stream, err := transport.Dial(deviceURL)
	if err != nil {
		log.Fatalln(err)
	}
	defer stream.Close()

	queue, err := telemetry.NewQueueFromURL(mqttURL)
	if err != nil {
		log.Fatalln(err)
	}
	if token := queue.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalln(token.Error())
	}
	defer queue.Close()

	driver := device.NewDriver(stream)
	info, err := driver.ReadDeviceInformation()
	if err != nil {
		log.Fatalln(err)
	}
	glog.Infof("device %d sw %d on %s", info.DeviceID, info.SoftwareVersion, deviceURL)

	if err = driver.SetPacketPeriods(table); err != nil {
		log.Fatalln(err)
	}

	publisher := telemetry.NewPublisher(queue)
	for {
		id, payload, err := stream.ReadPacket(anpp.NoDeadline())
		if err != nil {
			log.Fatalln(err)
		}
		if err = publisher.Publish(id, payload); err != nil {
			glog.Warningf("packet %d: %v", id, err)
		}
	}
}
