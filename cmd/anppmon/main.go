package main

import (
	"flag"
	"log"
	"os"

	"github.com/robotalks/anpp.go/pkg/telemetry"
)

//go-build: CGO_ENABLED=0

var (
	mqttURL = "mqtt://localhost:1883/anpp/"
	topic   = "#"
)

func init() {
	if val := os.Getenv("ANPP_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
	flag.StringVar(&topic, "topic", topic, "Topic pattern to watch.")
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	q, err := telemetry.NewQueueFromURL(mqttURL)
	if err != nil {
		log.Fatalln(err)
	}
	if token := q.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalln(token.Error())
	}

	q.Sub(topic, func(topic string, payload []byte) {
		log.Printf("%s: %s", topic, string(payload))
	})
	<-(chan struct{})(nil)
}
