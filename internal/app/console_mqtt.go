package app

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/relabs-tech/nmea_computer/internal/config"
	"github.com/relabs-tech/nmea_computer/internal/gps"
	"github.com/relabs-tech/nmea_computer/internal/nmea"
)

// RunConsoleMQTT prints every fix published on the GPS topic.
func RunConsoleMQTT() error {
	cfg := config.Get()

	client, err := connectMQTT("console", cfg.MQTTBroker, cfg.MQTTClientIDConsole)
	if err != nil {
		return err
	}

	err = subscribe("console", client, cfg.TopicGPS, func(_ mqtt.Client, msg mqtt.Message) {
		var f gps.Fix
		if err := json.Unmarshal(msg.Payload(), &f); err != nil {
			log.Printf("console: gps unmarshal error: %v", err)
			return
		}
		fmt.Print(consoleText(f))
	})
	if err != nil {
		return err
	}

	// Wait for Ctrl+C
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("console: shutting down")
	client.Disconnect(250)
	return nil
}

func consoleText(f gps.Fix) string {
	d := f.Data()
	return fmt.Sprintf("[GPS ] time=%s sentence=%s\n%s", f.Time, f.Sentence, nmea.FormatString(&d))
}
