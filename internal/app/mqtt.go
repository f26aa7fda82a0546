package app

import (
	"log"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Publisher is the outgoing side of the pipeline.
type Publisher interface {
	Publish(topic string, payload []byte) error
}

type mqttPublisher struct {
	client mqtt.Client
}

// Publish sends a retained QoS 0 message and waits for it to leave.
func (p mqttPublisher) Publish(topic string, payload []byte) error {
	token := p.client.Publish(topic, 0, true, payload)
	token.Wait()
	return token.Error()
}

func connectMQTT(component, broker, clientID string) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	log.Printf("%s: connected to MQTT broker at %s", component, broker)
	return client, nil
}

func subscribe(component string, client mqtt.Client, topic string, handler mqtt.MessageHandler) error {
	token := client.Subscribe(topic, 0, handler)
	token.Wait()
	if token.Error() != nil {
		return token.Error()
	}
	log.Printf("%s: subscribed to %s", component, topic)
	return nil
}
