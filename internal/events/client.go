package events

import (
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
)

// Topic layout on the hospital event channel. Subscribers take the whole
// hospital/# family so new event kinds need no resubscription.
const (
	TopicBedReleased    = "hospital/camilla/disponible"
	TopicHospitalEvents = "hospital/#"
)

// MessageHandler processes a single delivered message.
type MessageHandler func(topic string, payload []byte) error

// Client wraps the paho MQTT client with the connect/subscribe/publish
// surface the services need.
type Client struct {
	client mqtt.Client
	qos    byte
	logger *zap.Logger
}

// ClientOptions holds the broker connection settings.
type ClientOptions struct {
	BrokerURL string
	ClientID  string
	Username  string
	Password  string
	QoS       byte
}

// NewClient connects to the broker and returns a ready client.
func NewClient(opts ClientOptions, logger *zap.Logger) (*Client, error) {
	mqttOpts := mqtt.NewClientOptions()
	mqttOpts.AddBroker(opts.BrokerURL)
	mqttOpts.SetClientID(opts.ClientID)

	if opts.Username != "" {
		mqttOpts.SetUsername(opts.Username)
	}
	if opts.Password != "" {
		mqttOpts.SetPassword(opts.Password)
	}

	mqttOpts.SetAutoReconnect(true)
	mqttOpts.SetCleanSession(true)

	client := mqtt.NewClient(mqttOpts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}

	logger.Info("connected to MQTT broker", zap.String("broker", opts.BrokerURL))
	return &Client{client: client, qos: opts.QoS, logger: logger}, nil
}

// Subscribe registers a handler for the given topic filter. Handler errors
// are logged and never propagated back to the transport.
func (c *Client) Subscribe(topic string, handler MessageHandler) error {
	token := c.client.Subscribe(topic, c.qos, func(client mqtt.Client, msg mqtt.Message) {
		if err := handler(msg.Topic(), msg.Payload()); err != nil {
			c.logger.Error("error handling MQTT message",
				zap.String("topic", msg.Topic()), zap.Error(err))
		}
	})
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to subscribe to topic %s: %w", topic, token.Error())
	}
	return nil
}

// Publish sends a payload to the given topic.
func (c *Client) Publish(topic string, payload []byte) error {
	token := c.client.Publish(topic, c.qos, false, payload)
	token.Wait()

	if token.Error() != nil {
		return fmt.Errorf("failed to publish to topic %s: %w", topic, token.Error())
	}
	return nil
}

// Disconnect closes the broker connection.
func (c *Client) Disconnect() {
	c.client.Disconnect(250)
}

// IsConnected reports the connection status.
func (c *Client) IsConnected() bool {
	return c.client.IsConnected()
}
