// Package mqtt exposes spas to Home Assistant through MQTT discovery.
package mqtt

import (
	"context"
	"errors"
	"fmt"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"log/slog"
	"sync"
	"time"
)

// Client publishes and subscribes to MQTT topics.
type Client interface {
	Publish(topic string, retained bool, payload []byte) error
	Subscribe(topic string, callback func([]byte)) (func(), error)
}

// Config configures the connection to the broker.
type Config struct {
	Broker   string
	Username string
	Password string
	ClientID string
	// StatusTopic receives "online" when connected. The broker publishes "offline" when the connection is lost.
	StatusTopic string
}

var _ Client = &PahoClient{}

// PahoClient is a Client backed by a paho MQTT connection. Subscriptions are restored when the connection is re-established.
type PahoClient struct {
	client      mqtt.Client
	statusTopic string
	logger      *slog.Logger

	lock   sync.Mutex
	subs   map[string]map[int]func([]byte)
	nextID int
}

const (
	payloadOnline  = "online"
	payloadOffline = "offline"
	qos            = 1
)

// Connect connects to the broker. It keeps retrying until the connection is up or the context is cancelled.
func Connect(ctx context.Context, cfg Config, logger *slog.Logger) (*PahoClient, error) {
	c := PahoClient{
		statusTopic: cfg.StatusTopic,
		subs:        make(map[string]map[int]func([]byte)),
		logger:      logger,
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetUsername(cfg.Username)
	opts.SetPassword(cfg.Password)
	opts.SetClientID(cfg.ClientID)
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectTimeout(10 * time.Second)
	if cfg.StatusTopic != "" {
		opts.SetWill(cfg.StatusTopic, payloadOffline, qos, true)
	}
	opts.SetDefaultPublishHandler(c.dispatch)
	opts.OnConnect = func(_ mqtt.Client) {
		c.logger.Info("connected to broker", "broker", cfg.Broker)
		c.onConnect()
	}
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		c.logger.Warn("connection to broker lost", "err", err)
	}

	c.client = mqtt.NewClient(opts)
	token := c.client.Connect()
	select {
	case <-token.Done():
		if err := token.Error(); err != nil {
			return nil, fmt.Errorf("connect: %w", err)
		}
	case <-ctx.Done():
		c.client.Disconnect(0)
		return nil, fmt.Errorf("connect: %w", ctx.Err())
	}
	return &c, nil
}

// Run closes the connection when the context is cancelled.
func (c *PahoClient) Run(ctx context.Context) error {
	<-ctx.Done()
	c.Close()
	return nil
}

// Close marks the bridge offline and disconnects from the broker.
func (c *PahoClient) Close() {
	if c.statusTopic != "" {
		_ = c.Publish(c.statusTopic, true, []byte(payloadOffline))
	}
	c.client.Disconnect(250)
}

func (c *PahoClient) Publish(topic string, retained bool, payload []byte) error {
	token := c.client.Publish(topic, qos, retained, payload)
	if !token.WaitTimeout(10 * time.Second) {
		return errors.New("publish: timeout")
	}
	return token.Error()
}

func (c *PahoClient) Subscribe(topic string, callback func([]byte)) (func(), error) {
	c.lock.Lock()
	if c.subs[topic] == nil {
		c.subs[topic] = make(map[int]func([]byte))
	}
	id := c.nextID
	c.nextID++
	c.subs[topic][id] = callback
	first := len(c.subs[topic]) == 1
	c.lock.Unlock()

	if first {
		if token := c.client.Subscribe(topic, qos, nil); token.Wait() && token.Error() != nil {
			c.remove(topic, id)
			return nil, fmt.Errorf("subscribe %s: %w", topic, token.Error())
		}
	}

	return func() {
		if c.remove(topic, id) {
			_ = c.client.Unsubscribe(topic).Wait()
		}
	}, nil
}

// remove deletes a callback and returns true if it was the topic's last one.
func (c *PahoClient) remove(topic string, id int) bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	callbacks, ok := c.subs[topic]
	if !ok {
		return false
	}
	delete(callbacks, id)
	if len(callbacks) > 0 {
		return false
	}
	delete(c.subs, topic)
	return true
}

func (c *PahoClient) dispatch(_ mqtt.Client, msg mqtt.Message) {
	c.lock.Lock()
	callbacks := make([]func([]byte), 0, len(c.subs[msg.Topic()]))
	for _, callback := range c.subs[msg.Topic()] {
		callbacks = append(callbacks, callback)
	}
	c.lock.Unlock()

	for _, callback := range callbacks {
		callback(msg.Payload())
	}
}

func (c *PahoClient) onConnect() {
	c.lock.Lock()
	topics := make([]string, 0, len(c.subs))
	for topic := range c.subs {
		topics = append(topics, topic)
	}
	c.lock.Unlock()

	// paho's Publish/Subscribe must not block inside the OnConnect handler
	go func() {
		for _, topic := range topics {
			if token := c.client.Subscribe(topic, qos, nil); token.Wait() && token.Error() != nil {
				c.logger.Warn("failed to resubscribe", "topic", topic, "err", token.Error())
			}
		}
		if c.statusTopic != "" {
			if err := c.Publish(c.statusTopic, true, []byte(payloadOnline)); err != nil {
				c.logger.Warn("failed to publish status", "err", err)
			}
		}
	}()
}
