package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/clambin/go-common/set"
	"github.com/rossdargan/layz-spa/internal/waterheater"
	"log/slog"
	"strconv"
	"strings"
)

const (
	DefaultDiscoveryPrefix = "homeassistant"
	DefaultBaseTopic       = "layzspa"

	ModeOff      = "off"
	ModeElectric = "electric"

	PayloadOn  = "ON"
	PayloadOff = "OFF"

	attrMode = "mode"
)

// Entity is the water heater entity that the Bridge exposes.
type Entity interface {
	Name() string
	DeviceID() string
	UniqueID() string
	Icon() string
	Available() bool
	HostUnit() waterheater.Unit
	TemperatureUnit() waterheater.Unit
	Precision() waterheater.Precision
	IsAwayModeOn() bool
	CapabilityAttributes() map[string]any
	StateAttributes() map[string]any
	AddListener(func()) func()
	SetTemperature(ctx context.Context, temperature float64) error
	TurnAwayModeOn(ctx context.Context) error
	TurnAwayModeOff(ctx context.Context) error
	SetBubbles(ctx context.Context, on bool) error
	SetFilter(ctx context.Context, on bool) error
}

type BridgeConfig struct {
	DiscoveryPrefix string
	BaseTopic       string
	// StatusTopic is the client's status topic. If set, entities are only available while the bridge is online.
	StatusTopic string
	Version     string
}

// Bridge publishes an entity's discovery configuration and state, and executes the commands that Home Assistant sends it.
type Bridge struct {
	Client   Client
	Entity   Entity
	config   BridgeConfig
	logger   *slog.Logger
	commands chan command
}

type command struct {
	name string
	do   func(ctx context.Context) error
}

func NewBridge(client Client, entity Entity, config BridgeConfig, logger *slog.Logger) *Bridge {
	if config.DiscoveryPrefix == "" {
		config.DiscoveryPrefix = DefaultDiscoveryPrefix
	}
	if config.BaseTopic == "" {
		config.BaseTopic = DefaultBaseTopic
	}
	return &Bridge{
		Client:   client,
		Entity:   entity,
		config:   config,
		logger:   logger,
		commands: make(chan command, 10),
	}
}

func (b *Bridge) Run(ctx context.Context) error {
	b.logger.Debug("started")
	defer b.logger.Debug("stopped")

	if err := b.publishDiscovery(); err != nil {
		return fmt.Errorf("discovery: %w", err)
	}

	for topic, handler := range b.handlers() {
		unsubscribe, err := b.Client.Subscribe(topic, handler)
		if err != nil {
			return err
		}
		defer unsubscribe()
	}

	remove := b.Entity.AddListener(b.publishState)
	defer remove()
	b.publishState()

	for {
		select {
		case <-ctx.Done():
			if err := b.Client.Publish(b.topic("availability"), true, []byte(payloadOffline)); err != nil {
				b.logger.Warn("failed to publish availability", "err", err)
			}
			return nil
		case cmd := <-b.commands:
			b.logger.Debug("executing command", "command", cmd.name)
			if err := cmd.do(ctx); err != nil {
				b.logger.Error("command failed", "command", cmd.name, "err", err)
			}
		}
	}
}

func (b *Bridge) topic(name string) string {
	return b.config.BaseTopic + "/" + b.Entity.DeviceID() + "/" + name
}

func (b *Bridge) discoveryTopic(component, object string) string {
	return strings.Join([]string{b.config.DiscoveryPrefix, component, nodeID(waterheater.Domain + "_" + b.Entity.DeviceID()), object, "config"}, "/")
}

func (b *Bridge) availability() []Availability {
	availability := make([]Availability, 0, 2)
	if b.config.StatusTopic != "" {
		availability = append(availability, Availability{Topic: b.config.StatusTopic})
	}
	return append(availability, Availability{Topic: b.topic("availability")})
}

func (b *Bridge) publishDiscovery() error {
	device := Device{
		Identifiers:  []string{b.Entity.UniqueID()},
		Name:         b.Entity.Name(),
		Manufacturer: "Lay-Z-Spa",
	}
	origin := Origin{Name: "layz-spa", SoftwareVersion: b.config.Version}
	state := b.topic("state")

	capabilities := b.Entity.CapabilityAttributes()
	minTemp, _ := capabilities[waterheater.AttrMinTemp].(*float64)
	maxTemp, _ := capabilities[waterheater.AttrMaxTemp].(*float64)

	configs := map[string]any{
		b.discoveryTopic("water_heater", "spa"): WaterHeaterConfig{
			Name:                       b.Entity.Name(),
			UniqueID:                   b.Entity.UniqueID(),
			Icon:                       b.Entity.Icon(),
			Device:                     device,
			Origin:                     origin,
			Availability:               b.availability(),
			AvailabilityMode:           "all",
			Modes:                      []string{ModeOff, ModeElectric},
			ModeCommandTopic:           b.topic("mode/set"),
			ModeStateTopic:             state,
			ModeStateTemplate:          "{{ value_json." + attrMode + " }}",
			TemperatureCommandTopic:    b.topic("temperature/set"),
			TemperatureStateTopic:      state,
			TemperatureStateTemplate:   "{{ value_json." + waterheater.AttrTemperature + " }}",
			CurrentTemperatureTopic:    state,
			CurrentTemperatureTemplate: "{{ value_json." + waterheater.AttrCurrentTemperature + " }}",
			JSONAttributesTopic:        state,
			MinTemp:                    minTemp,
			MaxTemp:                    maxTemp,
			Precision:                  float64(b.Entity.Precision()),
			TemperatureUnit:            haUnit(b.Entity.HostUnit()),
		},
	}
	for _, s := range []struct {
		object string
		name   string
		icon   string
		attr   string
		on     string
		off    string
	}{
		{object: "away", name: "Away mode", icon: "mdi:airplane", attr: waterheater.AttrAwayMode, on: waterheater.StateOn, off: waterheater.StateOff},
		{object: "bubbles", name: "Bubbles", icon: "mdi:chart-bubble", attr: waterheater.AttrBubblesPower, on: "1", off: "0"},
		{object: "filter", name: "Filter", icon: "mdi:air-filter", attr: waterheater.AttrFilterPower, on: "1", off: "0"},
	} {
		configs[b.discoveryTopic("switch", s.object)] = SwitchConfig{
			Name:             s.name,
			UniqueID:         b.Entity.UniqueID() + "." + s.object,
			Icon:             s.icon,
			Device:           device,
			Origin:           origin,
			Availability:     b.availability(),
			AvailabilityMode: "all",
			CommandTopic:     b.topic(s.object + "/set"),
			StateTopic:       state,
			ValueTemplate:    "{{ value_json['" + s.attr + "'] }}",
			PayloadOn:        PayloadOn,
			PayloadOff:       PayloadOff,
			StateOn:          s.on,
			StateOff:         s.off,
		}
	}

	for topic, config := range configs {
		payload, err := json.Marshal(config)
		if err != nil {
			return err
		}
		if err = b.Client.Publish(topic, true, payload); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bridge) publishState() {
	state := b.Entity.StateAttributes()
	state[attrMode] = ModeElectric
	if b.Entity.IsAwayModeOn() {
		state[attrMode] = ModeOff
	}

	payload, err := json.Marshal(state)
	if err != nil {
		b.logger.Error("failed to encode state", "err", err)
		return
	}
	if err = b.Client.Publish(b.topic("state"), true, payload); err != nil {
		b.logger.Warn("failed to publish state", "err", err)
	}

	availability := payloadOffline
	if b.Entity.Available() {
		availability = payloadOnline
	}
	if err = b.Client.Publish(b.topic("availability"), true, []byte(availability)); err != nil {
		b.logger.Warn("failed to publish availability", "err", err)
	}
}

func (b *Bridge) handlers() map[string]func([]byte) {
	return map[string]func([]byte){
		b.topic("temperature/set"): b.onTemperature,
		b.topic("mode/set"):        b.onMode,
		b.topic("away/set"):        b.onSwitch("away", b.awayMode),
		b.topic("bubbles/set"):     b.onSwitch("bubbles", b.Entity.SetBubbles),
		b.topic("filter/set"):      b.onSwitch("filter", b.Entity.SetFilter),
	}
}

func (b *Bridge) onTemperature(payload []byte) {
	temperature, err := strconv.ParseFloat(strings.TrimSpace(string(payload)), 64)
	if err != nil {
		b.logger.Warn("invalid temperature received", "payload", string(payload))
		return
	}
	// Home Assistant sends temperatures in the display unit
	temperature = waterheater.Convert(temperature, b.Entity.HostUnit(), b.Entity.TemperatureUnit())
	b.queue("temperature", func(ctx context.Context) error {
		return b.Entity.SetTemperature(ctx, temperature)
	})
}

var validModes = set.New(ModeOff, ModeElectric)

func (b *Bridge) onMode(payload []byte) {
	mode := strings.TrimSpace(string(payload))
	if !validModes.Contains(mode) {
		b.logger.Warn("invalid mode received", "payload", mode)
		return
	}
	b.queue("mode", func(ctx context.Context) error {
		return b.awayMode(ctx, mode == ModeOff)
	})
}

var validSwitchPayloads = set.New(PayloadOn, PayloadOff)

func (b *Bridge) onSwitch(name string, f func(context.Context, bool) error) func([]byte) {
	return func(payload []byte) {
		value := strings.ToUpper(strings.TrimSpace(string(payload)))
		if !validSwitchPayloads.Contains(value) {
			b.logger.Warn("invalid switch payload received", "switch", name, "payload", string(payload))
			return
		}
		b.queue(name, func(ctx context.Context) error {
			return f(ctx, value == PayloadOn)
		})
	}
}

func (b *Bridge) awayMode(ctx context.Context, on bool) error {
	if on {
		return b.Entity.TurnAwayModeOn(ctx)
	}
	return b.Entity.TurnAwayModeOff(ctx)
}

func (b *Bridge) queue(name string, do func(context.Context) error) {
	select {
	case b.commands <- command{name: name, do: do}:
	default:
		b.logger.Warn("command queue full. command dropped", "command", name)
	}
}

func haUnit(unit waterheater.Unit) string {
	return strings.TrimPrefix(string(unit), "°")
}
