package mqtt

import (
	"strings"
)

// Device groups a spa's entities in Home Assistant's device registry.
type Device struct {
	Identifiers  []string `json:"identifiers"`
	Name         string   `json:"name"`
	Manufacturer string   `json:"manufacturer"`
	Model        string   `json:"model,omitempty"`
}

type Availability struct {
	Topic string `json:"topic"`
}

type Origin struct {
	Name            string `json:"name"`
	SoftwareVersion string `json:"sw_version,omitempty"`
}

// WaterHeaterConfig is the discovery payload of an MQTT water_heater.
type WaterHeaterConfig struct {
	Name                       string         `json:"name"`
	UniqueID                   string         `json:"unique_id"`
	ObjectID                   string         `json:"object_id,omitempty"`
	Icon                       string         `json:"icon,omitempty"`
	Device                     Device         `json:"device"`
	Origin                     Origin         `json:"origin"`
	Availability               []Availability `json:"availability"`
	AvailabilityMode           string         `json:"availability_mode"`
	Modes                      []string       `json:"modes"`
	ModeCommandTopic           string         `json:"mode_command_topic"`
	ModeStateTopic             string         `json:"mode_state_topic"`
	ModeStateTemplate          string         `json:"mode_state_template"`
	TemperatureCommandTopic    string         `json:"temperature_command_topic"`
	TemperatureStateTopic      string         `json:"temperature_state_topic"`
	TemperatureStateTemplate   string         `json:"temperature_state_template"`
	CurrentTemperatureTopic    string         `json:"current_temperature_topic"`
	CurrentTemperatureTemplate string         `json:"current_temperature_template"`
	JSONAttributesTopic        string         `json:"json_attributes_topic"`
	MinTemp                    *float64       `json:"min_temp,omitempty"`
	MaxTemp                    *float64       `json:"max_temp,omitempty"`
	Precision                  float64        `json:"precision"`
	TemperatureUnit            string         `json:"temperature_unit"`
}

// SwitchConfig is the discovery payload of an MQTT switch.
type SwitchConfig struct {
	Name             string         `json:"name"`
	UniqueID         string         `json:"unique_id"`
	Icon             string         `json:"icon,omitempty"`
	Device           Device         `json:"device"`
	Origin           Origin         `json:"origin"`
	Availability     []Availability `json:"availability"`
	AvailabilityMode string         `json:"availability_mode"`
	CommandTopic     string         `json:"command_topic"`
	StateTopic       string         `json:"state_topic"`
	ValueTemplate    string         `json:"value_template"`
	PayloadOn        string         `json:"payload_on"`
	PayloadOff       string         `json:"payload_off"`
	StateOn          string         `json:"state_on"`
	StateOff         string         `json:"state_off"`
}

// nodeID returns a node id that satisfies Home Assistant's discovery topic format.
func nodeID(id string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, id)
}
