package layzspa

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Token is the reply to a successful login.
type Token struct {
	Data    TokenData `json:"data"`
	Devices []Device  `json:"devices"`
}

type TokenData struct {
	APIToken string `json:"api_token"`
}

// Device is a spa registered to the account.
type Device struct {
	DID        string `json:"did"`
	DeviceName string `json:"device_name"`
}

// Status is a snapshot of the spa, as reported by the vendor.
type Status struct {
	TempNow       Number `json:"temp_now"`
	TempSet       Number `json:"temp_set"`
	TempSetUnit   string `json:"temp_set_unit"`
	Power         Flag   `json:"power"`
	HeatPower     Flag   `json:"heat_power"`
	WavePower     Flag   `json:"wave_power"`
	FilterPower   Flag   `json:"filter_power"`
	HeatTempReach Flag   `json:"heat_temp_reach"`
}

// Flag is an on/off attribute. The API reports these as 0/1, but booleans and quoted values have been observed too.
// Heating returns true if both the spa and its heater are switched on.
func (s Status) Heating() bool {
	return bool(s.Power && s.HeatPower)
}

type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	switch string(data) {
	case "1", "true", "on", "ON":
		*f = true
	case "0", "false", "off", "OFF", "", "null":
		*f = false
	default:
		return fmt.Errorf("invalid flag value: %q", string(data))
	}
	return nil
}

func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

// Int returns 1 if the flag is set, 0 otherwise.
func (f Flag) Int() int {
	if f {
		return 1
	}
	return 0
}

// Number is a temperature reading. Valid is false if the API did not report a value.
type Number struct {
	Value float64
	Valid bool
}

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*n = Number{}
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid number: %w", err)
	}
	*n = Number{Value: v, Valid: true}
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Ptr returns the value as a pointer, or nil if no value was reported.
func (n Number) Ptr() *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}
