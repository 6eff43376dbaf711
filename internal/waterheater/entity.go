// Package waterheater presents a spa as a water heater: display properties derived from the last polled status,
// and commands that map user actions onto the spa's API.
package waterheater

import (
	"context"
	"github.com/rossdargan/layz-spa/internal/poller"
	"github.com/rossdargan/layz-spa/pkg/layzspa"
	"log/slog"
	"sync"
)

const (
	DefaultMinTemp = 0.0
	DefaultMaxTemp = 40.0

	Domain = "layz_spa"
	Icon   = "mdi:hot-tub"

	StateOn  = "on"
	StateOff = "off"

	AttrCurrentTemperature = "current_temperature"
	AttrTemperature        = "temperature"
	AttrMinTemp            = "min_temp"
	AttrMaxTemp            = "max_temp"
	AttrAwayMode           = "away"
	AttrHeatPower          = "Heat Power"
	AttrPower              = "Power"
	AttrBubblesPower       = "Bubbles Power"
	AttrFilterPower        = "Filter Power"
)

type SupportedFeature int

const (
	SupportTargetTemperature SupportedFeature = 1 << iota
	SupportOperationMode
	SupportAwayMode
)

type SpaSetter interface {
	SetPower(ctx context.Context, on bool) error
	SetHeatPower(ctx context.Context, on bool) error
	SetWavePower(ctx context.Context, on bool) error
	SetFilterPower(ctx context.Context, on bool) error
	SetTargetTemperature(ctx context.Context, temperature int) error
}

// WaterHeater is the water heater entity for one spa.
type WaterHeater struct {
	Spa      SpaSetter
	Poller   poller.Poller
	title    string
	did      string
	hostUnit Unit
	logger   *slog.Logger

	lock    sync.RWMutex
	update  poller.Update
	updated bool

	listenerLock sync.Mutex
	listeners    map[int]func()
	nextListener int
}

func New(spa SpaSetter, p poller.Poller, title, did string, hostUnit Unit, logger *slog.Logger) *WaterHeater {
	return &WaterHeater{
		Spa:       spa,
		Poller:    p,
		title:     title,
		did:       did,
		hostUnit:  hostUnit,
		logger:    logger,
		listeners: make(map[int]func()),
	}
}

// Run subscribes to the poller and writes the entity's state on every update, until the context is cancelled.
func (w *WaterHeater) Run(ctx context.Context) error {
	w.logger.Debug("started")
	defer w.logger.Debug("stopped")

	ch := w.Poller.Subscribe()
	defer w.Poller.Unsubscribe(ch)

	w.writeState()
	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-ch:
			w.setUpdate(update)
			w.writeState()
		}
	}
}

// Seed sets the entity's state before it starts receiving updates, e.g. from the poller's first refresh.
func (w *WaterHeater) Seed(update poller.Update) {
	w.setUpdate(update)
}

func (w *WaterHeater) setUpdate(update poller.Update) {
	w.lock.Lock()
	defer w.lock.Unlock()
	w.update = update
	w.updated = true
	w.logger.Debug("update received", slog.Any("update", update))
}

// AddListener registers a function that is called whenever the entity's state is written. The returned function removes it.
func (w *WaterHeater) AddListener(f func()) func() {
	w.listenerLock.Lock()
	defer w.listenerLock.Unlock()
	id := w.nextListener
	w.nextListener++
	w.listeners[id] = f
	return func() {
		w.listenerLock.Lock()
		defer w.listenerLock.Unlock()
		delete(w.listeners, id)
	}
}

func (w *WaterHeater) writeState() {
	w.listenerLock.Lock()
	listeners := make([]func(), 0, len(w.listeners))
	for _, f := range w.listeners {
		listeners = append(listeners, f)
	}
	w.listenerLock.Unlock()

	for _, f := range listeners {
		f()
	}
}

func (w *WaterHeater) status() layzspa.Status {
	w.lock.RLock()
	defer w.lock.RUnlock()
	return w.update.Status
}

// Available returns true if the last poll succeeded.
func (w *WaterHeater) Available() bool {
	w.lock.RLock()
	defer w.lock.RUnlock()
	return w.updated && w.update.Success()
}

func (w *WaterHeater) Name() string {
	return w.title
}

func (w *WaterHeater) DeviceID() string {
	return w.did
}

func (w *WaterHeater) UniqueID() string {
	return Domain + "." + w.did
}

func (w *WaterHeater) Icon() string {
	return Icon
}

func (w *WaterHeater) SupportedFeatures() SupportedFeature {
	return SupportTargetTemperature | SupportAwayMode
}

func (w *WaterHeater) Precision() Precision {
	return PrecisionWhole
}

// TemperatureUnit returns the unit the spa reports its temperatures in.
func (w *WaterHeater) TemperatureUnit() Unit {
	return SpaUnit(w.status().TempSetUnit)
}

// HostUnit returns the unit temperatures are displayed in.
func (w *WaterHeater) HostUnit() Unit {
	return w.hostUnit
}

func (w *WaterHeater) CurrentTemperature() *float64 {
	return w.status().TempNow.Ptr()
}

func (w *WaterHeater) TargetTemperature() *float64 {
	return w.status().TempSet.Ptr()
}

func (w *WaterHeater) MinTemp() float64 {
	return Convert(DefaultMinTemp, Celsius, w.TemperatureUnit())
}

func (w *WaterHeater) MaxTemp() float64 {
	return Convert(DefaultMaxTemp, Celsius, w.TemperatureUnit())
}

// IsAwayModeOn returns true unless both the spa and its heater are switched on.
func (w *WaterHeater) IsAwayModeOn() bool {
	s := w.status()
	return !s.Heating()
}

// State returns the current temperature, in the display unit.
func (w *WaterHeater) State() *float64 {
	return w.display(w.CurrentTemperature())
}

func (w *WaterHeater) display(temperature *float64) *float64 {
	return DisplayTemp(temperature, w.TemperatureUnit(), w.hostUnit, w.Precision())
}

func (w *WaterHeater) CapabilityAttributes() map[string]any {
	minTemp, maxTemp := w.MinTemp(), w.MaxTemp()
	data := map[string]any{
		AttrMinTemp: w.display(&minTemp),
		AttrMaxTemp: w.display(&maxTemp),
	}
	if w.SupportedFeatures()&SupportAwayMode != 0 {
		data[AttrAwayMode] = onOff(w.IsAwayModeOn())
	}
	return data
}

func (w *WaterHeater) StateAttributes() map[string]any {
	s := w.status()
	data := map[string]any{
		AttrCurrentTemperature: w.display(s.TempNow.Ptr()),
		AttrTemperature:        w.display(s.TempSet.Ptr()),
		AttrHeatPower:          s.HeatPower.Int(),
		AttrPower:              s.Power.Int(),
		AttrBubblesPower:       s.WavePower.Int(),
		AttrFilterPower:        s.FilterPower.Int(),
	}
	if w.SupportedFeatures()&SupportAwayMode != 0 {
		data[AttrAwayMode] = onOff(w.IsAwayModeOn())
	}
	return data
}

// SetTemperature sets the target temperature. The temperature is in the spa's unit and is truncated to whole degrees.
func (w *WaterHeater) SetTemperature(ctx context.Context, temperature float64) error {
	defer w.Poller.Refresh()
	return w.Spa.SetTargetTemperature(ctx, int(temperature))
}

// TurnAwayModeOn switches off the heater.
func (w *WaterHeater) TurnAwayModeOn(ctx context.Context) error {
	defer w.Poller.Refresh()
	w.logger.Warn("turning away mode on")
	return w.Spa.SetHeatPower(ctx, false)
}

// TurnAwayModeOff switches on the heater, switching on the spa first if it is off.
// If switching on the heater fails, the spa stays on.
func (w *WaterHeater) TurnAwayModeOff(ctx context.Context) error {
	defer w.Poller.Refresh()
	w.logger.Warn("turning on heat")
	if !w.status().Power {
		w.logger.Warn("turning on power")
		if err := w.Spa.SetPower(ctx, true); err != nil {
			return err
		}
	}
	return w.Spa.SetHeatPower(ctx, true)
}

// SetBubbles switches the bubbles on or off.
func (w *WaterHeater) SetBubbles(ctx context.Context, on bool) error {
	defer w.Poller.Refresh()
	return w.Spa.SetWavePower(ctx, on)
}

// SetFilter switches the filter pump on or off.
func (w *WaterHeater) SetFilter(ctx context.Context, on bool) error {
	defer w.Poller.Refresh()
	return w.Spa.SetFilterPower(ctx, on)
}

// Refresh requests an immediate poll of the spa.
func (w *WaterHeater) Refresh() {
	w.Poller.Refresh()
}

func onOff(on bool) string {
	if on {
		return StateOn
	}
	return StateOff
}
