package testutils

import (
	"github.com/rossdargan/layz-spa/internal/poller"
	"github.com/rossdargan/layz-spa/pkg/layzspa"
	"time"
)

func Update(options ...UpdateOption) poller.Update {
	u := poller.Update{Status: layzspa.Status{TempSetUnit: "°C"}}
	for _, option := range options {
		option(&u)
	}
	return u
}

type UpdateOption func(*poller.Update)

func WithTemperature(current, target float64) UpdateOption {
	return func(u *poller.Update) {
		u.Status.TempNow = layzspa.Number{Value: current, Valid: true}
		u.Status.TempSet = layzspa.Number{Value: target, Valid: true}
	}
}

func WithUnit(unit string) UpdateOption {
	return func(u *poller.Update) {
		u.Status.TempSetUnit = unit
	}
}

func WithPower(power, heat bool) UpdateOption {
	return func(u *poller.Update) {
		u.Status.Power = layzspa.Flag(power)
		u.Status.HeatPower = layzspa.Flag(heat)
	}
}

func WithBubbles(on bool) UpdateOption {
	return func(u *poller.Update) {
		u.Status.WavePower = layzspa.Flag(on)
	}
}

func WithFilter(on bool) UpdateOption {
	return func(u *poller.Update) {
		u.Status.FilterPower = layzspa.Flag(on)
	}
}

func WithError(err error) UpdateOption {
	return func(u *poller.Update) {
		u.Err = err
	}
}

func WithTimestamp(timestamp time.Time) UpdateOption {
	return func(u *poller.Update) {
		u.Timestamp = timestamp
	}
}
