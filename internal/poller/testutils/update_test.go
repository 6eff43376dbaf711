package testutils

import (
	"errors"
	"github.com/rossdargan/layz-spa/pkg/layzspa"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestUpdate(t *testing.T) {
	u := Update(
		WithTemperature(36, 38),
		WithPower(true, false),
		WithBubbles(true),
		WithFilter(true),
	)
	assert.Equal(t, "°C", u.Status.TempSetUnit)
	assert.Equal(t, layzspa.Number{Value: 36, Valid: true}, u.Status.TempNow)
	assert.Equal(t, layzspa.Number{Value: 38, Valid: true}, u.Status.TempSet)
	assert.True(t, bool(u.Status.Power))
	assert.False(t, bool(u.Status.HeatPower))
	assert.True(t, bool(u.Status.WavePower))
	assert.True(t, bool(u.Status.FilterPower))
	assert.True(t, u.Success())

	u = Update(WithUnit("°F"), WithError(errors.New("fail")))
	assert.Equal(t, "°F", u.Status.TempSetUnit)
	assert.False(t, u.Success())
}
