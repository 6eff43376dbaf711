package poller_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"github.com/rossdargan/layz-spa/internal/poller"
	"github.com/rossdargan/layz-spa/internal/poller/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"log/slog"
	"testing"
	"time"
)

func TestUpdate_LogValue(t *testing.T) {
	var out bytes.Buffer
	l := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey && len(groups) == 0 {
			return slog.Attr{}
		}
		return a
	}}))

	l.Info("update", "update", testutils.Update(testutils.WithTemperature(36, 38), testutils.WithPower(true, false)))
	assert.Equal(t, "level=INFO msg=update update.success=true update.power=true update.heat=false update.temp=36 update.target=38\n", out.String())

	out.Reset()
	l.Info("update", "update", poller.Update{Err: errors.New("failed")})
	assert.Equal(t, "level=INFO msg=update update.success=false update.power=false update.heat=false update.err=failed\n", out.String())
}

func TestUpdate_MarshalJSON(t *testing.T) {
	u := testutils.Update(
		testutils.WithTemperature(36, 38),
		testutils.WithTimestamp(time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)),
		testutils.WithError(errors.New("failed")),
	)
	body, err := json.Marshal(u)
	require.NoError(t, err)
	assert.JSONEq(t, `{
  "status": {"temp_now":36,"temp_set":38,"temp_set_unit":"°C","power":0,"heat_power":0,"wave_power":0,"filter_power":0,"heat_temp_reach":0},
  "timestamp": "2024-06-01T12:00:00Z",
  "error": "failed"
}`, string(body))
}
