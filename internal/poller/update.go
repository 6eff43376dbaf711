package poller

import (
	"encoding/json"
	"github.com/rossdargan/layz-spa/pkg/layzspa"
	"log/slog"
	"time"
)

// Update is the result of one poll. On failure, Err is set and Status holds the last successfully polled status.
type Update struct {
	Status    layzspa.Status
	Timestamp time.Time
	Err       error
}

// Success returns true if the poll succeeded.
func (u Update) Success() bool {
	return u.Err == nil
}

func (u Update) MarshalJSON() ([]byte, error) {
	var errString string
	if u.Err != nil {
		errString = u.Err.Error()
	}
	return json.Marshal(struct {
		Status    layzspa.Status `json:"status"`
		Timestamp time.Time      `json:"timestamp"`
		Error     string         `json:"error,omitempty"`
	}{
		Status:    u.Status,
		Timestamp: u.Timestamp,
		Error:     errString,
	})
}

func (u Update) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Bool("success", u.Success()),
		slog.Bool("power", bool(u.Status.Power)),
		slog.Bool("heat", bool(u.Status.HeatPower)),
	}
	if u.Status.TempNow.Valid {
		attrs = append(attrs, slog.Float64("temp", u.Status.TempNow.Value))
	}
	if u.Status.TempSet.Valid {
		attrs = append(attrs, slog.Float64("target", u.Status.TempSet.Value))
	}
	if u.Err != nil {
		attrs = append(attrs, slog.String("err", u.Err.Error()))
	}
	return slog.GroupValue(attrs...)
}
