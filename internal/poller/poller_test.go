package poller_test

import (
	"context"
	"errors"
	"github.com/rossdargan/layz-spa/internal/poller"
	"github.com/rossdargan/layz-spa/internal/poller/mocks"
	"github.com/rossdargan/layz-spa/pkg/layzspa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"log/slog"
	"testing"
	"time"
)

var status = layzspa.Status{
	TempNow:     layzspa.Number{Value: 36, Valid: true},
	TempSet:     layzspa.Number{Value: 38, Valid: true},
	TempSetUnit: "°C",
	Power:       true,
	HeatPower:   true,
}

func TestSpaPoller_Run(t *testing.T) {
	api := mocks.NewSpaGetter(t)
	api.EXPECT().GetStatus(mock.Anything).Return(status, nil).Once()

	p := poller.New(api, time.Hour, time.Second, slog.Default())
	ctx, cancel := context.WithCancel(context.Background())

	ch := p.Subscribe()
	errCh := make(chan error)
	go func() { errCh <- p.Run(ctx) }()
	p.Refresh()

	update := <-ch
	require.NoError(t, update.Err)
	assert.True(t, update.Success())
	assert.Equal(t, status, update.Status)
	assert.False(t, update.Timestamp.IsZero())

	last, ok := p.LastUpdate()
	require.True(t, ok)
	assert.Equal(t, update, last)

	p.Unsubscribe(ch)
	cancel()
	assert.NoError(t, <-errCh)
}

func TestSpaPoller_Run_InvalidCredentials(t *testing.T) {
	api := mocks.NewSpaGetter(t)
	api.EXPECT().GetStatus(mock.Anything).Return(status, nil).Once()
	api.EXPECT().GetStatus(mock.Anything).Return(layzspa.Status{}, layzspa.ErrInvalidPasswordOrEmail).Once()
	api.EXPECT().GetStatus(mock.Anything).Return(status, nil).Once()

	p := poller.New(api, time.Hour, time.Second, slog.Default())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := p.Subscribe()
	errCh := make(chan error)
	go func() { errCh <- p.Run(ctx) }()

	p.Refresh()
	update := <-ch
	require.True(t, update.Success())

	p.Refresh()
	update = <-ch
	require.Error(t, update.Err)
	var failed *poller.UpdateFailedError
	require.ErrorAs(t, update.Err, &failed)
	assert.Equal(t, "The password or email address is invalid: invalid password or email", failed.Error())
	assert.ErrorIs(t, update.Err, layzspa.ErrInvalidPasswordOrEmail)
	assert.Equal(t, status, update.Status, "failed poll should keep the last good status")

	// only one failure is reported
	select {
	case u := <-ch:
		t.Fatalf("unexpected update: %v", u)
	case <-time.After(50 * time.Millisecond):
	}

	// poller is still running
	p.Refresh()
	update = <-ch
	assert.True(t, update.Success())

	cancel()
	assert.NoError(t, <-errCh)
}

func TestSpaPoller_Run_UnexpectedError(t *testing.T) {
	api := mocks.NewSpaGetter(t)
	api.EXPECT().GetStatus(mock.Anything).Return(layzspa.Status{}, errors.New("connection reset")).Once()

	p := poller.New(api, time.Hour, time.Second, slog.Default())
	ctx, cancel := context.WithCancel(context.Background())

	ch := p.Subscribe()
	errCh := make(chan error)
	go func() { errCh <- p.Run(ctx) }()
	p.Refresh()

	update := <-ch
	require.Error(t, update.Err)
	var failed *poller.UpdateFailedError
	assert.False(t, errors.As(update.Err, &failed))
	assert.Equal(t, "connection reset", update.Err.Error())

	cancel()
	assert.NoError(t, <-errCh)
}

func TestSpaPoller_Run_NoSubscribers(t *testing.T) {
	api := mocks.NewSpaGetter(t)

	p := poller.New(api, 10*time.Millisecond, time.Second, slog.Default())
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error)
	go func() { errCh <- p.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()
	assert.NoError(t, <-errCh)
	api.AssertNotCalled(t, "GetStatus", mock.Anything)

	_, ok := p.LastUpdate()
	assert.False(t, ok)
}

func TestSpaPoller_Run_Scheduled(t *testing.T) {
	api := mocks.NewSpaGetter(t)
	api.EXPECT().GetStatus(mock.Anything).Return(status, nil)

	p := poller.New(api, 10*time.Millisecond, time.Second, slog.Default())
	ctx, cancel := context.WithCancel(context.Background())
	ch := p.Subscribe()
	errCh := make(chan error)
	go func() { errCh <- p.Run(ctx) }()

	update := <-ch
	assert.True(t, update.Success())

	p.Unsubscribe(ch)
	cancel()
	assert.NoError(t, <-errCh)
}

func TestSpaPoller_Run_Timeout(t *testing.T) {
	api := mocks.NewSpaGetter(t)
	api.EXPECT().GetStatus(mock.Anything).RunAndReturn(func(ctx context.Context) (layzspa.Status, error) {
		<-ctx.Done()
		return layzspa.Status{}, ctx.Err()
	}).Once()

	p := poller.New(api, time.Hour, 10*time.Millisecond, slog.Default())
	err := p.FirstRefresh(context.Background())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSpaPoller_FirstRefresh(t *testing.T) {
	api := mocks.NewSpaGetter(t)
	api.EXPECT().GetStatus(mock.Anything).Return(status, nil).Once()

	p := poller.New(api, time.Hour, time.Second, slog.Default())
	require.NoError(t, p.FirstRefresh(context.Background()))

	last, ok := p.LastUpdate()
	require.True(t, ok)
	assert.Equal(t, status, last.Status)
}
