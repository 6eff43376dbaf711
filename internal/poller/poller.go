package poller

import (
	"context"
	"errors"
	"fmt"
	"github.com/rossdargan/layz-spa/pkg/layzspa"
	"github.com/rossdargan/layz-spa/pkg/pubsub"
	"log/slog"
	"sync"
	"time"
)

const (
	DefaultInterval = time.Minute
	DefaultTimeout  = 10 * time.Second
)

type Poller interface {
	Subscribe() <-chan Update
	Unsubscribe(ch <-chan Update)
	Refresh()
}

type SpaGetter interface {
	GetStatus(context.Context) (layzspa.Status, error)
}

var _ Poller = &SpaPoller{}

// SpaPoller polls the status of one spa and publishes it to its subscribers.
// Scheduled polls only take place while there is at least one subscriber.
type SpaPoller struct {
	Spa SpaGetter
	*pubsub.Publisher[Update]
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
	refresh  chan struct{}
	lock     sync.RWMutex
	last     *Update
}

func New(spa SpaGetter, interval, timeout time.Duration, logger *slog.Logger) *SpaPoller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &SpaPoller{
		Spa:       spa,
		Publisher: pubsub.New[Update](logger.With(slog.String("component", "pubsub"))),
		interval:  interval,
		timeout:   timeout,
		logger:    logger,
		refresh:   make(chan struct{}, 1),
	}
}

func (p *SpaPoller) Run(ctx context.Context) error {
	p.logger.Debug("started", slog.Duration("interval", p.interval))
	defer p.logger.Debug("stopped")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if p.Subscribers() == 0 {
				p.logger.Debug("no subscribers. skipping poll")
				continue
			}
			p.poll(ctx)
		case <-p.refresh:
			p.poll(ctx)
		}
	}
}

// Refresh schedules an immediate poll. It doesn't wait for the poll to complete.
func (p *SpaPoller) Refresh() {
	select {
	case p.refresh <- struct{}{}:
	default:
	}
}

// FirstRefresh polls the spa once and returns the poll's error, so setup can fail if the spa can't be reached.
func (p *SpaPoller) FirstRefresh(ctx context.Context) error {
	return p.poll(ctx).Err
}

// LastUpdate returns the most recent update, if any.
func (p *SpaPoller) LastUpdate() (Update, bool) {
	p.lock.RLock()
	defer p.lock.RUnlock()
	if p.last == nil {
		return Update{}, false
	}
	return *p.last, true
}

func (p *SpaPoller) poll(ctx context.Context) Update {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	status, err := p.Spa.GetStatus(ctx)

	p.lock.Lock()
	previous := p.last
	update := Update{Status: status, Timestamp: start}
	if err != nil {
		update.Err = p.failure(err)
		// keep the last good snapshot
		if previous != nil {
			update.Status = previous.Status
		}
	} else {
		if previous != nil && previous.Err != nil {
			p.logger.Info("fetching spa status recovered")
		}
		p.logger.Debug("poll completed", slog.Duration("duration", time.Since(start)))
	}
	p.last = &update
	p.lock.Unlock()

	p.Publisher.Publish(update)
	return update
}

func (p *SpaPoller) failure(err error) error {
	if errors.Is(err, layzspa.ErrInvalidPasswordOrEmail) {
		failed := &UpdateFailedError{
			Message: fmt.Sprintf("The password or email address is invalid: %v", err),
			Err:     err,
		}
		p.logger.Error("error fetching spa status", slog.String("err", failed.Message))
		return failed
	}
	p.logger.Error("unexpected error fetching spa status", slog.Any("err", err))
	return err
}

// UpdateFailedError reports a poll that failed for a known reason.
type UpdateFailedError struct {
	Message string
	Err     error
}

func (e *UpdateFailedError) Error() string {
	return e.Message
}

func (e *UpdateFailedError) Unwrap() error {
	return e.Err
}
