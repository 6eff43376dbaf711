package bot

import (
	"context"
	"errors"
	"fmt"
	"github.com/clambin/go-common/slackbot"
	"github.com/rossdargan/layz-spa/internal/waterheater"
	"github.com/slack-go/slack"
	"log/slog"
	"slices"
	"strconv"
	"strings"
)

type Bot struct {
	slack  SlackBot
	spas   []Spa
	logger *slog.Logger
}

type SlackBot interface {
	Add(commands slackbot.Commands)
	Run(ctx context.Context) error
	Send(channel string, attachments []slack.Attachment) error
}

// Spa is the water heater entity of one spa.
type Spa interface {
	Name() string
	Available() bool
	CurrentTemperature() *float64
	TargetTemperature() *float64
	TemperatureUnit() waterheater.Unit
	IsAwayModeOn() bool
	StateAttributes() map[string]any
	SetTemperature(ctx context.Context, temperature float64) error
	TurnAwayModeOn(ctx context.Context) error
	TurnAwayModeOff(ctx context.Context) error
	SetBubbles(ctx context.Context, on bool) error
	SetFilter(ctx context.Context, on bool) error
	Refresh()
}

func New(slackBot SlackBot, spas []Spa, logger *slog.Logger) *Bot {
	b := Bot{
		slack:  slackBot,
		spas:   spas,
		logger: logger,
	}
	slackBot.Add(slackbot.Commands{
		"spa":     slackbot.HandlerFunc(b.ReportSpas),
		"away":    slackbot.HandlerFunc(b.SetAwayMode),
		"temp":    slackbot.HandlerFunc(b.SetTemperature),
		"bubbles": b.switchCommand("bubbles", Spa.SetBubbles),
		"filter":  b.switchCommand("filter", Spa.SetFilter),
		"refresh": slackbot.HandlerFunc(b.DoRefresh),
	})
	return &b
}

// Run the bot
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Debug("started")
	defer b.logger.Debug("stopped")
	return b.slack.Run(ctx)
}

func (b *Bot) ReportSpas(_ context.Context, _ ...string) []slack.Attachment {
	if len(b.spas) == 0 {
		return []slack.Attachment{{Color: "bad", Text: "no spas found"}}
	}

	text := make([]string, 0, len(b.spas))
	for _, spa := range b.spas {
		text = append(text, spaState(spa))
	}
	slices.Sort(text)

	return []slack.Attachment{{
		Color: "good",
		Title: "spas:",
		Text:  strings.Join(text, "\n"),
	}}
}

func spaState(spa Spa) string {
	if !spa.Available() {
		return spa.Name() + ": unavailable"
	}
	unit := string(spa.TemperatureUnit())
	attributes := spa.StateAttributes()
	return fmt.Sprintf("%s: %s (target: %s, away mode: %s, power: %s, heater: %s, bubbles: %s, filter: %s)",
		spa.Name(),
		formatTemperature(spa.CurrentTemperature(), unit),
		formatTemperature(spa.TargetTemperature(), unit),
		map[bool]string{true: "on", false: "off"}[spa.IsAwayModeOn()],
		flag(attributes[waterheater.AttrPower]),
		flag(attributes[waterheater.AttrHeatPower]),
		flag(attributes[waterheater.AttrBubblesPower]),
		flag(attributes[waterheater.AttrFilterPower]),
	)
}

func formatTemperature(temperature *float64, unit string) string {
	if temperature == nil {
		return "unknown"
	}
	return strconv.FormatFloat(*temperature, 'f', -1, 64) + unit
}

func flag(value any) string {
	if v, ok := value.(int); ok && v == 1 {
		return "on"
	}
	return "off"
}

func (b *Bot) SetAwayMode(ctx context.Context, args ...string) []slack.Attachment {
	if len(args) < 1 || (args[0] != "on" && args[0] != "off") {
		return failure(errors.New("missing parameter\nUsage: away on|off [<spa>]"))
	}
	spa, err := b.findSpa(args[1:]...)
	if err != nil {
		return failure(err)
	}

	if args[0] == "on" {
		err = spa.TurnAwayModeOn(ctx)
	} else {
		err = spa.TurnAwayModeOff(ctx)
	}
	if err != nil {
		return failure(fmt.Errorf("failed: %w", err))
	}
	return []slack.Attachment{{Color: "good", Text: "Setting away mode for " + spa.Name() + " to " + args[0]}}
}

func (b *Bot) SetTemperature(ctx context.Context, args ...string) []slack.Attachment {
	if len(args) < 1 {
		return failure(errors.New("missing parameter\nUsage: temp <temperature> [<spa>]"))
	}
	temperature, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return failure(fmt.Errorf("invalid target temperature: %q", args[0]))
	}
	spa, err := b.findSpa(args[1:]...)
	if err != nil {
		return failure(err)
	}

	if err = spa.SetTemperature(ctx, temperature); err != nil {
		return failure(fmt.Errorf("failed: %w", err))
	}
	return []slack.Attachment{{
		Color: "good",
		Text:  "Setting target temperature for " + spa.Name() + " to " + formatTemperature(&temperature, string(spa.TemperatureUnit())),
	}}
}

func (b *Bot) switchCommand(name string, set func(Spa, context.Context, bool) error) slackbot.HandlerFunc {
	return func(ctx context.Context, args ...string) []slack.Attachment {
		if len(args) < 1 || (args[0] != "on" && args[0] != "off") {
			return failure(fmt.Errorf("missing parameter\nUsage: %s on|off [<spa>]", name))
		}
		spa, err := b.findSpa(args[1:]...)
		if err != nil {
			return failure(err)
		}
		if err = set(spa, ctx, args[0] == "on"); err != nil {
			return failure(fmt.Errorf("failed: %w", err))
		}
		return []slack.Attachment{{Color: "good", Text: "Switching " + name + " for " + spa.Name() + " " + args[0]}}
	}
}

func (b *Bot) DoRefresh(_ context.Context, _ ...string) []slack.Attachment {
	for _, spa := range b.spas {
		spa.Refresh()
	}
	return []slack.Attachment{{Text: "refreshing spa status"}}
}

// findSpa returns the spa with the provided name. The name may be omitted if there is only one spa.
func (b *Bot) findSpa(name ...string) (Spa, error) {
	if len(name) == 0 {
		switch len(b.spas) {
		case 0:
			return nil, errors.New("no spas found")
		case 1:
			return b.spas[0], nil
		default:
			return nil, errors.New("more than one spa found. please specify the spa's name")
		}
	}
	spaName := strings.Join(name, " ")
	for _, spa := range b.spas {
		if strings.EqualFold(spa.Name(), spaName) {
			return spa, nil
		}
	}
	return nil, fmt.Errorf("invalid spa name: %s", spaName)
}

func failure(err error) []slack.Attachment {
	return []slack.Attachment{{Color: "bad", Text: err.Error()}}
}
