// Package layzspa provides a client for the Lay-Z-Spa cloud API.
//
// Logging in with Client.GetToken returns an API token and the spas registered to the account.
// The token does not expire, so callers typically store it and use Client.Spa to query and
// control a spa afterwards.
package layzspa

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// DefaultBaseURL is the base URL of the Lay-Z-Spa mobile API.
const DefaultBaseURL = "https://mobileapi.lay-z-spa.co.uk/v1/"

// Client calls the Lay-Z-Spa API.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
}

type Option func(*Client)

// WithHTTPClient sets the http.Client used to call the API.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.HTTPClient = httpClient
	}
}

// WithRoundTripper sets the transport of the client's http.Client.
func WithRoundTripper(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.HTTPClient = &http.Client{Transport: rt}
	}
}

// WithBaseURL overrides the API's base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		c.BaseURL = baseURL
	}
}

func New(options ...Option) *Client {
	c := Client{
		HTTPClient: http.DefaultClient,
		BaseURL:    DefaultBaseURL,
	}
	for _, option := range options {
		option(&c)
	}
	return &c
}

// GetToken logs in to the API and returns the API token and the account's devices.
func (c *Client) GetToken(ctx context.Context, email, password string) (Token, error) {
	var token Token
	form := url.Values{
		"email":    {email},
		"password": {password},
	}
	if err := c.call(ctx, "auth/login", form, &token); err != nil {
		return Token{}, err
	}
	if token.Data.APIToken == "" {
		return Token{}, ErrInvalidPasswordOrEmail
	}
	if len(token.Devices) == 0 {
		return Token{}, ErrNoDevices
	}
	return token, nil
}

// Spa returns a handle to query and control the spa with the provided device ID.
func (c *Client) Spa(apiToken, did string) *Spa {
	return &Spa{client: c, apiToken: apiToken, did: did}
}

type envelope struct {
	Message string `json:"message"`
}

func (c *Client) call(ctx context.Context, path string, form url.Values, response any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCannotConnect, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read: %w", ErrCannotConnect, err)
	}

	var env envelope
	_ = json.Unmarshal(body, &env)

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden || isCredentialsMessage(env.Message) {
		if env.Message != "" {
			return fmt.Errorf("%w: %s", ErrInvalidPasswordOrEmail, env.Message)
		}
		return ErrInvalidPasswordOrEmail
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &HTTPError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if response == nil {
		return nil
	}
	if err = json.NewDecoder(bytes.NewReader(body)).Decode(response); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

func isCredentialsMessage(msg string) bool {
	msg = strings.ToLower(msg)
	return strings.Contains(msg, "invalid password") || strings.Contains(msg, "unauthenticated")
}

// Spa queries and controls one spa.
type Spa struct {
	client   *Client
	apiToken string
	did      string
}

// DID returns the spa's device ID.
func (s *Spa) DID() string {
	return s.did
}

// GetStatus returns the current status of the spa.
func (s *Spa) GetStatus(ctx context.Context) (Status, error) {
	var resp struct {
		Data *Status `json:"data"`
	}
	if err := s.client.call(ctx, "gizwits/status", s.form(), &resp); err != nil {
		return Status{}, fmt.Errorf("status: %w", err)
	}
	if resp.Data == nil {
		return Status{}, errors.New("status: no data in response")
	}
	return *resp.Data, nil
}

// SetPower switches the spa on or off.
func (s *Spa) SetPower(ctx context.Context, on bool) error {
	return s.command(ctx, onOff(on, "gizwits/turn_on", "gizwits/turn_off"), nil)
}

// SetHeatPower switches the heater on or off.
func (s *Spa) SetHeatPower(ctx context.Context, on bool) error {
	return s.command(ctx, onOff(on, "gizwits/turn_heat_on", "gizwits/turn_heat_off"), nil)
}

// SetWavePower switches the bubbles on or off.
func (s *Spa) SetWavePower(ctx context.Context, on bool) error {
	return s.command(ctx, onOff(on, "gizwits/turn_wave_on", "gizwits/turn_wave_off"), nil)
}

// SetFilterPower switches the filter pump on or off.
func (s *Spa) SetFilterPower(ctx context.Context, on bool) error {
	return s.command(ctx, onOff(on, "gizwits/turn_filter_on", "gizwits/turn_filter_off"), nil)
}

// SetTargetTemperature sets the target temperature, in the spa's configured unit.
func (s *Spa) SetTargetTemperature(ctx context.Context, temperature int) error {
	return s.command(ctx, "gizwits/temp_set", url.Values{"temperature": {strconv.Itoa(temperature)}})
}

func (s *Spa) command(ctx context.Context, path string, extra url.Values) error {
	form := s.form()
	for key, values := range extra {
		form[key] = values
	}
	if err := s.client.call(ctx, path, form, nil); err != nil {
		return fmt.Errorf("%s: %w", path[strings.LastIndex(path, "/")+1:], err)
	}
	return nil
}

func (s *Spa) form() url.Values {
	return url.Values{
		"api_token": {s.apiToken},
		"did":       {s.did},
	}
}

func onOff(on bool, ifOn, ifOff string) string {
	if on {
		return ifOn
	}
	return ifOff
}
