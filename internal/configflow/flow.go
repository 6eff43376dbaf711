// Package configflow implements the login step that turns a user's credentials into a stored config entry.
package configflow

import (
	"context"
	"errors"
	"github.com/rossdargan/layz-spa/pkg/layzspa"
	"log/slog"
	"strings"
)

const (
	StepUser = "user"

	ErrorInvalidAuth   = "invalid_auth"
	ErrorCannotConnect = "cannot_connect"
	ErrorUnknown       = "unknown"
	ErrorRequired      = "required"

	fieldEmail    = "email"
	fieldPassword = "password"
	fieldBase     = "base"
)

type ResultType string

const (
	ResultTypeForm        ResultType = "form"
	ResultTypeCreateEntry ResultType = "create_entry"
)

// Field describes one input of the login form.
type Field struct {
	Name     string
	Required bool
	Secret   bool
}

// Schema is the login form.
var Schema = []Field{
	{Name: fieldEmail, Required: true},
	{Name: fieldPassword, Required: true, Secret: true},
}

type UserInput struct {
	Email    string
	Password string
}

// Result is the outcome of a step: either a form to (re)display, or an entry to create.
type Result struct {
	Type   ResultType
	StepID string
	Schema []Field
	Errors map[string]string
	Title  string
	Data   Data
}

// Entry returns the config entry created by the step.
func (r Result) Entry() Entry {
	return Entry{ID: r.Data.DID, Title: r.Title, Data: r.Data}
}

type Authenticator interface {
	GetToken(ctx context.Context, email, password string) (layzspa.Token, error)
}

type Flow struct {
	Auth   Authenticator
	Logger *slog.Logger
}

// Step handles the user step. Without input, it returns the login form. With input, it validates the credentials
// and either creates an entry or returns the form with the errors found.
func (f Flow) Step(ctx context.Context, input *UserInput) Result {
	if input == nil {
		return showForm(nil)
	}

	errs := make(map[string]string)
	if strings.TrimSpace(input.Email) == "" {
		errs[fieldEmail] = ErrorRequired
	}
	if input.Password == "" {
		errs[fieldPassword] = ErrorRequired
	}
	if len(errs) > 0 {
		return showForm(errs)
	}

	data, err := f.validate(ctx, *input)
	switch {
	case err == nil:
		// the API token never expires: store it instead of the username & password
		return Result{Type: ResultTypeCreateEntry, Title: data.Name, Data: data}
	case errors.Is(err, layzspa.ErrInvalidPasswordOrEmail):
		errs[fieldBase] = ErrorInvalidAuth
	case errors.Is(err, layzspa.ErrCannotConnect), errors.Is(err, context.DeadlineExceeded):
		errs[fieldBase] = ErrorCannotConnect
	default:
		f.Logger.Error("unexpected exception", slog.Any("err", err))
		errs[fieldBase] = ErrorUnknown
	}
	return showForm(errs)
}

func (f Flow) validate(ctx context.Context, input UserInput) (Data, error) {
	token, err := f.Auth.GetToken(ctx, strings.TrimSpace(input.Email), input.Password)
	if err != nil {
		return Data{}, err
	}
	if len(token.Devices) == 0 {
		return Data{}, layzspa.ErrNoDevices
	}
	return Data{
		API:  token.Data.APIToken,
		DID:  token.Devices[0].DID,
		Name: token.Devices[0].DeviceName,
	}, nil
}

func showForm(errs map[string]string) Result {
	return Result{
		Type:   ResultTypeForm,
		StepID: StepUser,
		Schema: Schema,
		Errors: errs,
	}
}
