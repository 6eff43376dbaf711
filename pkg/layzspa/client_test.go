package layzspa_test

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/rossdargan/layz-spa/pkg/layzspa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

type fakeAPI struct {
	lock     sync.Mutex
	calls    []string
	forms    map[string]map[string]string
	status   string
	failWith int
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.lock.Lock()
	defer f.lock.Unlock()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	_ = r.ParseForm()
	f.calls = append(f.calls, r.URL.Path)
	if f.forms == nil {
		f.forms = make(map[string]map[string]string)
	}
	form := make(map[string]string)
	for key := range r.PostForm {
		form[key] = r.PostForm.Get(key)
	}
	f.forms[r.URL.Path] = form

	if f.failWith != 0 {
		w.WriteHeader(f.failWith)
		_, _ = w.Write([]byte(`{"message":"something went wrong"}`))
		return
	}

	switch r.URL.Path {
	case "/v1/auth/login":
		switch r.PostForm.Get("password") {
		case "secret":
			_, _ = w.Write([]byte(`{"data":{"api_token":"token"},"devices":[{"did":"did-1","device_name":"Garden Spa"}]}`))
		case "nodevices":
			_, _ = w.Write([]byte(`{"data":{"api_token":"token"},"devices":[]}`))
		default:
			_, _ = w.Write([]byte(`{"message":"Invalid password or email"}`))
		}
	case "/v1/gizwits/status":
		if r.PostForm.Get("api_token") != "token" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Unauthenticated."}`))
			return
		}
		_, _ = w.Write([]byte(f.status))
	default:
		_, _ = w.Write([]byte(`{"result":"ok"}`))
	}
}

func (f *fakeAPI) lastCall() (string, map[string]string) {
	f.lock.Lock()
	defer f.lock.Unlock()
	if len(f.calls) == 0 {
		return "", nil
	}
	path := f.calls[len(f.calls)-1]
	return path, f.forms[path]
}

func TestClient_GetToken(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
		want     layzspa.Token
	}{
		{
			name:     "valid",
			password: "secret",
			want: layzspa.Token{
				Data:    layzspa.TokenData{APIToken: "token"},
				Devices: []layzspa.Device{{DID: "did-1", DeviceName: "Garden Spa"}},
			},
		},
		{
			name:     "invalid password",
			password: "wrong",
			wantErr:  layzspa.ErrInvalidPasswordOrEmail,
		},
		{
			name:     "no devices",
			password: "nodevices",
			wantErr:  layzspa.ErrNoDevices,
		},
	}

	s := httptest.NewServer(&fakeAPI{})
	t.Cleanup(s.Close)
	c := layzspa.New(layzspa.WithBaseURL(s.URL + "/v1"))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := c.GetToken(context.Background(), "user@example.com", tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}

func TestClient_GetToken_CannotConnect(t *testing.T) {
	s := httptest.NewServer(&fakeAPI{})
	s.Close()

	c := layzspa.New(layzspa.WithBaseURL(s.URL + "/v1/"))
	_, err := c.GetToken(context.Background(), "user@example.com", "secret")
	assert.ErrorIs(t, err, layzspa.ErrCannotConnect)
}

func TestSpa_GetStatus(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		body    string
		wantErr assert.ErrorAssertionFunc
		want    layzspa.Status
	}{
		{
			name:    "numeric flags",
			token:   "token",
			body:    `{"data":{"temp_now":37,"temp_set":38,"temp_set_unit":"°C","power":1,"heat_power":1,"wave_power":0,"filter_power":1,"heat_temp_reach":0}}`,
			wantErr: assert.NoError,
			want: layzspa.Status{
				TempNow:     layzspa.Number{Value: 37, Valid: true},
				TempSet:     layzspa.Number{Value: 38, Valid: true},
				TempSetUnit: "°C",
				Power:       true,
				HeatPower:   true,
				FilterPower: true,
			},
		},
		{
			name:    "quoted values",
			token:   "token",
			body:    `{"data":{"temp_now":"98","temp_set":"102","temp_set_unit":"°F","power":"true","heat_power":false}}`,
			wantErr: assert.NoError,
			want: layzspa.Status{
				TempNow:     layzspa.Number{Value: 98, Valid: true},
				TempSet:     layzspa.Number{Value: 102, Valid: true},
				TempSetUnit: "°F",
				Power:       true,
			},
		},
		{
			name:    "no data",
			token:   "token",
			body:    `{"message":"device offline"}`,
			wantErr: assert.Error,
		},
		{
			name:  "invalid token",
			token: "expired",
			wantErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorIs(t, err, layzspa.ErrInvalidPasswordOrEmail)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := httptest.NewServer(&fakeAPI{status: tt.body})
			t.Cleanup(s.Close)

			spa := layzspa.New(layzspa.WithBaseURL(s.URL+"/v1")).Spa(tt.token, "did-1")
			status, err := spa.GetStatus(context.Background())
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestSpa_Commands(t *testing.T) {
	tests := []struct {
		name     string
		command  func(context.Context, *layzspa.Spa) error
		wantPath string
		wantForm map[string]string
	}{
		{
			name:     "power on",
			command:  func(ctx context.Context, s *layzspa.Spa) error { return s.SetPower(ctx, true) },
			wantPath: "/v1/gizwits/turn_on",
		},
		{
			name:     "power off",
			command:  func(ctx context.Context, s *layzspa.Spa) error { return s.SetPower(ctx, false) },
			wantPath: "/v1/gizwits/turn_off",
		},
		{
			name:     "heat on",
			command:  func(ctx context.Context, s *layzspa.Spa) error { return s.SetHeatPower(ctx, true) },
			wantPath: "/v1/gizwits/turn_heat_on",
		},
		{
			name:     "heat off",
			command:  func(ctx context.Context, s *layzspa.Spa) error { return s.SetHeatPower(ctx, false) },
			wantPath: "/v1/gizwits/turn_heat_off",
		},
		{
			name:     "bubbles on",
			command:  func(ctx context.Context, s *layzspa.Spa) error { return s.SetWavePower(ctx, true) },
			wantPath: "/v1/gizwits/turn_wave_on",
		},
		{
			name:     "filter off",
			command:  func(ctx context.Context, s *layzspa.Spa) error { return s.SetFilterPower(ctx, false) },
			wantPath: "/v1/gizwits/turn_filter_off",
		},
		{
			name:     "temperature",
			command:  func(ctx context.Context, s *layzspa.Spa) error { return s.SetTargetTemperature(ctx, 38) },
			wantPath: "/v1/gizwits/temp_set",
			wantForm: map[string]string{"temperature": "38"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			api := fakeAPI{}
			s := httptest.NewServer(&api)
			t.Cleanup(s.Close)

			spa := layzspa.New(layzspa.WithBaseURL(s.URL+"/v1")).Spa("token", "did-1")
			require.NoError(t, tt.command(context.Background(), spa))

			path, form := api.lastCall()
			assert.Equal(t, tt.wantPath, path)
			assert.Equal(t, "token", form["api_token"])
			assert.Equal(t, "did-1", form["did"])
			for key, value := range tt.wantForm {
				assert.Equal(t, value, form[key])
			}
		})
	}
}

func TestSpa_Commands_ServerError(t *testing.T) {
	s := httptest.NewServer(&fakeAPI{failWith: http.StatusBadGateway})
	t.Cleanup(s.Close)

	spa := layzspa.New(layzspa.WithBaseURL(s.URL+"/v1")).Spa("token", "did-1")
	err := spa.SetHeatPower(context.Background(), true)
	require.Error(t, err)
	assert.ErrorIs(t, err, layzspa.ErrCannotConnect)

	var httpErr *layzspa.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadGateway, httpErr.StatusCode)
	assert.Equal(t, "turn_heat_on: 502 - something went wrong", err.Error())
}

func TestFlag(t *testing.T) {
	var status struct {
		A layzspa.Flag `json:"a"`
		B layzspa.Flag `json:"b"`
		C layzspa.Flag `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":1,"b":"0","c":true}`), &status))
	assert.True(t, bool(status.A))
	assert.False(t, bool(status.B))
	assert.True(t, bool(status.C))
	assert.Equal(t, 1, status.A.Int())

	assert.Error(t, json.Unmarshal([]byte(`{"a":"maybe"}`), &status))
}

func TestNumber_Ptr(t *testing.T) {
	var n layzspa.Number
	require.NoError(t, json.Unmarshal([]byte(`null`), &n))
	assert.Nil(t, n.Ptr())

	require.NoError(t, json.Unmarshal([]byte(`37.5`), &n))
	require.NotNil(t, n.Ptr())
	assert.Equal(t, 37.5, *n.Ptr())
}

func TestStatus_Heating(t *testing.T) {
	tests := []struct {
		power, heat bool
		want        bool
	}{
		{power: false, heat: false, want: false},
		{power: false, heat: true, want: false},
		{power: true, heat: false, want: false},
		{power: true, heat: true, want: true},
	}
	for _, tt := range tests {
		s := layzspa.Status{Power: layzspa.Flag(tt.power), HeatPower: layzspa.Flag(tt.heat)}
		assert.Equal(t, tt.want, s.Heating())
	}
}
