package cli

import (
	"bytes"
	"context"
	"github.com/clambin/go-common/charmer"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
)

func fakeVendor() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		if r.PostForm.Get("password") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Invalid password or email"}`))
			return
		}
		_, _ = w.Write([]byte(`{"data":{"api_token":"token"},"devices":[{"did":"did-1","device_name":"Garden Spa"}]}`))
	}))
}

func testConfig(t *testing.T, url string) *viper.Viper {
	t.Helper()
	v := viper.New()
	v.Set("api.url", url+"/v1/")
	v.Set("entries.path", filepath.Join(t.TempDir(), "entries.yaml"))
	return v
}

func TestLogin(t *testing.T) {
	s := fakeVendor()
	t.Cleanup(s.Close)
	v := testConfig(t, s.URL)
	ctx := context.Background()

	var out bytes.Buffer
	err := login(ctx, v, "user@example.com", "wrong", &out, slog.Default())
	require.Error(t, err)
	assert.Equal(t, "login failed: base: invalid_auth", err.Error())

	err = login(ctx, v, "", "", &out, slog.Default())
	require.Error(t, err)
	assert.Equal(t, "login failed: email: required, password: required", err.Error())

	require.NoError(t, login(ctx, v, "user@example.com", "secret", &out, slog.Default()))
	assert.Equal(t, "added Garden Spa (did-1)\n", out.String())

	out.Reset()
	require.NoError(t, listEntries(v, &out))
	assert.Equal(t, "ID     TITLE\ndid-1  Garden Spa\n", out.String())

	out.Reset()
	require.NoError(t, removeEntry(v, "did-1", &out))
	assert.Equal(t, "removed did-1\n", out.String())

	assert.Error(t, removeEntry(v, "did-1", &out))
}

func TestRun_NoEntries(t *testing.T) {
	v := testConfig(t, "http://localhost")
	assert.ErrorContains(t, run(context.Background(), v, "1.0", slog.Default()), "no spas configured")
}

func TestRootCmd_Flags(t *testing.T) {
	for key := range arguments {
		assert.NotNil(t, RootCmd.PersistentFlags().Lookup(key), key)
	}
	assert.Equal(t, ":9090", viper.GetString("exporter.addr"))
	assert.Equal(t, "C", viper.GetString("display.unit"))
}

func TestRootCmd_Logger(t *testing.T) {
	cmd := cobra.Command{}
	RootCmd.PersistentPreRun(&cmd, nil)
	assert.NotSame(t, slog.Default(), charmer.GetLogger(&cmd))
}
