package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsEveryUnsetField(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultAdminEmail, cfg.App.AdminEmail)
	assert.Equal(t, DefaultAdminPassword, cfg.App.AdminPassword)
	assert.Equal(t, DefaultStatePath, cfg.Storage.StatePath)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultJobsBaseURL, cfg.Jobs.BaseURL)
	assert.Equal(t, DefaultJobsTimeout, cfg.Jobs.Timeout)
	assert.Equal(t, DefaultWatchInterval, cfg.Workers.WatchInterval)
	assert.Equal(t, DefaultMailboxPollInterval, cfg.Workers.MailboxPollInterval)
	assert.Equal(t, DefaultAdminPollInterval, cfg.Workers.AdminPollInterval)
}

func TestApplyDefaults_KeepsProvidedValues(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.Storage.StatePath = "/tmp/custom_state.json"
	cfg.Workers.MailboxPollInterval = 10 * time.Second

	cfg.applyDefaults()

	assert.Equal(t, "/tmp/custom_state.json", cfg.Storage.StatePath)
	assert.Equal(t, 10*time.Second, cfg.Workers.MailboxPollInterval)
}

func TestValidate(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()
	assert.NoError(t, cfg.validate())

	bad := &StructuredConfig{}
	bad.applyDefaults()
	bad.App.AdminEmail = "not-an-email"
	assert.ErrorIs(t, bad.validate(), ErrInvalidConfig)

	noURL := &StructuredConfig{}
	noURL.applyDefaults()
	noURL.Jobs.BaseURL = ""
	assert.ErrorIs(t, noURL.validate(), ErrInvalidConfig)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("APP_ADMIN_EMAIL", "boss@kodjobs.com")
	t.Setenv("STORAGE_STATE_PATH", "/var/lib/kodjobs/state.json")
	t.Setenv("SERVER_ADDRESS", "localhost:4000")
	t.Setenv("JOBS_TIMEOUT", "20s")
	t.Setenv("WORKERS_MAILBOX_POLL_INTERVAL", "3s")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "boss@kodjobs.com", cfg.App.AdminEmail)
	assert.Equal(t, "/var/lib/kodjobs/state.json", cfg.Storage.StatePath)
	assert.Equal(t, "localhost:4000", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Jobs.Timeout)
	assert.Equal(t, 3*time.Second, cfg.Workers.MailboxPollInterval)
}

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
	  "app": {"admin_email": "boss@kodjobs.com", "version": "1.2.3"},
	  "storage": {"state_path": "/tmp/state.json"},
	  "server": {"http_address": "localhost:4000", "request_timeout": "45s"},
	  "jobs": {"base_url": "https://example.com/api", "timeout": "20s"},
	  "workers": {"watch_interval": "500ms", "admin_poll_interval": "8s"}
	}`), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "boss@kodjobs.com", cfg.App.AdminEmail)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "/tmp/state.json", cfg.Storage.StatePath)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "https://example.com/api", cfg.Jobs.BaseURL)
	assert.Equal(t, 500*time.Millisecond, cfg.Workers.WatchInterval)
	assert.Equal(t, 8*time.Second, cfg.Workers.AdminPollInterval)
}

func TestParseJSON_Errors(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))
	_, err = parseJSON(path)
	assert.Error(t, err)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{"localhost", "localhost:3001", NetAddress{Host: "localhost", Port: 3001}, false},
		{"ip address", "127.0.0.1:8080", NetAddress{Host: "127.0.0.1", Port: 8080}, false},
		{"missing port", "localhost", NetAddress{}, true},
		{"bad port", "localhost:abc", NetAddress{}, true},
		{"zero port", "localhost:0", NetAddress{}, true},
		{"bad host", "not-an-ip:80", NetAddress{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, addr)
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	empty := &NetAddress{}
	assert.Empty(t, empty.String())

	addr := &NetAddress{Host: "localhost", Port: 3001}
	assert.Equal(t, "localhost:3001", addr.String())
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"90s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
}

func TestDuration_MarshalJSON(t *testing.T) {
	raw, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(raw))
}
