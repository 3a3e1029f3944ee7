// Package config loads, merges, and validates the application
// configuration from environment variables, command-line flags, and an
// optional JSON file.
package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container, populated
// by merging values from environment variables, command-line flags, and
// an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the admin console
	// credentials and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the local state file settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the jobs proxy server network settings.
	Server Server `envPrefix:"SERVER_"`

	// Jobs holds the upstream jobs API settings.
	Jobs Jobs `envPrefix:"JOBS_"`

	// Workers holds the polling and file-watch intervals.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// merged on top of env and flag values when non-empty.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// AdminEmail and AdminPassword are the admin console credentials.
	// There is no real authentication layer; the pair is compared
	// directly at login.
	// Env: APP_ADMIN_EMAIL / APP_ADMIN_PASSWORD
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// Version is the semantic version string of the running build.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage holds the local state file settings.
type Storage struct {
	// StatePath is the path of the JSON state file shared by every
	// process of this installation. ":memory:" keeps state in memory.
	// Env: STORAGE_STATE_PATH
	StatePath string `env:"STATE_PATH"`
}

// Server holds network settings for the jobs proxy server.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Jobs holds settings of the upstream jobs API client.
type Jobs struct {
	// BaseURL is the API root, e.g. "https://www.themuse.com/api/public".
	// Env: JOBS_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Timeout bounds one upstream request.
	// Env: JOBS_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Workers holds the polling intervals of the background jobs.
type Workers struct {
	// WatchInterval is how often the cross-process watcher re-reads the
	// state file.
	// Env: WORKERS_WATCH_INTERVAL
	WatchInterval time.Duration `env:"WATCH_INTERVAL"`

	// MailboxPollInterval is the mailbox re-read backstop period.
	// Env: WORKERS_MAILBOX_POLL_INTERVAL
	MailboxPollInterval time.Duration `env:"MAILBOX_POLL_INTERVAL"`

	// AdminPollInterval is the admin dashboard re-read backstop period.
	// Env: WORKERS_ADMIN_POLL_INTERVAL
	AdminPollInterval time.Duration `env:"ADMIN_POLL_INTERVAL"`
}

// Defaults applied after merging, for fields no source provided.
const (
	DefaultAdminEmail    = "admin@kodjobs.com"
	DefaultAdminPassword = "admin123"

	DefaultStatePath   = "kodjobs_state.json"
	DefaultHTTPAddress = "localhost:3001"
	DefaultJobsBaseURL = "https://www.themuse.com/api/public"

	DefaultRequestTimeout      = 30 * time.Second
	DefaultJobsTimeout         = 15 * time.Second
	DefaultWatchInterval       = time.Second
	DefaultMailboxPollInterval = 2 * time.Second
	DefaultAdminPollInterval   = 5 * time.Second
)

// GetStructuredConfig loads, merges, and validates the configuration
// from all sources in priority order (first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults fill any field left unset. Returns a fully populated
// *StructuredConfig or an error if a source fails to load or the final
// config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.AdminEmail == "" {
		cfg.App.AdminEmail = DefaultAdminEmail
	}
	if cfg.App.AdminPassword == "" {
		cfg.App.AdminPassword = DefaultAdminPassword
	}
	if cfg.Storage.StatePath == "" {
		cfg.Storage.StatePath = DefaultStatePath
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout <= 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Jobs.BaseURL == "" {
		cfg.Jobs.BaseURL = DefaultJobsBaseURL
	}
	if cfg.Jobs.Timeout <= 0 {
		cfg.Jobs.Timeout = DefaultJobsTimeout
	}
	if cfg.Workers.WatchInterval <= 0 {
		cfg.Workers.WatchInterval = DefaultWatchInterval
	}
	if cfg.Workers.MailboxPollInterval <= 0 {
		cfg.Workers.MailboxPollInterval = DefaultMailboxPollInterval
	}
	if cfg.Workers.AdminPollInterval <= 0 {
		cfg.Workers.AdminPollInterval = DefaultAdminPollInterval
	}
}
