package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors StructuredConfig for the optional JSON
// config file, with string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		AdminEmail    string `json:"admin_email"`
		AdminPassword string `json:"admin_password"`
		Version       string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		StatePath string `json:"state_path"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Jobs struct {
		BaseURL string   `json:"base_url"`
		Timeout Duration `json:"timeout"`
	} `json:"jobs,omitempty"`

	Workers struct {
		WatchInterval       Duration `json:"watch_interval"`
		MailboxPollInterval Duration `json:"mailbox_poll_interval"`
		AdminPollInterval   Duration `json:"admin_poll_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			AdminEmail:    jsonCfg.App.AdminEmail,
			AdminPassword: jsonCfg.App.AdminPassword,
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			StatePath: jsonCfg.Storage.StatePath,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Jobs: Jobs{
			BaseURL: jsonCfg.Jobs.BaseURL,
			Timeout: time.Duration(jsonCfg.Jobs.Timeout),
		},
		Workers: Workers{
			WatchInterval:       time.Duration(jsonCfg.Workers.WatchInterval),
			MailboxPollInterval: time.Duration(jsonCfg.Workers.MailboxPollInterval),
			AdminPollInterval:   time.Duration(jsonCfg.Workers.AdminPollInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON
// unmarshaling from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
