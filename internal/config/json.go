package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type jsonConfig struct {
	App struct {
		HashScheme        string   `json:"hash_scheme"`
		HashSalt          string   `json:"hash_salt"`
		TokenSecret       string   `json:"token_secret"`
		SessionTTL        Duration `json:"session_ttl"`
		SweepInterval     Duration `json:"sweep_interval"`
		LegacyUsersFile   string   `json:"legacy_users_file"`
		LegacyRecordsFile string   `json:"legacy_records_file"`
		Version           string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress string `json:"http_address"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg jsonConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		App: App{
			HashScheme:        jsonCfg.App.HashScheme,
			HashSalt:          jsonCfg.App.HashSalt,
			TokenSecret:       jsonCfg.App.TokenSecret,
			SessionTTL:        time.Duration(jsonCfg.App.SessionTTL),
			SweepInterval:     time.Duration(jsonCfg.App.SweepInterval),
			LegacyUsersFile:   jsonCfg.App.LegacyUsersFile,
			LegacyRecordsFile: jsonCfg.App.LegacyRecordsFile,
			Version:           jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress: jsonCfg.Server.HTTPAddress,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
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
