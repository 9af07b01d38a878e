package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// ClientJSONConfig mirrors [ClientConfig] with JSON tags and string-friendly
// durations. The passphrase deliberately has no JSON representation; it can
// only come from the environment or an interactive prompt.
type ClientJSONConfig struct {
	Server struct {
		BaseURL        string   `json:"base_url"`
		Fingerprint    string   `json:"fingerprint"`
		RequestTimeout Duration `json:"request_timeout"`
		LoginRetries   int      `json:"login_retries"`
	} `json:"server,omitempty"`

	Keys struct {
		PrivateKeyPath string `json:"private_key_path"`
		Fingerprint    string `json:"fingerprint"`
	} `json:"keys,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Sharing struct {
		DefaultOwners  []string `json:"default_owners"`
		DefaultReaders []string `json:"default_readers"`
	} `json:"sharing,omitempty"`
}

func parseJSON(jsonFilePath string) (*ClientConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg ClientJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &ClientConfig{
		Server: Server{
			BaseURL:        jsonCfg.Server.BaseURL,
			Fingerprint:    jsonCfg.Server.Fingerprint,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			LoginRetries:   jsonCfg.Server.LoginRetries,
		},
		Keys: Keys{
			PrivateKeyPath: jsonCfg.Keys.PrivateKeyPath,
			Fingerprint:    jsonCfg.Keys.Fingerprint,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Sharing: Sharing{
			DefaultOwners:  jsonCfg.Sharing.DefaultOwners,
			DefaultReaders: jsonCfg.Sharing.DefaultReaders,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// WriteJSON serializes cfg into the JSON config shape and writes it to path
// with owner-only permissions. Used by the "config init" wizard.
func WriteJSON(path string, cfg *ClientConfig) error {
	var jsonCfg ClientJSONConfig
	jsonCfg.Server.BaseURL = cfg.Server.BaseURL
	jsonCfg.Server.Fingerprint = cfg.Server.Fingerprint
	jsonCfg.Server.RequestTimeout = Duration(cfg.Server.RequestTimeout)
	jsonCfg.Server.LoginRetries = cfg.Server.LoginRetries
	jsonCfg.Keys.PrivateKeyPath = cfg.Keys.PrivateKeyPath
	jsonCfg.Keys.Fingerprint = cfg.Keys.Fingerprint
	jsonCfg.Storage.DB.DSN = cfg.Storage.DB.DSN
	jsonCfg.Sharing.DefaultOwners = cfg.Sharing.DefaultOwners
	jsonCfg.Sharing.DefaultReaders = cfg.Sharing.DefaultReaders

	payload, err := json.MarshalIndent(jsonCfg, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding json configs: %w", err)
	}

	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("error writing json config file: %w", err)
	}

	return nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
