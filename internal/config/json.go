package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files, with
// durations accepted as strings ("30s") or nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		Version    string `json:"version"`
		APIVersion string `json:"api_version"`
		BuildTime  string `json:"build_time"`
		LogLevel   string `json:"log_level"`
	} `json:"app,omitempty"`

	Auth struct {
		Username      string   `json:"username"`
		Password      string   `json:"password"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"auth,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Upstream struct {
		BaseURL    string   `json:"base_url"`
		Timeout    Duration `json:"timeout"`
		APIKey     string   `json:"api_key"`
		VsCurrency string   `json:"vs_currency"`
	} `json:"upstream,omitempty"`
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
			Version:    jsonCfg.App.Version,
			APIVersion: jsonCfg.App.APIVersion,
			BuildTime:  jsonCfg.App.BuildTime,
			LogLevel:   jsonCfg.App.LogLevel,
		},
		Auth: Auth{
			Username:      jsonCfg.Auth.Username,
			Password:      jsonCfg.Auth.Password,
			TokenSignKey:  jsonCfg.Auth.TokenSignKey,
			TokenIssuer:   jsonCfg.Auth.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.Auth.TokenDuration),
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Upstream: Upstream{
			BaseURL:    jsonCfg.Upstream.BaseURL,
			Timeout:    time.Duration(jsonCfg.Upstream.Timeout),
			APIKey:     jsonCfg.Upstream.APIKey,
			VsCurrency: jsonCfg.Upstream.VsCurrency,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
