package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON shape of the configuration.
// Durations are strings such as "30s" or "24h".
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		ResetTokenKey    string   `json:"reset_token_key"`
		ResetTokenTTL    Duration `json:"reset_token_ttl"`
		ResetBaseURL     string   `json:"reset_base_url"`
		PasswordHashCost int      `json:"password_hash_cost"`
		Version          string   `json:"version"`
		LogLevel         string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver     string `json:"driver"`
			DSN        string `json:"dsn"`
			MaxRetries int    `json:"max_retries"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Mail struct {
		Kind       string   `json:"kind"`
		APIAddress string   `json:"api_address"`
		Timeout    Duration `json:"timeout"`
		NATSURL    string   `json:"nats_url"`
		Subject    string   `json:"subject"`
	} `json:"mail,omitempty"`

	Workers struct {
		SettingsPollInterval Duration `json:"settings_poll_interval"`
		MailDispatch         bool     `json:"mail_dispatch"`
		MailDurable          string   `json:"mail_durable"`
	} `json:"workers,omitempty"`

	Telemetry struct {
		OTLPEndpoint string `json:"otlp_endpoint"`
		Insecure     bool   `json:"insecure"`
		ServiceName  string `json:"service_name"`
	} `json:"telemetry,omitempty"`
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
			TokenSignKey:     jsonCfg.App.TokenSignKey,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
			ResetTokenKey:    jsonCfg.App.ResetTokenKey,
			ResetTokenTTL:    time.Duration(jsonCfg.App.ResetTokenTTL),
			ResetBaseURL:     jsonCfg.App.ResetBaseURL,
			PasswordHashCost: jsonCfg.App.PasswordHashCost,
			Version:          jsonCfg.App.Version,
			LogLevel:         jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver:     jsonCfg.Storage.DB.Driver,
				DSN:        jsonCfg.Storage.DB.DSN,
				MaxRetries: jsonCfg.Storage.DB.MaxRetries,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Mail: Mail{
			Kind:       jsonCfg.Mail.Kind,
			APIAddress: jsonCfg.Mail.APIAddress,
			Timeout:    time.Duration(jsonCfg.Mail.Timeout),
			NATSURL:    jsonCfg.Mail.NATSURL,
			Subject:    jsonCfg.Mail.Subject,
		},
		Workers: Workers{
			SettingsPollInterval: time.Duration(jsonCfg.Workers.SettingsPollInterval),
			MailDispatch:         jsonCfg.Workers.MailDispatch,
			MailDurable:          jsonCfg.Workers.MailDurable,
		},
		Telemetry: Telemetry{
			OTLPEndpoint: jsonCfg.Telemetry.OTLPEndpoint,
			Insecure:     jsonCfg.Telemetry.Insecure,
			ServiceName:  jsonCfg.Telemetry.ServiceName,
		},
	}

	return cfg, nil
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
