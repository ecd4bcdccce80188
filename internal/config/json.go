package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations, so operators can keep non-secret settings in a
// version-controlled file while secrets stay in the environment.
type StructuredJSONConfig struct {
	Auth struct {
		AccessSecretKey        string   `json:"access_secret_key"`
		RefreshSecretKey       string   `json:"refresh_secret_key"`
		Algorithm              string   `json:"algorithm"`
		AccessTokenTTL         Duration `json:"access_token_ttl"`
		ExtendedAccessTokenTTL Duration `json:"extended_access_token_ttl"`
		RefreshTokenTTL        Duration `json:"refresh_token_ttl"`
	} `json:"auth,omitempty"`

	Google struct {
		ClientID       string   `json:"client_id"`
		ClientSecret   string   `json:"client_secret"`
		RedirectURI    string   `json:"redirect_uri"`
		AuthURL        string   `json:"auth_url"`
		TokenURL       string   `json:"token_url"`
		UserinfoURL    string   `json:"userinfo_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"google,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		LastLoginQueueSize int `json:"last_login_queue_size"`
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
		Auth: Auth{
			AccessSecretKey:        jsonCfg.Auth.AccessSecretKey,
			RefreshSecretKey:       jsonCfg.Auth.RefreshSecretKey,
			Algorithm:              jsonCfg.Auth.Algorithm,
			AccessTokenTTL:         time.Duration(jsonCfg.Auth.AccessTokenTTL),
			ExtendedAccessTokenTTL: time.Duration(jsonCfg.Auth.ExtendedAccessTokenTTL),
			RefreshTokenTTL:        time.Duration(jsonCfg.Auth.RefreshTokenTTL),
		},
		Google: Google{
			ClientID:       jsonCfg.Google.ClientID,
			ClientSecret:   jsonCfg.Google.ClientSecret,
			RedirectURI:    jsonCfg.Google.RedirectURI,
			AuthURL:        jsonCfg.Google.AuthURL,
			TokenURL:       jsonCfg.Google.TokenURL,
			UserinfoURL:    jsonCfg.Google.UserinfoURL,
			RequestTimeout: time.Duration(jsonCfg.Google.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			LastLoginQueueSize: jsonCfg.Workers.LastLoginQueueSize,
		},
		JSONFilePath: "",
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
