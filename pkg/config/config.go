package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config groups the application configuration (read via Viper from env vars
// and optionally a .env file).
type Config struct {
	App  AppConfig
	HTTP HTTPConfig
	GST  GSTConfig
}

// AppConfig is general application configuration.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configures the HTTP server.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GSTConfig configures the GST report pipeline. HomeState decides interstate
// vs intrastate supplies; the Default* fields substitute for clients with no
// tax profile on record.
type GSTConfig struct {
	HomeState            string
	DefaultGSTIN         string
	DefaultHSNCode       string
	DefaultPlaceOfSupply string
}

// Load reads configuration from environment variables (and optionally a .env
// file). Env vars take priority. Expected names: APP_ENV, HTTP_PORT,
// GST_HOME_STATE, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optional configuration file.
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignore if absent

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "gst-export"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		GST: GSTConfig{
			HomeState:            getString(v, "GST_HOME_STATE", "Maharashtra"),
			DefaultGSTIN:         getString(v, "GST_DEFAULT_GSTIN", ""),
			DefaultHSNCode:       getString(v, "GST_DEFAULT_HSN_CODE", "998314"),
			DefaultPlaceOfSupply: getString(v, "GST_DEFAULT_PLACE_OF_SUPPLY", "Maharashtra"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
