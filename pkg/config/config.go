// Package config resolves Bill.com credentials from the environment into
// an explicit struct so the rest of the module never reads environment
// state directly.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Credentials are the four opaque strings the Bill.com API requires.
type Credentials struct {
	Username       string
	Password       string
	OrganizationID string
	DevKey         string
}

// Config holds everything resolved from the environment.
type Config struct {
	Credentials
}

// Load reads credentials from the process environment, optionally merged
// with a dotenv-style file (missing file is not an error). Environment
// variables: BILL_USERNAME, BILL_PASSWORD, BILL_ORG_ID, BILL_DEV_KEY.
func Load(envFile string) *Config {
	v := viper.New()
	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		_ = v.ReadInConfig() // values from the real environment still win
	}
	v.AutomaticEnv()

	return &Config{
		Credentials: Credentials{
			Username:       v.GetString("BILL_USERNAME"),
			Password:       v.GetString("BILL_PASSWORD"),
			OrganizationID: v.GetString("BILL_ORG_ID"),
			DevKey:         v.GetString("BILL_DEV_KEY"),
		},
	}
}

// Validate reports every missing credential by its environment variable
// name, before any network call is attempted.
func (c *Config) Validate() error {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"BILL_USERNAME", c.Username},
		{"BILL_PASSWORD", c.Password},
		{"BILL_ORG_ID", c.OrganizationID},
		{"BILL_DEV_KEY", c.DevKey},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required credentials: %s", strings.Join(missing, ", "))
	}
	return nil
}
