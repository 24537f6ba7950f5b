package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
//
// Unlike a conventional backend, missing Firebase settings are not an error
// here: the application degrades to demo mode (local snapshot, writes disabled)
// when the remote store is unconfigured or unreachable.
type Config struct {
	Port                             string `mapstructure:"PORT"`
	GinMode                          string `mapstructure:"GIN_MODE"`
	FirebaseProjectID                string `mapstructure:"FIREBASE_PROJECT_ID"`
	GoogleApplicationCredentials     string `mapstructure:"GOOGLE_APPLICATION_CREDENTIALS"`
	FirebaseServiceAccountJSONBase64 string `mapstructure:"FIREBASE_SERVICE_ACCOUNT_JSON_BASE64"`
	ClientURL                        string `mapstructure:"CLIENT_URL"`
	AdminEmails                      string `mapstructure:"ADMIN_EMAILS"` // Comma-separated allow-list
	SeedPath                         string `mapstructure:"SEED_PATH"`
	ForceDemoMode                    bool   `mapstructure:"FORCE_DEMO_MODE"`
}

// LoadConfig loads configuration from environment variables using Viper.
func LoadConfig() (*Config, error) {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("SEED_PATH", "web/seed/seed.json")
	viper.SetDefault("FORCE_DEMO_MODE", false)

	// Bind environment variables
	viper.BindEnv("PORT")
	viper.BindEnv("GIN_MODE")
	viper.BindEnv("FIREBASE_PROJECT_ID")
	viper.BindEnv("GOOGLE_APPLICATION_CREDENTIALS")
	viper.BindEnv("FIREBASE_SERVICE_ACCOUNT_JSON_BASE64")
	viper.BindEnv("CLIENT_URL")
	viper.BindEnv("ADMIN_EMAILS")
	viper.BindEnv("SEED_PATH")
	viper.BindEnv("FORCE_DEMO_MODE")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// RemoteConfigured reports whether enough Firebase settings are present to
// attempt initializing the Admin SDK. When false the application starts
// directly in demo mode.
func (c *Config) RemoteConfigured() bool {
	if c.FirebaseProjectID == "" {
		return false
	}
	// With a project ID alone, Application Default Credentials may still work.
	return true
}

// AdminList returns the parsed admin allow-list, lowercased and trimmed.
func (c *Config) AdminList() []string {
	if c.AdminEmails == "" {
		return nil
	}
	parts := strings.Split(c.AdminEmails, ",")
	admins := make([]string, 0, len(parts))
	for _, p := range parts {
		if email := strings.ToLower(strings.TrimSpace(p)); email != "" {
			admins = append(admins, email)
		}
	}
	return admins
}

// IsAdmin reports whether email is an exact (case-insensitive) member of the
// admin allow-list. Membership gates visibility of the seeding action only;
// real enforcement lives in the remote store's access rules.
func (c *Config) IsAdmin(email string) bool {
	if email == "" {
		return false
	}
	email = strings.ToLower(email)
	for _, admin := range c.AdminList() {
		if admin == email {
			return true
		}
	}
	return false
}
