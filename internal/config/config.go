// Package config loads runtime settings from flags, the environment, an
// optional .env file and an optional configs/config.yml, in that order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config keys, shared with the CLI flag bindings.
const (
	KeyPort         = "port"
	KeyDBPath       = "db.path"
	KeySecret       = "session.secret"
	KeyCookieName   = "session.cookie_name"
	KeySecureCookie = "session.secure_cookie"
	KeySessionTTL   = "session.ttl"
	KeyLogLevel     = "log.level"
	KeyStaticDir    = "static.dir"
)

const envPrefix = "TECHNEWS"

// ErrMissingSecret is returned when no session signing secret is configured.
var ErrMissingSecret = errors.New("session secret is not configured")

// Config holds runtime settings for the server.
type Config struct {
	Port         string
	DBPath       string
	Secret       string
	CookieName   string
	SecureCookie bool
	SessionTTL   time.Duration
	LogLevel     string
	StaticDir    string
}

// SetDefaults registers development defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyPort, "3000")
	v.SetDefault(KeyDBPath, "newsDB.db")
	v.SetDefault(KeyCookieName, "techNewsApp")
	v.SetDefault(KeySecureCookie, true)
	v.SetDefault(KeySessionTTL, 24*time.Hour)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyStaticDir, "public")
}

// New returns a viper instance wired for TECHNEWS_* environment variables
// and the bare PORT / JWTSECRETE names older deployments use. JWTSECRET is
// accepted as the correctly spelled alias.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv(KeyPort, envPrefix+"_PORT", "PORT")
	_ = v.BindEnv(KeySecret, envPrefix+"_SESSION_SECRET", "JWTSECRETE", "JWTSECRET")
	return v
}

// ReadFiles loads dotenv files into the process environment (missing files
// are ignored) and then reads the config file: configFile if set, otherwise
// configs/config.yml when present.
func ReadFiles(v *viper.Viper, configFile string, dotenvFiles ...string) error {
	for _, f := range dotenvFiles {
		// godotenv never overrides variables that are already set
		_ = godotenv.Load(f)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath("configs")
		v.SetConfigName("config")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load builds a Config from v and validates it.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:         v.GetString(KeyPort),
		DBPath:       v.GetString(KeyDBPath),
		Secret:       v.GetString(KeySecret),
		CookieName:   v.GetString(KeyCookieName),
		SecureCookie: v.GetBool(KeySecureCookie),
		SessionTTL:   v.GetDuration(KeySessionTTL),
		LogLevel:     strings.ToLower(v.GetString(KeyLogLevel)),
		StaticDir:    v.GetString(KeyStaticDir),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Secret) == "" {
		return ErrMissingSecret
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session ttl must be positive, got %s", c.SessionTTL)
	}
	if c.CookieName == "" {
		return errors.New("session cookie name is empty")
	}
	if c.DBPath == "" {
		return errors.New("db path is empty")
	}
	return nil
}
