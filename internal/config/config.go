package config

import (
	"errors"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Credentials holds the provider credentials for one invocation. They come
// from flags or environment only and are never written to disk.
type Credentials struct {
	Username string
	Password string
	Token    string
}

var (
	ErrNoCredentials = errors.New("no credentials given: set --username and --password (or ULTRA_UNAME and ULTRA_PWORD), or --token (ULTRA_TOKEN)")
	ErrBothAuthForms = errors.New("both a token and a username/password were given: use exactly one")
	ErrTokenReadOnly = errors.New("token authentication is read-only: creating and deleting zones needs --username and --password")
)

// Bind wires the root command's credential flags into viper, with the
// ULTRA_* environment variables as fallback.
func Bind(flags *pflag.FlagSet) {
	_ = viper.BindPFlag("username", flags.Lookup("username"))
	_ = viper.BindPFlag("password", flags.Lookup("password"))
	_ = viper.BindPFlag("token", flags.Lookup("token"))
	_ = viper.BindEnv("username", "ULTRA_UNAME")
	_ = viper.BindEnv("password", "ULTRA_PWORD")
	_ = viper.BindEnv("token", "ULTRA_TOKEN")
}

// Load reads credentials from flags and environment and validates them.
func Load() (Credentials, error) {
	creds := Credentials{
		Username: viper.GetString("username"),
		Password: viper.GetString("password"),
		Token:    viper.GetString("token"),
	}
	if err := creds.Validate(); err != nil {
		return Credentials{}, err
	}
	return creds, nil
}

// Validate enforces the credential mutual exclusion: exactly one of
// token or username/password must be present.
func (c Credentials) Validate() error {
	hasLogin := c.Username != "" || c.Password != ""
	if c.Token != "" && hasLogin {
		return ErrBothAuthForms
	}
	if c.Token == "" && (c.Username == "" || c.Password == "") {
		return ErrNoCredentials
	}
	return nil
}
