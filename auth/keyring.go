// Package auth persists the Streamio account password in the system keyring, keyed by username.
package auth

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"github.com/streamio-cli/streamio/key"
	"github.com/streamio-cli/streamio/streamio"
	"github.com/zalando/go-keyring"
)

const service = "streamio-cli"

// ErrNoUsername is returned when no account username is configured.
var ErrNoUsername = errors.New("no username configured, set " + key.APIUsername)

// SetPassword stores the password of username.
func SetPassword(username, password string) error {
	if username == "" {
		return ErrNoUsername
	}
	return keyring.Set(service, username, password)
}

// GetPassword retrieves the stored password of username.
func GetPassword(username string) (string, error) {
	if username == "" {
		return "", ErrNoUsername
	}
	return keyring.Get(service, username)
}

// DeletePassword removes the stored password of username.
func DeletePassword(username string) error {
	if username == "" {
		return ErrNoUsername
	}
	return keyring.Delete(service, username)
}

// Credentials resolves the account pair. A password set in the configuration or environment
// wins over the keyring. Incomplete credentials are not an error: the aggregator treats them
// as an unconfigured gallery.
func Credentials() (streamio.Credentials, error) {
	creds := streamio.Credentials{
		Username: viper.GetString(key.APIUsername),
		Password: viper.GetString(key.APIPassword),
	}

	if creds.Username == "" || creds.Password != "" {
		return creds, nil
	}

	password, err := GetPassword(creds.Username)
	switch {
	case errors.Is(err, keyring.ErrNotFound):
		return creds, nil
	case err != nil:
		return creds, fmt.Errorf("read keyring: %w", err)
	}

	creds.Password = password
	return creds, nil
}
