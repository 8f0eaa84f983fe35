package authentication

// Token storage for the CLI, kept in the OS keyring rather than a dotfile.

import (
	"encoding/json"

	"github.com/zalando/go-keyring"
)

const (
	serviceName = "biteengine-cli"
	tokenKey    = "auth_token"
)

type StoredCredentials struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func StoreCredentials(creds *StoredCredentials) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	return keyring.Set(serviceName, tokenKey, string(data))
}

func GetCredentials() (*StoredCredentials, error) {
	value, err := keyring.Get(serviceName, tokenKey)
	if err != nil {
		return nil, err
	}

	var creds StoredCredentials
	if err := json.Unmarshal([]byte(value), &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

func DeleteCredentials() error {
	return keyring.Delete(serviceName, tokenKey)
}
