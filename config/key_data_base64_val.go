package config

import (
	"context"
	"encoding/base64"
)

// KeyDataBase64Val holds key material inline in the config as a standard
// base64 encoded string.
type KeyDataBase64Val struct {
	Base64 string `json:"base64" yaml:"base64"`
}

func (kb *KeyDataBase64Val) HasData(ctx context.Context) bool {
	return len(kb.Base64) > 0
}

func (kb *KeyDataBase64Val) GetData(ctx context.Context) ([]byte, error) {
	return base64.StdEncoding.DecodeString(kb.Base64)
}
