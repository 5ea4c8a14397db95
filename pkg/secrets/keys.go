package secrets

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the required size for both app and client keys.
	KeySize = 32

	encryptionInfo = "cashflow-storage-enc-v1"
	keyNameInfo    = "cashflow-storage-key-v1"
)

// ValidateKeys checks that both keys are KeySize bytes long.
// When both are wrong the returned error matches both sentinels.
func ValidateKeys(appKey, clientKey []byte) error {
	var errs []error
	if len(appKey) != KeySize {
		errs = append(errs, ErrInvalidAppKey)
	}
	if len(clientKey) != KeySize {
		errs = append(errs, ErrInvalidClientKey)
	}
	return errors.Join(errs...)
}

// deriveKey creates a purpose-bound key from the app and client keys.
// The caller clears the result with clearBytes once done with it.
func deriveKey(appKey, clientKey []byte, info string) ([]byte, error) {
	r := hkdf.New(sha256.New, appKey, clientKey, []byte(info))

	key := make([]byte, KeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}
	return key, nil
}

func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// GenerateKey creates a random key suitable for NewSealer.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}

// EncodeKey renders a key the way DecodeKey reads it.
func EncodeKey(key []byte) string {
	return base64.StdEncoding.EncodeToString(key)
}

// DecodeKey parses a base64 key, standard or URL alphabet, padded or not.
func DecodeKey(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	for _, enc := range []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	} {
		if key, err := enc.DecodeString(s); err == nil {
			if len(key) != KeySize {
				return nil, ErrInvalidKeyText
			}
			return key, nil
		}
	}
	return nil, ErrInvalidKeyText
}
