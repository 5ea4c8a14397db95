package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
)

// Sealer encrypts values for client-side storage and hides the names they
// are stored under. It is safe for concurrent use.
type Sealer struct {
	aead   cipher.AEAD
	keyMAC []byte
}

// NewSealer derives an encryption key and a key-naming key from the app key
// and the client key. Neither input is retained.
func NewSealer(appKey, clientKey []byte) (*Sealer, error) {
	if err := ValidateKeys(appKey, clientKey); err != nil {
		return nil, err
	}

	encKey, err := deriveKey(appKey, clientKey, encryptionInfo)
	if err != nil {
		return nil, err
	}
	defer clearBytes(encKey)

	macKey, err := deriveKey(appKey, clientKey, keyNameInfo)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(encKey)
	if err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}

	return &Sealer{aead: aead, keyMAC: macKey}, nil
}

// Seal encrypts data. The result is nonce + ciphertext + tag.
func (s *Sealer) Seal(data []byte) ([]byte, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}
	return s.aead.Seal(nonce, nonce, data, nil), nil
}

// Open reverses Seal.
func (s *Sealer) Open(sealed []byte) ([]byte, error) {
	n := s.aead.NonceSize()
	if len(sealed) < n+s.aead.Overhead() {
		return nil, ErrInvalidCiphertext
	}
	data, err := s.aead.Open(nil, sealed[:n], sealed[n:], nil)
	if err != nil {
		return nil, errors.Join(ErrDecryptionFailed, err)
	}
	return data, nil
}

// SealString encrypts plaintext into base64 text.
func (s *Sealer) SealString(plaintext string) (string, error) {
	sealed, err := s.Seal([]byte(plaintext))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (s *Sealer) OpenString(sealed string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", errors.Join(ErrInvalidCiphertext, err)
	}
	data, err := s.Open(raw)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SealKey maps a storage name to an opaque one. The same name always gives
// the same result under the same keys, so it can be looked up again.
func (s *Sealer) SealKey(name string) string {
	mac := hmac.New(sha256.New, s.keyMAC)
	mac.Write([]byte(name))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// SealValue encodes v as JSON and encrypts it.
func (s *Sealer) SealValue(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", errors.Join(ErrEncodingFailed, err)
	}
	return s.SealString(string(data))
}

// OpenValue decrypts sealed and decodes the JSON into dst.
func (s *Sealer) OpenValue(sealed string, dst any) error {
	data, err := s.OpenString(sealed)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(data), dst); err != nil {
		return errors.Join(ErrDecodingFailed, err)
	}
	return nil
}
