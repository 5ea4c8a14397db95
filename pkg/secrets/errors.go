package secrets

import "errors"

var (
	ErrInvalidAppKey    = errors.New("invalid app key: must be 32 bytes")
	ErrInvalidClientKey = errors.New("invalid client key: must be 32 bytes")
	ErrInvalidKeyText   = errors.New("invalid key: must be base64 of 32 bytes")

	ErrEncryptionFailed  = errors.New("encryption failed")
	ErrDecryptionFailed  = errors.New("decryption failed")
	ErrInvalidCiphertext = errors.New("invalid ciphertext format")

	ErrKeyDerivationFailed = errors.New("key derivation failed")

	ErrEncodingFailed = errors.New("failed to encode value")
	ErrDecodingFailed = errors.New("failed to decode value")

	ErrNilSealer    = errors.New("sealer is nil")
	ErrNilBackend   = errors.New("storage backend is nil")
	ErrEmptyKey     = errors.New("storage key is empty")
	ErrItemNotFound = errors.New("storage item not found")
	ErrBackend      = errors.New("storage backend failed")
)
