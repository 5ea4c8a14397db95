// Package secrets seals values kept in client-side storage.
//
// A Sealer derives two keys from an application key and a per-client key
// with HKDF-SHA-256: one for AES-256-GCM, one for HMAC-SHA-256. Values are
// encoded as JSON and encrypted with a random nonce prepended; storage names
// are replaced by their HMAC so the backend sees neither.
//
// # Usage
//
//	appKey, _ := secrets.DecodeKey(os.Getenv("STORAGE_APP_KEY"))
//	clientKey, _ := secrets.DecodeKey(os.Getenv("STORAGE_CLIENT_KEY"))
//
//	sealer, err := secrets.NewSealer(appKey, clientKey)
//	if err != nil {
//	    return err
//	}
//	store, err := secrets.NewStorage(sealer, backend)
//	if err != nil {
//	    return err
//	}
//
//	_ = store.SetItem(ctx, "user", user)
//	u, err := secrets.Get[User](ctx, store, "user")
//	if errors.Is(err, secrets.ErrItemNotFound) {
//	    // nothing saved yet
//	}
//
// Backend is the caller's key/value store; this package provides none.
//
// # Error Handling
//
// Errors wrap a sentinel such as ErrDecryptionFailed, ErrItemNotFound or
// ErrBackend. Use errors.Is to match them.
package secrets
