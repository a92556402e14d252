package config

import "errors"

// Missing store settings abort the run before any generation.
var (
	ErrMissingStoreURL = errors.New("store url is required (RENTGEN_STORE__URL)")
	ErrMissingStoreKey = errors.New("store key is required (RENTGEN_STORE__KEY)")
)

// StoreConfig locates the external table store.
type StoreConfig struct {
	// URL is the store endpoint.
	URL string `json:"url"`
	// Key is the access credential; it overrides any password in the URL.
	Key string `json:"key"`
}

// Validate checks mandatory fields.
func (c StoreConfig) Validate() error {
	if c.URL == "" {
		return ErrMissingStoreURL
	}
	if c.Key == "" {
		return ErrMissingStoreKey
	}
	return nil
}
