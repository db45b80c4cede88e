// Package storage persists the client's local state: the session token,
// cart, wishlist and display preferences.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// Keys of the persisted state. Absence of any key means its empty value.
const (
	KeyToken     = "token"
	KeyCartItems = "cartItems"
	KeyWishlist  = "wishlist"
	KeyDarkMode  = "darkMode"
)

// Store is a string key-value store. Get reports absence with ok=false
// and a nil error; absence is never an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// GetJSON decodes the value at key into v. An absent key leaves v untouched.
func GetJSON(ctx context.Context, s Store, key string, v any) error {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if !ok || raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// SetJSON stores v at key as JSON.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(ctx, key, string(data))
}
