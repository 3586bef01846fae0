package session

import "github.com/pkg/errors"

// TokenKey is the storage key holding the session token.
const TokenKey = "token"

// ErrNotFound is returned by a Storage when the key is not set.
var ErrNotFound = errors.New("key not found")

// Storage persists small string values across reloads.
type Storage interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}
