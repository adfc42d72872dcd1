package storage

import "errors"

// Store is a synchronous string-keyed partition store, the server-side
// analogue of the browser local storage the cart was originally persisted in.
// No atomicity is guaranteed across processes sharing the same backing store;
// last writer wins.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}

var ErrNotFound = errors.New("storage key not found")
