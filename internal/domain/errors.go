package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUploadNotFound    = errors.New("upload not found")
	ErrInvalidPageParams = errors.New("invalid page parameters")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrEmptyContent      = errors.New("empty content")
)

type Entity string

const (
	EntityStoreOwner  Entity = "store_owner"
	EntityStore       Entity = "store"
	EntityTransaction Entity = "transaction"
)

// DuplicateKeyError reports a unique constraint hit on a natural key.
// It matches ErrDuplicateKey with errors.Is.
type DuplicateKeyError struct {
	Entity Entity
	Key    string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate %s key %q", e.Entity, e.Key)
}

func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

// PersistenceError wraps a storage failure that is not an expected
// uniqueness race.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func NewPersistenceError(op string, err error) error {
	if err == nil {
		return nil
	}
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}
