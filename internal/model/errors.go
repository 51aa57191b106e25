package model

import "errors"

var (
	// ErrNotFound is returned by stores when an entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateIdentity is returned when registering a taken identity.
	ErrDuplicateIdentity = errors.New("identity already exists")
	// ErrInvalidToken is returned for malformed, forged or expired tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrPasswordTooLong is returned when a password cannot be hashed
	// without truncation.
	ErrPasswordTooLong = errors.New("password is too long")
)
