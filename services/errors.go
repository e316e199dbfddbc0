package services

import "errors"

var (
	ErrInvalidCode   = errors.New("invalid code")
	ErrEmptyName     = errors.New("name is required")
	ErrDuplicateName = errors.New("name already taken")
	ErrNotFound      = errors.New("member not found")
)
