package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrPasswordTooShort    = errors.New("password min 6 chars")
	ErrInvalidMobile       = errors.New("mobile must be 10 digits")
	ErrInvalidCredentials  = errors.New("invalid mobile or password")

	ErrAdminOnly   = errors.New("admin only")
	ErrInvalidRole = errors.New("invalid role")

	ErrInvalidStatus = errors.New("invalid status")
)
