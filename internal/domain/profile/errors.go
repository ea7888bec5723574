package profile

import "errors"

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrCompanyTooLong  = errors.New("company name is too long (max 100 characters)")
	ErrCompanyInvalid  = errors.New("company name contains invalid characters")
)
