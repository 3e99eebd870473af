package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenExpired        = errors.New("token is expired")
	ErrTokenInvalid        = errors.New("token is invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrInvalidAuthConfig     = errors.New("username and password must be configured")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
