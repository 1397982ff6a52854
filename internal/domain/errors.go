package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidIP        = errors.New("invalid IP address")
	ErrPublicIP         = errors.New("public IP address")
	ErrInvalidDomain    = errors.New("invalid domain")
	ErrInvalidSecret    = errors.New("invalid secret")
	ErrInvalidURL       = errors.New("invalid URL")
	ErrInvalidTTL       = errors.New("invalid TTL")
	ErrInvalidDuration  = errors.New("invalid duration")
	ErrInvalidType      = errors.New("invalid type")
	ErrEmptyValue       = errors.New("empty value")
	ErrRequired         = errors.New("required field missing")
	ErrMissingEnv       = errors.New("missing environment variable")
	ErrConfigNotLoaded  = errors.New("config not loaded")
	ErrUnsupportedStore = errors.New("unsupported datastore")

	ErrConfigReadFailed   = errors.New("config read failed")
	ErrConfigParseFailed  = errors.New("config parse failed")
	ErrConfigValidateFail = errors.New("config validation failed")
	ErrConfigNotFound     = errors.New("config not found")

	ErrStoreReadFailed    = errors.New("store read failed")
	ErrStoreWriteFailed   = errors.New("store write failed")
	ErrStoreSerializeFail = errors.New("store serialization failed")
	ErrSubdomainNotFound  = errors.New("subdomain not found")
	ErrSubdomainExists    = errors.New("subdomain already exists")

	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrIdentityUnconfirmed = errors.New("identity not confirmed")
	ErrUnsupportedIdentity = errors.New("unsupported identity provider")
	ErrUnsupportedProvider = errors.New("unsupported DNS provider")
	ErrMissingCredential   = errors.New("missing credential")
	ErrDNSError            = errors.New("DNS operation failed")
)

func RequiredField(field string) error {
	return fmt.Errorf("%w: %s", ErrRequired, field)
}

func WrapOp(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

type OpError struct {
	Op    string
	Cause error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e *OpError) Unwrap() error {
	return e.Cause
}

func NewOpError(op string, cause error) error {
	return &OpError{Op: op, Cause: cause}
}
