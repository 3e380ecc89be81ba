package das

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedPayload is returned when the indexer answers with data that
	// does not decode into the expected shape
	ErrMalformedPayload = errors.New("malformed indexer payload")
	// ErrEmptyPayload is returned when a lookup succeeds without data
	ErrEmptyPayload = errors.New("empty indexer payload")
)

type ConfigurationErrorCode string

const (
	UnspecifiedUrl     ConfigurationErrorCode = "UnspecifiedUrl"
	UnsupportedNetwork ConfigurationErrorCode = "UnsupportedNetwork"
	UnreachableNetwork ConfigurationErrorCode = "UnreachableNetwork"
)

// ConfigurationError is returned at construction time when the client can not
// be set up.
type ConfigurationError struct {
	Code    ConfigurationErrorCode
	Method  string
	Network string
	// Causes holds the probe failure of every network, in priority order
	Causes []ProbeFailure
}

// ProbeFailure is the reason a network was skipped
type ProbeFailure struct {
	Network string
	Err     error
}

func (e *ConfigurationError) Error() string {
	switch e.Code {
	case UnspecifiedUrl:
		return fmt.Sprintf("%s: neither provider nor url is specified for %s", e.Code, e.Method)
	case UnsupportedNetwork:
		return fmt.Sprintf("%s: network %q is not supported", e.Code, e.Network)
	case UnreachableNetwork:
		causes := make([]string, 0, len(e.Causes))
		for _, c := range e.Causes {
			causes = append(causes, fmt.Sprintf("%s: %v", c.Network, c.Err))
		}
		return fmt.Sprintf("%s: no network is reachable (%s)", e.Code, strings.Join(causes, "; "))
	}
	return string(e.Code)
}

func (e *ConfigurationError) Is(target error) bool {
	t, ok := target.(*ConfigurationError)
	return ok && t.Code == e.Code
}

type ResolutionErrorCode string

const (
	UnsupportedService  ResolutionErrorCode = "UnsupportedService"
	UnsupportedAccount  ResolutionErrorCode = "UnsupportedAccount"
	UnregisteredAccount ResolutionErrorCode = "UnregisteredAccount"
	RecordNotFound      ResolutionErrorCode = "RecordNotFound"
)

// ResolutionError is returned when the indexer can not resolve a request
type ResolutionError struct {
	Code      ResolutionErrorCode
	Account   string
	AccountId string
	Key       string
}

func (e *ResolutionError) Error() string {
	switch e.Code {
	case UnsupportedService, UnsupportedAccount:
		return fmt.Sprintf("%s: %q is not a supported account", e.Code, e.Account)
	case UnregisteredAccount:
		if e.AccountId != "" {
			return fmt.Sprintf("%s: account id %s is not registered", e.Code, e.AccountId)
		}
		return fmt.Sprintf("%s: %s is not registered", e.Code, e.Account)
	case RecordNotFound:
		return fmt.Sprintf("%s: %s has no record %q", e.Code, e.Account, e.Key)
	}
	return string(e.Code)
}

// Is matches any ResolutionError with the same code
func (e *ResolutionError) Is(target error) bool {
	t, ok := target.(*ResolutionError)
	return ok && t.Code == e.Code
}

var (
	ErrUnsupportedService  = &ResolutionError{Code: UnsupportedService}
	ErrUnsupportedAccount  = &ResolutionError{Code: UnsupportedAccount}
	ErrUnregisteredAccount = &ResolutionError{Code: UnregisteredAccount}
	ErrRecordNotFound      = &ResolutionError{Code: RecordNotFound}

	ErrUnspecifiedUrl     = &ConfigurationError{Code: UnspecifiedUrl}
	ErrUnsupportedNetwork = &ConfigurationError{Code: UnsupportedNetwork}
	ErrUnreachableNetwork = &ConfigurationError{Code: UnreachableNetwork}
)

// IndexerError is a failure reported by the indexer itself
type IndexerError struct {
	Method string
	Errno  int
	Errmsg string
}

func (e *IndexerError) Error() string {
	return fmt.Sprintf("%s: indexer error %d: %s", e.Method, e.Errno, e.Errmsg)
}
