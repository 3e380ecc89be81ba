package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")
	// ErrInvalidAddress will throw if an owner address is not a valid hex address
	ErrInvalidAddress = errors.New("Invalid address")
	// ErrInvalidCoinType will throw if a coin type is not numeric
	ErrInvalidCoinType = errors.New("Invalid coin type")
)
