package domain

import "errors"

var (
	ErrServerNotFound   = errors.New("server not found")
	ErrContractNotFound = errors.New("contract not found")
	ErrNoActiveAction   = errors.New("no action in progress")
	ErrActionInProgress = errors.New("action in progress")
	ErrInvalidWorld     = errors.New("invalid world definition")
)
