package types

import (
	"errors"
	"fmt"
)

// Protocol errors. Every failure returned by the SDK wraps one of these so
// callers can branch with errors.Is.
var (
	// Address derivation
	ErrDerivationExhausted = errors.New("no off-curve address for seeds")

	// Codec
	ErrSchemaMismatch = errors.New("account discriminator or layout mismatch")
	ErrTruncatedData  = errors.New("account data truncated")

	// Pricing
	ErrInsufficientReserves = errors.New("insufficient reserves")
	ErrZeroLiquidity        = errors.New("zero liquidity")
	ErrInsufficientLpSupply = errors.New("lp amount exceeds lp supply")
	ErrInvalidFeeConfig     = errors.New("fee basis points exceed 10000")
	ErrArithmeticOverflow   = errors.New("arithmetic overflow")
	ErrBootstrapRequired    = errors.New("pool has no lp supply, bootstrap required")

	// Accounts and params
	ErrAccountNotFound      = errors.New("account not found")
	ErrMissingRequiredParam = errors.New("missing required param")

	// Chain access
	ErrNilRPC              = errors.New("rpc client is nil")
	ErrNoInstructions      = errors.New("requires at least one instruction")
	ErrTransactionFailed   = errors.New("transaction failed")
	ErrConfirmationTimeout = errors.New("confirmation timeout")
)

// RPCError wraps RPC failures with operation context.
type RPCError struct {
	Op  string
	Err error
}

func (e RPCError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e RPCError) Unwrap() error {
	return e.Err
}

// ValidationError represents input validation failures.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) ValidationError {
	return ValidationError{Field: field, Message: message}
}

// MissingParamError names a required account or key the caller left unset.
type MissingParamError struct {
	Param string
}

func (e MissingParamError) Error() string {
	return fmt.Sprintf("missing required param: %s", e.Param)
}

func (e MissingParamError) Unwrap() error {
	return ErrMissingRequiredParam
}

// TransactionError carries the on-chain failure of a submitted transaction.
type TransactionError struct {
	Signature string
	Err       interface{}
}

func (e TransactionError) Error() string {
	return fmt.Sprintf("transaction %s failed: %v", e.Signature, e.Err)
}

func (e TransactionError) Unwrap() error {
	return ErrTransactionFailed
}
