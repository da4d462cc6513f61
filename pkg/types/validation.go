package types

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// ValidateAmount rejects zero amounts.
func ValidateAmount(field string, amount uint64) error {
	if amount == 0 {
		return NewValidationError(field, "must be greater than 0")
	}
	return nil
}

// ValidateBps validates a basis point value.
func ValidateBps(field string, bps uint64) error {
	if bps > 10000 {
		return NewValidationError(field, "must be <= 10000 (100%)")
	}
	return nil
}

// ValidateMaxLen rejects strings longer than max bytes.
func ValidateMaxLen(field, s string, max int) error {
	if len(s) > max {
		return NewValidationError(field, fmt.Sprintf("length %d exceeds %d bytes", len(s), max))
	}
	return nil
}

// RequireKey returns a MissingParamError if key is zero.
func RequireKey(name string, key solana.PublicKey) error {
	if key.IsZero() {
		return MissingParamError{Param: name}
	}
	return nil
}

// NamedKey pairs a param name with its key for ordered checks.
type NamedKey struct {
	Name string
	Key  solana.PublicKey
}

// RequireKeys reports the first zero key in order.
func RequireKeys(keys ...NamedKey) error {
	for _, k := range keys {
		if err := RequireKey(k.Name, k.Key); err != nil {
			return err
		}
	}
	return nil
}
