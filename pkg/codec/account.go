package codec

import (
	"bytes"
	"fmt"

	"github.com/ninja0404/launchpad-go-sdk/pkg/types"
)

// Account is an Anchor-style account schema.
type Account interface {
	// AccountName is the CamelCase name hashed into the discriminator.
	AccountName() string
	// MinSize is the smallest valid encoding, discriminator included.
	MinSize() int
	EncodeFields(w *Writer)
	DecodeFields(r *Reader)
}

// DecodeAccount checks the discriminator and size of data and decodes the
// fields into acc.
func DecodeAccount(data []byte, acc Account) error {
	name := acc.AccountName()
	if len(data) < DiscriminatorLen {
		return fmt.Errorf("%s: %w: %d bytes", name, types.ErrTruncatedData, len(data))
	}
	want := AccountDiscriminator(name)
	if !bytes.Equal(data[:DiscriminatorLen], want[:]) {
		return fmt.Errorf("%s: %w: discriminator %x, want %s", name, types.ErrSchemaMismatch, data[:DiscriminatorLen], want)
	}
	if len(data) < acc.MinSize() {
		return fmt.Errorf("%s: %w: %d bytes, want at least %d", name, types.ErrTruncatedData, len(data), acc.MinSize())
	}
	r := NewReader(data[DiscriminatorLen:])
	acc.DecodeFields(r)
	if err := r.Err(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// EncodeAccount returns the discriminator followed by the encoded fields.
func EncodeAccount(acc Account) ([]byte, error) {
	w := NewWriter()
	w.Discriminator(AccountDiscriminator(acc.AccountName()))
	acc.EncodeFields(w)
	data, err := w.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", acc.AccountName(), err)
	}
	return data, nil
}

// HasDiscriminator reports whether data starts with d.
func HasDiscriminator(data []byte, d Discriminator) bool {
	return len(data) >= DiscriminatorLen && bytes.Equal(data[:DiscriminatorLen], d[:])
}
