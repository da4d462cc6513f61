package codec

import (
	"encoding/binary"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	"github.com/ninja0404/launchpad-go-sdk/pkg/types"
)

// Reader is a forward-only cursor over Borsh data. The first error sticks;
// reads after it return zero values.
type Reader struct {
	dec *bin.Decoder
	pos int
	n   int
	err error
}

// NewReader returns a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{dec: bin.NewBorshDecoder(data), n: len(data)}
}

// Err returns the first read error.
func (r *Reader) Err() error { return r.err }

// Pos is the number of bytes consumed.
func (r *Reader) Pos() int { return r.pos }

// Remaining is the number of unread bytes.
func (r *Reader) Remaining() int { return r.n - r.pos }

// Fail records err unless an error is already set.
func (r *Reader) Fail(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

// need reports whether k more bytes are available and records a truncation otherwise.
func (r *Reader) need(k int) bool {
	if r.err != nil {
		return false
	}
	if k > r.Remaining() {
		r.err = fmt.Errorf("%w: need %d bytes at offset %d, have %d", types.ErrTruncatedData, k, r.pos, r.Remaining())
		return false
	}
	r.pos += k
	return true
}

func (r *Reader) check(err error) {
	if err != nil {
		r.Fail(fmt.Errorf("%w: %v", types.ErrTruncatedData, err))
	}
}

func (r *Reader) U8() uint8 {
	if !r.need(1) {
		return 0
	}
	v, err := r.dec.ReadUint8()
	r.check(err)
	return v
}

func (r *Reader) U16() uint16 {
	if !r.need(2) {
		return 0
	}
	v, err := r.dec.ReadUint16(binary.LittleEndian)
	r.check(err)
	return v
}

func (r *Reader) U32() uint32 {
	if !r.need(4) {
		return 0
	}
	v, err := r.dec.ReadUint32(binary.LittleEndian)
	r.check(err)
	return v
}

func (r *Reader) U64() uint64 {
	if !r.need(8) {
		return 0
	}
	v, err := r.dec.ReadUint64(binary.LittleEndian)
	r.check(err)
	return v
}

func (r *Reader) I64() int64 {
	if !r.need(8) {
		return 0
	}
	v, err := r.dec.ReadInt64(binary.LittleEndian)
	r.check(err)
	return v
}

// Bool reads one byte; values other than 0 and 1 are a schema mismatch.
func (r *Reader) Bool() bool {
	b := r.U8()
	if b > 1 {
		r.Fail(fmt.Errorf("%w: invalid bool byte %d at offset %d", types.ErrSchemaMismatch, b, r.pos-1))
		return false
	}
	return b == 1
}

// Fixed reads exactly k bytes.
func (r *Reader) Fixed(k int) []byte {
	if !r.need(k) {
		return nil
	}
	b, err := r.dec.ReadNBytes(k)
	r.check(err)
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

func (r *Reader) Discriminator() Discriminator {
	var d Discriminator
	copy(d[:], r.Fixed(DiscriminatorLen))
	return d
}

func (r *Reader) Pubkey() solana.PublicKey {
	var pk solana.PublicKey
	copy(pk[:], r.Fixed(solana.PublicKeyLength))
	return pk
}

// String reads a u32 length prefix then that many bytes. A length past
// the end of the data is a truncation.
func (r *Reader) String() string {
	n := r.U32()
	if r.err != nil {
		return ""
	}
	if int64(n) > int64(r.Remaining()) {
		r.Fail(fmt.Errorf("%w: string length %d at offset %d exceeds remaining %d", types.ErrTruncatedData, n, r.pos-4, r.Remaining()))
		return ""
	}
	return string(r.Fixed(int(n)))
}

// OptionFlag reads an Option presence byte.
func (r *Reader) OptionFlag() bool {
	return r.Bool()
}
