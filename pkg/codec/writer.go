package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"reflect"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// Writer appends Borsh fields to a buffer. The first error sticks and
// later writes are no-ops.
type Writer struct {
	buf *bytes.Buffer
	enc *bin.Encoder
	err error
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	buf := new(bytes.Buffer)
	return &Writer{buf: buf, enc: bin.NewBorshEncoder(buf)}
}

// Err returns the first write error.
func (w *Writer) Err() error { return w.err }

// Bytes returns the encoded bytes, or the first error.
func (w *Writer) Bytes() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	return w.buf.Bytes(), nil
}

func (w *Writer) fail(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

// Raw writes b with no length prefix.
func (w *Writer) Raw(b []byte) {
	if w.err != nil {
		return
	}
	w.fail(w.enc.WriteBytes(b, false))
}

func (w *Writer) Discriminator(d Discriminator) { w.Raw(d[:]) }

func (w *Writer) U8(v uint8) {
	if w.err != nil {
		return
	}
	w.fail(w.enc.WriteUint8(v))
}

func (w *Writer) U16(v uint16) {
	if w.err != nil {
		return
	}
	w.fail(w.enc.WriteUint16(v, binary.LittleEndian))
}

func (w *Writer) U32(v uint32) {
	if w.err != nil {
		return
	}
	w.fail(w.enc.WriteUint32(v, binary.LittleEndian))
}

func (w *Writer) U64(v uint64) {
	if w.err != nil {
		return
	}
	w.fail(w.enc.WriteUint64(v, binary.LittleEndian))
}

func (w *Writer) I64(v int64) {
	if w.err != nil {
		return
	}
	w.fail(w.enc.WriteInt64(v, binary.LittleEndian))
}

func (w *Writer) Bool(v bool) {
	if w.err != nil {
		return
	}
	w.fail(w.enc.WriteBool(v))
}

// String writes a u32 length prefix then the UTF-8 bytes.
func (w *Writer) String(s string) {
	w.U32(uint32(len(s)))
	w.Raw([]byte(s))
}

func (w *Writer) Pubkey(pk solana.PublicKey) { w.Raw(pk[:]) }

// Field writes v according to its Go type. Named integer types are written
// by their underlying kind, so enums need no special casing.
func (w *Writer) Field(v interface{}) {
	if w.err != nil {
		return
	}
	switch x := v.(type) {
	case optional:
		w.fail(w.enc.WriteOption(x.present()))
		if x.present() {
			w.Field(x.value())
		}
		return
	case solana.PublicKey:
		w.Pubkey(x)
		return
	case []byte:
		w.Raw(x)
		return
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Uint8:
		w.U8(uint8(rv.Uint()))
	case reflect.Uint16:
		w.U16(uint16(rv.Uint()))
	case reflect.Uint32:
		w.U32(uint32(rv.Uint()))
	case reflect.Uint64:
		w.U64(rv.Uint())
	case reflect.Int64:
		w.I64(rv.Int())
	case reflect.Bool:
		w.Bool(rv.Bool())
	case reflect.String:
		w.String(rv.String())
	case reflect.Array:
		if rv.Type().Elem().Kind() != reflect.Uint8 {
			w.fail(fmt.Errorf("codec: unsupported array element %s", rv.Type().Elem()))
			return
		}
		b := make([]byte, rv.Len())
		for i := range b {
			b[i] = uint8(rv.Index(i).Uint())
		}
		w.Raw(b)
	default:
		w.fail(fmt.Errorf("codec: unsupported field type %T", v))
	}
}

// EncodeInstruction returns the discriminator for op followed by fields in order.
func EncodeInstruction(op string, fields ...interface{}) ([]byte, error) {
	w := NewWriter()
	w.Discriminator(InstructionDiscriminator(op))
	for _, f := range fields {
		w.Field(f)
	}
	data, err := w.Bytes()
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", op, err)
	}
	return data, nil
}
