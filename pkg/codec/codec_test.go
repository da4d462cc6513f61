package codec_test

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninja0404/launchpad-go-sdk/pkg/codec"
	"github.com/ninja0404/launchpad-go-sdk/pkg/types"
)

func TestInstructionDiscriminator(t *testing.T) {
	cases := map[string]string{
		"buy":                "66063d1201daebea",
		"sell":               "33e685a4017f83ad",
		"create_token":       "5434cce4188cea4b",
		"claim_creator_fees": "00177dea9c768659",
	}
	for op, want := range cases {
		t.Run(op, func(t *testing.T) {
			assert.Equal(t, want, codec.InstructionDiscriminator(op).String())
		})
	}
}

func TestAccountDiscriminator(t *testing.T) {
	assert.Equal(t, "5cf2e4e6d6d80894", codec.AccountDiscriminator("TokenLaunch").String())
	assert.Equal(t, "a04e8000f853e6a0", codec.AccountDiscriminator("PlatformConfig").String())
}

type direction uint8

func TestEncodeInstruction(t *testing.T) {
	key := solana.PublicKey{}
	for i := range key {
		key[i] = 7
	}

	tests := []struct {
		name   string
		op     string
		fields []interface{}
		want   string
	}{
		{
			name:   "u64",
			op:     "buy",
			fields: []interface{}{uint64(10_000_000)},
			want:   "66063d1201daebea8096980000000000",
		},
		{
			name:   "no fields",
			op:     "pause",
			fields: nil,
			want:   "d316ddfb4a79c12f",
		},
		{
			name: "options",
			op:   "update_platform_config",
			fields: []interface{}{
				codec.Some[uint16](100),
				codec.None[uint64](),
				codec.Some(key),
			},
			want: "c33c4c81922d438f" + "016400" + "00" + "01" + hex.EncodeToString(key[:]),
		},
		{
			name:   "named enum and bool",
			op:     "swap",
			fields: []interface{}{uint64(5_000_000), uint64(1_000), direction(1)},
			want:   "f8c69e91e17587c8404b4c0000000000e80300000000000001",
		},
		{
			name:   "strings",
			op:     "create_token",
			fields: []interface{}{"Moon", "MOON", "https://x.io/m.json", uint8(1), uint16(150)},
			want:   "5434cce4188cea4b040000004d6f6f6e040000004d4f4f4e1300000068747470733a2f2f782e696f2f6d2e6a736f6e019600",
		},
		{
			name:   "signed and bool",
			op:     "set_launch_paused",
			fields: []interface{}{true, int64(-1)},
			want:   "375669cb5a27a567" + "01" + "ffffffffffffffff",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codec.EncodeInstruction(tt.op, tt.fields...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, hex.EncodeToString(got))
		})
	}
}

func TestEncodeInstructionUnsupported(t *testing.T) {
	_, err := codec.EncodeInstruction("buy", 1.5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported")

	_, err = codec.EncodeInstruction("buy", []uint16{1})
	require.Error(t, err)
}

func TestReaderTruncation(t *testing.T) {
	r := codec.NewReader([]byte{1, 2, 3})
	assert.Equal(t, uint16(0x0201), r.U16())
	assert.Equal(t, uint64(0), r.U64())
	require.ErrorIs(t, r.Err(), types.ErrTruncatedData)

	// The first error sticks.
	r.U8()
	assert.Equal(t, 2, r.Pos())
}

func TestReaderStringPastEnd(t *testing.T) {
	// Length prefix claims 200 bytes, only 2 follow.
	r := codec.NewReader([]byte{200, 0, 0, 0, 'h', 'i'})
	assert.Empty(t, r.String())
	require.ErrorIs(t, r.Err(), types.ErrTruncatedData)
}

func TestReaderInvalidBool(t *testing.T) {
	r := codec.NewReader([]byte{2})
	r.Bool()
	require.ErrorIs(t, r.Err(), types.ErrSchemaMismatch)
}

// sample is a minimal schema: one string and one u64.
type sample struct {
	Label string
	Value uint64
}

func (*sample) AccountName() string { return "Sample" }
func (*sample) MinSize() int        { return 8 + 4 + 8 }
func (s *sample) EncodeFields(w *codec.Writer) {
	w.String(s.Label)
	w.U64(s.Value)
}
func (s *sample) DecodeFields(r *codec.Reader) {
	s.Label = r.String()
	s.Value = r.U64()
}

func TestDecodeAccount(t *testing.T) {
	in := &sample{Label: "hello", Value: 42}
	data, err := codec.EncodeAccount(in)
	require.NoError(t, err)
	require.Len(t, data, 8+4+5+8)

	var out sample
	require.NoError(t, codec.DecodeAccount(data, &out))
	assert.Equal(t, *in, out)

	// Trailing bytes are ignored.
	require.NoError(t, codec.DecodeAccount(append(data, 0xff), &out))
}

func TestDecodeAccountErrors(t *testing.T) {
	good, err := codec.EncodeAccount(&sample{Label: "hello", Value: 42})
	require.NoError(t, err)

	wrongDisc := append([]byte{}, good...)
	wrongDisc[0] ^= 0xff

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, types.ErrTruncatedData},
		{"short discriminator", good[:7], types.ErrTruncatedData},
		{"wrong discriminator", wrongDisc, types.ErrSchemaMismatch},
		{"wrong discriminator short body", wrongDisc[:10], types.ErrSchemaMismatch},
		{"below min size", good[:15], types.ErrTruncatedData},
		{"variable field past end", good[:len(good)-1], types.ErrTruncatedData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out sample
			err := codec.DecodeAccount(tt.data, &out)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}
