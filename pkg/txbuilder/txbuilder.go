// Package txbuilder assembles unsigned transactions from built instructions
// and hands signed ones to a submitter. Signing happens outside this SDK;
// the base64 helpers move transactions to and from an external signer.
package txbuilder

import (
	"context"
	"encoding/base64"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	solanarpc "github.com/gagliardetto/solana-go/rpc"

	"github.com/ninja0404/launchpad-go-sdk/pkg/types"
)

// BlockhashSource supplies recent blockhashes. *rpc.Client implements it.
type BlockhashSource interface {
	GetLatestBlockhash(ctx context.Context) (*solanarpc.GetLatestBlockhashResult, error)
}

// Submitter sends signed wire-format transactions and waits for
// confirmation. *rpc.Client and *jito.Client implement it.
type Submitter interface {
	SubmitAndConfirm(ctx context.Context, signedTx []byte) (solana.Signature, error)
}

// Builder ties together a blockhash source and a submitter.
type Builder struct {
	blockhash BlockhashSource
	submitter Submitter
}

// NewBuilder constructs a builder. submitter may be nil when only
// assembling transactions.
func NewBuilder(blockhash BlockhashSource, submitter Submitter) *Builder {
	return &Builder{blockhash: blockhash, submitter: submitter}
}

// WithSubmitter replaces the submitter, e.g. to route through Jito.
func (b *Builder) WithSubmitter(s Submitter) *Builder {
	b.submitter = s
	return b
}

// BuildTransaction builds an unsigned transaction with a fresh blockhash.
func (b *Builder) BuildTransaction(ctx context.Context, feePayer solana.PublicKey, instructions ...solana.Instruction) (*solana.Transaction, error) {
	if b.blockhash == nil {
		return nil, types.ErrNilRPC
	}
	if len(instructions) == 0 {
		return nil, types.ErrNoInstructions
	}
	latest, err := b.blockhash.GetLatestBlockhash(ctx)
	if err != nil {
		return nil, fmt.Errorf("get latest blockhash: %w", err)
	}
	return Assemble(latest.Value.Blockhash, feePayer, instructions...)
}

// Assemble builds an unsigned transaction for blockhash. Signature slots
// are zero-filled so the wire form is what a signer expects.
func Assemble(blockhash solana.Hash, feePayer solana.PublicKey, instructions ...solana.Instruction) (*solana.Transaction, error) {
	if err := types.RequireKey("feePayer", feePayer); err != nil {
		return nil, err
	}
	if len(instructions) == 0 {
		return nil, types.ErrNoInstructions
	}
	builder := solana.NewTransactionBuilder().
		SetRecentBlockHash(blockhash).
		SetFeePayer(feePayer)
	for _, ix := range instructions {
		builder.AddInstruction(ix)
	}
	tx, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("build transaction: %w", err)
	}
	tx.Signatures = make([]solana.Signature, tx.Message.Header.NumRequiredSignatures)
	return tx, nil
}

// RequiredSigners lists the keys that must sign tx, fee payer first.
func RequiredSigners(tx *solana.Transaction) []solana.PublicKey {
	n := int(tx.Message.Header.NumRequiredSignatures)
	if n > len(tx.Message.AccountKeys) {
		n = len(tx.Message.AccountKeys)
	}
	out := make([]solana.PublicKey, n)
	copy(out, tx.Message.AccountKeys[:n])
	return out
}

// ToBase64 encodes tx in wire format.
func ToBase64(tx *solana.Transaction) (string, error) {
	raw, err := tx.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("encode transaction: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// FromBase64 decodes a wire-format transaction.
func FromBase64(s string) (*solana.Transaction, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(raw))
	if err != nil {
		return nil, fmt.Errorf("decode transaction: %w", err)
	}
	return tx, nil
}

// IsSigned reports whether every required signature slot is filled.
func IsSigned(tx *solana.Transaction) bool {
	n := int(tx.Message.Header.NumRequiredSignatures)
	if len(tx.Signatures) < n {
		return false
	}
	for _, sig := range tx.Signatures[:n] {
		if sig == (solana.Signature{}) {
			return false
		}
	}
	return true
}

// Submit sends a signed transaction through the configured submitter and
// waits for confirmation.
func (b *Builder) Submit(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	if b.submitter == nil {
		return solana.Signature{}, types.ErrNilRPC
	}
	if !IsSigned(tx) {
		return solana.Signature{}, types.NewValidationError("transaction", "missing signatures")
	}
	raw, err := tx.MarshalBinary()
	if err != nil {
		return solana.Signature{}, fmt.Errorf("encode transaction: %w", err)
	}
	return b.submitter.SubmitAndConfirm(ctx, raw)
}
