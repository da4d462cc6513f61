package codec

import (
	"crypto/sha256"
	"encoding/hex"
)

// DiscriminatorLen is the Anchor discriminator prefix length.
const DiscriminatorLen = 8

// Discriminator is the 8-byte prefix on instruction data and account data.
type Discriminator [DiscriminatorLen]byte

func (d Discriminator) String() string {
	return hex.EncodeToString(d[:])
}

// Sighash returns sha256(namespace + ":" + name)[:8].
func Sighash(namespace, name string) Discriminator {
	sum := sha256.Sum256([]byte(namespace + ":" + name))
	var d Discriminator
	copy(d[:], sum[:DiscriminatorLen])
	return d
}

// InstructionDiscriminator returns the discriminator for a snake_case instruction name.
func InstructionDiscriminator(op string) Discriminator {
	return Sighash("global", op)
}

// AccountDiscriminator returns the discriminator for a CamelCase account name.
func AccountDiscriminator(name string) Discriminator {
	return Sighash("account", name)
}
