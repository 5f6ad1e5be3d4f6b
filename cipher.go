// cipher.go: Cipher context holding the expanded key, plus the public error taxonomy.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package kryptos

import (
	"errors"
	"fmt"

	goerrors "github.com/agilira/go-errors"
)

// Public standard errors for drop-in compatibility.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrInvalidKeySize is returned when the provided key is not exactly 16 bytes.
	ErrInvalidKeySize = errors.New("kryptos: invalid key size")

	// ErrInvalidBlockSize is returned when a block-aligned mode is given
	// ciphertext whose length is not a multiple of the block size.
	ErrInvalidBlockSize = errors.New("kryptos: input not a multiple of the block size")

	// ErrInvalidPadding is returned when corrupt or tampered padding is
	// discovered while unpadding ECB/CBC plaintext.
	ErrInvalidPadding = errors.New("kryptos: invalid padding")

	// ErrMissingIV is returned when a chaining or stream mode is invoked
	// without an IV/nonce.
	ErrMissingIV = errors.New("kryptos: missing IV")

	// ErrInvalidIVSize is returned when the supplied IV/nonce is not exactly 16 bytes.
	ErrInvalidIVSize = errors.New("kryptos: invalid IV size")

	// ErrUnsupportedMode is returned when an unknown mode of operation is requested.
	ErrUnsupportedMode = errors.New("kryptos: unsupported mode of operation")
)

// Error codes for rich error handling
const (
	ErrCodeInvalidKey      = "KRYPTOS_INVALID_KEY"
	ErrCodeInvalidBlock    = "KRYPTOS_INVALID_BLOCK_SIZE"
	ErrCodeInvalidPadding  = "KRYPTOS_INVALID_PADDING"
	ErrCodeMissingIV       = "KRYPTOS_MISSING_IV"
	ErrCodeInvalidIV       = "KRYPTOS_INVALID_IV_SIZE"
	ErrCodeUnsupportedMode = "KRYPTOS_UNSUPPORTED_MODE"
	ErrCodeHexDecode       = "KRYPTOS_HEX_DECODE"
	ErrCodeBase64Decode    = "KRYPTOS_BASE64_DECODE"
	ErrCodeRandomSource    = "KRYPTOS_RANDOM_SOURCE"
	ErrCodeSubkeyDerive    = "KRYPTOS_SUBKEY_DERIVE"
)

// Cipher is an AES-128 cipher context. It holds the eleven round keys
// expanded once from the 16-byte key and is immutable afterwards, so a
// single Cipher may be shared read-only across any number of goroutines
// without locking.
//
// Example:
//
//	key, _ := kryptos.GenerateKey()
//	c, err := kryptos.NewCipher(key)
//	if err != nil {
//		log.Fatal(err)
//	}
//	ciphertext, err := c.EncryptMode(kryptos.CBC, plaintext, iv)
type Cipher struct {
	roundKeys [numRounds + 1][BlockSize]byte
}

// NewCipher expands key into a new cipher context.
//
// The key must be exactly KeySize (16) bytes; any other length returns
// ErrInvalidKeySize. Key expansion is pure and deterministic, so two
// contexts built from the same key behave identically.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		richErr := goerrors.New(ErrCodeInvalidKey, fmt.Sprintf("invalid key size: must be 16 bytes for AES-128 (got %d)", len(key)))
		return nil, fmt.Errorf("%w: %w", ErrInvalidKeySize, richErr)
	}
	c := &Cipher{roundKeys: expandKey(key)}
	return c, nil
}

// BlockSize returns the cipher's block size in bytes. Together with
// Encrypt and Decrypt this satisfies the crypto/cipher.Block contract.
func (c *Cipher) BlockSize() int { return BlockSize }

// Encrypt applies the forward block transform to one 16-byte block,
// writing the result to dst. dst and src must each be at least BlockSize
// bytes and may overlap exactly. Handing the block primitive a short
// buffer is a programmer error and panics; it is never a user-facing
// error condition.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("kryptos: input not full block")
	}
	if len(dst) < BlockSize {
		panic("kryptos: output not full block")
	}
	encryptBlock(&c.roundKeys, dst, src)
}

// Decrypt applies the inverse block transform to one 16-byte block,
// writing the result to dst. Same buffer contract as Encrypt.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("kryptos: input not full block")
	}
	if len(dst) < BlockSize {
		panic("kryptos: output not full block")
	}
	decryptBlock(&c.roundKeys, dst, src)
}

// EncryptBlock is a convenience wrapper around Encrypt that allocates and
// returns the ciphertext block. block must be exactly BlockSize bytes.
func (c *Cipher) EncryptBlock(block []byte) []byte {
	if len(block) != BlockSize {
		panic("kryptos: input not full block")
	}
	out := make([]byte, BlockSize)
	encryptBlock(&c.roundKeys, out, block)
	return out
}

// DecryptBlock is a convenience wrapper around Decrypt that allocates and
// returns the plaintext block. block must be exactly BlockSize bytes.
func (c *Cipher) DecryptBlock(block []byte) []byte {
	if len(block) != BlockSize {
		panic("kryptos: input not full block")
	}
	out := make([]byte, BlockSize)
	decryptBlock(&c.roundKeys, out, block)
	return out
}
