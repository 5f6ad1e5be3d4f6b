// modes.go: Modes of operation sequencing the block transform across a message.
//
// ECB and CBC are block-aligned and go through the padding codec; CFB, OFB
// and CTR are stream modes built only on the forward transform and preserve
// the input length exactly.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package kryptos

import (
	"fmt"
	"strings"

	goerrors "github.com/agilira/go-errors"
)

// Mode selects a mode of operation for whole-message encryption.
type Mode int

// Supported modes of operation.
const (
	// ECB encrypts every block independently. Identical plaintext blocks
	// produce identical ciphertext blocks under the same key; this is the
	// documented weakness of the mode, not a defect.
	ECB Mode = iota

	// CBC chains each plaintext block with the previous ciphertext block.
	CBC

	// CFB feeds the previous ciphertext block back through the forward
	// transform to produce the next keystream block.
	CFB

	// OFB iterates the forward transform on its own output, independent of
	// the message.
	OFB

	// CTR encrypts a big-endian 128-bit counter seeded from the nonce.
	CTR
)

// String returns the conventional name of the mode.
func (m Mode) String() string {
	switch m {
	case ECB:
		return "ECB"
	case CBC:
		return "CBC"
	case CFB:
		return "CFB"
	case OFB:
		return "OFB"
	case CTR:
		return "CTR"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps a case-insensitive mode name to its Mode value.
//
// Returns ErrUnsupportedMode for anything other than ecb, cbc, cfb, ofb, ctr.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ecb":
		return ECB, nil
	case "cbc":
		return CBC, nil
	case "cfb":
		return CFB, nil
	case "ofb":
		return OFB, nil
	case "ctr":
		return CTR, nil
	default:
		richErr := goerrors.New(ErrCodeUnsupportedMode, fmt.Sprintf("unknown mode %q", s))
		return 0, fmt.Errorf("%w: %w", ErrUnsupportedMode, richErr)
	}
}

// checkIV validates the IV/nonce for the modes that require one.
func checkIV(iv []byte) error {
	if len(iv) == 0 {
		richErr := goerrors.New(ErrCodeMissingIV, "mode requires a 16-byte IV/nonce")
		return fmt.Errorf("%w: %w", ErrMissingIV, richErr)
	}
	if len(iv) != BlockSize {
		richErr := goerrors.New(ErrCodeInvalidIV, fmt.Sprintf("IV must be %d bytes (got %d)", BlockSize, len(iv)))
		return fmt.Errorf("%w: %w", ErrInvalidIVSize, richErr)
	}
	return nil
}

// checkAligned rejects ciphertext that a block-aligned mode cannot split.
func checkAligned(ciphertext []byte) error {
	if len(ciphertext)%BlockSize != 0 {
		richErr := goerrors.New(ErrCodeInvalidBlock, fmt.Sprintf("ciphertext length %d is not a multiple of %d", len(ciphertext), BlockSize))
		return fmt.Errorf("%w: %w", ErrInvalidBlockSize, richErr)
	}
	return nil
}

// EncryptMode encrypts plaintext under the chosen mode of operation.
//
// CBC, CFB, OFB and CTR require a 16-byte IV/nonce (ErrMissingIV,
// ErrInvalidIVSize); ECB ignores a supplied IV. ECB and CBC pad the
// plaintext with the PKCS#7 codec, so the ciphertext is always longer than
// the input; the stream modes preserve the exact length.
//
// The IV is never mutated: the per-message chain state is derived from it.
//
// Example:
//
//	c, _ := kryptos.NewCipher(key)
//	iv, _ := kryptos.GenerateIV()
//	ciphertext, err := c.EncryptMode(kryptos.CBC, plaintext, iv)
func (c *Cipher) EncryptMode(mode Mode, plaintext, iv []byte) ([]byte, error) {
	switch mode {
	case ECB:
		return c.EncryptECB(plaintext), nil
	case CBC:
		return c.EncryptCBC(plaintext, iv)
	case CFB:
		return c.EncryptCFB(plaintext, iv)
	case OFB:
		return c.EncryptOFB(plaintext, iv)
	case CTR:
		return c.EncryptCTR(plaintext, iv)
	default:
		richErr := goerrors.New(ErrCodeUnsupportedMode, fmt.Sprintf("unknown mode %d", int(mode)))
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedMode, richErr)
	}
}

// DecryptMode decrypts ciphertext produced by EncryptMode under the same
// mode, key and IV.
//
// ECB and CBC additionally fail with ErrInvalidBlockSize when the
// ciphertext is not block-aligned and with ErrInvalidPadding when the
// recovered padding is corrupt.
func (c *Cipher) DecryptMode(mode Mode, ciphertext, iv []byte) ([]byte, error) {
	switch mode {
	case ECB:
		return c.DecryptECB(ciphertext)
	case CBC:
		return c.DecryptCBC(ciphertext, iv)
	case CFB:
		return c.DecryptCFB(ciphertext, iv)
	case OFB:
		return c.DecryptOFB(ciphertext, iv)
	case CTR:
		return c.DecryptCTR(ciphertext, iv)
	default:
		richErr := goerrors.New(ErrCodeUnsupportedMode, fmt.Sprintf("unknown mode %d", int(mode)))
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedMode, richErr)
	}
}

// EncryptECB encrypts plaintext in ECB mode. Every block is transformed
// independently, so the operation is trivially parallelizable and needs no IV.
func (c *Cipher) EncryptECB(plaintext []byte) []byte {
	padded := Pad(plaintext)
	out := make([]byte, len(padded))
	for i := 0; i < len(padded); i += BlockSize {
		encryptBlock(&c.roundKeys, out[i:i+BlockSize], padded[i:i+BlockSize])
	}
	return out
}

// DecryptECB decrypts ECB ciphertext and strips the padding.
func (c *Cipher) DecryptECB(ciphertext []byte) ([]byte, error) {
	if err := checkAligned(ciphertext); err != nil {
		return nil, err
	}
	out := make([]byte, len(ciphertext))
	for i := 0; i < len(ciphertext); i += BlockSize {
		decryptBlock(&c.roundKeys, out[i:i+BlockSize], ciphertext[i:i+BlockSize])
	}
	return Unpad(out)
}

// EncryptCBC encrypts plaintext in CBC mode: C_i = E(P_i XOR C_{i-1}) with
// C_{-1} = IV. Encryption is strictly sequential across blocks.
func (c *Cipher) EncryptCBC(plaintext, iv []byte) ([]byte, error) {
	if err := checkIV(iv); err != nil {
		return nil, err
	}
	padded := Pad(plaintext)
	out := make([]byte, len(padded))

	scratch := getBuffer(BlockSize)
	defer putBuffer(scratch)
	block := *scratch

	prev := iv
	for i := 0; i < len(padded); i += BlockSize {
		for j := 0; j < BlockSize; j++ {
			block[j] = padded[i+j] ^ prev[j]
		}
		encryptBlock(&c.roundKeys, out[i:i+BlockSize], block)
		prev = out[i : i+BlockSize]
	}
	return out, nil
}

// DecryptCBC decrypts CBC ciphertext: P_i = D(C_i) XOR C_{i-1}. Each output
// block depends only on two ciphertext blocks, so decryption parallelizes.
func (c *Cipher) DecryptCBC(ciphertext, iv []byte) ([]byte, error) {
	if err := checkIV(iv); err != nil {
		return nil, err
	}
	if err := checkAligned(ciphertext); err != nil {
		return nil, err
	}
	out := make([]byte, len(ciphertext))
	prev := iv
	for i := 0; i < len(ciphertext); i += BlockSize {
		decryptBlock(&c.roundKeys, out[i:i+BlockSize], ciphertext[i:i+BlockSize])
		for j := 0; j < BlockSize; j++ {
			out[i+j] ^= prev[j]
		}
		prev = ciphertext[i : i+BlockSize]
	}
	return Unpad(out)
}

// EncryptCFB encrypts plaintext in CFB mode with full-block feedback.
// The final partial block consumes only the keystream bytes it needs, so
// no padding is involved and the ciphertext length equals the input length.
func (c *Cipher) EncryptCFB(plaintext, iv []byte) ([]byte, error) {
	if err := checkIV(iv); err != nil {
		return nil, err
	}
	out := make([]byte, len(plaintext))

	var reg, ks [BlockSize]byte
	copy(reg[:], iv)

	for i := 0; i < len(plaintext); i += BlockSize {
		encryptBlock(&c.roundKeys, ks[:], reg[:])
		n := min(BlockSize, len(plaintext)-i)
		for j := 0; j < n; j++ {
			out[i+j] = plaintext[i+j] ^ ks[j]
		}
		if n == BlockSize {
			copy(reg[:], out[i:i+BlockSize])
		}
	}
	return out, nil
}

// DecryptCFB decrypts CFB ciphertext. The shift register is fed from the
// ciphertext, which is fully available up front, so decryption parallelizes.
func (c *Cipher) DecryptCFB(ciphertext, iv []byte) ([]byte, error) {
	if err := checkIV(iv); err != nil {
		return nil, err
	}
	out := make([]byte, len(ciphertext))

	var reg, ks [BlockSize]byte
	copy(reg[:], iv)

	for i := 0; i < len(ciphertext); i += BlockSize {
		encryptBlock(&c.roundKeys, ks[:], reg[:])
		n := min(BlockSize, len(ciphertext)-i)
		for j := 0; j < n; j++ {
			out[i+j] = ciphertext[i+j] ^ ks[j]
		}
		if n == BlockSize {
			copy(reg[:], ciphertext[i:i+BlockSize])
		}
	}
	return out, nil
}

// EncryptOFB encrypts plaintext in OFB mode: the keystream is the forward
// transform iterated on its own output, starting from the IV. Any-length
// input; encryption and decryption are the same operation.
func (c *Cipher) EncryptOFB(plaintext, iv []byte) ([]byte, error) {
	if err := checkIV(iv); err != nil {
		return nil, err
	}
	out := make([]byte, len(plaintext))

	var ks [BlockSize]byte
	copy(ks[:], iv)

	for i := 0; i < len(plaintext); i += BlockSize {
		encryptBlock(&c.roundKeys, ks[:], ks[:])
		n := min(BlockSize, len(plaintext)-i)
		for j := 0; j < n; j++ {
			out[i+j] = plaintext[i+j] ^ ks[j]
		}
	}
	return out, nil
}

// DecryptOFB decrypts OFB ciphertext; OFB is symmetric.
func (c *Cipher) DecryptOFB(ciphertext, iv []byte) ([]byte, error) {
	return c.EncryptOFB(ciphertext, iv)
}

// EncryptCTR encrypts plaintext in CTR mode. The 16-byte nonce is treated
// as a big-endian 128-bit counter incremented once per block; the counter
// wraps modulo 2^128 rather than failing, and the nonce itself is never
// mutated. Blocks have no data dependency, so CTR parallelizes fully.
func (c *Cipher) EncryptCTR(plaintext, nonce []byte) ([]byte, error) {
	if err := checkIV(nonce); err != nil {
		return nil, err
	}
	out := make([]byte, len(plaintext))

	var ctr, ks [BlockSize]byte
	copy(ctr[:], nonce)

	for i := 0; i < len(plaintext); i += BlockSize {
		encryptBlock(&c.roundKeys, ks[:], ctr[:])
		n := min(BlockSize, len(plaintext)-i)
		for j := 0; j < n; j++ {
			out[i+j] = plaintext[i+j] ^ ks[j]
		}
		incCounter(&ctr)
	}
	return out, nil
}

// DecryptCTR decrypts CTR ciphertext; CTR is symmetric.
func (c *Cipher) DecryptCTR(ciphertext, nonce []byte) ([]byte, error) {
	return c.EncryptCTR(ciphertext, nonce)
}

// incCounter increments a big-endian 128-bit counter in place, wrapping
// modulo 2^128.
func incCounter(ctr *[BlockSize]byte) {
	for i := BlockSize - 1; i >= 0; i-- {
		ctr[i]++
		if ctr[i] != 0 {
			break
		}
	}
}
