// keyutils.go: Key and IV utilities for generation, encoding, zeroization, and fingerprinting.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package kryptos

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"unicode"

	goerrors "github.com/agilira/go-errors"
)

// GenerateKey generates a cryptographically secure random key of KeySize bytes.
//
// This function creates a new 16-byte (128-bit) key suitable for AES-128.
// The key is generated using the cryptographically secure random number
// generator provided by the operating system.
//
// Returns:
//   - A 16-byte key as a byte slice
//   - An error if key generation fails
//
// Example:
//
//	key, err := kryptos.GenerateKey()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println("Generated key length:", len(key)) // Output: 16
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, goerrors.Wrap(err, ErrCodeRandomSource, "failed to generate key")
	}
	return key, nil
}

// GenerateIV generates a cryptographically secure random 16-byte IV/nonce.
//
// An IV should be unique per message for the chaining modes (CBC, CFB, OFB)
// and unique per key for CTR, where it seeds the block counter.
//
// Returns:
//   - A 16-byte IV as a byte slice
//   - An error if generation fails
//
// Example:
//
//	iv, err := kryptos.GenerateIV()
//	if err != nil {
//		log.Fatal(err)
//	}
//	ciphertext, err := c.EncryptMode(kryptos.CBC, plaintext, iv)
func GenerateIV() ([]byte, error) {
	iv := make([]byte, BlockSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, goerrors.Wrap(err, ErrCodeRandomSource, "failed to generate IV")
	}
	return iv, nil
}

// KeyToBase64 encodes a key as a base64 string.
//
// This function is useful for storing keys in text-based formats like JSON
// or configuration files.
func KeyToBase64(key []byte) string {
	return base64.StdEncoding.EncodeToString(key)
}

// KeyFromBase64 decodes a base64 string to a key.
//
// This function is the inverse of KeyToBase64.
func KeyFromBase64(s string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, goerrors.Wrap(err, ErrCodeBase64Decode, "failed to decode base64 key")
	}
	return key, nil
}

// KeyToHex encodes a key as a lowercase hexadecimal string.
func KeyToHex(key []byte) string {
	return hex.EncodeToString(key)
}

// KeyFromHex decodes a hexadecimal string to a key. The input may contain
// both uppercase and lowercase hexadecimal characters.
func KeyFromHex(s string) ([]byte, error) {
	key, err := hex.DecodeString(s)
	if err != nil {
		return nil, goerrors.Wrap(err, ErrCodeHexDecode, "failed to decode hex key")
	}
	return key, nil
}

// DecodeHexStream decodes whitespace-insensitive hexadecimal text into bytes.
//
// This is the conventional representation of byte streams at the process
// boundary: lowercase hex on output, any mix of case and whitespace
// (spaces, tabs, newlines) accepted on input.
//
// Parameters:
//   - s: The hexadecimal text to decode
//
// Returns:
//   - The decoded bytes
//   - An error if the text contains non-hex characters or an odd number of digits
//
// Example:
//
//	data, err := kryptos.DecodeHexStream("2b 7e 15 16\n28 ae d2 a6")
func DecodeHexStream(s string) ([]byte, error) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if len(compact)%2 != 0 {
		return nil, goerrors.New(ErrCodeHexDecode, fmt.Sprintf("odd number of hex digits (%d)", len(compact)))
	}
	data, err := hex.DecodeString(compact)
	if err != nil {
		return nil, goerrors.Wrap(err, ErrCodeHexDecode, "failed to decode hex stream")
	}
	return data, nil
}

// EncodeHexStream encodes bytes as lowercase hexadecimal text, the inverse
// of DecodeHexStream.
func EncodeHexStream(data []byte) string {
	return hex.EncodeToString(data)
}

// Zeroize securely wipes a byte slice from memory.
//
// This function overwrites all bytes in the slice with zeros to prevent
// sensitive data from remaining in memory after use.
//
// Note: This function modifies the original slice in place.
//
// Example:
//
//	key, _ := kryptos.GenerateKey()
//	c, _ := kryptos.NewCipher(key)
//	kryptos.Zeroize(key) // the context keeps its own expanded copy
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// GetKeyFingerprint generates a fingerprint for a key (non-cryptographic).
//
// This function creates a short, human-readable identifier for a key by
// computing the SHA-256 hash and taking the first 8 bytes. The fingerprint
// is useful for logging, cache keys, and identifying keys without exposing
// the actual key material.
//
// Returns:
//   - A 16-character hexadecimal string representing the fingerprint
//   - An empty string if the key is empty
func GetKeyFingerprint(key []byte) string {
	if len(key) == 0 {
		return ""
	}
	hash := sha256.Sum256(key)
	return fmt.Sprintf("%016x", hash[:8])
}
