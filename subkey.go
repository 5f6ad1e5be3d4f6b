// subkey.go: Domain-separated subkey derivation from high-entropy master keys.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package kryptos

import (
	"crypto/sha256"
	"io"

	goerrors "github.com/agilira/go-errors"
	"golang.org/x/crypto/hkdf"
)

// DeriveSubkey derives a subkey from a high-entropy master key using
// HKDF-SHA256.
//
// The info parameter provides domain separation: two derivations from the
// same master key with different info values produce independent subkeys. A
// typical use is deriving one 16-byte cipher key per purpose or per channel
// from a single master key.
//
// This is not password-based derivation; masterKey must already carry full
// entropy (for example the output of GenerateKey or an external KEK).
//
// Parameters:
//   - masterKey: The input keying material (16+ bytes of full entropy)
//   - info: Optional domain-separation context (may be nil)
//   - keyLen: Length of the derived subkey in bytes (typically KeySize)
//
// Returns:
//   - The derived subkey
//   - An error if the master key is empty or the derivation fails
//
// Example:
//
//	master, _ := kryptos.GenerateKey()
//	fileKey, err := kryptos.DeriveSubkey(master, []byte("file-encryption"), kryptos.KeySize)
//	if err != nil {
//		log.Fatal(err)
//	}
//	c, _ := kryptos.NewCipher(fileKey)
func DeriveSubkey(masterKey, info []byte, keyLen int) ([]byte, error) {
	if len(masterKey) == 0 {
		return nil, goerrors.New(ErrCodeSubkeyDerive, "master key cannot be empty")
	}
	if keyLen <= 0 {
		return nil, goerrors.New(ErrCodeSubkeyDerive, "subkey length must be positive")
	}

	r := hkdf.New(sha256.New, masterKey, nil, info)
	subkey := make([]byte, keyLen)
	if _, err := io.ReadFull(r, subkey); err != nil {
		return nil, goerrors.Wrap(err, ErrCodeSubkeyDerive, "HKDF expansion failed")
	}
	return subkey, nil
}
