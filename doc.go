// Package kryptos implements the AES-128 block cipher from first principles
// for Go applications that need direct control over the cipher engine.
//
// This package offers:
//   - The AES-128 key schedule and forward/inverse round transform,
//     validated against the FIPS-197 reference vector
//   - Five modes of operation: ECB, CBC, CFB, OFB and CTR
//   - A PKCS#7-style padding codec for the block-aligned modes
//   - Streaming CTR encryption for large datasets
//   - Key and IV utilities: generation, hex/base64 encoding, zeroization,
//     fingerprinting, and HKDF-based subkey derivation
//   - A cipher context cache and buffer pooling for hot paths
//
// The GF(2^8) field arithmetic is computed by shift-and-conditional-XOR
// rather than lookup tables, keeping every step of the round transform
// inspectable.
//
// # Quick Start
//
// Basic message encryption and decryption:
//
//	// Generate a key and an IV
//	key, err := kryptos.GenerateKey()
//	if err != nil {
//		log.Fatal(err)
//	}
//	iv, err := kryptos.GenerateIV()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Build a cipher context; the expanded key is immutable afterwards
//	c, err := kryptos.NewCipher(key)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Encrypt and decrypt in CBC mode
//	ciphertext, err := c.EncryptMode(kryptos.CBC, []byte("sensitive data"), iv)
//	if err != nil {
//		log.Fatal(err)
//	}
//	plaintext, err := c.DecryptMode(kryptos.CBC, ciphertext, iv)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Println(string(plaintext)) // Output: sensitive data
//
// # Choosing a mode
//
// ECB encrypts blocks independently and leaks equal-block structure; it is
// kept for interoperability and study, not recommended for messages. CBC
// chains blocks and requires a fresh random IV per message. CFB, OFB and
// CTR are stream modes: they preserve the exact input length, need no
// padding, and build exclusively on the forward transform. CTR additionally
// parallelizes across blocks.
//
// # Security model
//
// The package provides confidentiality only. There is no authentication
// (no MAC or AEAD), no password-based key derivation, and no constant-time
// hardening; callers needing tamper detection must layer it on top. A
// Cipher is immutable after construction and safe for concurrent use.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package kryptos
