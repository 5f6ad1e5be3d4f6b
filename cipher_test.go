// cipher_test.go: Test cases for the cipher context and block transform.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package kryptos_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"math/rand"
	"testing"

	"github.com/agilira/kryptos"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex literal %q: %v", s, err)
	}
	return b
}

func TestNewCipher_KeySizeValidation(t *testing.T) {
	for _, size := range []int{0, 1, 15, 17, 24, 32} {
		_, err := kryptos.NewCipher(make([]byte, size))
		if err == nil {
			t.Errorf("expected error for %d-byte key", size)
		}
		if !errors.Is(err, kryptos.ErrInvalidKeySize) {
			t.Errorf("expected ErrInvalidKeySize for %d-byte key, got %v", size, err)
		}
	}

	if _, err := kryptos.NewCipher(nil); !errors.Is(err, kryptos.ErrInvalidKeySize) {
		t.Errorf("expected ErrInvalidKeySize for nil key, got %v", err)
	}

	if _, err := kryptos.NewCipher(make([]byte, kryptos.KeySize)); err != nil {
		t.Errorf("unexpected error for 16-byte key: %v", err)
	}
}

func TestBlockTransform_Fips197Vector(t *testing.T) {
	key := mustHex(t, "2b7e151628aed2a6abf7158809cf4f3c")
	plaintext := mustHex(t, "3243f6a8885a308d313198a2e0370734")
	ciphertext := mustHex(t, "3925841d02dc09fbdc118597196a0b32")

	c, err := kryptos.NewCipher(key)
	if err != nil {
		t.Fatalf("NewCipher failed: %v", err)
	}

	got := c.EncryptBlock(plaintext)
	if !bytes.Equal(got, ciphertext) {
		t.Errorf("encrypt = %x, want %x", got, ciphertext)
	}

	back := c.DecryptBlock(ciphertext)
	if !bytes.Equal(back, plaintext) {
		t.Errorf("decrypt = %x, want %x", back, plaintext)
	}
}

func TestBlockTransform_RoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		key := make([]byte, kryptos.KeySize)
		block := make([]byte, kryptos.BlockSize)
		rng.Read(key)
		rng.Read(block)

		c, err := kryptos.NewCipher(key)
		if err != nil {
			t.Fatalf("NewCipher failed: %v", err)
		}
		if got := c.DecryptBlock(c.EncryptBlock(block)); !bytes.Equal(got, block) {
			t.Fatalf("round trip failed for key %x block %x", key, block)
		}
	}
}

func TestBlockTransform_InPlace(t *testing.T) {
	key := mustHex(t, "2b7e151628aed2a6abf7158809cf4f3c")
	c, _ := kryptos.NewCipher(key)

	buf := mustHex(t, "3243f6a8885a308d313198a2e0370734")
	want := mustHex(t, "3925841d02dc09fbdc118597196a0b32")
	c.Encrypt(buf, buf)
	if !bytes.Equal(buf, want) {
		t.Errorf("in-place encrypt = %x, want %x", buf, want)
	}
	c.Decrypt(buf, buf)
	if !bytes.Equal(buf, mustHex(t, "3243f6a8885a308d313198a2e0370734")) {
		t.Errorf("in-place decrypt did not restore the plaintext: %x", buf)
	}
}

func TestBlockTransform_ShortBufferPanics(t *testing.T) {
	key := make([]byte, kryptos.KeySize)
	c, _ := kryptos.NewCipher(key)

	expectPanic := func(name string, f func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic for short buffer", name)
			}
		}()
		f()
	}

	short := make([]byte, kryptos.BlockSize-1)
	full := make([]byte, kryptos.BlockSize)
	expectPanic("Encrypt short src", func() { c.Encrypt(full, short) })
	expectPanic("Encrypt short dst", func() { c.Encrypt(short, full) })
	expectPanic("Decrypt short src", func() { c.Decrypt(full, short) })
	expectPanic("EncryptBlock short", func() { c.EncryptBlock(short) })
	expectPanic("DecryptBlock long", func() { c.DecryptBlock(make([]byte, kryptos.BlockSize+1)) })
}

func TestCipher_BlockSize(t *testing.T) {
	c, _ := kryptos.NewCipher(make([]byte, kryptos.KeySize))
	if c.BlockSize() != kryptos.BlockSize {
		t.Errorf("BlockSize() = %d, want %d", c.BlockSize(), kryptos.BlockSize)
	}
}

func TestCipher_ContextsAreIndependent(t *testing.T) {
	key1 := mustHex(t, "000102030405060708090a0b0c0d0e0f")
	key2 := mustHex(t, "0f0e0d0c0b0a09080706050403020100")
	c1, _ := kryptos.NewCipher(key1)
	c2, _ := kryptos.NewCipher(key2)

	block := mustHex(t, "00112233445566778899aabbccddeeff")
	if bytes.Equal(c1.EncryptBlock(block), c2.EncryptBlock(block)) {
		t.Error("different keys produced identical ciphertext blocks")
	}
}
