// keyutils_test.go: Test cases for key and IV utilities.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package kryptos_test

import (
	"bytes"
	"testing"

	"github.com/agilira/kryptos"
)

func TestGenerateKey_Basic(t *testing.T) {
	key, err := kryptos.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey failed: %v", err)
	}
	if len(key) != kryptos.KeySize {
		t.Errorf("key length = %d, want %d", len(key), kryptos.KeySize)
	}

	other, err := kryptos.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey failed: %v", err)
	}
	if bytes.Equal(key, other) {
		t.Error("two generated keys are identical")
	}
}

func TestGenerateIV_Basic(t *testing.T) {
	iv, err := kryptos.GenerateIV()
	if err != nil {
		t.Fatalf("GenerateIV failed: %v", err)
	}
	if len(iv) != kryptos.BlockSize {
		t.Errorf("IV length = %d, want %d", len(iv), kryptos.BlockSize)
	}
}

func TestKeyEncoding_RoundTrips(t *testing.T) {
	key, err := kryptos.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey failed: %v", err)
	}

	fromHex, err := kryptos.KeyFromHex(kryptos.KeyToHex(key))
	if err != nil {
		t.Fatalf("hex round trip failed: %v", err)
	}
	if !bytes.Equal(key, fromHex) {
		t.Error("hex round trip mismatch")
	}

	fromB64, err := kryptos.KeyFromBase64(kryptos.KeyToBase64(key))
	if err != nil {
		t.Fatalf("base64 round trip failed: %v", err)
	}
	if !bytes.Equal(key, fromB64) {
		t.Error("base64 round trip mismatch")
	}
}

func TestKeyEncoding_InvalidInput(t *testing.T) {
	if _, err := kryptos.KeyFromHex("not-hex"); err == nil {
		t.Error("expected error for invalid hex")
	}
	if _, err := kryptos.KeyFromBase64("!!!"); err == nil {
		t.Error("expected error for invalid base64")
	}
}

func TestDecodeHexStream_WhitespaceInsensitive(t *testing.T) {
	want := mustHex(t, "2b7e151628aed2a6abf7158809cf4f3c")
	inputs := []string{
		"2b7e151628aed2a6abf7158809cf4f3c",
		"2b 7e 15 16 28 ae d2 a6 ab f7 15 88 09 cf 4f 3c",
		"2b7e1516\n28aed2a6\nabf71588\n09cf4f3c\n",
		"\t2B7E151628AED2A6ABF7158809CF4F3C  ",
	}
	for _, in := range inputs {
		got, err := kryptos.DecodeHexStream(in)
		if err != nil {
			t.Errorf("DecodeHexStream(%q) failed: %v", in, err)
			continue
		}
		if !bytes.Equal(got, want) {
			t.Errorf("DecodeHexStream(%q) = %x, want %x", in, got, want)
		}
	}
}

func TestDecodeHexStream_Errors(t *testing.T) {
	if _, err := kryptos.DecodeHexStream("abc"); err == nil {
		t.Error("expected error for odd digit count")
	}
	if _, err := kryptos.DecodeHexStream("zz"); err == nil {
		t.Error("expected error for non-hex characters")
	}
}

func TestEncodeHexStream_Lowercase(t *testing.T) {
	got := kryptos.EncodeHexStream([]byte{0xAB, 0xCD, 0xEF})
	if got != "abcdef" {
		t.Errorf("EncodeHexStream = %q, want %q", got, "abcdef")
	}
}

func TestZeroize(t *testing.T) {
	key := []byte{1, 2, 3, 4, 5}
	kryptos.Zeroize(key)
	for i, b := range key {
		if b != 0 {
			t.Errorf("byte %d not zeroized: %#x", i, b)
		}
	}
}

func TestGetKeyFingerprint(t *testing.T) {
	key := mustHex(t, "2b7e151628aed2a6abf7158809cf4f3c")
	fp := kryptos.GetKeyFingerprint(key)
	if len(fp) != 16 {
		t.Errorf("fingerprint length = %d, want 16", len(fp))
	}
	if fp != kryptos.GetKeyFingerprint(key) {
		t.Error("fingerprint is not deterministic")
	}
	if fp == kryptos.GetKeyFingerprint([]byte("other key material")) {
		t.Error("different keys share a fingerprint")
	}
	if kryptos.GetKeyFingerprint(nil) != "" {
		t.Error("expected empty fingerprint for empty key")
	}
}
