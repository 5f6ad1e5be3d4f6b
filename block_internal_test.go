// block_internal_test.go: White-box tests for the field arithmetic, constant
// tables and key schedule.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package kryptos

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestGfMul_ReductionStep(t *testing.T) {
	cases := []struct {
		a, b, want byte
	}{
		{2, 1, 2},
		{2, 2, 4},
		{2, 0x80, 0x1b}, // forces the 0x11b reduction
		{1, 0xff, 0xff},
		{0, 0xff, 0},
		{3, 0x80, 0x9b},
	}
	for _, c := range cases {
		if got := gfMul(c.a, c.b); got != c.want {
			t.Errorf("gfMul(%#x, %#x) = %#x, want %#x", c.a, c.b, got, c.want)
		}
	}
}

func TestGfMul_Commutative(t *testing.T) {
	for a := 0; a < 256; a += 7 {
		for b := 0; b < 256; b += 11 {
			if gfMul(byte(a), byte(b)) != gfMul(byte(b), byte(a)) {
				t.Fatalf("gfMul not commutative for %#x, %#x", a, b)
			}
		}
	}
}

func TestSboxTables_MutualInverses(t *testing.T) {
	for b := 0; b < 256; b++ {
		if invSbox[sbox[b]] != byte(b) {
			t.Errorf("invSbox[sbox[%#x]] = %#x, want %#x", b, invSbox[sbox[b]], b)
		}
		if sbox[invSbox[b]] != byte(b) {
			t.Errorf("sbox[invSbox[%#x]] = %#x, want %#x", b, sbox[invSbox[b]], b)
		}
	}
}

func TestSbox_KnownEntries(t *testing.T) {
	// Spot checks against FIPS-197 figure 7.
	if sbox[0x00] != 0x63 {
		t.Errorf("sbox[0x00] = %#x, want 0x63", sbox[0x00])
	}
	if sbox[0x53] != 0xed {
		t.Errorf("sbox[0x53] = %#x, want 0xed", sbox[0x53])
	}
	if sbox[0xff] != 0x16 {
		t.Errorf("sbox[0xff] = %#x, want 0x16", sbox[0xff])
	}
}

func TestExpandKey_Fips197Schedule(t *testing.T) {
	key, _ := hex.DecodeString("2b7e151628aed2a6abf7158809cf4f3c")
	roundKeys := expandKey(key)

	if !bytes.Equal(roundKeys[0][:], key) {
		t.Errorf("round key 0 = %x, want the key verbatim", roundKeys[0])
	}

	// First and last derived round keys from the FIPS-197 appendix A walkthrough.
	rk1, _ := hex.DecodeString("a0fafe1788542cb123a339392a6c7605")
	if !bytes.Equal(roundKeys[1][:], rk1) {
		t.Errorf("round key 1 = %x, want %x", roundKeys[1], rk1)
	}
	rk10, _ := hex.DecodeString("d014f9a8c9ee2589e13f0cc8b6630ca6")
	if !bytes.Equal(roundKeys[10][:], rk10) {
		t.Errorf("round key 10 = %x, want %x", roundKeys[10], rk10)
	}
}

func TestExpandKey_Deterministic(t *testing.T) {
	key := make([]byte, KeySize)
	for i := range key {
		key[i] = byte(i * 3)
	}
	a := expandKey(key)
	b := expandKey(key)
	if a != b {
		t.Error("expandKey is not deterministic for the same key")
	}
}

func TestIncCounter_Wraparound(t *testing.T) {
	var ctr [BlockSize]byte
	for i := range ctr {
		ctr[i] = 0xff
	}
	incCounter(&ctr)
	for i, b := range ctr {
		if b != 0 {
			t.Fatalf("counter byte %d = %#x after wraparound, want 0", i, b)
		}
	}

	ctr = [BlockSize]byte{}
	ctr[BlockSize-1] = 0xff
	incCounter(&ctr)
	if ctr[BlockSize-1] != 0 || ctr[BlockSize-2] != 1 {
		t.Errorf("carry not propagated: %x", ctr)
	}
}
