// block.go: AES-128 key schedule and forward/inverse round transform.
//
// The state is a flat 16-byte array holding the 4x4 AES matrix in
// column-major order: byte i sits at row i%4, column i/4. All round
// steps operate in place on that layout.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package kryptos

// BlockSize is the AES block size in bytes.
const BlockSize = 16

// KeySize is the required key size for AES-128 in bytes.
const KeySize = 16

// numRounds is the AES-128 round count; the expanded key holds numRounds+1 round keys.
const numRounds = 10

// sbox is the AES forward substitution table (FIPS-197 figure 7).
var sbox = [256]byte{
	0x63, 0x7c, 0x77, 0x7b, 0xf2, 0x6b, 0x6f, 0xc5, 0x30, 0x01, 0x67, 0x2b, 0xfe, 0xd7, 0xab, 0x76,
	0xca, 0x82, 0xc9, 0x7d, 0xfa, 0x59, 0x47, 0xf0, 0xad, 0xd4, 0xa2, 0xaf, 0x9c, 0xa4, 0x72, 0xc0,
	0xb7, 0xfd, 0x93, 0x26, 0x36, 0x3f, 0xf7, 0xcc, 0x34, 0xa5, 0xe5, 0xf1, 0x71, 0xd8, 0x31, 0x15,
	0x04, 0xc7, 0x23, 0xc3, 0x18, 0x96, 0x05, 0x9a, 0x07, 0x12, 0x80, 0xe2, 0xeb, 0x27, 0xb2, 0x75,
	0x09, 0x83, 0x2c, 0x1a, 0x1b, 0x6e, 0x5a, 0xa0, 0x52, 0x3b, 0xd6, 0xb3, 0x29, 0xe3, 0x2f, 0x84,
	0x53, 0xd1, 0x00, 0xed, 0x20, 0xfc, 0xb1, 0x5b, 0x6a, 0xcb, 0xbe, 0x39, 0x4a, 0x4c, 0x58, 0xcf,
	0xd0, 0xef, 0xaa, 0xfb, 0x43, 0x4d, 0x33, 0x85, 0x45, 0xf9, 0x02, 0x7f, 0x50, 0x3c, 0x9f, 0xa8,
	0x51, 0xa3, 0x40, 0x8f, 0x92, 0x9d, 0x38, 0xf5, 0xbc, 0xb6, 0xda, 0x21, 0x10, 0xff, 0xf3, 0xd2,
	0xcd, 0x0c, 0x13, 0xec, 0x5f, 0x97, 0x44, 0x17, 0xc4, 0xa7, 0x7e, 0x3d, 0x64, 0x5d, 0x19, 0x73,
	0x60, 0x81, 0x4f, 0xdc, 0x22, 0x2a, 0x90, 0x88, 0x46, 0xee, 0xb8, 0x14, 0xde, 0x5e, 0x0b, 0xdb,
	0xe0, 0x32, 0x3a, 0x0a, 0x49, 0x06, 0x24, 0x5c, 0xc2, 0xd3, 0xac, 0x62, 0x91, 0x95, 0xe4, 0x79,
	0xe7, 0xc8, 0x37, 0x6d, 0x8d, 0xd5, 0x4e, 0xa9, 0x6c, 0x56, 0xf4, 0xea, 0x65, 0x7a, 0xae, 0x08,
	0xba, 0x78, 0x25, 0x2e, 0x1c, 0xa6, 0xb4, 0xc6, 0xe8, 0xdd, 0x74, 0x1f, 0x4b, 0xbd, 0x8b, 0x8a,
	0x70, 0x3e, 0xb5, 0x66, 0x48, 0x03, 0xf6, 0x0e, 0x61, 0x35, 0x57, 0xb9, 0x86, 0xc1, 0x1d, 0x9e,
	0xe1, 0xf8, 0x98, 0x11, 0x69, 0xd9, 0x8e, 0x94, 0x9b, 0x1e, 0x87, 0xe9, 0xce, 0x55, 0x28, 0xdf,
	0x8c, 0xa1, 0x89, 0x0d, 0xbf, 0xe6, 0x42, 0x68, 0x41, 0x99, 0x2d, 0x0f, 0xb0, 0x54, 0xbb, 0x16,
}

// invSbox is the inverse substitution table; invSbox[sbox[b]] == b for every byte.
var invSbox = [256]byte{
	0x52, 0x09, 0x6a, 0xd5, 0x30, 0x36, 0xa5, 0x38, 0xbf, 0x40, 0xa3, 0x9e, 0x81, 0xf3, 0xd7, 0xfb,
	0x7c, 0xe3, 0x39, 0x82, 0x9b, 0x2f, 0xff, 0x87, 0x34, 0x8e, 0x43, 0x44, 0xc4, 0xde, 0xe9, 0xcb,
	0x54, 0x7b, 0x94, 0x32, 0xa6, 0xc2, 0x23, 0x3d, 0xee, 0x4c, 0x95, 0x0b, 0x42, 0xfa, 0xc3, 0x4e,
	0x08, 0x2e, 0xa1, 0x66, 0x28, 0xd9, 0x24, 0xb2, 0x76, 0x5b, 0xa2, 0x49, 0x6d, 0x8b, 0xd1, 0x25,
	0x72, 0xf8, 0xf6, 0x64, 0x86, 0x68, 0x98, 0x16, 0xd4, 0xa4, 0x5c, 0xcc, 0x5d, 0x65, 0xb6, 0x92,
	0x6c, 0x70, 0x48, 0x50, 0xfd, 0xed, 0xb9, 0xda, 0x5e, 0x15, 0x46, 0x57, 0xa7, 0x8d, 0x9d, 0x84,
	0x90, 0xd8, 0xab, 0x00, 0x8c, 0xbc, 0xd3, 0x0a, 0xf7, 0xe4, 0x58, 0x05, 0xb8, 0xb3, 0x45, 0x06,
	0xd0, 0x2c, 0x1e, 0x8f, 0xca, 0x3f, 0x0f, 0x02, 0xc1, 0xaf, 0xbd, 0x03, 0x01, 0x13, 0x8a, 0x6b,
	0x3a, 0x91, 0x11, 0x41, 0x4f, 0x67, 0xdc, 0xea, 0x97, 0xf2, 0xcf, 0xce, 0xf0, 0xb4, 0xe6, 0x73,
	0x96, 0xac, 0x74, 0x22, 0xe7, 0xad, 0x35, 0x85, 0xe2, 0xf9, 0x37, 0xe8, 0x1c, 0x75, 0xdf, 0x6e,
	0x47, 0xf1, 0x1a, 0x71, 0x1d, 0x29, 0xc5, 0x89, 0x6f, 0xb7, 0x62, 0x0e, 0xaa, 0x18, 0xbe, 0x1b,
	0xfc, 0x56, 0x3e, 0x4b, 0xc6, 0xd2, 0x79, 0x20, 0x9a, 0xdb, 0xc0, 0xfe, 0x78, 0xcd, 0x5a, 0xf4,
	0x1f, 0xdd, 0xa8, 0x33, 0x88, 0x07, 0xc7, 0x31, 0xb1, 0x12, 0x10, 0x59, 0x27, 0x80, 0xec, 0x5f,
	0x60, 0x51, 0x7f, 0xa9, 0x19, 0xb5, 0x4a, 0x0d, 0x2d, 0xe5, 0x7a, 0x9f, 0x93, 0xc9, 0x9c, 0xef,
	0xa0, 0xe0, 0x3b, 0x4d, 0xae, 0x2a, 0xf5, 0xb0, 0xc8, 0xeb, 0xbb, 0x3c, 0x83, 0x53, 0x99, 0x61,
	0x17, 0x2b, 0x04, 0x7e, 0xba, 0x77, 0xd6, 0x26, 0xe1, 0x69, 0x14, 0x63, 0x55, 0x21, 0x0c, 0x7d,
}

// rcon holds the round constants for the key schedule, indexed by round number
// (rcon[0] is unused).
var rcon = [11]byte{0x00, 0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}

// gfMul multiplies two elements of GF(2^8) reduced by the AES polynomial
// x^8 + x^4 + x^3 + x + 1 (0x11b), via shift-and-conditional-XOR.
func gfMul(a, b byte) byte {
	var result byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			result ^= a
		}
		highBit := a & 0x80
		a <<= 1
		if highBit != 0 {
			a ^= 0x1b
		}
		b >>= 1
	}
	return result
}

// expandKey derives the 11 round keys from a 16-byte key (FIPS-197 §5.2).
// Round key 0 is the key verbatim; every fourth word applies RotWord,
// SubWord and the round constant before the XOR with the word 16 bytes back.
// The caller validates the key length.
func expandKey(key []byte) [numRounds + 1][BlockSize]byte {
	var w [(numRounds + 1) * BlockSize]byte
	copy(w[:BlockSize], key)

	for i := BlockSize; i < len(w); i += 4 {
		var temp [4]byte
		copy(temp[:], w[i-4:i])

		if i%BlockSize == 0 {
			// RotWord: cyclic left rotation by one byte.
			temp[0], temp[1], temp[2], temp[3] = temp[1], temp[2], temp[3], temp[0]
			// SubWord through the S-box, then the round constant on byte 0.
			for j := range temp {
				temp[j] = sbox[temp[j]]
			}
			temp[0] ^= rcon[i/BlockSize]
		}

		for j := 0; j < 4; j++ {
			w[i+j] = w[i-BlockSize+j] ^ temp[j]
		}
	}

	var roundKeys [numRounds + 1][BlockSize]byte
	for r := range roundKeys {
		copy(roundKeys[r][:], w[r*BlockSize:(r+1)*BlockSize])
	}
	return roundKeys
}

func subBytes(s *[BlockSize]byte) {
	for i := range s {
		s[i] = sbox[s[i]]
	}
}

func invSubBytes(s *[BlockSize]byte) {
	for i := range s {
		s[i] = invSbox[s[i]]
	}
}

// shiftRows rotates row r of the state left by r positions. Row r of the
// column-major state lives at indices r, r+4, r+8, r+12.
func shiftRows(s *[BlockSize]byte) {
	for r := 1; r < 4; r++ {
		var row [4]byte
		for c := 0; c < 4; c++ {
			row[c] = s[c*4+r]
		}
		for c := 0; c < 4; c++ {
			s[c*4+r] = row[(c+r)%4]
		}
	}
}

// invShiftRows rotates row r of the state right by r positions.
func invShiftRows(s *[BlockSize]byte) {
	for r := 1; r < 4; r++ {
		var row [4]byte
		for c := 0; c < 4; c++ {
			row[c] = s[c*4+r]
		}
		for c := 0; c < 4; c++ {
			s[c*4+r] = row[(c+4-r)%4]
		}
	}
}

// mixColumns multiplies each state column by the fixed AES matrix
// [2 3 1 1; 1 2 3 1; 1 1 2 3; 3 1 1 2] over GF(2^8).
func mixColumns(s *[BlockSize]byte) {
	for c := 0; c < 4; c++ {
		t0, t1, t2, t3 := s[c*4], s[c*4+1], s[c*4+2], s[c*4+3]
		s[c*4] = gfMul(2, t0) ^ gfMul(3, t1) ^ t2 ^ t3
		s[c*4+1] = t0 ^ gfMul(2, t1) ^ gfMul(3, t2) ^ t3
		s[c*4+2] = t0 ^ t1 ^ gfMul(2, t2) ^ gfMul(3, t3)
		s[c*4+3] = gfMul(3, t0) ^ t1 ^ t2 ^ gfMul(2, t3)
	}
}

// invMixColumns multiplies each state column by the inverse matrix
// [E B D 9; 9 E B D; D 9 E B; B D 9 E] over GF(2^8).
func invMixColumns(s *[BlockSize]byte) {
	for c := 0; c < 4; c++ {
		t0, t1, t2, t3 := s[c*4], s[c*4+1], s[c*4+2], s[c*4+3]
		s[c*4] = gfMul(0x0e, t0) ^ gfMul(0x0b, t1) ^ gfMul(0x0d, t2) ^ gfMul(0x09, t3)
		s[c*4+1] = gfMul(0x09, t0) ^ gfMul(0x0e, t1) ^ gfMul(0x0b, t2) ^ gfMul(0x0d, t3)
		s[c*4+2] = gfMul(0x0d, t0) ^ gfMul(0x09, t1) ^ gfMul(0x0e, t2) ^ gfMul(0x0b, t3)
		s[c*4+3] = gfMul(0x0b, t0) ^ gfMul(0x0d, t1) ^ gfMul(0x09, t2) ^ gfMul(0x0e, t3)
	}
}

func addRoundKey(s *[BlockSize]byte, rk *[BlockSize]byte) {
	for i := range s {
		s[i] ^= rk[i]
	}
}

// encryptBlock applies the forward cipher to one block: the initial round key
// addition, nine full rounds, and a final round without MixColumns.
// dst and src must each be exactly BlockSize bytes and may overlap.
func encryptBlock(roundKeys *[numRounds + 1][BlockSize]byte, dst, src []byte) {
	var s [BlockSize]byte
	copy(s[:], src)

	addRoundKey(&s, &roundKeys[0])
	for r := 1; r < numRounds; r++ {
		subBytes(&s)
		shiftRows(&s)
		mixColumns(&s)
		addRoundKey(&s, &roundKeys[r])
	}
	subBytes(&s)
	shiftRows(&s)
	addRoundKey(&s, &roundKeys[numRounds])

	copy(dst, s[:])
}

// decryptBlock applies the exact inverse mapping. The ordering inside the
// main loop (InvShiftRows, InvSubBytes, AddRoundKey, InvMixColumns) is the
// one that inverts encryptBlock against the standard key schedule; it is
// pinned by the FIPS-197 vector test.
func decryptBlock(roundKeys *[numRounds + 1][BlockSize]byte, dst, src []byte) {
	var s [BlockSize]byte
	copy(s[:], src)

	addRoundKey(&s, &roundKeys[numRounds])
	for r := numRounds - 1; r >= 1; r-- {
		invShiftRows(&s)
		invSubBytes(&s)
		addRoundKey(&s, &roundKeys[r])
		invMixColumns(&s)
	}
	invShiftRows(&s)
	invSubBytes(&s)
	addRoundKey(&s, &roundKeys[0])

	copy(dst, s[:])
}
