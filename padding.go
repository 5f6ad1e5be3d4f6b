// padding.go: PKCS#7-style padding codec for the block-aligned modes.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package kryptos

import (
	"fmt"

	goerrors "github.com/agilira/go-errors"
)

// Pad appends PKCS#7 padding to data so its length becomes a multiple of
// the block size. Already-aligned input gains a full padding block, so
// Unpad can always recover the original length unambiguously.
//
// The input slice is not modified; the returned slice is freshly allocated.
func Pad(data []byte) []byte {
	// n lands in [1, BlockSize]: aligned input gets a full padding block.
	n := BlockSize - len(data)%BlockSize
	padded := make([]byte, len(data)+n)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

// Unpad validates and strips PKCS#7 padding.
//
// It returns ErrInvalidPadding if data is empty, if the final byte is zero
// or exceeds the block size, if it exceeds the input length, or if any of
// the trailing pad bytes differs from the pad length. On success the
// returned slice aliases data.
func Unpad(data []byte) ([]byte, error) {
	if len(data) == 0 {
		richErr := goerrors.New(ErrCodeInvalidPadding, "cannot unpad empty input")
		return nil, fmt.Errorf("%w: %w", ErrInvalidPadding, richErr)
	}
	n := int(data[len(data)-1])
	if n == 0 || n > BlockSize {
		richErr := goerrors.New(ErrCodeInvalidPadding, fmt.Sprintf("pad length %d out of range [1, %d]", n, BlockSize))
		return nil, fmt.Errorf("%w: %w", ErrInvalidPadding, richErr)
	}
	if n > len(data) {
		richErr := goerrors.New(ErrCodeInvalidPadding, fmt.Sprintf("pad length %d exceeds input length %d", n, len(data)))
		return nil, fmt.Errorf("%w: %w", ErrInvalidPadding, richErr)
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			richErr := goerrors.New(ErrCodeInvalidPadding, "inconsistent pad bytes")
			return nil, fmt.Errorf("%w: %w", ErrInvalidPadding, richErr)
		}
	}
	return data[:len(data)-n], nil
}
