// hexio.go: Hex-encoded file helpers over an abstract filesystem.
//
// Byte streams at the process boundary are conventionally lowercase hex,
// whitespace-insensitive on input. These helpers move them in and out of
// files; the filesystem is abstracted behind afero so tests and tools can
// run against an in-memory fs.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package kryptos

import (
	goerrors "github.com/agilira/go-errors"
	"github.com/spf13/afero"
)

// Hex file error codes for rich error handling
const (
	ErrCodeHexFileRead  = "KRYPTOS_HEX_FILE_READ"
	ErrCodeHexFileWrite = "KRYPTOS_HEX_FILE_WRITE"
)

// ReadHexFile reads a file of hexadecimal text and decodes it to bytes.
// Whitespace anywhere in the file is ignored, matching DecodeHexStream.
//
// Example:
//
//	fs := afero.NewOsFs()
//	key, err := kryptos.ReadHexFile(fs, "key.hex")
func ReadHexFile(fs afero.Fs, path string) ([]byte, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, goerrors.Wrap(err, ErrCodeHexFileRead, "failed to read hex file")
	}
	data, err := DecodeHexStream(string(content))
	if err != nil {
		return nil, goerrors.Wrap(err, ErrCodeHexFileRead, "file is not valid hex text")
	}
	return data, nil
}

// WriteHexFile writes bytes to a file as lowercase hexadecimal text.
func WriteHexFile(fs afero.Fs, path string, data []byte) error {
	if err := afero.WriteFile(fs, path, []byte(EncodeHexStream(data)), 0o644); err != nil {
		return goerrors.Wrap(err, ErrCodeHexFileWrite, "failed to write hex file")
	}
	return nil
}
