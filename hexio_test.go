// hexio_test.go: Test cases for hex file helpers.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package kryptos_test

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"

	"github.com/agilira/kryptos"
)

func TestHexFile_RoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	data := mustHex(t, "3243f6a8885a308d313198a2e0370734")

	if err := kryptos.WriteHexFile(fs, "block.hex", data); err != nil {
		t.Fatalf("WriteHexFile failed: %v", err)
	}
	got, err := kryptos.ReadHexFile(fs, "block.hex")
	if err != nil {
		t.Fatalf("ReadHexFile failed: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("round trip mismatch: %x", got)
	}

	// The on-disk representation is lowercase hex text.
	raw, err := afero.ReadFile(fs, "block.hex")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(raw) != "3243f6a8885a308d313198a2e0370734" {
		t.Errorf("file content = %q, want lowercase hex", raw)
	}
}

func TestReadHexFile_WhitespaceTolerant(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "key.hex", []byte("2b 7e 15 16\n28 ae d2 a6\nab f7 15 88\n09 cf 4f 3c\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	got, err := kryptos.ReadHexFile(fs, "key.hex")
	if err != nil {
		t.Fatalf("ReadHexFile failed: %v", err)
	}
	if !bytes.Equal(got, mustHex(t, "2b7e151628aed2a6abf7158809cf4f3c")) {
		t.Errorf("decoded %x", got)
	}
}

func TestReadHexFile_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()

	if _, err := kryptos.ReadHexFile(fs, "missing.hex"); err == nil {
		t.Error("expected error for missing file")
	}

	if err := afero.WriteFile(fs, "bad.hex", []byte("not hex at all"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := kryptos.ReadHexFile(fs, "bad.hex"); err == nil {
		t.Error("expected error for non-hex content")
	}
}
