// main.go: Command-line front end for the kryptos cipher engine.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/agilira/kryptos"
)

var (
	inPath   = flag.String("in", "", "Path to the input file (hex text)")
	outPath  = flag.String("out", "", "Path to the output file (hex text)")
	keyPath  = flag.String("key", "", "Path to the file holding the 16-byte key as hex")
	ivPath   = flag.String("iv", "", "Path to the file holding the 16-byte IV/nonce as hex (not used by ECB)")
	modeName = flag.String("mode", "cbc", "Mode of operation (ecb|cbc|cfb|ofb|ctr)")
	op       = flag.String("op", "encrypt", "Operation (encrypt|decrypt)")
)

func main() {
	flag.Parse()

	if *inPath == "" || *outPath == "" || *keyPath == "" {
		fmt.Fprintln(os.Stderr, "usage: kryptos -in <file> -out <file> -key <file> [-iv <file>] [-mode cbc] [-op encrypt]")
		os.Exit(2)
	}

	if err := run(afero.NewOsFs()); err != nil {
		fmt.Fprintf(os.Stderr, "kryptos: %v\n", err)
		os.Exit(1)
	}
}

func run(fs afero.Fs) error {
	mode, err := kryptos.ParseMode(*modeName)
	if err != nil {
		return err
	}

	key, err := kryptos.ReadHexFile(fs, *keyPath)
	if err != nil {
		return fmt.Errorf("reading key: %w", err)
	}
	defer kryptos.Zeroize(key)

	var iv []byte
	if *ivPath != "" {
		if iv, err = kryptos.ReadHexFile(fs, *ivPath); err != nil {
			return fmt.Errorf("reading IV: %w", err)
		}
	}

	input, err := kryptos.ReadHexFile(fs, *inPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	c, err := kryptos.NewCipher(key)
	if err != nil {
		return err
	}

	var output []byte
	switch *op {
	case "encrypt":
		output, err = c.EncryptMode(mode, input, iv)
	case "decrypt":
		output, err = c.DecryptMode(mode, input, iv)
	default:
		return fmt.Errorf("unknown operation %q (want encrypt or decrypt)", *op)
	}
	if err != nil {
		return err
	}

	return kryptos.WriteHexFile(fs, *outPath, output)
}
