// streaming.go: Streaming encryption/decryption for large data sets.
//
// This module wraps the CTR mode driver behind io.Writer/io.Reader so large
// payloads can be processed without loading everything into memory. CTR
// keeps the exact input length and needs no padding, which makes the stream
// format a fixed header followed by ciphertext of the same length as the
// plaintext.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package kryptos

import (
	"bytes"
	"encoding/binary"
	"io"

	goerrors "github.com/agilira/go-errors"
)

// StreamingEncryptor provides streaming encryption for large datasets.
//
// Example usage:
//
//	key, _ := kryptos.GenerateKey()
//	enc, _ := kryptos.NewStreamingEncryptor(outputWriter, key)
//	defer enc.Close()
//
//	io.Copy(enc, inputReader) // Encrypts while streaming
//
// The output starts with a header carrying the nonce needed for decryption.
type StreamingEncryptor interface {
	// Write encrypts data and writes it to the underlying writer.
	Write(data []byte) (int, error)

	// Close finalizes the stream. Writes after Close fail.
	Close() error
}

// StreamingDecryptor provides streaming decryption for large datasets.
//
// Example usage:
//
//	key, _ := kryptos.GenerateKey()
//	dec, _ := kryptos.NewStreamingDecryptor(inputReader, key)
//	defer dec.Close()
//
//	io.Copy(outputWriter, dec) // Decrypts while streaming
//
// The header is read and validated on the first Read.
type StreamingDecryptor interface {
	// Read decrypts and returns data from the underlying reader.
	Read(data []byte) (int, error)

	// Close finalizes the stream. Reads after Close fail.
	Close() error
}

// Stream format header structure:
// [4 bytes: Magic] [4 bytes: Version] [16 bytes: Nonce]
const (
	streamMagic   = "AKTR" // AGILira CTR stream format
	streamVersion = uint32(1)
	headerSize    = 4 + 4 + BlockSize // 24 bytes total
)

// Streaming error codes for rich error handling
const (
	ErrCodeStreamClosed = "KRYPTOS_STREAM_CLOSED"
	ErrCodeStreamHeader = "KRYPTOS_STREAM_HEADER"
	ErrCodeStreamWrite  = "KRYPTOS_STREAM_WRITE"
)

// ctrStream is the keystream state shared by both stream directions; CTR is
// symmetric so encryption and decryption apply the same XOR.
type ctrStream struct {
	cipher *Cipher
	ctr    [BlockSize]byte
	ks     [BlockSize]byte
	ksPos  int
}

// xorKeyStream XORs src into dst, refilling the keystream block and
// advancing the counter as needed. dst and src may be the same slice.
func (s *ctrStream) xorKeyStream(dst, src []byte) {
	for i := range src {
		if s.ksPos == 0 {
			encryptBlock(&s.cipher.roundKeys, s.ks[:], s.ctr[:])
			incCounter(&s.ctr)
		}
		dst[i] = src[i] ^ s.ks[s.ksPos]
		s.ksPos = (s.ksPos + 1) % BlockSize
	}
}

// streamingEncryptor implements StreamingEncryptor over CTR mode.
type streamingEncryptor struct {
	writer       io.Writer
	stream       ctrStream
	headerDone   bool
	closed       bool
	bytesWritten int64
}

// streamingDecryptor implements StreamingDecryptor over CTR mode.
type streamingDecryptor struct {
	reader     io.Reader
	stream     ctrStream
	headerDone bool
	closed     bool
}

// NewStreamingEncryptor creates a streaming encryptor writing to w.
//
// A fresh random nonce is generated per stream and embedded in the header,
// so the same key may safely encrypt many streams.
//
// Parameters:
//   - w: Destination writer for the encrypted stream
//   - key: 16-byte AES-128 key
//
// Returns a StreamingEncryptor, or ErrInvalidKeySize for a bad key.
func NewStreamingEncryptor(w io.Writer, key []byte) (StreamingEncryptor, error) {
	c, err := NewCipher(key)
	if err != nil {
		return nil, err
	}
	nonce, err := GenerateIV()
	if err != nil {
		return nil, err
	}

	enc := &streamingEncryptor{writer: w, stream: ctrStream{cipher: c}}
	copy(enc.stream.ctr[:], nonce)
	return enc, nil
}

// Write encrypts data and writes it to the underlying writer. The header is
// emitted before the first ciphertext byte.
func (e *streamingEncryptor) Write(data []byte) (int, error) {
	if e.closed {
		return 0, goerrors.New(ErrCodeStreamClosed, "write on closed streaming encryptor")
	}
	if !e.headerDone {
		if err := e.writeHeader(); err != nil {
			return 0, err
		}
		e.headerDone = true
	}

	buf := getBuffer(len(data))
	defer putBuffer(buf)
	out := (*buf)[:len(data)]

	e.stream.xorKeyStream(out, data)
	n, err := e.writer.Write(out)
	e.bytesWritten += int64(n)
	if err != nil {
		return n, goerrors.Wrap(err, ErrCodeStreamWrite, "failed to write ciphertext chunk")
	}
	return n, nil
}

func (e *streamingEncryptor) writeHeader() error {
	header := make([]byte, headerSize)
	copy(header[:4], streamMagic)
	binary.BigEndian.PutUint32(header[4:8], streamVersion)
	copy(header[8:], e.stream.ctr[:])
	if _, err := e.writer.Write(header); err != nil {
		return goerrors.Wrap(err, ErrCodeStreamHeader, "failed to write stream header")
	}
	return nil
}

// Close finalizes the stream. An empty stream still gets its header so the
// decryptor can validate the format.
func (e *streamingEncryptor) Close() error {
	if e.closed {
		return nil
	}
	if !e.headerDone {
		if err := e.writeHeader(); err != nil {
			return err
		}
		e.headerDone = true
	}
	e.closed = true
	return nil
}

// NewStreamingDecryptor creates a streaming decryptor reading from r.
//
// Parameters:
//   - r: Source reader holding a stream produced by NewStreamingEncryptor
//   - key: The 16-byte key the stream was encrypted with
//
// Returns a StreamingDecryptor, or ErrInvalidKeySize for a bad key. Header
// validation happens on the first Read.
func NewStreamingDecryptor(r io.Reader, key []byte) (StreamingDecryptor, error) {
	c, err := NewCipher(key)
	if err != nil {
		return nil, err
	}
	return &streamingDecryptor{reader: r, stream: ctrStream{cipher: c}}, nil
}

// Read decrypts and returns data from the underlying reader.
func (d *streamingDecryptor) Read(p []byte) (int, error) {
	if d.closed {
		return 0, goerrors.New(ErrCodeStreamClosed, "read on closed streaming decryptor")
	}
	if !d.headerDone {
		if err := d.readHeader(); err != nil {
			return 0, err
		}
		d.headerDone = true
	}

	n, err := d.reader.Read(p)
	if n > 0 {
		d.stream.xorKeyStream(p[:n], p[:n])
	}
	return n, err
}

func (d *streamingDecryptor) readHeader() error {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(d.reader, header); err != nil {
		return goerrors.Wrap(err, ErrCodeStreamHeader, "failed to read stream header")
	}
	if !bytes.Equal(header[:4], []byte(streamMagic)) {
		return goerrors.New(ErrCodeStreamHeader, "invalid stream magic")
	}
	if v := binary.BigEndian.Uint32(header[4:8]); v != streamVersion {
		return goerrors.New(ErrCodeStreamHeader, "unsupported stream version")
	}
	copy(d.stream.ctr[:], header[8:])
	return nil
}

// Close finalizes the decryptor.
func (d *streamingDecryptor) Close() error {
	d.closed = true
	return nil
}
