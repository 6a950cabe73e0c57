// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/woozymasta/minilzo/frame"
)

// log is replaced once flags are parsed.
var log = slog.Default()

func main() {
	decompress := flag.Bool("d", false, "Decompress a frame instead of compressing")
	in := flag.String("in", "-", "Input file ('-' for stdin)")
	out := flag.String("out", "-", "Output file ('-' for stdout)")
	noHash := flag.Bool("no-hash", false, "Omit the xxhash64 payload hash when compressing")
	verbose := flag.Bool("v", false, "Log debug details to stderr")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(*in, *out, *decompress, !*noHash); err != nil {
		log.Error("minilzo failed", "error", err)
		os.Exit(1)
	}
}

func run(inPath, outPath string, decompress, payloadHash bool) error {
	r, closeIn, err := openInput(inPath)
	if err != nil {
		return err
	}
	defer closeIn()

	w, closeOut, err := openOutput(outPath)
	if err != nil {
		return err
	}

	start := time.Now()
	cr := &countingReader{base: r}
	var written int
	if decompress {
		written, err = decompressFrames(cr, w)
	} else {
		written, err = compressFrame(cr, w, payloadHash)
	}
	if err != nil {
		_ = closeOut()
		return err
	}

	if err := closeOut(); err != nil {
		return fmt.Errorf("close %s: %w", outPath, err)
	}

	log.Debug("done", "decompress", decompress, "in_bytes", cr.count, "out_bytes", written, "elapsed", time.Since(start))
	return nil
}

// compressFrame writes the whole input as one frame.
func compressFrame(r io.Reader, w io.Writer, payloadHash bool) (int, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("read input: %w", err)
	}

	b, err := frame.Encode(src, &frame.EncodeOptions{PayloadHash: payloadHash})
	if err != nil {
		return 0, err
	}

	if _, err := w.Write(b); err != nil {
		return 0, fmt.Errorf("write output: %w", err)
	}

	return len(b), nil
}

// decompressFrames decodes concatenated frames until the input ends.
func decompressFrames(r io.Reader, w io.Writer) (int, error) {
	var frames, written int
	for {
		data, err := frame.ReadFrame(r)
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("frame %d: %w", frames, err)
		}

		if _, err := w.Write(data); err != nil {
			return 0, fmt.Errorf("write output: %w", err)
		}

		log.Debug("frame decoded", "index", frames, "bytes", len(data))
		frames++
		written += len(data)
	}

	return written, nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	return f, func() { _ = f.Close() }, nil
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}

	return f, f.Close, nil
}

// countingReader counts the bytes read from base.
type countingReader struct {
	base  io.Reader
	count int64
}

func (r *countingReader) Read(p []byte) (int, error) {
	n, err := r.base.Read(p)
	r.count += int64(n)
	return n, err
}
