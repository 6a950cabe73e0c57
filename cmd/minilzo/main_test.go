package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/woozymasta/minilzo/frame"
)

func TestRun_CompressThenDecompress(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "input.txt")
	packed := filepath.Join(dir, "input.txt.lzo")
	restored := filepath.Join(dir, "restored.txt")

	data := bytes.Repeat([]byte("command line round trip\n"), 2000)
	require.NoError(t, os.WriteFile(plain, data, 0o600))

	require.NoError(t, run(plain, packed, false, true))

	b, err := os.ReadFile(packed)
	require.NoError(t, err)
	require.Less(t, len(b), len(data))

	h, err := frame.ParseHeader(b)
	require.NoError(t, err)
	require.NotZero(t, h.Flags&frame.FlagPayloadHash)

	require.NoError(t, run(packed, restored, true, true))

	got, err := os.ReadFile(restored)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestRun_NoHash(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "in")
	packed := filepath.Join(dir, "out")
	require.NoError(t, os.WriteFile(plain, []byte("tiny"), 0o600))

	require.NoError(t, run(plain, packed, false, false))

	b, err := os.ReadFile(packed)
	require.NoError(t, err)

	h, err := frame.ParseHeader(b)
	require.NoError(t, err)
	require.Zero(t, h.Flags&frame.FlagPayloadHash)
	require.NotZero(t, h.Flags&frame.FlagStored)
}

func TestDecompressFrames_Concatenated(t *testing.T) {
	var in bytes.Buffer
	for _, part := range []string{"alpha ", "beta ", "gamma"} {
		b, err := frame.Encode([]byte(part), nil)
		require.NoError(t, err)
		in.Write(b)
	}

	var out bytes.Buffer
	n, err := decompressFrames(&in, &out)
	require.NoError(t, err)
	require.Equal(t, len("alpha beta gamma"), n)
	require.Equal(t, "alpha beta gamma", out.String())
}

func TestRun_CorruptInputFails(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad")
	require.NoError(t, os.WriteFile(bad, []byte("definitely not a frame"), 0o600))

	err := run(bad, filepath.Join(dir, "out"), true, true)
	require.ErrorIs(t, err, frame.ErrBadMagic)
}

func TestRun_MissingInput(t *testing.T) {
	err := run(filepath.Join(t.TempDir(), "absent"), "-", false, true)
	require.ErrorIs(t, err, os.ErrNotExist)
}
