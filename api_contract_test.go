package minilzo

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAPIContract_DecompressCanonicalStream(t *testing.T) {
	// Widely quoted example stream: it expands to 512 zero bytes.
	compressed := []byte{0x12, 0x00, 0x20, 0x00, 0xdf, 0x00, 0x00, 0x11, 0x00, 0x00}
	expected := make([]byte, 512)

	out, err := DecompressSafe(compressed, 512)
	require.NoError(t, err)
	require.Equal(t, expected, out)
	require.Equal(t, uint32(0x02000001), Checksum(out))
}

func TestAPIContract_ErrorsReturnNoOutput(t *testing.T) {
	cmp, err := Compress(bytes.Repeat([]byte("contract"), 100))
	require.NoError(t, err)

	out, err := DecompressSafe(cmp[:len(cmp)/2], 800)
	require.Error(t, err)
	require.Nil(t, out)

	out, nRead, err := DecompressSafeN(cmp[:len(cmp)/2], 800)
	require.Error(t, err)
	require.Nil(t, out)
	require.Zero(t, nRead)
}

func TestAPIContract_ErrorsWrapForErrorsIs(t *testing.T) {
	_, err := DecompressFromReader(bytes.NewReader([]byte{0x11, 0x00, 0x00, 0x01}), DefaultDecompressOptions(0))
	require.ErrorIs(t, err, ErrInputNotConsumed)

	var lzoErr Error
	require.ErrorAs(t, err, &lzoErr)
	require.Equal(t, -8, lzoErr.Code())
}

func TestAPIContract_ConcurrentCompress(t *testing.T) {
	inputs := make([][]byte, 16)
	for i := range inputs {
		inputs[i] = bytes.Repeat([]byte(fmt.Sprintf("worker-%02d payload ", i)), 500+i*37)
	}

	var wg sync.WaitGroup
	errs := make([]error, len(inputs))
	for i, in := range inputs {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for range 20 {
				cmp, err := Compress(in)
				if err != nil {
					errs[i] = err
					return
				}

				out, err := DecompressSafe(cmp, len(in))
				if err != nil {
					errs[i] = err
					return
				}

				if !bytes.Equal(out, in) {
					errs[i] = fmt.Errorf("worker %d: round-trip mismatch", i)
					return
				}
			}
		}()
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
}
