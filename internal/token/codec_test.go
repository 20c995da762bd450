package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		[]byte("a"),
		[]byte("ab"),
		[]byte("abc"),
		[]byte("abcd"),
		[]byte(`{"sub":"demo@ticket-flow.local","role":"admin"}`),
		{0x00, 0xff, 0xfe, 0x01, 0x80},
	}

	for _, input := range cases {
		encoded := Encode(input)
		decoded, err := Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, input, decoded)
	}
}

func TestEncodeUsesURLSafeAlphabetWithoutPadding(t *testing.T) {
	// 0xfb 0xff encodes to "+/8=" in standard base64.
	encoded := Encode([]byte{0xfb, 0xff})

	assert.False(t, strings.ContainsAny(encoded, "+/="))
	assert.Equal(t, "-_8", encoded)
}

func TestDecodeRejectsInvalidAlphabet(t *testing.T) {
	for _, input := range []string{"ab+c", "ab/c", "a=b", "hello world", "\x00"} {
		_, err := Decode(input)
		assert.ErrorIs(t, err, ErrMalformedEncoding, "input %q", input)
	}
}

func TestDecodeEmptyString(t *testing.T) {
	decoded, err := Decode("")
	require.NoError(t, err)
	assert.Empty(t, decoded)
}
