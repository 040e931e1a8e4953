package password

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	got := Encode([]byte{0x00, 0xab}, []byte{0xff, 0x10})
	assert.Equal(t, "00ab:ff10", got)
}

func TestDecode_RoundTrip(t *testing.T) {
	salt := bytes.Repeat([]byte{0x1f}, 16)
	hash := bytes.Repeat([]byte{0xe2}, 64)

	encoded := Encode(salt, hash)
	require.Len(t, encoded, 32+1+128)
	assert.Equal(t, strings.ToLower(encoded), encoded)

	rec, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, salt, rec.Salt)
	assert.Equal(t, hash, rec.Hash)
	assert.Equal(t, encoded, rec.String())
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		record string
	}{
		{name: "empty", record: ""},
		{name: "no separator", record: "00ab00ab"},
		{name: "bad salt hex", record: "zz:00ab"},
		{name: "bad hash hex", record: "00ab:xyz"},
		{name: "odd length", record: "0:00"},
		{name: "second separator", record: "00:11:22"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.record)
			assert.ErrorIs(t, err, ErrMalformedRecord)
		})
	}
}
