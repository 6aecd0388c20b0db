package gameid

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	id, err := Generate()
	require.NoError(t, err)
	assert.Len(t, id, 26)
	assert.NoError(t, Validate(id))
	assert.LessOrEqual(t, id[0], byte('7'))
}

func TestGenerateUnique(t *testing.T) {
	ids := make(map[string]bool)
	for range 100 {
		id, err := Generate()
		require.NoError(t, err)
		assert.False(t, ids[id], "duplicate ID generated: %s", id)
		ids[id] = true
	}
}

func TestGeneratorFromReader(t *testing.T) {
	g := NewGenerator(bytes.NewReader(bytes.Repeat([]byte{0xab}, 64)))
	id, err := g.Generate()
	require.NoError(t, err)

	u, err := Decode(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), u.Version())
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, u := range []uuid.UUID{
		uuid.Nil,
		uuid.Max,
		uuid.MustParse("01890a5d-ac96-774b-bcce-b302099a8057"),
	} {
		s := Encode(u)
		require.NoError(t, Validate(s), "encoding of %s", u)
		back, err := Decode(s)
		require.NoError(t, err)
		assert.Equal(t, u, back)
	}
	assert.Equal(t, "00000000000000000000000000", Encode(uuid.Nil))
	assert.Equal(t, "7zzzzzzzzzzzzzzzzzzzzzzzzz", Encode(uuid.Max))
}

func TestValidate(t *testing.T) {
	assert.Error(t, Validate("short"))
	assert.Error(t, Validate("8zzzzzzzzzzzzzzzzzzzzzzzzz"))
	assert.Error(t, Validate("0000000000000000000000000u"))
}
