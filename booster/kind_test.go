package booster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkrasov/wrapgrid/booster"
)

func TestParseKind_Valid(t *testing.T) {
	for _, letter := range []byte{'B', 'F', 'L', 'X', 'R', 'C'} {
		k, err := booster.ParseKind(letter)
		require.NoError(t, err)
		assert.Equal(t, string(letter), k.String())
	}
}

func TestParseKind_Unknown(t *testing.T) {
	_, err := booster.ParseKind('Z')
	assert.ErrorIs(t, err, booster.ErrUnknownKind)
}

func TestNoneIsNotAValidKind(t *testing.T) {
	assert.Equal(t, "?", booster.None.String())
}
