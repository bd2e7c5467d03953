package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashCompare(t *testing.T) {
	h, err := Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, "secret1", h)
	assert.True(t, Compare(h, "secret1"))
	assert.False(t, Compare(h, "secret2"))
	assert.False(t, Compare("not-a-hash", "secret1"))
}
