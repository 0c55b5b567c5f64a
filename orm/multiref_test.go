package orm

import (
	"testing"

	"github.com/iov-one/photosale/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiRefKeepsOrder(t *testing.T) {
	var m MultiRef
	require.NoError(t, m.Add([]byte("c")))
	require.NoError(t, m.Add([]byte("a")))
	require.NoError(t, m.Add([]byte("b")))
	assert.Equal(t, [][]byte{[]byte("a"), []byte("b"), []byte("c")}, m.Refs)

	err := m.Add([]byte("b"))
	assert.True(t, errors.ErrDuplicate.Is(err))

	require.NoError(t, m.Remove([]byte("b")))
	assert.Equal(t, [][]byte{[]byte("a"), []byte("c")}, m.Refs)

	err = m.Remove([]byte("b"))
	assert.True(t, errors.ErrNotFound.Is(err))

	raw, err := m.Marshal()
	require.NoError(t, err)
	var loaded MultiRef
	require.NoError(t, loaded.Unmarshal(raw))
	assert.Equal(t, m.Refs, loaded.Refs)
}
