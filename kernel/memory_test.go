package kernel

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaBounds(t *testing.T) {
	a := NewArena(0x1000, 16)
	buf := make([]byte, 4)

	_, err := a.WriteAt([]byte{1, 2, 3, 4}, 0x100c)
	require.NoError(t, err)
	_, err = a.ReadAt(buf, 0x100c)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, buf)

	for _, addr := range []int64{0, 0xfff, 0x100d, 0x1010, -1} {
		_, err := a.ReadAt(buf, addr)
		assert.Equal(t, ErrFault, errors.Cause(err), "addr %#x", addr)
	}
}

func TestArenaAlloc(t *testing.T) {
	a := NewArena(0x1000, 32)
	p, err := a.Alloc(3)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x1000), p)

	p, err = a.Alloc(8)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x1008), p)

	_, err = a.Alloc(24)
	assert.Equal(t, ErrFault, errors.Cause(err))
}
