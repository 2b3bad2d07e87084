package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedSource struct {
	vals []uint64
	i    int
}

func (f *fixedSource) Next() uint64 {
	v := f.vals[f.i]
	f.i++
	return v
}

func TestCountingSource_RecordsPulls(t *testing.T) {
	src := NewCountingSource(nil)
	assert.Equal(t, 0, src.Count())

	assert.Equal(t, uint64(2), src.Next())
	assert.Equal(t, uint64(3), src.Next())
	assert.Equal(t, 2, src.Count())
	assert.Equal(t, []uint64{2, 3}, src.Pulled())
}

func TestCountingSource_WrapsInner(t *testing.T) {
	src := NewCountingSource(&fixedSource{vals: []uint64{7, 11}})
	assert.Equal(t, uint64(7), src.Next())
	assert.Equal(t, uint64(11), src.Next())
	assert.Equal(t, []uint64{7, 11}, src.Pulled())
}

func TestCountingSource_PulledIsACopy(t *testing.T) {
	src := NewCountingSource(nil)
	src.Next()
	got := src.Pulled()
	got[0] = 99
	assert.Equal(t, []uint64{2}, src.Pulled())
}
