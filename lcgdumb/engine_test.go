package lcgdumb_test

import (
	"math"
	"testing"

	. "github.com/joomcode/statelessrnd/lcgdumb"
	"github.com/stretchr/testify/assert"
)

func TestMinStd(t *testing.T) {
	e := NewMinStd(42)
	assert.Equal(t, uint64(42), e.State())
	assert.Equal(t, uint64(2027382), e.Next())
	assert.Equal(t, uint64(1226992407), e.Next())
	assert.Equal(t, uint64(1226992407), e.State())

	e.Discard(98)
	assert.Equal(t, uint64(544861123), e.Next())

	assert.Equal(t, uint64(1), e.Min())
	assert.Equal(t, uint64(2147483646), e.Max())
}

func TestMinStd0(t *testing.T) {
	e := NewMinStd0(42)
	assert.Equal(t, uint64(705894), e.Next())
	assert.Equal(t, uint64(1126542223), e.Next())
}

func TestSeed(t *testing.T) {
	// zero seed turns into 1 when increment is zero
	e := NewMinStd(0)
	assert.Equal(t, uint64(1), e.State())
	assert.Equal(t, uint64(48271), e.Next())

	// seed is taken modulo M, it is not clamped
	e.Seed(math.MaxUint32)
	assert.Equal(t, uint64(math.MaxUint32%2147483647), e.State())

	e.Seed(2147483647)
	assert.Equal(t, uint64(1), e.State())

	// with increment zero seed is kept
	e = New(1103515245, 12345, 1<<32, 0)
	assert.Equal(t, uint64(0), e.State())
	assert.Equal(t, uint64(12345), e.Next())
	assert.Equal(t, uint64(0), e.Min())
	assert.Equal(t, uint64(1<<32-1), e.Max())
}

func TestWideModulus(t *testing.T) {
	const m = math.MaxUint64 - 58
	e := New(m-1, 0, m, 2)
	// (m-1) == -1 (mod m)
	assert.Equal(t, uint64(m-2), e.Next())
	assert.Equal(t, uint64(2), e.Next())
}
