package lcg_test

import (
	"math"
	"testing"

	. "github.com/joomcode/statelessrnd/lcg"
	"github.com/joomcode/statelessrnd/lcgdumb"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ReferenceSuite compares Generator with plain mutable engine.
type ReferenceSuite struct {
	suite.Suite
	ref  *lcgdumb.Engine
	seed uint64
}

func (s *ReferenceSuite) SetupTest() {
	s.seed = defaultSeed
	s.ref = lcgdumb.NewMinStd(s.seed)
}

func (s *ReferenceSuite) r() *require.Assertions {
	return s.Require()
}

func (s *ReferenceSuite) TestFirstValue() {
	g := Seed[MinStd](s.seed, true)
	s.Equal(s.ref.Next(), g.Value())
}

func (s *ReferenceSuite) TestOffsets() {
	g := Seed[MinStd](s.seed, true)
	s.r().Equal(s.ref.Next(), g.Value())
	s.r().Equal(s.ref.Next(), g.Discard(1).Value())

	s.ref.Discard(100)
	s.r().Equal(s.ref.Next(), g.Discard(101+1).Value())

	// same points as in original minstd compatibility check
	ref := lcgdumb.NewMinStd(s.seed)
	s.r().Equal(ref.Next(), g.Value())
	ref.Discard(100)
	s.r().Equal(ref.Next(), g.Discard(101).Value())
	ref.Discard(1000)
	s.r().Equal(ref.Next(), g.Discard(1102).Value())
}

func (s *ReferenceSuite) TestSequence() {
	g := Seed[MinStd](s.seed, true)
	for i := 0; i < 5000; i++ {
		s.r().Equal(s.ref.Next(), g.Value(), "step %d", i)
		g = g.Next()
	}
}

func (s *ReferenceSuite) TestMinMax() {
	g := Seed[MinStd](s.seed, true)
	s.Equal(s.ref.Min(), g.Min())
	s.Equal(s.ref.Max(), g.Max())
	s.Equal(uint64(1), g.Min())
	s.Equal(uint64(2147483646), g.Max())
}

func (s *ReferenceSuite) TestReseedFromObservation() {
	s.ref.Discard(100)
	g := Seed[MinStd](s.ref.Next(), false)
	s.Equal(s.ref.Next(), g.Next().Value())

	// and lineage continues
	g = g.Next()
	for i := 0; i < 100; i++ {
		g = g.Next()
		s.r().Equal(s.ref.Next(), g.Value())
	}
}

func (s *ReferenceSuite) TestManySeeds() {
	for _, seed := range []uint64{1, 2, 3, 42, 48271, 1 << 20, 2147483646} {
		ref := lcgdumb.NewMinStd(seed)
		g := Seed[MinStd](seed, false)
		for _, n := range []uint64{0, 1, 9, 90, 900} {
			ref.Discard(n)
			g = g.Discard(n)
			s.r().Equal(ref.Next(), g.Next().Value(), "seed %d", seed)
			g = g.Next()
		}
	}
}

func (s *ReferenceSuite) TestMinStd0() {
	ref := lcgdumb.NewMinStd0(s.seed)
	g := Seed[MinStd0](s.seed, true)
	for i := 0; i < 1000; i++ {
		s.r().Equal(ref.Next(), g.Value())
		g = g.Next()
	}
}

func (s *ReferenceSuite) TestCustom() {
	const a, c, m = 6364136223846793005, 1442695040888963407, math.MaxUint64 - 58
	p, err := NewCustom(a, c, m)
	s.r().NoError(err)

	ref := lcgdumb.New(a, c, m, 987654321)
	g := SeedWith(p, 987654321, false)
	for i := 0; i < 1000; i++ {
		s.r().Equal(ref.Next(), g.Next().Value())
		g = g.Next()
	}
	ref.Discard(777)
	s.Equal(ref.Next(), g.Discard(778).Value())
}

func TestReference(t *testing.T) {
	suite.Run(t, new(ReferenceSuite))
}
