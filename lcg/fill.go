package lcg

import "github.com/joomcode/statelessrnd/internal"

// Fill writes g.Value(), g.Next().Value(), ... into dst.
// It returns generator whose value follows last written one, ie g.Discard(len(dst)).
func (g Generator[P]) Fill(dst []uint64) Generator[P] {
	m := g.params.Modulus()
	f := g.step()
	x := g.state
	for i := range dst {
		dst[i] = x
		x = f.apply(x, m)
	}
	g.state = x
	return g
}

// Split returns n generators: i-th one is g.Discard(i*stride).
// If every stream takes at most stride values, streams never overlap.
func (g Generator[P]) Split(n int, stride uint64) []Generator[P] {
	if n <= 0 {
		return nil
	}
	res := make([]Generator[P], n)
	jump := g.step().pow(stride, g.params.Modulus())
	for i := range res {
		res[i] = g
		g.state = jump.apply(g.state, g.params.Modulus())
	}
	return res
}

// DefaultChunk is chunk size used by FillParallel when chunk <= 0.
const DefaultChunk = 1 << 14

// FillParallel writes same values as g.Fill(dst), but splits dst into chunks and fills them
// concurrently. Start of every chunk is found with Discard, so no chunk waits for another.
func FillParallel[P Params](g Generator[P], dst []uint64, chunk int) Generator[P] {
	if chunk <= 0 {
		chunk = DefaultChunk
	}
	if len(dst) <= chunk {
		return g.Fill(dst)
	}
	n := (len(dst) + chunk - 1) / chunk
	streams := g.Split(n, uint64(chunk))
	tasks := make([]func(), n)
	for i := range tasks {
		part := dst[i*chunk:]
		if len(part) > chunk {
			part = part[:chunk]
		}
		s := streams[i]
		tasks[i] = func() { s.Fill(part) }
	}
	internal.Wait(tasks...)
	return g.Discard(uint64(len(dst)))
}
