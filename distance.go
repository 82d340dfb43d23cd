package samedigit

import "github.com/unixpickle/anydiff"

// distanceStabilizer keeps the square root differentiable
// when the two embeddings of a pair coincide.
const distanceStabilizer = 1e-8

// Distances computes the Euclidean distance between
// corresponding rows of two packed embedding batches.
// The result has one component per pair.
func Distances(a, b anydiff.Res, n int) anydiff.Res {
	if a.Output().Len() != b.Output().Len() {
		panic("embedding batches must have matching lengths")
	}
	c := a.Output().Creator()
	sq := anydiff.Square(anydiff.Sub(a, b))
	sums := anydiff.SumCols(&anydiff.Matrix{
		Data: sq,
		Rows: n,
		Cols: sq.Output().Len() / n,
	})
	stabilized := anydiff.AddScalar(sums, c.MakeNumeric(distanceStabilizer))
	return anydiff.Pow(stabilized, c.MakeNumeric(0.5))
}
