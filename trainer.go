package samedigit

import (
	"errors"
	"fmt"

	"github.com/unixpickle/anydiff"
	"github.com/unixpickle/anynet"
	"github.com/unixpickle/anynet/anysgd"
	"github.com/unixpickle/anyvec"
)

// A Batch stores a mini-batch of pairs in a packed
// format.
type Batch struct {
	Lefts  *anydiff.Const
	Rights *anydiff.Const
	Labels *anydiff.Const
	Num    int
}

// A Trainer can construct batches, compute gradients, and
// tally up costs for a pair encoder.
//
// The encoder is applied to both sides of every pair with
// the same parameters, so each parameter's gradient
// accumulates contributions from both applications.
type Trainer struct {
	Encoder *Encoder
	Cost    anynet.Cost
	Params  []*anydiff.Var

	// Average indicates whether or not the total cost
	// should be averaged before computing gradients.
	// This affects gradients, LastCost, and the output of
	// TotalCost().
	Average bool

	// After every gradient computation, LastCost is set
	// to the cost from the batch.
	LastCost anyvec.Numeric
}

// Fetch produces a *Batch for the subset of pairs.
// The s argument must be a *PairList.
// The batch may not be empty.
func (t *Trainer) Fetch(s anysgd.SampleList) (anysgd.Batch, error) {
	if s.Len() == 0 {
		return nil, errors.New("fetch batch: empty batch")
	}
	l, ok := s.(*PairList)
	if !ok {
		return nil, fmt.Errorf("fetch batch: expected *PairList but got %T", s)
	}

	lefts := make([]anyvec.Vector, l.Len())
	rights := make([]anyvec.Vector, l.Len())
	labels := make([]float64, l.Len())
	for i := range lefts {
		pair := l.GetPair(i)
		lefts[i] = pair.Left
		rights[i] = pair.Right
		if pair.Match {
			labels[i] = 1
		}
	}

	c := lefts[0].Creator()
	return &Batch{
		Lefts:  anydiff.NewConst(c.Concat(lefts...)),
		Rights: anydiff.NewConst(c.Concat(rights...)),
		Labels: anydiff.NewConst(c.MakeVectorData(c.MakeNumericList(labels))),
		Num:    l.Len(),
	}, nil
}

// TotalCost computes the total cost for the *Batch.
func (t *Trainer) TotalCost(batch anysgd.Batch) anydiff.Res {
	b := batch.(*Batch)
	leftOut := t.Encoder.Apply(b.Lefts, b.Num)
	rightOut := t.Encoder.Apply(b.Rights, b.Num)
	dists := Distances(leftOut, rightOut, b.Num)
	cost := t.Cost.Cost(b.Labels, dists, b.Num)
	total := anydiff.Sum(cost)
	if t.Average {
		divisor := 1 / float64(cost.Output().Len())
		return anydiff.Scale(total, total.Output().Creator().MakeNumeric(divisor))
	} else {
		return total
	}
}

// Gradient computes the gradient for the batch's cost.
// It also sets t.LastCost to the numerical value of the
// total cost.
//
// The b argument must be a *Batch.
func (t *Trainer) Gradient(b anysgd.Batch) anydiff.Grad {
	grad, lc := anysgd.CosterGrad(t, b, t.Params)
	t.LastCost = lc
	return grad
}
