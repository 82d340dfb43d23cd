package samedigit

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/unixpickle/anynet/anysgd"
	"github.com/unixpickle/anyvec"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/mnist"
)

// A PairSample is a single training example: two image
// vectors and a flag indicating whether they depict the
// same class.
type PairSample struct {
	Left  anyvec.Vector
	Right anyvec.Vector
	Match bool
}

// A PairList is an anysgd.SampleList of image pairs with
// match labels.
type PairList struct {
	samples []anyvec.Vector
	pairs   []pairIndices
}

type pairIndices struct {
	left  int
	right int
	match bool
}

// NewPairList builds a balanced list of matching and
// mismatched pairs from labeled image vectors.
//
// Each class contributes n matching and n mismatched
// pairs, where n is one less than the smallest per-class
// sample count, so the list holds n*numClasses*2 pairs
// and the match labels strictly alternate starting with a
// match. If the smallest class has a single sample, the
// list is empty.
//
// Mismatched partner classes are drawn from rng, so a
// seeded rng makes pair construction reproducible.
//
// NewPairList fails if vecs and labels have different
// lengths, if a label falls outside [0, numClasses), or
// if any class has no samples at all.
func NewPairList(c anyvec.Creator, vecs [][]float64, labels []int, numClasses int,
	rng *rand.Rand) (*PairList, error) {
	if len(vecs) != len(labels) {
		return nil, fmt.Errorf("make pairs: have %d vectors but %d labels",
			len(vecs), len(labels))
	}
	if numClasses < 2 {
		return nil, fmt.Errorf("make pairs: need at least 2 classes, have %d",
			numClasses)
	}

	classes := make([][]int, numClasses)
	for i, label := range labels {
		if label < 0 || label >= numClasses {
			return nil, fmt.Errorf("make pairs: label %d out of range", label)
		}
		classes[label] = append(classes[label], i)
	}
	minCount := len(classes[0])
	for _, idxs := range classes {
		if len(idxs) < minCount {
			minCount = len(idxs)
		}
	}
	if minCount == 0 {
		return nil, errors.New("make pairs: class with no samples")
	}

	res := &PairList{samples: make([]anyvec.Vector, len(vecs))}
	for i, v := range vecs {
		res.samples[i] = c.MakeVectorData(c.MakeNumericList(v))
	}

	n := minCount - 1
	for d, idxs := range classes {
		for i := 0; i < n; i++ {
			res.pairs = append(res.pairs, pairIndices{
				left:  idxs[i],
				right: idxs[i+1],
				match: true,
			})
			dn := (d + 1 + rng.Intn(numClasses-1)) % numClasses
			res.pairs = append(res.pairs, pairIndices{
				left:  idxs[i],
				right: classes[dn][i],
				match: false,
			})
		}
	}
	return res, nil
}

// MNISTPairs builds a PairList from an MNIST data set.
func MNISTPairs(c anyvec.Creator, ds mnist.DataSet, rng *rand.Rand) (*PairList, error) {
	vecs := make([][]float64, len(ds.Samples))
	labels := make([]int, len(ds.Samples))
	for i, s := range ds.Samples {
		vecs[i] = s.Intensities
		labels[i] = s.Label
	}
	res, err := NewPairList(c, vecs, labels, 10, rng)
	if err != nil {
		return nil, essentials.AddCtx("make MNIST pairs", err)
	}
	return res, nil
}

// Len returns the number of pairs.
func (p *PairList) Len() int {
	return len(p.pairs)
}

// Swap swaps two pairs.
func (p *PairList) Swap(i, j int) {
	p.pairs[i], p.pairs[j] = p.pairs[j], p.pairs[i]
}

// Slice copies a sub-range of the list.
// The underlying image vectors are shared with the
// original list.
func (p *PairList) Slice(i, j int) anysgd.SampleList {
	return &PairList{
		samples: p.samples,
		pairs:   append([]pairIndices{}, p.pairs[i:j]...),
	}
}

// GetPair returns the pair at an index.
func (p *PairList) GetPair(idx int) *PairSample {
	pair := p.pairs[idx]
	return &PairSample{
		Left:  p.samples[pair.left],
		Right: p.samples[pair.right],
		Match: pair.match,
	}
}
