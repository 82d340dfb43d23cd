package samedigit

import (
	"fmt"

	"github.com/unixpickle/anyvec"
	"github.com/unixpickle/essentials"
)

// DefaultThreshold is the distance below which a pair is
// classified as a match.
const DefaultThreshold = 0.5

// evalBatchSize caps how many pairs are embedded at once
// during evaluation.
const evalBatchSize = 512

// PairDistances computes the predicted distance for every
// pair in the list.
//
// The caller should disable the encoder's dropout first
// if it wants deterministic results.
func PairDistances(enc *Encoder, pairs *PairList) []float64 {
	t := &Trainer{Encoder: enc}
	res := make([]float64, 0, pairs.Len())
	for i := 0; i < pairs.Len(); i += evalBatchSize {
		j := essentials.MinInt(i+evalBatchSize, pairs.Len())
		batch, err := t.Fetch(pairs.Slice(i, j))
		if err != nil {
			// Unreachable for a non-empty PairList.
			panic(err)
		}
		b := batch.(*Batch)
		left := enc.Apply(b.Lefts, b.Num)
		right := enc.Apply(b.Rights, b.Num)
		dists := Distances(left, right, b.Num)
		res = append(res, vectorFloats(dists.Output())...)
	}
	return res
}

// Accuracy measures how often thresholding the predicted
// distance reproduces the true match labels.
// If threshold is 0, DefaultThreshold is used.
//
// An empty pair list has an accuracy of 0.
func Accuracy(enc *Encoder, pairs *PairList, threshold float64) float64 {
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	if pairs.Len() == 0 {
		return 0
	}
	var correct int
	for i, d := range PairDistances(enc, pairs) {
		if (d < threshold) == pairs.GetPair(i).Match {
			correct++
		}
	}
	return float64(correct) / float64(pairs.Len())
}

func vectorFloats(v anyvec.Vector) []float64 {
	switch data := v.Data().(type) {
	case []float32:
		res := make([]float64, len(data))
		for i, x := range data {
			res[i] = float64(x)
		}
		return res
	case []float64:
		return data
	default:
		panic(fmt.Sprintf("unsupported numeric list: %T", data))
	}
}
