package samedigit

import "github.com/unixpickle/anydiff"

// DefaultMargin is the margin used by Contrastive when no
// margin is set.
const DefaultMargin = 1

// Contrastive is a contrastive cost over pair distances.
//
// For a desired label y (1 for matching pairs) and a
// predicted distance d, the cost is
//
//     y*d^2 + (1-y)*max(margin-d, 0)^2
//
// Matching pairs are pulled together quadratically, while
// mismatched pairs are pushed apart until their distance
// reaches the margin, after which they stop contributing.
type Contrastive struct {
	// Margin is the separation beyond which mismatched
	// pairs are no longer penalized.
	// If it is 0, DefaultMargin is used.
	Margin float64
}

// Cost computes one cost per pair, where desired holds
// the 0/1 match labels and actual holds the predicted
// distances.
func (c Contrastive) Cost(desired, actual anydiff.Res, n int) anydiff.Res {
	margin := c.Margin
	if margin == 0 {
		margin = DefaultMargin
	}
	cr := actual.Output().Creator()
	return anydiff.Pool(desired, func(desired anydiff.Res) anydiff.Res {
		return anydiff.Pool(actual, func(actual anydiff.Res) anydiff.Res {
			matchCost := anydiff.Square(actual)
			separation := anydiff.AddScalar(
				anydiff.Scale(actual, cr.MakeNumeric(-1)),
				cr.MakeNumeric(margin),
			)
			mismatchCost := anydiff.Square(anydiff.ClipPos(separation))
			return anydiff.Add(
				anydiff.Mul(desired, matchCost),
				anydiff.Mul(anydiff.Complement(desired), mismatchCost),
			)
		})
	})
}
