// Command eval_siamese evaluates a trained siamese digit
// encoder on MNIST pairs.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"github.com/unixpickle/anyvec/anyvec32"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/mnist"
	"github.com/unixpickle/samedigit"
	"github.com/unixpickle/serializer"
)

func main() {
	var netPath string
	var useTraining bool
	var threshold float64
	var seed int64
	flag.StringVar(&netPath, "net", "encoder_out", "encoder file path")
	flag.BoolVar(&useTraining, "train", false, "evaluate the training split")
	flag.Float64Var(&threshold, "threshold", samedigit.DefaultThreshold,
		"distance threshold for matches")
	flag.Int64Var(&seed, "seed", 1, "seed for pair sampling")
	flag.Parse()

	var encoder *samedigit.Encoder
	if err := serializer.LoadAny(netPath, &encoder); err != nil {
		essentials.Die("load encoder:", err)
	}
	encoder.SetDropout(false)

	ds := mnist.LoadTestingDataSet()
	if useTraining {
		ds = mnist.LoadTrainingDataSet()
	}
	rng := rand.New(rand.NewSource(seed))
	pairs, err := samedigit.MNISTPairs(anyvec32.CurrentCreator(), ds, rng)
	if err != nil {
		essentials.Die(err)
	}

	log.Println("Rating pairs...")
	dists := samedigit.PairDistances(encoder, pairs)
	var matchSum, mismatchSum float64
	for i, d := range dists {
		if pairs.GetPair(i).Match {
			matchSum += d
		} else {
			mismatchSum += d
		}
	}
	// Matching and mismatched pairs come in equal numbers.
	log.Printf("Mean match distance: %.4f", matchSum/float64(len(dists)/2))
	log.Printf("Mean mismatch distance: %.4f", mismatchSum/float64(len(dists)/2))

	fmt.Printf("Accuracy: %.2f%%\n", 100*samedigit.Accuracy(encoder, pairs, threshold))
}
