// Command train_siamese trains a siamese digit encoder on
// MNIST pairs and reports pair accuracy on the training
// and testing splits.
package main

import (
	"flag"
	"log"
	"math/rand"

	"github.com/unixpickle/anynet/anysgd"
	"github.com/unixpickle/anyvec"
	"github.com/unixpickle/anyvec/anyvec32"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/mnist"
	"github.com/unixpickle/rip"
	"github.com/unixpickle/samedigit"
	"github.com/unixpickle/serializer"
)

func main() {
	var batchSize int
	var stepSize float64
	var margin float64
	var seed int64
	var netPath string
	flag.IntVar(&batchSize, "batch", 128, "SGD mini-batch size")
	flag.Float64Var(&stepSize, "step", 0.001, "SGD step size")
	flag.Float64Var(&margin, "margin", samedigit.DefaultMargin, "contrastive margin")
	flag.Int64Var(&seed, "seed", 1, "seed for pair sampling")
	flag.StringVar(&netPath, "out", "encoder_out", "encoder file path")
	flag.Parse()

	creator := anyvec32.CurrentCreator()

	log.Println("Building pairs...")
	rng := rand.New(rand.NewSource(seed))
	trainPairs, err := samedigit.MNISTPairs(creator, mnist.LoadTrainingDataSet(), rng)
	if err != nil {
		essentials.Die(err)
	}
	testPairs, err := samedigit.MNISTPairs(creator, mnist.LoadTestingDataSet(), rng)
	if err != nil {
		essentials.Die(err)
	}

	encoder := loadOrCreateEncoder(creator, netPath)
	encoder.SetDropout(true)

	t := &samedigit.Trainer{
		Encoder: encoder,
		Cost:    samedigit.Contrastive{Margin: margin},
		Params:  encoder.Parameters(),
		Average: true,
	}

	var iterNum int
	s := &anysgd.SGD{
		Fetcher:     t,
		Gradienter:  t,
		Transformer: &anysgd.Adam{},
		Samples:     trainPairs,
		Rater:       anysgd.ConstRater(stepSize),
		StatusFunc: func(b anysgd.Batch) {
			log.Printf("iter %d: cost=%v", iterNum, t.LastCost)
			iterNum++
		},
		BatchSize: batchSize,
	}

	log.Println("Press ctrl+c once to stop...")
	s.Run(rip.NewRIP().Chan())

	if err := serializer.SaveAny(netPath, encoder); err != nil {
		essentials.Die(err)
	}

	log.Println("Computing statistics...")
	encoder.SetDropout(false)
	log.Printf("Training accuracy: %.2f%%",
		100*samedigit.Accuracy(encoder, trainPairs, 0))
	log.Printf("Testing accuracy: %.2f%%",
		100*samedigit.Accuracy(encoder, testPairs, 0))
}

func loadOrCreateEncoder(c anyvec.Creator, path string) *samedigit.Encoder {
	var res *samedigit.Encoder
	if err := serializer.LoadAny(path, &res); err == nil {
		log.Println("Loaded encoder from file.")
		return res
	}
	log.Println("Created new encoder.")
	return samedigit.NewEncoder(c, 28*28)
}
