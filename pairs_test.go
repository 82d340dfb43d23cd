package samedigit

import (
	"math/rand"
	"testing"

	"github.com/unixpickle/anyvec"
	"github.com/unixpickle/anyvec/anyvec32"
	"github.com/unixpickle/mnist"
)

func TestPairListSmall(t *testing.T) {
	// Classes of size 3 and 2, so each class contributes
	// one matching and one mismatched pair.
	labels := []int{0, 0, 1, 0, 1}
	pairs, err := NewPairList(anyvec32.CurrentCreator(), indexVectors(len(labels)),
		labels, 2, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}
	if pairs.Len() != 4 {
		t.Fatalf("expected 4 pairs but got %d", pairs.Len())
	}
	checkPairInvariants(t, pairs, labels)
}

func TestPairListCount(t *testing.T) {
	// Class sizes 4, 6, 5: the smallest class size is 4,
	// so there should be (4-1)*3*2 pairs.
	var labels []int
	for label, count := range []int{4, 6, 5} {
		for i := 0; i < count; i++ {
			labels = append(labels, label)
		}
	}
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 10; i++ {
		rng.Shuffle(len(labels), func(i, j int) {
			labels[i], labels[j] = labels[j], labels[i]
		})
		pairs, err := NewPairList(anyvec32.CurrentCreator(),
			indexVectors(len(labels)), labels, 3, rng)
		if err != nil {
			t.Fatal(err)
		}
		if pairs.Len() != 18 {
			t.Fatalf("expected 18 pairs but got %d", pairs.Len())
		}
		checkPairInvariants(t, pairs, labels)
	}
}

func TestPairListSingleton(t *testing.T) {
	// A class with one sample limits every class to zero
	// pairs.
	labels := []int{0, 0, 0, 1}
	pairs, err := NewPairList(anyvec32.CurrentCreator(), indexVectors(len(labels)),
		labels, 2, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}
	if pairs.Len() != 0 {
		t.Errorf("expected 0 pairs but got %d", pairs.Len())
	}
}

func TestMNISTPairs(t *testing.T) {
	var ds mnist.DataSet
	for digit := 0; digit < 10; digit++ {
		for i := 0; i < 2; i++ {
			ds.Samples = append(ds.Samples, mnist.Sample{
				Intensities: []float64{float64(digit), float64(i)},
				Label:       digit,
			})
		}
	}
	pairs, err := MNISTPairs(anyvec32.CurrentCreator(), ds,
		rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}
	if pairs.Len() != 20 {
		t.Fatalf("expected 20 pairs but got %d", pairs.Len())
	}
	for i := 0; i < pairs.Len(); i++ {
		pair := pairs.GetPair(i)
		wantMatch := i%2 == 0
		if pair.Match != wantMatch {
			t.Fatalf("pair %d: expected match=%v but got %v", i, wantMatch,
				pair.Match)
		}
		leftClass := pair.Left.Data().([]float32)[0]
		rightClass := pair.Right.Data().([]float32)[0]
		if (leftClass == rightClass) != pair.Match {
			t.Fatalf("pair %d: classes %f and %f with match=%v", i, leftClass,
				rightClass, pair.Match)
		}
	}
}

func TestPairListErrors(t *testing.T) {
	c := anyvec32.CurrentCreator()
	rng := rand.New(rand.NewSource(7))

	if _, err := NewPairList(c, indexVectors(3), []int{0, 1}, 2, rng); err == nil {
		t.Error("expected error for mismatched lengths")
	}
	if _, err := NewPairList(c, indexVectors(2), []int{0, 2}, 3, rng); err == nil {
		t.Error("expected error for empty class")
	}
	if _, err := NewPairList(c, indexVectors(2), []int{0, 5}, 2, rng); err == nil {
		t.Error("expected error for out-of-range label")
	}
	if _, err := NewPairList(c, indexVectors(2), []int{0, 0}, 1, rng); err == nil {
		t.Error("expected error for a single class")
	}
}

// checkPairInvariants verifies label alternation and the
// class relationship inside every pair.
func checkPairInvariants(t *testing.T, pairs *PairList, labels []int) {
	for i := 0; i < pairs.Len(); i++ {
		pair := pairs.GetPair(i)
		wantMatch := i%2 == 0
		if pair.Match != wantMatch {
			t.Fatalf("pair %d: expected match=%v but got %v", i, wantMatch,
				pair.Match)
		}
		leftClass := labels[sampleIndex(pair.Left)]
		rightClass := labels[sampleIndex(pair.Right)]
		if (leftClass == rightClass) != pair.Match {
			t.Fatalf("pair %d: classes %d and %d with match=%v", i, leftClass,
				rightClass, pair.Match)
		}
	}
}

// indexVectors produces one-component vectors that encode
// their own index, so tests can recover which sample a
// pair refers to.
func indexVectors(n int) [][]float64 {
	res := make([][]float64, n)
	for i := range res {
		res[i] = []float64{float64(i)}
	}
	return res
}

func sampleIndex(v anyvec.Vector) int {
	return int(v.Data().([]float32)[0])
}
