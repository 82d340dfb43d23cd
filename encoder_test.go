package samedigit

import (
	"testing"

	"github.com/unixpickle/anydiff"
	"github.com/unixpickle/anyvec/anyvec32"
)

func TestEncoderShared(t *testing.T) {
	c := anyvec32.CurrentCreator()
	enc := NewEncoder(c, 8)
	enc.SetDropout(false)

	if len(enc.Parameters()) != 6 {
		t.Errorf("expected 6 parameters but got %d", len(enc.Parameters()))
	}

	in := anydiff.NewConst(anyvec32.MakeVectorData([]float32{
		0.1, -0.2, 0.3, 0, 1, -1, 0.5, 0.25,
		1, 0.9, -0.3, 0.2, 0, 0, -0.7, 0.4,
	}))
	out1 := enc.Apply(in, 2).Output().Data().([]float32)
	out2 := enc.Apply(in, 2).Output().Data().([]float32)
	for i, x := range out1 {
		if x != out2[i] {
			t.Fatalf("component %d: %f changed to %f between applications",
				i, x, out2[i])
		}
	}
}

func TestEncoderSerialize(t *testing.T) {
	c := anyvec32.CurrentCreator()
	enc := NewEncoder(c, 8)
	enc.SetDropout(false)

	data, err := enc.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	enc1, err := DeserializeEncoder(data)
	if err != nil {
		t.Fatal(err)
	}
	enc1.SetDropout(false)

	if enc1.InSize != enc.InSize {
		t.Errorf("expected input size %d but got %d", enc.InSize, enc1.InSize)
	}
	if len(enc1.Net) != len(enc.Net) {
		t.Fatalf("expected %d layers but got %d", len(enc.Net), len(enc1.Net))
	}

	in := anydiff.NewConst(anyvec32.MakeVectorData([]float32{
		0.1, -0.2, 0.3, 0, 1, -1, 0.5, 0.25,
	}))
	out := enc.Apply(in, 1).Output().Data().([]float32)
	out1 := enc1.Apply(in, 1).Output().Data().([]float32)
	for i, x := range out {
		if x != out1[i] {
			t.Fatalf("component %d: expected %f but got %f", i, x, out1[i])
		}
	}
}
