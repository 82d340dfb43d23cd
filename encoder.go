package samedigit

import (
	"github.com/unixpickle/anydiff"
	"github.com/unixpickle/anynet"
	"github.com/unixpickle/anyvec"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/serializer"
)

const (
	// DefaultHiddenSize is the width of the encoder's
	// hidden and embedding layers.
	DefaultHiddenSize = 128

	// DefaultKeepProb is the dropout keep probability used
	// by NewEncoder.
	DefaultKeepProb = 0.9
)

func init() {
	var e Encoder
	serializer.RegisterTypedDeserializer(e.SerializerType(), DeserializeEncoder)
}

// An Encoder maps image vectors to embedding vectors.
//
// One Encoder instance is applied to both images of a
// pair, so the two sides always share a single set of
// parameters.
type Encoder struct {
	InSize int
	Net    anynet.Net
}

// DeserializeEncoder deserializes an Encoder.
func DeserializeEncoder(d []byte) (*Encoder, error) {
	var inSize serializer.Int
	var net anynet.Net
	if err := serializer.DeserializeAny(d, &inSize, &net); err != nil {
		return nil, essentials.AddCtx("deserialize Encoder", err)
	}
	return &Encoder{
		InSize: int(inSize),
		Net:    net,
	}, nil
}

// NewEncoder creates a randomized Encoder for input
// vectors of the given size.
func NewEncoder(c anyvec.Creator, inSize int) *Encoder {
	return &Encoder{
		InSize: inSize,
		Net: anynet.Net{
			anynet.NewFC(c, inSize, DefaultHiddenSize),
			anynet.ReLU,
			&anynet.Dropout{Enabled: true, KeepProb: DefaultKeepProb},
			anynet.NewFC(c, DefaultHiddenSize, DefaultHiddenSize),
			anynet.ReLU,
			&anynet.Dropout{Enabled: true, KeepProb: DefaultKeepProb},
			anynet.NewFC(c, DefaultHiddenSize, DefaultHiddenSize),
		},
	}
}

// Apply computes embeddings for a packed batch of n image
// vectors.
func (e *Encoder) Apply(in anydiff.Res, n int) anydiff.Res {
	return e.Net.Apply(in, n)
}

// Parameters returns the parameters of the underlying
// network.
func (e *Encoder) Parameters() []*anydiff.Var {
	return e.Net.Parameters()
}

// SetDropout enables or disables the dropout layers.
// Dropout should be disabled for evaluation.
func (e *Encoder) SetDropout(enabled bool) {
	for _, layer := range e.Net {
		if d, ok := layer.(*anynet.Dropout); ok {
			d.Enabled = enabled
		}
	}
}

// SerializerType returns the unique ID used to serialize
// an Encoder with the serializer package.
func (e *Encoder) SerializerType() string {
	return "github.com/unixpickle/samedigit.Encoder"
}

// Serialize serializes the Encoder.
func (e *Encoder) Serialize() ([]byte, error) {
	return serializer.SerializeAny(serializer.Int(e.InSize), e.Net)
}
