package tracking

import "math/rand/v2"

// Generator draws uniformly random tracking number candidates: a length in
// [MinLength, MaxLength], then each character independently from Alphabet.
//
// The zero value uses the top-level math/rand/v2 functions, which are safe
// for concurrent use and need no shared lock.
type Generator struct {
	newRand func() *rand.Rand
}

func NewGenerator() *Generator {
	return &Generator{}
}

// NewGeneratorWithSource builds a Generator drawing from sources returned by
// newSource, one per Generate call. It exists for reproducible sequences.
func NewGeneratorWithSource(newSource func() rand.Source) *Generator {
	return &Generator{
		newRand: func() *rand.Rand { return rand.New(newSource()) },
	}
}

func (g *Generator) Generate() TrackingNumber {
	intN := rand.IntN
	if g.newRand != nil {
		intN = g.newRand().IntN
	}

	length := MinLength + intN(MaxLength-MinLength+1)
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = Alphabet[intN(len(Alphabet))]
	}
	return TrackingNumber{value: string(buf)}
}
