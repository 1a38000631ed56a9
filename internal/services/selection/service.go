// Package selection implements the deterministic scripture pick that backs
// both challenge question sets and the daily challenge. Two callers with the
// same seed always receive the same ordered list, which is what lets both
// sides of a challenge play identical questions from nothing but the code.
package selection

import (
	"github.com/scripturemastery/server/internal/model"
	"github.com/scripturemastery/server/internal/scriptures"
)

// Service selects scriptures deterministically from the static dataset
type Service struct {
	dataset []model.Scripture
}

// New creates a selection service over the compiled dataset
func New() *Service {
	return &Service{dataset: scriptures.All()}
}

// NewWithDataset creates a selection service over a custom dataset (for testing)
func NewWithDataset(dataset []model.Scripture) *Service {
	return &Service{dataset: dataset}
}

// Select returns count scriptures in a seed-determined order, unique within
// the list. The same seed always yields the same list.
func (s *Service) Select(seed string, count int) ([]model.Scripture, error) {
	if count > len(s.dataset) {
		return nil, model.ErrNotEnoughScriptures
	}
	if count < 0 {
		count = 0
	}

	rng := newRNG(hashSeed(seed))

	// Fisher-Yates over a copy of the index, then take the head
	indices := make([]int, len(s.dataset))
	for i := range indices {
		indices[i] = i
	}
	for i := len(indices) - 1; i > 0; i-- {
		j := rng.intn(i + 1)
		indices[i], indices[j] = indices[j], indices[i]
	}

	picked := make([]model.Scripture, count)
	for i := 0; i < count; i++ {
		picked[i] = s.dataset[indices[i]]
	}
	return picked, nil
}

// DatasetSize returns the number of scriptures available
func (s *Service) DatasetSize() int {
	return len(s.dataset)
}

// hashSeed folds a seed string into 32 bits (iterated h*31 + byte)
func hashSeed(seed string) uint32 {
	var h uint32
	for i := 0; i < len(seed); i++ {
		h = h*31 + uint32(seed[i])
	}
	return h
}

// rng is a small LCG; determinism matters here, statistical quality does not
type rng struct {
	state uint32
}

func newRNG(seed uint32) *rng {
	// The modulus is tiny, keep the state in range from the start
	return &rng{state: seed % 233280}
}

func (r *rng) next() float64 {
	r.state = (r.state*9301 + 49297) % 233280
	return float64(r.state) / 233280.0
}

// intn returns a deterministic value in [0, n)
func (r *rng) intn(n int) int {
	if n <= 0 {
		return 0
	}
	v := int(r.next() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}
