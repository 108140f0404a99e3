package marketplace

import "math/rand/v2"

// MaxItemID is the upper bound of the item id space. Ids are drawn from
// [0, MaxItemID], so the space holds MaxItemID+1 values.
const MaxItemID = 100

// IDAllocator produces a fresh item id not present in the set of ids
// currently in use. It returns ErrIDSpaceExhausted when no id is free.
type IDAllocator interface {
	Allocate(used map[int]struct{}) (int, error)
}

// RandomAllocator draws uniform random ids until it finds a free one.
//
// Exhaustion must be detected before drawing: draw-until-unique cannot
// terminate on a full space.
type RandomAllocator struct {
	MaxID int
	IntN  func(n int) int // draw source, defaults to math/rand/v2
}

// NewRandomAllocator creates an allocator over [0, maxID].
func NewRandomAllocator(maxID int) *RandomAllocator {
	return &RandomAllocator{MaxID: maxID}
}

// Allocate returns a free id, or ErrIDSpaceExhausted when every id in the
// space is in use.
func (a *RandomAllocator) Allocate(used map[int]struct{}) (int, error) {
	if len(used) >= a.MaxID+1 {
		return 0, ErrIDSpaceExhausted
	}
	intn := a.IntN
	if intn == nil {
		intn = rand.IntN
	}
	for {
		id := intn(a.MaxID + 1)
		if _, taken := used[id]; !taken {
			return id, nil
		}
	}
}
