package marketplace

import "time"

// cash is a test helper to create money amounts from consts.
func cash(v float64) Money { return M(v) }

// scripted returns a draw source that replays the given values in order.
// It panics when the script runs out, so an unexpected extra draw fails loud.
func scripted(values ...int) func(int) int {
	i := 0
	return func(int) int {
		if i >= len(values) {
			panic("scripted draw source exhausted")
		}
		v := values[i]
		i++
		return v
	}
}

// at parses an RFC3339 timestamp into a fixed clock.
func at(s string) func() time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

// newTestService returns a service over an in-memory store with a
// deterministic draw source: ids come out as 0, 1, 2, ... in listing order.
func newTestService() (*Service, *MemoryRepository) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	next := 0
	svc.IDs = &RandomAllocator{MaxID: MaxItemID, IntN: func(n int) int {
		v := next % n
		next++
		return v
	}}
	return svc, repo
}
