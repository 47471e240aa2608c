package store

import (
	"fmt"
	"time"
)

var testNow = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestRepo(st *State, opts ...Option) *Repo {
	base := []Option{
		WithClock(func() time.Time { return testNow }),
		WithIDGenerator(seqIDs()),
	}
	return NewRepo(st, append(base, opts...)...)
}
