//go:build !profile

package profiler

import "time"

// No-op versions used when the "profile" build tag is not set.

type ScopeStat struct {
	Name  string
	Count int
	Total time.Duration
	Max   time.Duration
}

func Init(capacity int) {}

func Start(name string) func() { return func() {} }

func Summary() []ScopeStat { return nil }

func Dump(path string) error { return nil }
