// Package solve keeps the registry of puzzle solutions. Day packages
// register themselves from init, so importing a day package is all it
// takes to make it runnable.
package solve

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownDay is returned when no solution is registered for a day.
var ErrUnknownDay = errors.New("unknown day")

// PartFunc solves one puzzle part for the given raw input.
type PartFunc func(input string) (int, error)

// Solution is a registered puzzle day.
type Solution struct {
	Day   int
	Title string
	Part1 PartFunc
	Part2 PartFunc
}

var (
	mu       sync.RWMutex
	registry = map[int]Solution{}
)

// Register adds a solution to the registry. It panics on an invalid day,
// a missing part, or a duplicate registration, all of which are
// programming errors.
func Register(s Solution) {
	if s.Day < 1 || s.Day > 25 {
		panic(fmt.Sprintf("solve: day %d out of range", s.Day))
	}
	if s.Part1 == nil || s.Part2 == nil {
		panic(fmt.Sprintf("solve: day %d registered without both parts", s.Day))
	}
	mu.Lock()
	defer mu.Unlock()
	if _, dup := registry[s.Day]; dup {
		panic(fmt.Sprintf("solve: day %d registered twice", s.Day))
	}
	registry[s.Day] = s
}

// Lookup returns the solution for a day.
func Lookup(day int) (Solution, error) {
	mu.RLock()
	defer mu.RUnlock()
	s, ok := registry[day]
	if !ok {
		return Solution{}, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	return s, nil
}

// Days returns the registered day numbers in ascending order.
func Days() []int {
	mu.RLock()
	defer mu.RUnlock()
	days := make([]int, 0, len(registry))
	for d := range registry {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}
