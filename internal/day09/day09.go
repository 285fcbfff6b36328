// Package day09 compacts a fragmented disk map.
package day09

import (
	"fmt"
	"strings"

	"github.com/BenDeJonge/advent-of-code-2024/internal/solve"
)

func init() {
	solve.Register(solve.Solution{
		Day:   9,
		Title: "Disk Fragmenter",
		Part1: Part1,
		Part2: Part2,
	})
}

const free = -1

// parseBlocks expands the dense map into one int per block, free blocks
// marked with -1.
func parseBlocks(input string) ([]int, error) {
	var disk []int
	for i, c := range strings.TrimSpace(input) {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("offset %d: bad digit %q", i, c)
		}
		id := free
		if i%2 == 0 {
			id = i / 2
		}
		for range int(c - '0') {
			disk = append(disk, id)
		}
	}
	return disk, nil
}

func checksum(disk []int) int {
	sum := 0
	for pos, id := range disk {
		if id != free {
			sum += pos * id
		}
	}
	return sum
}

// Part1 moves blocks one at a time from the end into the leftmost free
// block.
func Part1(input string) (int, error) {
	disk, err := parseBlocks(input)
	if err != nil {
		return 0, err
	}
	lo, hi := 0, len(disk)-1
	for lo < hi {
		switch {
		case disk[lo] != free:
			lo++
		case disk[hi] == free:
			hi--
		default:
			disk[lo], disk[hi] = disk[hi], free
		}
	}
	return checksum(disk), nil
}

type span struct {
	start, length int
}

// parseSpans reads the dense map as alternating file and gap spans.
func parseSpans(input string) (files, gaps []span, err error) {
	pos := 0
	for i, c := range strings.TrimSpace(input) {
		if c < '0' || c > '9' {
			return nil, nil, fmt.Errorf("offset %d: bad digit %q", i, c)
		}
		length := int(c - '0')
		s := span{start: pos, length: length}
		if i%2 == 0 {
			files = append(files, s)
		} else if length > 0 {
			gaps = append(gaps, s)
		}
		pos += length
	}
	return files, gaps, nil
}

// Part2 moves whole files, highest ID first, into the leftmost gap that
// fits. Each file moves at most once and never to the right.
func Part2(input string) (int, error) {
	files, gaps, err := parseSpans(input)
	if err != nil {
		return 0, err
	}
	for id := len(files) - 1; id >= 0; id-- {
		f := files[id]
		for gi, gap := range gaps {
			if gap.start >= f.start {
				break
			}
			if gap.length < f.length {
				continue
			}
			files[id].start = gap.start
			gaps[gi].start += f.length
			gaps[gi].length -= f.length
			break
		}
	}
	sum := 0
	for id, f := range files {
		for pos := f.start; pos < f.start+f.length; pos++ {
			sum += pos * id
		}
	}
	return sum, nil
}
