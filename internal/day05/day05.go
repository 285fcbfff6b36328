// Package day05 orders safety manual updates by page ordering rules.
package day05

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BenDeJonge/advent-of-code-2024/internal/scan"
	"github.com/BenDeJonge/advent-of-code-2024/internal/solve"
)

func init() {
	solve.Register(solve.Solution{
		Day:   5,
		Title: "Print Queue",
		Part1: Part1,
		Part2: Part2,
	})
}

// rules maps a page to the set of pages that must come after it.
type rules map[int]map[int]bool

func (r rules) before(a, b int) bool {
	return r[a][b]
}

func parse(input string) (rules, [][]int, error) {
	ruleText, updateText, ok := strings.Cut(strings.TrimSpace(input), "\n\n")
	if !ok {
		return nil, nil, fmt.Errorf("missing blank line between rules and updates")
	}

	r := rules{}
	for _, line := range strings.Split(ruleText, "\n") {
		a, rest, ok := scan.Decimal(line)
		if !ok {
			return nil, nil, fmt.Errorf("bad rule %q", line)
		}
		rest, ok = scan.Literal(rest, "|")
		if !ok {
			return nil, nil, fmt.Errorf("bad rule %q", line)
		}
		b, _, ok := scan.Decimal(rest)
		if !ok {
			return nil, nil, fmt.Errorf("bad rule %q", line)
		}
		if r[a] == nil {
			r[a] = map[int]bool{}
		}
		r[a][b] = true
	}

	var updates [][]int
	for _, line := range strings.Split(updateText, "\n") {
		var pages []int
		for _, field := range strings.Split(line, ",") {
			n, rest, ok := scan.Decimal(field)
			if !ok || rest != "" {
				return nil, nil, fmt.Errorf("bad page %q", field)
			}
			pages = append(pages, n)
		}
		updates = append(updates, pages)
	}
	return r, updates, nil
}

func ordered(r rules, pages []int) bool {
	for i := 1; i < len(pages); i++ {
		if r.before(pages[i], pages[i-1]) {
			return false
		}
	}
	return true
}

// Part1 sums the middle page of every correctly ordered update.
func Part1(input string) (int, error) {
	r, updates, err := parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, pages := range updates {
		if ordered(r, pages) {
			total += pages[len(pages)/2]
		}
	}
	return total, nil
}

// Part2 reorders the incorrect updates and sums their middle pages.
func Part2(input string) (int, error) {
	r, updates, err := parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, pages := range updates {
		if ordered(r, pages) {
			continue
		}
		sort.SliceStable(pages, func(i, j int) bool {
			return r.before(pages[i], pages[j])
		})
		total += pages[len(pages)/2]
	}
	return total, nil
}
