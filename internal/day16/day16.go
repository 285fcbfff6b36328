// Package day16 races the reindeer olympics maze.
package day16

import (
	"container/heap"
	"fmt"

	"github.com/BenDeJonge/advent-of-code-2024/internal/grid"
	"github.com/BenDeJonge/advent-of-code-2024/internal/solve"
)

func init() {
	solve.Register(solve.Solution{
		Day:   16,
		Title: "Reindeer Maze",
		Part1: Part1,
		Part2: Part2,
	})
}

const (
	stepCost = 1
	turnCost = 1000
)

type state struct {
	pos grid.Coord
	dir grid.Direction
}

type item struct {
	state
	score int
}

type queue []item

func (q queue) Len() int           { return len(q) }
func (q queue) Less(i, j int) bool { return q[i].score < q[j].score }
func (q queue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *queue) Push(x any)        { *q = append(*q, x.(item)) }
func (q *queue) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}

// search runs Dijkstra from the start, facing east, over (position,
// heading) states. It returns the best score per state and every
// predecessor on a cheapest route to it.
func search(g grid.Grid[byte], start grid.Coord) (map[state]int, map[state][]state) {
	dist := map[state]int{}
	prev := map[state][]state{}
	pq := &queue{{state: state{pos: start, dir: grid.East}}}
	dist[state{pos: start, dir: grid.East}] = 0
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(item)
		if cur.score > dist[cur.state] {
			continue
		}
		next := []item{
			{state{cur.pos, cur.dir.Clockwise()}, cur.score + turnCost},
			{state{cur.pos, cur.dir.CounterClockwise()}, cur.score + turnCost},
		}
		if ahead := cur.pos.Step(cur.dir); g[ahead.Row][ahead.Col] != '#' {
			next = append(next, item{state{ahead, cur.dir}, cur.score + stepCost})
		}
		for _, n := range next {
			best, seen := dist[n.state]
			switch {
			case !seen || n.score < best:
				dist[n.state] = n.score
				prev[n.state] = []state{cur.state}
				heap.Push(pq, n)
			case n.score == best:
				prev[n.state] = append(prev[n.state], cur.state)
			}
		}
	}
	return dist, prev
}

func parse(input string) (grid.Grid[byte], grid.Coord, grid.Coord, error) {
	g := grid.Parse(input)
	start, ok := grid.Find(g, byte('S'))
	if !ok {
		return nil, grid.Coord{}, grid.Coord{}, fmt.Errorf("no start in maze")
	}
	end, ok := grid.Find(g, byte('E'))
	if !ok {
		return nil, grid.Coord{}, grid.Coord{}, fmt.Errorf("no end in maze")
	}
	return g, start, end, nil
}

// bestScore returns the cheapest score over the four headings at the end
// tile.
func bestScore(dist map[state]int, end grid.Coord) (int, error) {
	best, found := 0, false
	for d := grid.North; d <= grid.West; d++ {
		if score, ok := dist[state{pos: end, dir: d}]; ok && (!found || score < best) {
			best, found = score, true
		}
	}
	if !found {
		return 0, fmt.Errorf("end tile unreachable")
	}
	return best, nil
}

// Part1 returns the lowest possible score through the maze.
func Part1(input string) (int, error) {
	g, start, end, err := parse(input)
	if err != nil {
		return 0, err
	}
	dist, _ := search(g, start)
	return bestScore(dist, end)
}

// Part2 counts the tiles that lie on at least one cheapest route.
func Part2(input string) (int, error) {
	g, start, end, err := parse(input)
	if err != nil {
		return 0, err
	}
	dist, prev := search(g, start)
	best, err := bestScore(dist, end)
	if err != nil {
		return 0, err
	}

	// Walk the predecessor graph back from every optimal end state.
	var stack []state
	for d := grid.North; d <= grid.West; d++ {
		st := state{pos: end, dir: d}
		if score, ok := dist[st]; ok && score == best {
			stack = append(stack, st)
		}
	}
	seen := map[state]bool{}
	tiles := map[grid.Coord]bool{}
	for len(stack) > 0 {
		st := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[st] {
			continue
		}
		seen[st] = true
		tiles[st.pos] = true
		stack = append(stack, prev[st]...)
	}
	return len(tiles), nil
}
