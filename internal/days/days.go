// Package days links every implemented day into the solution registry.
package days

import (
	_ "github.com/BenDeJonge/advent-of-code-2024/internal/day01"
	_ "github.com/BenDeJonge/advent-of-code-2024/internal/day02"
	_ "github.com/BenDeJonge/advent-of-code-2024/internal/day03"
	_ "github.com/BenDeJonge/advent-of-code-2024/internal/day04"
	_ "github.com/BenDeJonge/advent-of-code-2024/internal/day05"
	_ "github.com/BenDeJonge/advent-of-code-2024/internal/day06"
	_ "github.com/BenDeJonge/advent-of-code-2024/internal/day07"
	_ "github.com/BenDeJonge/advent-of-code-2024/internal/day08"
	_ "github.com/BenDeJonge/advent-of-code-2024/internal/day09"
	_ "github.com/BenDeJonge/advent-of-code-2024/internal/day10"
	_ "github.com/BenDeJonge/advent-of-code-2024/internal/day11"
	_ "github.com/BenDeJonge/advent-of-code-2024/internal/day12"
	_ "github.com/BenDeJonge/advent-of-code-2024/internal/day13"
	_ "github.com/BenDeJonge/advent-of-code-2024/internal/day14"
	_ "github.com/BenDeJonge/advent-of-code-2024/internal/day15"
	_ "github.com/BenDeJonge/advent-of-code-2024/internal/day16"
)
