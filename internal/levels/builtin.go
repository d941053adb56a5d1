package levels

import (
	"fmt"

	"github.com/michelv/squish/internal/game"
)

// Builtin returns the built-in campaign, easiest first.
func Builtin() []Level {
	return []Level{
		{
			ID:   "01-first-squish",
			Name: "First Squish",
			Layout: []string{
				"############",
				"#@.....O..e#",
				"#..........#",
				"#...O......#",
				"#..........#",
				"#.....O....#",
				"############",
			},
		},
		{
			ID:   "02-corridors",
			Name: "Corridors",
			Layout: []string{
				"##############",
				"#@....#......#",
				"#..O..#..e...#",
				"#..........O.#",
				"#..####......#",
				"#......O...e.#",
				"#............#",
				"##############",
			},
		},
		{
			ID:   "03-hatchery",
			Name: "Hatchery",
			Layout: []string{
				"##############",
				"#....O.....g.#",
				"#..@.........#",
				"#.O...####...#",
				"#........O...#",
				"#..g......O..#",
				"#.....e......#",
				"##############",
			},
		},
		{
			ID:   "04-first-pusher",
			Name: "First Pusher",
			Layout: []string{
				"################",
				"#@.....O.......#",
				"#........O.....#",
				"#...####.......#",
				"#...#..#...P...#",
				"#...####.......#",
				"#.....O....e...#",
				"#..........O..e#",
				"################",
			},
		},
		{
			ID:   "05-nursery",
			Name: "Nursery",
			Layout: []string{
				"################",
				"#.g..........g.#",
				"#......O.......#",
				"#..O.......O...#",
				"#.......@......#",
				"#..O.......O...#",
				"#......O.......#",
				"#.P..........e.#",
				"################",
			},
		},
		{
			ID:   "06-gauntlet",
			Name: "Gauntlet",
			Layout: []string{
				"##################",
				"#@..O.........g..#",
				"#.......####.....#",
				"#..O....#..#..O..#",
				"#.......#..#.....#",
				"#..e....#..#..P..#",
				"#.......####.....#",
				"#..O..........O..#",
				"#.....e......g...#",
				"##################",
			},
			EnemyEveryTicks: 6,
		},
	}
}

// Campaign converts the built-in levels into engine setups. The built-in
// layouts are code; a malformed one is a programmer error and panics.
func Campaign() []game.Setup {
	setups, err := ToSetups(Builtin())
	if err != nil {
		panic(fmt.Sprintf("levels: builtin campaign is malformed: %v", err))
	}
	return setups
}

// ToSetups converts parsed levels into engine setups, failing on the first
// malformed level.
func ToSetups(list []Level) ([]game.Setup, error) {
	setups := make([]game.Setup, 0, len(list))
	for _, l := range list {
		s, err := l.Setup()
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", l.ID, err)
		}
		setups = append(setups, s)
	}
	return setups, nil
}
