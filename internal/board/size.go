package board

import "strings"

// Size selects the grid dimensions of a board.
type Size int

const (
	Large Size = iota
	Medium
	Small
)

// MaxPairs is the number of pairs on the largest board.
const MaxPairs = 8

// ParseSize maps a configuration value to a Size. Anything unrecognised is
// treated as Large.
func ParseSize(s string) Size {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "small":
		return Small
	case "medium":
		return Medium
	default:
		return Large
	}
}

// Dimensions returns the width and height in tiles.
func (s Size) Dimensions() (width, height int) {
	switch s {
	case Small:
		return 2, 2
	case Medium:
		return 4, 2
	default:
		return 4, 4
	}
}

func (s Size) TileCount() int {
	w, h := s.Dimensions()
	return w * h
}

func (s Size) String() string {
	switch s {
	case Small:
		return "small"
	case Medium:
		return "medium"
	default:
		return "large"
	}
}

// Set implements pflag.Value. It never fails.
func (s *Size) Set(v string) error {
	*s = ParseSize(v)
	return nil
}

func (s *Size) Type() string {
	return "size"
}
