package board

// deal assigns pair ids through a Fisher-Yates shuffle of the tile indexes,
// so every pair id lands on exactly two tiles, and resets every facet.
func (b *Board) deal() {
	n := len(b.tiles)
	pairs := n / 2

	indexes := make([]int, n)
	for i := range indexes {
		indexes[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := b.rng.Intn(i + 1)
		indexes[i], indexes[j] = indexes[j], indexes[i]
	}

	for i, t := range b.tiles {
		t.pairID = indexes[i] % pairs
		t.face = b.faces[t.pairID]
		t.reset()
	}
}

// FaceUp returns the tiles currently showing their face and still in play.
func (b *Board) FaceUp() []*Tile {
	var out []*Tile
	for _, t := range b.tiles {
		if t.faceUp && !t.hidden {
			out = append(out, t)
		}
	}
	return out
}

func (b *Board) FaceDown() []*Tile {
	var out []*Tile
	for _, t := range b.tiles {
		if !t.faceUp && !t.hidden {
			out = append(out, t)
		}
	}
	return out
}

func (b *Board) HiddenTiles() []*Tile {
	var out []*Tile
	for _, t := range b.tiles {
		if t.hidden {
			out = append(out, t)
		}
	}
	return out
}

// AllHidden reports whether every pair has been matched.
func (b *Board) AllHidden() bool {
	if len(b.tiles) == 0 {
		return false
	}
	for _, t := range b.tiles {
		if !t.hidden {
			return false
		}
	}
	return true
}
