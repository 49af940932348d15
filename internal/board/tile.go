package board

// Tile is a single grid cell. Its facets are read-only outside the package;
// the owning Board is the only writer apart from the face-up toggle in Flip.
type Tile struct {
	index    int
	pairID   int
	face     string
	faceUp   bool
	disabled bool
	hidden   bool

	onFlip func(*Tile)
}

func (t *Tile) Index() int     { return t.index }
func (t *Tile) PairID() int    { return t.pairID }
func (t *Tile) Face() string   { return t.face }
func (t *Tile) FaceUp() bool   { return t.faceUp }
func (t *Tile) Disabled() bool { return t.disabled }
func (t *Tile) Hidden() bool   { return t.hidden }

// Equals reports whether other shows the same content as t.
func (t *Tile) Equals(other *Tile) bool {
	if other == nil {
		return false
	}
	return t.face == other.face
}

// Flip toggles the tile and notifies the owning board. Disabled and hidden
// tiles ignore activation.
func (t *Tile) Flip() bool {
	if t.disabled || t.hidden {
		return false
	}
	t.faceUp = !t.faceUp

	if t.onFlip != nil {
		t.onFlip(t)
	}
	return true
}

func (t *Tile) reset() {
	t.faceUp = false
	t.disabled = false
	t.hidden = false
}
