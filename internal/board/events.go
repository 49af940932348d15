package board

// EventKind names a notification emitted by a Board.
type EventKind string

const (
	TilesMatch    EventKind = "tiles-match"
	TilesMismatch EventKind = "tiles-mismatch"
	GameOver      EventKind = "game-over"
)

// Event is emitted after a comparison resolves. GameOver carries no tiles.
type Event struct {
	Kind   EventKind
	First  *Tile
	Second *Tile
}

// Listener receives board events. Listeners are called synchronously, in
// registration order, and the board does not wait on their outcome.
type Listener func(Event)

type subscription struct {
	id int
	fn Listener
}

// Subscribe registers l and returns a function that removes it.
func (b *Board) Subscribe(l Listener) (unsubscribe func()) {
	b.nextSub++
	id := b.nextSub
	b.listeners = append(b.listeners, subscription{id: id, fn: l})

	return func() {
		for i, s := range b.listeners {
			if s.id == id {
				b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
				return
			}
		}
	}
}

func (b *Board) emit(e Event) {
	subs := make([]subscription, len(b.listeners))
	copy(subs, b.listeners)
	for _, s := range subs {
		s.fn(e)
	}
}
