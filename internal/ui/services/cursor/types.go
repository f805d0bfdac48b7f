package cursor

// State holds all focus-cursor state.
type State struct {
	Index          int
	Count          int
	ViewportOffset int
	ViewportHeight int
	// KeyboardMove is set when the last cursor change came from the
	// keyboard. The viewport follows the cursor only then; a mouse
	// hover or click never scrolls the list out from under the user.
	KeyboardMove bool
}

// Event types for cursor changes
type MovedEvent struct {
	OldIndex int
	NewIndex int
	Keyboard bool
}

type ViewportChangedEvent struct {
	Offset int
	Height int
}
