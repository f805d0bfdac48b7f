package extension

import "strings"

// Item is one searchable row in a view. Items are owned by whichever
// provider supplied them; the search layer never mutates or stores them
// beyond the current interaction.
type Item struct {
	Title    string
	Subtitle string
	// Key is the text the fuzzy matcher runs against. Empty means Title.
	Key string
	// Invalid items render but do not activate (helper results may be
	// informational only).
	Invalid bool
	// CommandID, when set, identifies the command this item stands for so
	// activation can be recorded against its usage history.
	CommandID string
	// OnActivate is invoked when the row is chosen. A nil OnActivate makes
	// the row inert.
	OnActivate func() ActionResult
}

// MatchKey returns the text fuzzy matching runs against.
func (it Item) MatchKey() string {
	if it.Key != "" {
		return it.Key
	}
	return it.Title
}

// ViewSpec describes one searchable view. Exactly one of Items or Search
// is set: Items is the static catalog re-filtered on every keystroke,
// Search recomputes the item set per query (external mode).
type ViewSpec struct {
	Title string
	Items []Item
	// Search, when non-nil, replaces the item set on every query change.
	// It may be slow; callers run it off the interactive loop. An error
	// must be degraded by the provider before it reaches the display
	// layer, so Search never returns one.
	Search func(query string) []Item
}

// External reports whether this view sources items per query.
func (v ViewSpec) External() bool {
	return v.Search != nil
}

// ViewBuilder reconstructs a view. The dispatcher stacks builders, not
// built views, so back navigation always shows fresh content.
type ViewBuilder func() ViewSpec

// ActionResult is what activating a command or item produces: either a
// view to push onto the stack, or nothing, meaning the side effect is
// done and the panel should hide.
type ActionResult struct {
	build ViewBuilder
}

// NavigateTo returns a result that pushes the given view builder.
func NavigateTo(b ViewBuilder) ActionResult {
	return ActionResult{build: b}
}

// Done returns a result meaning the side effect already happened and the
// panel should close.
func Done() ActionResult {
	return ActionResult{}
}

// View returns the view builder and whether one was produced.
func (r ActionResult) View() (ViewBuilder, bool) {
	return r.build, r.build != nil
}

// Command is one user-invokable, searchable action contributed by an
// extension.
type Command struct {
	// ID is stable across process runs; it keys usage history and
	// shortcut bindings. Derive it with CommandID.
	ID       string
	Title    string
	Subtitle string
	// Icon is a short glyph shown next to the title.
	Icon string
	// Shortcut is an opaque global-hotkey identity owned by the OS
	// integration layer. Empty means no binding.
	Shortcut string
	// Action is invoked on activation.
	Action func() ActionResult
	// Settings, when non-nil, builds the per-command configuration view.
	Settings ViewBuilder
}

// CommandID derives the stable command identifier from the owning
// extension's identifier and the command title. The same logical command
// must always map to the same id, so the sanitization rules here are
// load-bearing: colons are stripped, spaces and dashes become dots.
func CommandID(extensionID, title string) string {
	sanitized := strings.NewReplacer(":", "", " ", ".", "-", ".").Replace(title)
	return extensionID + "." + sanitized
}
