package extension

import "log"

// Extension is an independent module contributing a set of searchable
// commands. Implementations must fail gracefully: an action that cannot
// do its work should return a placeholder view or item rather than
// panic, because the dispatcher does not sandbox provider code.
type Extension interface {
	Identifier() string
	Name() string
	Commands() []Command
	// SettingsView returns the extension's configuration surface, or nil
	// when it has none.
	SettingsView() ViewBuilder
}

// Registry aggregates commands from registered extensions into one
// searchable catalog. Registration order defines catalog order. The
// registry is mutated only from the interactive loop, so it carries no
// locking.
type Registry struct {
	extensions []Extension
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends an extension. A second extension with an already
// registered identifier is rejected and logged; the first registration
// wins.
func (r *Registry) Register(ext Extension) {
	for _, existing := range r.extensions {
		if existing.Identifier() == ext.Identifier() {
			log.Printf("Registry: duplicate extension identifier %q, ignoring", ext.Identifier())
			return
		}
	}
	r.extensions = append(r.extensions, ext)
}

// Unregister removes all extensions matching the identifier.
func (r *Registry) Unregister(identifier string) {
	kept := r.extensions[:0]
	for _, ext := range r.extensions {
		if ext.Identifier() != identifier {
			kept = append(kept, ext)
		}
	}
	r.extensions = kept
}

// Extensions returns the registered extensions in registration order.
func (r *Registry) Extensions() []Extension {
	out := make([]Extension, len(r.extensions))
	copy(out, r.extensions)
	return out
}

// AllCommands queries every extension in registration order and flattens
// the results. This is a pull model recomputed on every call: callers
// that need a stable list within one interaction must snapshot the
// result once per search session, not call this per keystroke.
//
// Command ids should be unique across extensions; when they collide the
// later command shadows the earlier one wherever consumers key by id
// (last write wins). That is tolerated, not silent: it is logged.
func (r *Registry) AllCommands() []Command {
	var commands []Command
	seen := make(map[string]bool)
	for _, ext := range r.extensions {
		for _, cmd := range ext.Commands() {
			if seen[cmd.ID] {
				log.Printf("Registry: duplicate command id %q from %q", cmd.ID, ext.Identifier())
			}
			seen[cmd.ID] = true
			commands = append(commands, cmd)
		}
	}
	return commands
}
