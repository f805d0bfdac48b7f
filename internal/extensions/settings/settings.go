// Package settings contributes the Preferences command: a view listing
// the settings of every registered extension.
package settings

import (
	"palette/internal/extension"
)

const identifier = "com.palette.settings"

// Extension surfaces other extensions' settings views. It reads the
// registry lazily so extensions registered after it still appear.
type Extension struct {
	registry *extension.Registry
}

// New creates the preferences extension over the registry.
func New(registry *extension.Registry) *Extension {
	return &Extension{registry: registry}
}

func (e *Extension) Identifier() string { return identifier }
func (e *Extension) Name() string       { return "Settings" }

func (e *Extension) Commands() []extension.Command {
	title := "Preferences"
	return []extension.Command{{
		ID:       extension.CommandID(identifier, title),
		Title:    title,
		Subtitle: "Configure extensions",
		Icon:     "⚙",
		Action: func() extension.ActionResult {
			return extension.NavigateTo(e.preferencesView)
		},
	}}
}

// SettingsView returns nil: listing itself inside its own list would
// only lead in circles.
func (e *Extension) SettingsView() extension.ViewBuilder { return nil }

// preferencesView rebuilds from the registry on every invocation, one
// row per extension that exposes a settings view.
func (e *Extension) preferencesView() extension.ViewSpec {
	var items []extension.Item
	for _, ext := range e.registry.Extensions() {
		if ext.Identifier() == identifier {
			continue
		}
		builder := ext.SettingsView()
		if builder == nil {
			continue
		}
		items = append(items, extension.Item{
			Title:    ext.Name(),
			Subtitle: ext.Identifier(),
			OnActivate: func() extension.ActionResult {
				return extension.NavigateTo(builder)
			},
		})
	}
	return extension.ViewSpec{Title: "Preferences", Items: items}
}
