// Package clipboard captures clipboard history into the store and
// exposes it as a browsable, re-copyable list.
package clipboard

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"

	"palette/internal/extension"
	"palette/internal/store"
)

const identifier = "com.palette.clipboard"

// History is the slice of the store the extension needs.
type History interface {
	AddClip(content string, at time.Time) error
	RecentClips(limit int) ([]store.Clip, error)
	TrimClips(max int) error
}

// Extension exposes clipboard history as a command. Reading and
// writing the system clipboard go through injectable funcs so tests
// never touch the real one.
type Extension struct {
	history  History
	maxItems int
	read     func() (string, error)
	write    func(string) error
}

// New creates the clipboard extension over the given history store.
func New(history History, maxItems int) *Extension {
	return &Extension{
		history:  history,
		maxItems: maxItems,
		read:     clipboard.ReadAll,
		write:    clipboard.WriteAll,
	}
}

func (e *Extension) Identifier() string { return identifier }
func (e *Extension) Name() string       { return "Clipboard" }

func (e *Extension) Commands() []extension.Command {
	title := "Clipboard History"
	return []extension.Command{{
		ID:       extension.CommandID(identifier, title),
		Title:    title,
		Subtitle: "Browse and re-copy recent clipboard entries",
		Icon:     "📋",
		Action: func() extension.ActionResult {
			return extension.NavigateTo(e.historyView)
		},
	}}
}

func (e *Extension) SettingsView() extension.ViewBuilder {
	return func() extension.ViewSpec {
		return extension.ViewSpec{
			Title: "Clipboard Settings",
			Items: []extension.Item{
				{Title: "Max Items", Subtitle: strconv.Itoa(e.maxItems), Invalid: true},
			},
		}
	}
}

// historyView rebuilds from the store on every invocation so back
// navigation shows entries captured while a sub-view was open.
func (e *Extension) historyView() extension.ViewSpec {
	clips, err := e.history.RecentClips(e.maxItems)
	if err != nil {
		log.Printf("clipboard: failed to load history: %v", err)
		return extension.ViewSpec{
			Title: "Clipboard History",
			Items: []extension.Item{{
				Title:    "Clipboard history unavailable",
				Subtitle: err.Error(),
				Invalid:  true,
			}},
		}
	}

	items := make([]extension.Item, 0, len(clips))
	for _, clip := range clips {
		content := clip.Content
		items = append(items, extension.Item{
			Title:    preview(content),
			Subtitle: clip.CopiedAt.Local().Format("Jan 2 15:04"),
			OnActivate: func() extension.ActionResult {
				if err := e.write(content); err != nil {
					log.Printf("clipboard: failed to copy: %v", err)
				}
				return extension.Done()
			},
		})
	}
	return extension.ViewSpec{Title: "Clipboard History", Items: items}
}

// preview reduces a clip to its first non-empty line for display.
func preview(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return content
}
