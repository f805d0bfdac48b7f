// Package panes contributes one command per system settings panel,
// enumerated from desktop entries in the Settings category.
package panes

import (
	"bufio"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"palette/internal/extension"
)

const identifier = "com.palette.syspanes"

// Some panels are not useful from a launcher, or duplicate what the
// desktop already surfaces better.
var skip = map[string]bool{
	"Advanced Network Configuration": true,
	"Panel":                          true,
}

// Pane is one launchable settings panel.
type Pane struct {
	// Name is the display name from the desktop entry.
	Name string
	// ID is the desktop file basename without extension, what
	// gtk-launch takes.
	ID string
}

// Opener launches a settings panel. Swapped out in tests.
type Opener func(pane Pane) error

func execOpener(pane Pane) error {
	return exec.Command("gtk-launch", pane.ID).Start()
}

// Extension is the system settings provider. The desktop entry scan
// runs once at construction, like the application scan does.
type Extension struct {
	panes []Pane
	open  Opener
	scan  func() []Pane
}

// New creates the extension and performs the initial scan.
func New() *Extension {
	e := &Extension{
		open: execOpener,
		scan: scanPanes,
	}
	e.panes = e.scan()
	return e
}

func (e *Extension) Identifier() string { return identifier }
func (e *Extension) Name() string       { return "System Settings" }

func (e *Extension) Commands() []extension.Command {
	commands := make([]extension.Command, 0, len(e.panes))
	for _, pane := range e.panes {
		pane := pane
		commands = append(commands, extension.Command{
			ID:       extension.CommandID(identifier, pane.Name),
			Title:    "System: " + pane.Name,
			Subtitle: "Open System Settings",
			Icon:     "⚙",
			Action: func() extension.ActionResult {
				if err := e.open(pane); err != nil {
					log.Printf("panes: failed to open %s: %v", pane.ID, err)
				}
				return extension.Done()
			},
		})
	}
	return commands
}

func (e *Extension) SettingsView() extension.ViewBuilder { return nil }

// scanPanes enumerates settings panels from the standard desktop entry
// directories, first hit per name winning, sorted by name.
func scanPanes() []Pane {
	dirs := []string{"/usr/share/applications", "/usr/local/share/applications"}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".local", "share", "applications"))
	}

	seen := make(map[string]bool)
	var panes []Pane

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !strings.HasSuffix(entry.Name(), ".desktop") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
			if err != nil {
				continue
			}
			pane, ok := parseDesktopEntry(strings.TrimSuffix(entry.Name(), ".desktop"), string(data))
			if !ok || seen[pane.Name] || skip[pane.Name] {
				continue
			}
			seen[pane.Name] = true
			panes = append(panes, pane)
		}
	}

	sort.Slice(panes, func(i, j int) bool { return panes[i].Name < panes[j].Name })
	return panes
}

// parseDesktopEntry reads the [Desktop Entry] section of a desktop
// file and reports whether it is a visible Settings panel.
func parseDesktopEntry(id, content string) (Pane, bool) {
	var name string
	isSettings := false
	inEntry := false

	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "[Desktop Entry]":
			inEntry = true
			continue
		case strings.HasPrefix(line, "["):
			inEntry = false
			continue
		}
		if !inEntry {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		switch key {
		case "Name":
			if name == "" {
				name = value
			}
		case "Categories":
			for _, cat := range strings.Split(value, ";") {
				if cat == "Settings" {
					isSettings = true
				}
			}
		case "NoDisplay", "Hidden":
			if value == "true" {
				return Pane{}, false
			}
		}
	}

	if !isSettings || name == "" {
		return Pane{}, false
	}
	return Pane{Name: name, ID: id}, true
}
