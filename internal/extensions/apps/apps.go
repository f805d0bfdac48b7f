// Package apps contributes one launch command per application found on
// the user's PATH.
package apps

import (
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"palette/internal/extension"
)

const identifier = "com.palette.apps"

// Application is one launchable executable.
type Application struct {
	Name string
	Path string
}

// Launcher starts an application. Swapped out in tests.
type Launcher func(app Application) error

func execLauncher(app Application) error {
	cmd := exec.Command(app.Path)
	return cmd.Start()
}

// Extension is the application-launcher provider. The PATH scan runs
// once at construction; Refresh re-scans on demand. Commands are still
// produced fresh on every Commands call, per the registry's pull
// model.
type Extension struct {
	apps   []Application
	launch Launcher
	scan   func() []Application
}

// New creates the extension and performs the initial scan.
func New() *Extension {
	e := &Extension{
		launch: execLauncher,
		scan:   scanPath,
	}
	e.apps = e.scan()
	return e
}

func (e *Extension) Identifier() string { return identifier }
func (e *Extension) Name() string       { return "Applications" }

// Refresh re-scans PATH.
func (e *Extension) Refresh() {
	e.apps = e.scan()
}

func (e *Extension) Commands() []extension.Command {
	commands := make([]extension.Command, 0, len(e.apps))
	for _, app := range e.apps {
		app := app
		commands = append(commands, extension.Command{
			ID:       extension.CommandID(identifier, app.Name),
			Title:    app.Name,
			Subtitle: app.Path,
			Action: func() extension.ActionResult {
				log.Printf("apps: launching %s", app.Path)
				if err := e.launch(app); err != nil {
					log.Printf("apps: failed to launch %s: %v", app.Path, err)
				}
				return extension.Done()
			},
		})
	}
	return commands
}

func (e *Extension) SettingsView() extension.ViewBuilder { return nil }

// scanPath enumerates executables across $PATH, first hit per name
// winning like shell resolution does.
func scanPath() []Application {
	seen := make(map[string]bool)
	var apps []Application

	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == "" {
			continue
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			name := entry.Name()
			if seen[name] || strings.HasPrefix(name, ".") {
				continue
			}
			info, err := entry.Info()
			if err != nil || info.IsDir() || info.Mode()&0111 == 0 {
				continue
			}
			seen[name] = true
			apps = append(apps, Application{
				Name: name,
				Path: filepath.Join(dir, name),
			})
		}
	}

	sort.Slice(apps, func(i, j int) bool { return apps[i].Name < apps[j].Name })
	return apps
}
