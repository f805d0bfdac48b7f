// Package helper bridges an external helper executable into the search
// surface. The helper is invoked once per query as `<path> <query>` and
// prints a JSON item list on stdout; its results depend on live
// external state, so this is the one provider using the external
// (per-query) sourcing mode.
package helper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os/exec"
	"time"

	"palette/internal/extension"
)

const identifier = "com.palette.helper"

// response is the helper's wire format.
type response struct {
	Items []item `json:"items"`
}

type item struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Arg      string `json:"arg"`
	Valid    bool   `json:"valid"`
	Type     string `json:"type"`
}

// Runner invokes the helper and returns its complete stdout. Swapped
// out in tests.
type Runner func(ctx context.Context, path string, arg string) ([]byte, error)

func execRunner(ctx context.Context, path string, arg string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, path, arg)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return nil, err
	}
	return stdout.Bytes(), nil
}

// Extension exposes the helper as a searchable sub-view.
type Extension struct {
	path    string
	timeout time.Duration
	run     Runner
}

// New creates the helper extension. An empty path leaves the extension
// registered but without commands.
func New(path string, timeout time.Duration) *Extension {
	return &Extension{
		path:    path,
		timeout: timeout,
		run:     execRunner,
	}
}

func (e *Extension) Identifier() string { return identifier }
func (e *Extension) Name() string       { return "Helper" }

func (e *Extension) Commands() []extension.Command {
	if e.path == "" {
		return nil
	}
	title := "Helper Search"
	return []extension.Command{{
		ID:       extension.CommandID(identifier, title),
		Title:    title,
		Subtitle: e.path,
		Action: func() extension.ActionResult {
			return extension.NavigateTo(func() extension.ViewSpec {
				return extension.ViewSpec{
					Title:  "Helper Search",
					Search: e.Search,
				}
			})
		},
	}}
}

func (e *Extension) SettingsView() extension.ViewBuilder {
	return func() extension.ViewSpec {
		return extension.ViewSpec{
			Title: "Helper Settings",
			Items: []extension.Item{
				{Title: "Executable", Subtitle: e.path, Invalid: true},
				{Title: "Timeout", Subtitle: e.timeout.String(), Invalid: true},
			},
		}
	}
}

// Search runs the helper for the query. It may block for up to the
// configured timeout and is therefore always called off the
// interactive loop. Failures never propagate: a helper error, timeout
// or malformed response degrades into a single visible error row, so
// the display layer always receives a defined item list.
func (e *Extension) Search(query string) []extension.Item {
	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()

	out, err := e.run(ctx, e.path, query)
	if err != nil {
		log.Printf("helper: %q failed for query %q: %v", e.path, query, err)
		return []extension.Item{errorItem(fmt.Sprintf("helper failed: %v", err))}
	}

	var resp response
	if err := json.Unmarshal(out, &resp); err != nil {
		log.Printf("helper: bad output from %q: %v", e.path, err)
		return []extension.Item{errorItem("helper produced unreadable output")}
	}

	items := make([]extension.Item, 0, len(resp.Items))
	for _, it := range resp.Items {
		arg := it.Arg
		items = append(items, extension.Item{
			Title:    it.Title,
			Subtitle: it.Subtitle,
			Invalid:  !it.Valid,
			OnActivate: func() extension.ActionResult {
				e.activate(arg)
				return extension.Done()
			},
		})
	}
	return items
}

// activate hands the chosen item's argument back to the helper,
// fire-and-forget, so the helper performs whatever side effect the
// item stands for.
func (e *Extension) activate(arg string) {
	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()
	if _, err := e.run(ctx, e.path, arg); err != nil {
		log.Printf("helper: activation %q failed: %v", arg, err)
	}
}

func errorItem(msg string) extension.Item {
	return extension.Item{
		Title:    "Helper search unavailable",
		Subtitle: msg,
		Invalid:  true,
	}
}
