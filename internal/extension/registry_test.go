package extension

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExtension struct {
	id       string
	name     string
	commands []Command
}

func (f *fakeExtension) Identifier() string       { return f.id }
func (f *fakeExtension) Name() string             { return f.name }
func (f *fakeExtension) Commands() []Command      { return f.commands }
func (f *fakeExtension) SettingsView() ViewBuilder { return nil }

func TestRegistryFlattensInRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	r.Register(&fakeExtension{id: "a", commands: []Command{
		{ID: "a.one", Title: "one"},
		{ID: "a.two", Title: "two"},
	}})
	r.Register(&fakeExtension{id: "b", commands: []Command{
		{ID: "b.three", Title: "three"},
	}})

	cmds := r.AllCommands()
	ids := make([]string, len(cmds))
	for i, c := range cmds {
		ids[i] = c.ID
	}
	assert.Equal(t, []string{"a.one", "a.two", "b.three"}, ids)
}

func TestRegistryRejectsDuplicateIdentifier(t *testing.T) {
	r := NewRegistry()
	r.Register(&fakeExtension{id: "dup", commands: []Command{{ID: "dup.first"}}})
	r.Register(&fakeExtension{id: "dup", commands: []Command{{ID: "dup.second"}}})

	cmds := r.AllCommands()
	assert.Len(t, cmds, 1)
	assert.Equal(t, "dup.first", cmds[0].ID)
}

func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register(&fakeExtension{id: "keep", commands: []Command{{ID: "keep.cmd"}}})
	r.Register(&fakeExtension{id: "drop", commands: []Command{{ID: "drop.cmd"}}})

	r.Unregister("drop")

	cmds := r.AllCommands()
	assert.Len(t, cmds, 1)
	assert.Equal(t, "keep.cmd", cmds[0].ID)
}

func TestRegistryPullModelRecomputes(t *testing.T) {
	ext := &fakeExtension{id: "dyn"}
	r := NewRegistry()
	r.Register(ext)

	assert.Empty(t, r.AllCommands())

	ext.commands = []Command{{ID: "dyn.new"}}
	assert.Len(t, r.AllCommands(), 1, "AllCommands must re-query extensions on every call")
}

func TestCommandID(t *testing.T) {
	tests := []struct {
		extID string
		title string
		want  string
	}{
		{"com.palette.window", "Window: Left Half", "com.palette.window.Window.Left.Half"},
		{"com.palette.apps", "firefox", "com.palette.apps.firefox"},
		{"ext", "a-b c", "ext.a.b.c"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CommandID(tt.extID, tt.title))
	}
}

func TestCommandIDStableAcrossCalls(t *testing.T) {
	first := CommandID("com.palette.clipboard", "Clipboard History")
	second := CommandID("com.palette.clipboard", "Clipboard History")
	assert.Equal(t, first, second)
}
