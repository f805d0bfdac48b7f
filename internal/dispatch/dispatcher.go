package dispatch

import (
	"log"

	"palette/internal/extension"
)

// Dispatcher owns the panel state machine and the navigable view
// stack. Executing a command either pushes a new searchable sub-view or
// performs its side effect and hides the panel; Cancel pops back
// through the stack.
//
// The stack holds view builders, not built views: back navigation
// re-invokes the builder so the restored view shows fresh content.
//
// Provider actions are not sandboxed. A panicking action is the
// provider's bug; providers are expected to degrade into placeholder
// items or views instead of panicking, and the dispatcher only
// guarantees that its own state stays consistent (a valid current view
// or Hidden).
type Dispatcher struct {
	state PanelState
	stack []extension.ViewBuilder

	current    extension.ViewSpec
	hasCurrent bool

	root  extension.ViewBuilder
	focus FocusHook
	usage UsageRecorder

	onViewChanged func(extension.ViewSpec)
	onHidden      func()
}

// NewDispatcher creates a dispatcher whose default view is built by
// root. focus and usage may not be nil; pass NoopFocus or a no-op
// recorder when the integration is absent.
func NewDispatcher(root extension.ViewBuilder, focus FocusHook, usage UsageRecorder) *Dispatcher {
	return &Dispatcher{
		state: Hidden,
		root:  root,
		focus: focus,
		usage: usage,
	}
}

// SetOnViewChanged registers the presentation callback invoked whenever
// the current view changes while Showing.
func (d *Dispatcher) SetOnViewChanged(fn func(extension.ViewSpec)) {
	d.onViewChanged = fn
}

// SetOnHidden registers the presentation callback for the panel hiding.
func (d *Dispatcher) SetOnHidden(fn func()) {
	d.onHidden = fn
}

// State returns the current panel state.
func (d *Dispatcher) State() PanelState {
	return d.state
}

// Depth returns the view stack depth.
func (d *Dispatcher) Depth() int {
	return len(d.stack)
}

// CurrentView returns the view being shown, if any.
func (d *Dispatcher) CurrentView() (extension.ViewSpec, bool) {
	return d.current, d.hasCurrent
}

// RunCommand records the command's usage and invokes its action. An
// action returning a view pushes it onto the stack and shows the
// panel; an action returning Done means the side effect already
// happened, so the panel hides. The stack is deliberately left alone
// on the side-effect path: only Hide and Toggle clear it.
func (d *Dispatcher) RunCommand(cmd extension.Command) {
	log.Printf("Dispatcher: running command %q", cmd.ID)
	if cmd.ID != "" {
		d.usage.RecordUsage(cmd.ID)
	}
	if cmd.Action == nil {
		return
	}
	d.applyResult(cmd.Action())
}

// ActivateItem is RunCommand for sub-view items. Invalid and inert
// items are ignored; items carrying a command id record usage against
// it.
func (d *Dispatcher) ActivateItem(item extension.Item) {
	if item.Invalid || item.OnActivate == nil {
		return
	}
	if item.CommandID != "" {
		d.usage.RecordUsage(item.CommandID)
	}
	d.applyResult(item.OnActivate())
}

// Cancel pops one level of the view stack (Escape / back). With a
// previous view left on the stack its builder is re-invoked and the
// panel stays visible; popping the last view hides the panel.
func (d *Dispatcher) Cancel() {
	if d.state == Hidden {
		return
	}
	if len(d.stack) > 0 {
		d.stack = d.stack[:len(d.stack)-1]
	}
	if len(d.stack) > 0 {
		d.setCurrent(d.stack[len(d.stack)-1])
		return
	}
	d.Hide()
}

// Toggle flips visibility (global hotkey). Showing hides; Hidden
// resets to a fresh one-element stack holding the default view.
func (d *Dispatcher) Toggle() {
	if d.state == Showing {
		d.Hide()
		return
	}
	d.stack = []extension.ViewBuilder{d.root}
	d.show()
	d.setCurrent(d.root)
}

// Hide unconditionally clears the view stack, hides the panel and
// restores focus to whatever was active before the panel appeared.
func (d *Dispatcher) Hide() {
	d.stack = nil
	d.current = extension.ViewSpec{}
	d.hasCurrent = false
	d.state = Hidden
	d.focus.Restore()
	if d.onHidden != nil {
		d.onHidden()
	}
}

// FocusLost handles the panel losing key status to an external event;
// it behaves exactly like Hide.
func (d *Dispatcher) FocusLost() {
	d.Hide()
}

func (d *Dispatcher) applyResult(res extension.ActionResult) {
	if builder, ok := res.View(); ok {
		d.stack = append(d.stack, builder)
		d.show()
		d.setCurrent(builder)
		return
	}
	// Side effect performed: hide the panel but leave the stack as is
	d.state = Hidden
	d.current = extension.ViewSpec{}
	d.hasCurrent = false
	d.focus.Restore()
	if d.onHidden != nil {
		d.onHidden()
	}
}

// show transitions Hidden -> Showing, capturing the externally focused
// application first so Hide can restore it.
func (d *Dispatcher) show() {
	if d.state == Showing {
		return
	}
	d.focus.Capture()
	d.state = Showing
}

func (d *Dispatcher) setCurrent(builder extension.ViewBuilder) {
	d.current = builder()
	d.hasCurrent = true
	if d.onViewChanged != nil {
		d.onViewChanged(d.current)
	}
}
