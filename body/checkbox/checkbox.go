// Package checkbox models the selection checkbox widget and the host that
// mounts its instances.
package checkbox

import (
	"github.com/google/uuid"
)

// InstanceKey identifies which instance a checkbox slot should hold. When the
// key of a slot changes, the host destroys the old instance and mounts a new
// one instead of reusing it.
type InstanceKey struct {
	Page int
}

// Props are the inputs of one checkbox as produced by a render pass.
type Props struct {
	Checked  bool
	Disabled bool
	Key      InstanceKey

	// OnUpdateChecked receives the requested new state.
	OnUpdateChecked func(checked bool) `hash:"ignore"`
}

// Glyph is the textual form of the checkbox.
func (p Props) Glyph() string {
	switch {
	case p.Disabled && p.Checked:
		return "(x)"
	case p.Disabled:
		return "( )"
	case p.Checked:
		return "[x]"
	default:
		return "[ ]"
	}
}

// Instance is a mounted checkbox. It carries the transient state a remount
// resets.
type Instance struct {
	ID uuid.UUID

	key       InstanceKey
	props     Props
	focused   bool
	pressed   bool
	destroyed bool
}

func newInstance(props Props) *Instance {
	return &Instance{
		ID:    uuid.New(),
		key:   props.Key,
		props: props,
	}
}

func (i *Instance) Key() InstanceKey { return i.key }
func (i *Instance) Props() Props     { return i.props }
func (i *Instance) Checked() bool    { return i.props.Checked }
func (i *Instance) Disabled() bool   { return i.props.Disabled }
func (i *Instance) Focused() bool    { return i.focused }
func (i *Instance) Pressed() bool    { return i.pressed }
func (i *Instance) Destroyed() bool  { return i.destroyed }

func (i *Instance) Focus() {
	if !i.destroyed {
		i.focused = true
	}
}

func (i *Instance) Blur() {
	i.focused = false
}

// Toggle emits the changed-value event with the negation of the current
// props. The checked state itself only changes on the next update, once the
// owner of the selection has accepted the transition. Disabled and destroyed
// instances emit nothing.
func (i *Instance) Toggle() bool {
	if i.destroyed || i.props.Disabled {
		return false
	}
	i.pressed = true
	if i.props.OnUpdateChecked != nil {
		i.props.OnUpdateChecked(!i.props.Checked)
	}
	return true
}

func (i *Instance) update(props Props) {
	i.props = props
	i.pressed = false
}

func (i *Instance) destroy() {
	i.destroyed = true
	i.focused = false
	i.pressed = false
	i.props.OnUpdateChecked = nil
}
