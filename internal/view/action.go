package view

import "fmt"

// ActionKind enumerates the user interactions a view tree can emit.
type ActionKind int

const (
	// ActionNone is the zero value and is never dispatched.
	ActionNone ActionKind = iota
	// ActionStart leaves the start menu.
	ActionStart
	// ActionReset returns a finished quiz to the start menu.
	ActionReset
	// ActionSelect picks the option at Action.Option.
	ActionSelect
	// ActionInput replaces free-text input with Action.Value.
	ActionInput
	// ActionSubmit locks in an answer, or moves on once locked in.
	ActionSubmit
	// ActionOverride marks a rejected short answer as correct.
	ActionOverride
)

var actionNames = map[ActionKind]string{
	ActionNone:     "none",
	ActionStart:    "start",
	ActionReset:    "reset",
	ActionSelect:   "select",
	ActionInput:    "input",
	ActionSubmit:   "submit",
	ActionOverride: "override",
}

// String returns the wire name of the action kind.
func (k ActionKind) String() string {
	if name, ok := actionNames[k]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(k))
}

// MarshalText encodes the kind by name.
func (k ActionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name.
func (k *ActionKind) UnmarshalText(text []byte) error {
	for kind, name := range actionNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown action %q", string(text))
}

// Action is a serializable UI command bound to a node.
type Action struct {
	Kind   ActionKind `json:"kind"`
	Option int        `json:"option,omitempty"`
	Value  string     `json:"value,omitempty"`
}

// Dispatcher receives actions triggered by rendered elements.
type Dispatcher interface {
	Dispatch(Action)
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(Action)

// Dispatch calls f(action).
func (f DispatcherFunc) Dispatch(action Action) {
	f(action)
}

// On returns an action of the given kind for use in OnClick.
func On(kind ActionKind) *Action {
	return &Action{Kind: kind}
}

// SelectOption returns a select action for an option index.
func SelectOption(index int) *Action {
	return &Action{Kind: ActionSelect, Option: index}
}
