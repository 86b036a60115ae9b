package authz

import "fmt"

// Action is one of the four grant columns of the permission matrix. It is a
// closed set: anything outside view/add/edit/del is rejected at the boundary
// instead of being dispatched on caller-supplied strings.
type Action string

const (
	ActionView   Action = "view"
	ActionAdd    Action = "add"
	ActionEdit   Action = "edit"
	ActionDelete Action = "del"
)

// ParseAction converts a raw string into an Action, rejecting unknown values.
func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionView, ActionAdd, ActionEdit, ActionDelete:
		return a, nil
	default:
		return "", fmt.Errorf("unknown action %q", s)
	}
}
