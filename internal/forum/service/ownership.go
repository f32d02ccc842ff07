package service

import (
	"fmt"

	"github.com/aussiebroadwan/forum/internal/forum/domain"
)

// Action is what the session wants to do with a resource.
type Action string

const (
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// AuthorizeOwnership decides whether the session's user may perform action
// on res. Edits are for the owner only; deletes are for the owner or an
// admin. Ownership is internal user id equality. It never loads data, the
// caller resolves res (and reports it missing) first.
func AuthorizeOwnership(session domain.Session, res domain.Resource, action Action) error {
	owner := session.UserID != 0 && res.OwnerID() == session.UserID

	switch action {
	case ActionEdit:
		if owner {
			return nil
		}
		return with(ErrNotOwner, fmt.Sprintf("Only the %[1]s owner can edit the %[1]s", res.Kind()))

	case ActionDelete:
		if owner || session.User.Role.IsAdmin() {
			return nil
		}
		return with(ErrNotOwner, fmt.Sprintf("Only the %[1]s owner or admin can delete the %[1]s", res.Kind()))

	default:
		return fmt.Errorf("service: unsupported action %q", action)
	}
}
