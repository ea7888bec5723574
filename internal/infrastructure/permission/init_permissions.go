package permission

import (
	"fmt"
	"slices"
)

var adminPolicies = [][]string{
	{RoleAdmin, ResourceAdminConsole, ActionRead},
	{RoleAdmin, ResourceReconcile, ActionRun},
	{RoleAdmin, ResourceReconcile, ActionRead},
}

// SyncAdmins installs the admin policies and makes the admin role held by
// exactly the given emails. Emails removed from configuration lose the role.
func (e *Enforcer) SyncAdmins(emails []string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, p := range adminPolicies {
		if _, err := e.enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", p[0], p[1], p[2], err)
		}
	}

	wanted := make([]string, 0, len(emails))
	for _, email := range emails {
		if s := subject(email); s != "" {
			wanted = append(wanted, s)
		}
	}

	current, err := e.enforcer.GetUsersForRole(RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to list admins: %w", err)
	}
	for _, u := range current {
		if !slices.Contains(wanted, u) {
			if _, err := e.enforcer.DeleteRoleForUser(u, RoleAdmin); err != nil {
				return fmt.Errorf("failed to revoke admin role: %w", err)
			}
		}
	}
	for _, u := range wanted {
		if _, err := e.enforcer.AddRoleForUser(u, RoleAdmin); err != nil {
			return fmt.Errorf("failed to grant admin role: %w", err)
		}
	}

	e.logger.Infow("admin roles synced", "admins", len(wanted))
	return nil
}
