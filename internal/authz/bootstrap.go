package authz

import "fmt"

// RoleSeed builtin role definition
type RoleSeed struct {
	Role     string
	Policies []Policy
}

// BuiltinRoleSeeds builtin role matrix. Admins hold the whole backoffice,
// editors manage content but never accounts or site configuration.
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: "admin",
			Policies: []Policy{
				{Object: "/admin/*", Action: "*"},
			},
		},
		{
			Role: "editor",
			Policies: []Policy{
				{Object: "/admin/news", Action: "*"},
				{Object: "/admin/news/:id", Action: "*"},
				{Object: "/admin/announcements", Action: "*"},
				{Object: "/admin/announcements/:id", Action: "*"},
				{Object: "/admin/downloads", Action: "*"},
				{Object: "/admin/downloads/:id", Action: "*"},
				{Object: "/admin/events", Action: "*"},
				{Object: "/admin/events/:id", Action: "*"},
				{Object: "/admin/static-content", Action: "*"},
				{Object: "/admin/static-content/:key", Action: "*"},
			},
		},
	}
}

// BootstrapBuiltinRoles seeds the builtin roles and their default policies.
// Existing rules are left alone so operators can extend them.
func (s *Service) BootstrapBuiltinRoles() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}

	for _, seed := range BuiltinRoleSeeds() {
		role, err := NormalizeRole(seed.Role)
		if err != nil {
			return err
		}

		for _, policy := range seed.Policies {
			action := NormalizeAction(policy.Action)
			if action == "" {
				return fmt.Errorf("builtin policy action is required")
			}
			if _, err := s.enforcer.AddPolicy(role, NormalizeObject(policy.Object), action); err != nil {
				return fmt.Errorf("add builtin policy failed: %w", err)
			}
		}
	}

	return nil
}
