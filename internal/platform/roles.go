package platform

import (
	"context"
	"fmt"
)

// Role represents a platform role
type Role struct {
	ID       int64  `json:"role_id"`
	RoleName string `json:"role_name"`
	Deleted  bool   `json:"deleted"`
}

// Permission represents a permission that can be attached to roles
type Permission struct {
	ID             int64  `json:"permission_id"`
	PermissionName string `json:"permission_name"`
}

// RolePermissions is the permission set attached to one role
type RolePermissions struct {
	RoleID      int64        `json:"role_id"`
	Permissions []Permission `json:"permissions"`
}

// ListRoles retrieves all roles
func (c *Client) ListRoles(ctx context.Context) ([]Role, error) {
	page, err := getList[Role](ctx, c, "/roles", "roles")
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// CreateRole creates a new role
func (c *Client) CreateRole(ctx context.Context, roleName string) (*Role, error) {
	body := map[string]string{"role_name": roleName}
	var role Role
	if err := c.Post(ctx, "/roles", body, &role); err != nil {
		return nil, err
	}
	return &role, nil
}

// ToggleRoleDeleted flips a role's soft-delete flag
func (c *Client) ToggleRoleDeleted(ctx context.Context, id int64) error {
	return c.Delete(ctx, fmt.Sprintf("/roles/%d", id))
}

// ListPermissions retrieves all permissions
func (c *Client) ListPermissions(ctx context.Context) ([]Permission, error) {
	page, err := getList[Permission](ctx, c, "/roles/permissions", "permissions")
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// ListRolePermissions retrieves the permissions assigned to one role
func (c *Client) ListRolePermissions(ctx context.Context, roleID int64) (*RolePermissions, error) {
	var rp RolePermissions
	if err := c.Get(ctx, fmt.Sprintf("/roles/permissions/%d", roleID), &rp); err != nil {
		return nil, err
	}
	return &rp, nil
}

// CreatePermission creates a new permission
func (c *Client) CreatePermission(ctx context.Context, permissionName string) (*Permission, error) {
	body := map[string]string{"permission_name": permissionName}
	var perm Permission
	if err := c.Post(ctx, "/roles/permissions", body, &perm); err != nil {
		return nil, err
	}
	return &perm, nil
}

// DeletePermission removes a permission
func (c *Client) DeletePermission(ctx context.Context, permissionID int64) error {
	return c.Delete(ctx, fmt.Sprintf("/roles/permissions/%d", permissionID))
}

// AssignPermissions attaches a set of permissions to a role
func (c *Client) AssignPermissions(ctx context.Context, roleID int64, permissionIDs []int64) error {
	body := map[string]interface{}{
		"roleId":        roleID,
		"permissionIds": permissionIDs,
	}
	return c.Post(ctx, "/roles/assignPermissions", body, nil)
}

// UnassignPermission detaches a single permission from a role
func (c *Client) UnassignPermission(ctx context.Context, roleID, permissionID int64) error {
	body := map[string]int64{
		"roleId":       roleID,
		"permissionId": permissionID,
	}
	return c.Post(ctx, "/roles/unassign-permission", body, nil)
}
