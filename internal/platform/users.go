package platform

import (
	"context"
	"fmt"
)

// User represents a platform user as managed by the admin screens
type User struct {
	ID         int64   `json:"user_id"`
	FullName   string  `json:"full_name"`
	Email      string  `json:"email"`
	Role       string  `json:"role,omitempty"`
	Age        int     `json:"age,omitempty"`
	DomaineID  int64   `json:"domaine_id,omitempty"`
	PackageID  int64   `json:"package_id,omitempty"`
	SoldeTotal float64 `json:"solde_total"`
	Active     bool    `json:"active"`
	Deleted    bool    `json:"deleted"`
}

// UserRequest is the create/update payload for a user
type UserRequest struct {
	FullName   string  `json:"full_name"`
	Age        int     `json:"age,omitempty"`
	DomaineID  int64   `json:"domaine_id,omitempty"`
	PackageID  int64   `json:"package_id,omitempty"`
	SoldeTotal float64 `json:"solde_total"`
	Email      string  `json:"email,omitempty"`
	Password   string  `json:"password,omitempty"`
}

// ListUsers retrieves all users
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	page, err := getList[User](ctx, c, "/users", "users")
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// CreateUser creates a new user
func (c *Client) CreateUser(ctx context.Context, req UserRequest) (*User, error) {
	var user User
	if err := c.Post(ctx, "/users", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates an existing user
func (c *Client) UpdateUser(ctx context.Context, id int64, req UserRequest) (*User, error) {
	var user User
	if err := c.Put(ctx, fmt.Sprintf("/users/%d", id), req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ToggleUserActive flips a user's activation flag
func (c *Client) ToggleUserActive(ctx context.Context, id int64) error {
	return c.Patch(ctx, fmt.Sprintf("/users/activeDesactiveUser/%d", id), nil, nil)
}

// ToggleUserDeleted flips a user's soft-delete flag. The endpoint is a
// toggle: calling it twice restores the original state.
func (c *Client) ToggleUserDeleted(ctx context.Context, id int64) error {
	return c.Delete(ctx, fmt.Sprintf("/users/%d", id))
}

// AssignRole assigns a role to a user
func (c *Client) AssignRole(ctx context.Context, userID, roleID int64) error {
	body := map[string]int64{
		"userId": userID,
		"roleId": roleID,
	}
	return c.Post(ctx, "/users/assignRole", body, nil)
}

// AssignPackageToUsers assigns a package to a set of users
func (c *Client) AssignPackageToUsers(ctx context.Context, packageID int64, userIDs []int64) error {
	body := map[string]interface{}{
		"packageId": packageID,
		"usersId":   userIDs,
	}
	return c.Post(ctx, "/users/assignPackageToUsers", body, nil)
}

// AssignDomaineToUsers assigns a domaine to a set of users
func (c *Client) AssignDomaineToUsers(ctx context.Context, domaineID int64, userIDs []int64) error {
	body := map[string]interface{}{
		"domaineId": domaineID,
		"usersId":   userIDs,
	}
	return c.Post(ctx, "/users/assign-domaine", body, nil)
}

// AssignWorkspaceToUsers assigns a workspace to a set of users
func (c *Client) AssignWorkspaceToUsers(ctx context.Context, workspaceID int64, userIDs []int64) error {
	body := map[string]interface{}{
		"workspaceID": workspaceID,
		"userID":      userIDs,
	}
	return c.Post(ctx, "/users/assignworkspacetouser", body, nil)
}
