package platform

import (
	"context"
	"fmt"
)

// Workspace represents a workspace inside a domaine
type Workspace struct {
	ID            int64   `json:"workspace_id"`
	WorkspaceName string  `json:"workspace_name"`
	DomaineID     int64   `json:"domaine_id"`
	SoldeTotal    float64 `json:"solde_total"`
	Active        bool    `json:"active"`
	Deleted       bool    `json:"deleted"`
}

// WorkspaceRequest is the create/update payload for a workspace
type WorkspaceRequest struct {
	WorkspaceName string  `json:"workspace_name"`
	DomaineID     int64   `json:"domaine_id"`
	SoldeTotal    float64 `json:"solde_total"`
}

// ListWorkspaces retrieves workspaces, optionally filtered by domaine.
// Pass 0 for no filter.
func (c *Client) ListWorkspaces(ctx context.Context, domaineID int64) ([]Workspace, error) {
	path := "/workspaces"
	if domaineID > 0 {
		path = fmt.Sprintf("/workspaces?domaine_id=%d", domaineID)
	}
	page, err := getList[Workspace](ctx, c, path, "workspaces")
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// CreateWorkspace creates a new workspace
func (c *Client) CreateWorkspace(ctx context.Context, req WorkspaceRequest) (*Workspace, error) {
	var ws Workspace
	if err := c.Post(ctx, "/workspaces", req, &ws); err != nil {
		return nil, err
	}
	return &ws, nil
}

// UpdateWorkspace updates an existing workspace
func (c *Client) UpdateWorkspace(ctx context.Context, id int64, req WorkspaceRequest) (*Workspace, error) {
	var ws Workspace
	if err := c.Put(ctx, fmt.Sprintf("/workspaces/%d", id), req, &ws); err != nil {
		return nil, err
	}
	return &ws, nil
}

// ToggleWorkspaceDeleted flips a workspace's soft-delete flag
func (c *Client) ToggleWorkspaceDeleted(ctx context.Context, id int64) error {
	return c.Delete(ctx, fmt.Sprintf("/workspaces/%d", id))
}

// ActivateWorkspace activates a workspace
func (c *Client) ActivateWorkspace(ctx context.Context, id int64) error {
	return c.Patch(ctx, fmt.Sprintf("/workspaces/activate/%d", id), nil, nil)
}
