package platform

import (
	"context"
	"fmt"
)

// Domaine represents a tenant domain
type Domaine struct {
	ID                 int64   `json:"domaine_id"`
	DomaineName        string  `json:"domaine_name"`
	DomaineDescription string  `json:"domaine_description"`
	SoldeTotal         float64 `json:"solde_total"`
	Active             bool    `json:"active"`
	Deleted            bool    `json:"deleted"`
}

// DomaineRequest is the create/update payload for a domaine
type DomaineRequest struct {
	DomaineName        string  `json:"domaine_name"`
	DomaineDescription string  `json:"domaine_description"`
	SoldeTotal         float64 `json:"solde_total"`
}

// ListDomaines retrieves all domaines
func (c *Client) ListDomaines(ctx context.Context) ([]Domaine, error) {
	page, err := getList[Domaine](ctx, c, "/domaines", "domaines")
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// CreateDomaine creates a new domaine
func (c *Client) CreateDomaine(ctx context.Context, req DomaineRequest) (*Domaine, error) {
	var dom Domaine
	if err := c.Post(ctx, "/domaines", req, &dom); err != nil {
		return nil, err
	}
	return &dom, nil
}

// UpdateDomaine updates an existing domaine
func (c *Client) UpdateDomaine(ctx context.Context, id int64, req DomaineRequest) (*Domaine, error) {
	var dom Domaine
	if err := c.Put(ctx, fmt.Sprintf("/domaines/%d", id), req, &dom); err != nil {
		return nil, err
	}
	return &dom, nil
}

// ToggleDomaineDeleted flips a domaine's soft-delete flag
func (c *Client) ToggleDomaineDeleted(ctx context.Context, id int64) error {
	return c.Delete(ctx, fmt.Sprintf("/domaines/%d", id))
}

// ToggleDomaineActive flips a domaine's activation flag
func (c *Client) ToggleDomaineActive(ctx context.Context, id int64) error {
	return c.Patch(ctx, fmt.Sprintf("/domaines/active-desactive/%d", id), nil, nil)
}

// AssignSoldeToWorkspaces distributes tokens from a domaine's balance to its
// workspaces
func (c *Client) AssignSoldeToWorkspaces(ctx context.Context, domaineID int64, tokens float64, workspaceIDs []int64) error {
	body := map[string]interface{}{
		"domaine_id":   domaineID,
		"tokens":       tokens,
		"workspaceIds": workspaceIDs,
	}
	return c.Post(ctx, "/domaines/assign-solde-to-workspaces", body, nil)
}
