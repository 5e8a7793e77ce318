package platform

import (
	"context"
	"fmt"
)

// Package represents a subscription package
type Package struct {
	ID                 int64   `json:"package_id"`
	PackageName        string  `json:"package_name"`
	PackageDescription string  `json:"package_description"`
	NumberWorkspace    int     `json:"number_workspace"`
	NumberChatbot      int     `json:"number_chatbot"`
	NumberDomaine      int     `json:"number_domaine"`
	SoldeTotal         float64 `json:"solde_total"`
	Active             bool    `json:"active"`
	Deleted            bool    `json:"deleted"`
}

// PackageRequest is the create/update payload for a package
type PackageRequest struct {
	PackageName        string  `json:"package_name"`
	PackageDescription string  `json:"package_description"`
	NumberWorkspace    int     `json:"number_workspace"`
	NumberChatbot      int     `json:"number_chatbot"`
	NumberDomaine      int     `json:"number_domaine"`
	SoldeTotal         float64 `json:"solde_total"`
}

// ListPackages retrieves packages, optionally paginated. Page 0 requests the
// unpaginated collection.
func (c *Client) ListPackages(ctx context.Context, page, limit int) (*Page[Package], error) {
	path := "/packages"
	if page > 0 {
		path = fmt.Sprintf("/packages?page=%d&limit=%d", page, limit)
	}
	return getList[Package](ctx, c, path, "packages")
}

// CreatePackage creates a new package
func (c *Client) CreatePackage(ctx context.Context, req PackageRequest) (*Package, error) {
	var pkg Package
	if err := c.Post(ctx, "/packages", req, &pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

// UpdatePackage updates an existing package
func (c *Client) UpdatePackage(ctx context.Context, id int64, req PackageRequest) (*Package, error) {
	var pkg Package
	if err := c.Put(ctx, fmt.Sprintf("/packages/%d", id), req, &pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

// TogglePackageDeleted flips a package's soft-delete flag
func (c *Client) TogglePackageDeleted(ctx context.Context, id int64) error {
	return c.Delete(ctx, fmt.Sprintf("/packages/%d", id))
}

// TogglePackageActive flips a package's activation flag
func (c *Client) TogglePackageActive(ctx context.Context, id int64) error {
	return c.Patch(ctx, fmt.Sprintf("/packages/active-desactive/%d", id), nil, nil)
}
