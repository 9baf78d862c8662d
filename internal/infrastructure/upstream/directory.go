package upstream

import "context"

// BoutiqueOwners lists the boutique stores a dispatch can target.
func (c *Client) BoutiqueOwners(ctx context.Context) ([]StoreOwner, error) {
	var envelope boutiquesEnvelope
	if err := c.do(ctx, "GET", "/boutique/owners", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Boutiques, nil
}

// CafeOwners lists the cafe stores a dispatch can target.
func (c *Client) CafeOwners(ctx context.Context) ([]StoreOwner, error) {
	var envelope cafesEnvelope
	if err := c.do(ctx, "GET", "/cafe/owners", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Cafes, nil
}

// StoreOwners lists the destination stores for a role's dispatch flow by its
// configured directory path. An empty path means the role dispatches to a
// fixed destination and needs no directory.
func (c *Client) StoreOwners(ctx context.Context, path string) ([]StoreOwner, error) {
	switch path {
	case "/boutique/owners":
		return c.BoutiqueOwners(ctx)
	case "/cafe/owners":
		return c.CafeOwners(ctx)
	case "":
		return nil, nil
	}
	var envelope boutiquesEnvelope
	if err := c.do(ctx, "GET", path, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Boutiques, nil
}
