package upstream

import "context"

// CategoryInput carries the writable category fields.
type CategoryInput struct {
	Name  string
	Type  string
	Image *FormFile
}

func (in CategoryInput) fields() map[string]string {
	return map[string]string{
		"inventoryCategoryName": in.Name,
		"inventoryType":         in.Type,
	}
}

// CreateCategory creates a category. The request is multipart because the
// backend accepts an optional category image alongside the fields.
func (c *Client) CreateCategory(ctx context.Context, in CategoryInput) error {
	return c.doMultipart(ctx, "POST", "/inventory/category/create", in.fields(), in.Image, nil)
}

// Categories lists categories visible to a role.
func (c *Client) Categories(ctx context.Context, role string) ([]Category, error) {
	var envelope categoriesEnvelope
	if err := c.do(ctx, "GET", "/inventory/category/filter/"+role, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Categories, nil
}

// Category fetches one category by ID.
func (c *Client) Category(ctx context.Context, id string) (*Category, error) {
	var envelope categoryEnvelope
	if err := c.do(ctx, "GET", "/inventory/category/get/"+id, nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Category, nil
}

// UpdateCategory updates a category's fields.
func (c *Client) UpdateCategory(ctx context.Context, id string, in CategoryInput) error {
	return c.doMultipart(ctx, "PUT", "/inventory/category/update/"+id, in.fields(), in.Image, nil)
}

// SetCategoryStatus toggles a category between Active and Inactive.
func (c *Client) SetCategoryStatus(ctx context.Context, id, status string) error {
	return c.do(ctx, "PUT", "/inventory/category/status/"+id, map[string]string{"status": status}, nil)
}
