package upstream

import "context"

// UnitInput carries the writable unit fields.
type UnitInput struct {
	Name string `json:"inventoryUnitName"`
	Type string `json:"inventoryUnitType,omitempty"`
}

// CreateUnit creates a measurement unit.
func (c *Client) CreateUnit(ctx context.Context, in UnitInput) error {
	return c.do(ctx, "POST", "/inventory/unit/add", in, nil)
}

// Units lists units visible to a role.
func (c *Client) Units(ctx context.Context, role string) ([]Unit, error) {
	var envelope unitsEnvelope
	if err := c.do(ctx, "GET", "/inventory/unit/filter/get/"+role, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Units, nil
}

// Unit fetches one unit by ID.
func (c *Client) Unit(ctx context.Context, id string) (*Unit, error) {
	var envelope unitEnvelope
	if err := c.do(ctx, "GET", "/inventory/unit/get/"+id, nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Unit, nil
}

// UpdateUnit updates a unit's fields.
func (c *Client) UpdateUnit(ctx context.Context, id string, in UnitInput) error {
	return c.do(ctx, "PUT", "/inventory/unit/update/"+id, in, nil)
}

// SetUnitStatus toggles a unit between Active and Inactive.
func (c *Client) SetUnitStatus(ctx context.Context, id, status string) error {
	return c.do(ctx, "PUT", "/inventory/unit/status/"+id, map[string]string{"status": status}, nil)
}
