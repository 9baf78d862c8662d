package roles

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    StoreRole
		wantErr bool
	}{
		{"Warehouse", Warehouse, false},
		{"Boutique", Boutique, false},
		{"Cafe", Cafe, false},
		{"Kitchen", Kitchen, false},
		{"warehouse", "", true},
		{"Admin", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromSubRole(t *testing.T) {
	tests := []struct {
		in   string
		want StoreRole
		ok   bool
	}{
		{"WarehouseManager", Warehouse, true},
		{"BoutiqueWarehouse", Boutique, true},
		{"CafeWarehouse", Cafe, true},
		{"RestaurantWarehouse", Kitchen, true},
		{"StoreManager", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := FromSubRole(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("FromSubRole(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestConfigFor(t *testing.T) {
	// Roles with a store directory must also require a store choice.
	for _, role := range All {
		cfg := ConfigFor(role)
		if cfg.SentTo == "" {
			t.Errorf("ConfigFor(%v) has empty SentTo", role)
		}
		if cfg.RequiresStore && cfg.OwnersPath == "" {
			t.Errorf("ConfigFor(%v) requires a store but has no directory path", role)
		}
	}

	// Unknown roles fall back to the warehouse configuration.
	fallback := ConfigFor(StoreRole("Unknown"))
	if fallback != ConfigFor(Warehouse) {
		t.Errorf("unknown role config = %+v, want warehouse config", fallback)
	}
}
