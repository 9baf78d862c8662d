// Package roles defines the closed set of warehouse store roles and their
// per-role configuration. Role-specific behavior (dispatch destination,
// required fields, directory lookups) is looked up from a table here instead
// of being branched on inline at every call site.
package roles

import "fmt"

// StoreRole is the warehouse category context that scopes which products,
// categories and units are visible and which dispatch fields are required.
type StoreRole string

const (
	Warehouse StoreRole = "Warehouse"
	Boutique  StoreRole = "Boutique"
	Cafe      StoreRole = "Cafe"
	Kitchen   StoreRole = "Kitchen"
)

// All lists every valid store role.
var All = []StoreRole{Warehouse, Boutique, Cafe, Kitchen}

// Valid reports whether r is one of the known store roles.
func (r StoreRole) Valid() bool {
	switch r {
	case Warehouse, Boutique, Cafe, Kitchen:
		return true
	}
	return false
}

func (r StoreRole) String() string {
	return string(r)
}

// Parse converts a raw role string to a StoreRole.
func Parse(s string) (StoreRole, error) {
	r := StoreRole(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown store role %q", s)
	}
	return r, nil
}

// Config holds role-specific dispatch configuration.
type Config struct {
	// SentTo is the destination label stamped on dispatch orders.
	SentTo string

	// RequiresStore indicates a concrete destination store must be chosen
	// before a dispatch batch may be submitted.
	RequiresStore bool

	// OwnersPath is the upstream directory endpoint listing destination
	// stores for this role. Empty when the role has no store directory.
	OwnersPath string
}

var configs = map[StoreRole]Config{
	Warehouse: {SentTo: "Kitchen"},
	Boutique:  {SentTo: "Boutique", RequiresStore: true, OwnersPath: "/boutique/owners"},
	Cafe:      {SentTo: "Cafe", RequiresStore: true, OwnersPath: "/cafe/owners"},
	Kitchen:   {SentTo: "Kitchen"},
}

// ConfigFor returns the dispatch configuration for a role.
// Unknown roles fall back to the generic warehouse configuration.
func ConfigFor(r StoreRole) Config {
	if cfg, ok := configs[r]; ok {
		return cfg
	}
	return configs[Warehouse]
}

// subRoles maps upstream account sub-roles to console store roles.
// Any sub-role outside this table is not allowed into the console.
var subRoles = map[string]StoreRole{
	"WarehouseManager":    Warehouse,
	"BoutiqueWarehouse":   Boutique,
	"CafeWarehouse":       Cafe,
	"RestaurantWarehouse": Kitchen,
}

// FromSubRole resolves an upstream sub-role to a store role.
func FromSubRole(subRole string) (StoreRole, bool) {
	r, ok := subRoles[subRole]
	return r, ok
}
