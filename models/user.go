package models

// Role defines the closed set of roles in the system
type Role string

const (
	RoleCustomer Role = "customer"
	RoleCourier  Role = "courier"
	RoleAdmin    Role = "admin"
)

// Capability names an operation a role may or may not perform.
type Capability string

const (
	CapManageCatalog Capability = "manage_catalog"
	CapListUsers     Capability = "list_users"
	CapDeliverOrders Capability = "deliver_orders"
)

var roleCapabilities = map[Role]map[Capability]bool{
	RoleAdmin: {
		CapManageCatalog: true,
		CapListUsers:     true,
	},
	RoleCourier: {
		CapDeliverOrders: true,
	},
	RoleCustomer: {},
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleCapabilities[r]
	return ok
}

// Can reports whether the role is allowed to perform the capability.
func (r Role) Can(c Capability) bool {
	return roleCapabilities[r][c]
}

type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"not null"`
	Role         Role   `json:"role" gorm:"not null;default:'customer'"`
	Address      string `json:"address,omitempty"`
}
