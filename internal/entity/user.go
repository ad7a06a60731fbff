package entity

import (
	"github.com/gofrs/uuid/v5"
)

type User struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Role      UserRole
}

type UserRole struct {
	ID   uuid.UUID `json:"role_id"`
	Name string    `json:"role_name"`
}

const (
	RoleAdmin    = "admin"
	RoleMerchant = "merchant"
	RoleCustomer = "customer"
)
