package models

import (
	"time"

	"github.com/google/uuid"
)

// Capability names an action an identity may be allowed to perform.
type Capability string

const (
	CapModerate    Capability = "moderate"     // approve or reject images, remove any comment
	CapManageUsers Capability = "manage_users" // list accounts
)

var roleCapabilities = map[Role][]Capability{
	RoleAdmin: {CapModerate, CapManageUsers},
	RoleUser:  nil,
}

// Identity is the authenticated caller attached to a request.
type Identity struct {
	UserID    uuid.UUID
	Role      Role
	TokenID   string    // jti of the presented token
	ExpiresAt time.Time // expiry of the presented token
}

// Can reports whether the identity holds the capability.
func (i Identity) Can(c Capability) bool {
	for _, granted := range roleCapabilities[i.Role] {
		if granted == c {
			return true
		}
	}
	return false
}
