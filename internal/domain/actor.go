package domain

import "github.com/google/uuid"

type Role string

const (
	RoleVictim    Role = "victim"
	RoleVolunteer Role = "volunteer"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleVictim, RoleVolunteer, RoleAdmin:
		return true
	}
	return false
}

// Actor is the acting identity as delivered by the identity collaborator.
// The core trusts id and role once the gateway has populated them.
type Actor struct {
	ID   uuid.UUID `json:"id"`
	Role Role      `json:"role"`
}

func (a Actor) Known() bool {
	return a.ID != uuid.Nil && a.Role.Valid()
}
