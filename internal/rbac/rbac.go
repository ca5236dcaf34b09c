package rbac

import (
	"github.com/itsprakash91/flood-relief-connect/internal/domain"
)

type Capability string

const (
	CapCreateRequest       Capability = "create_request"
	CapViewOwnRequests     Capability = "view_own_requests"
	CapMakeDonation        Capability = "make_donation"
	CapAcceptRequests      Capability = "accept_requests"
	CapUpdateRequestStatus Capability = "update_request_status"
	CapViewNearbyRequests  Capability = "view_nearby_requests"
	CapManageUsers         Capability = "manage_users"
	CapManageDonations     Capability = "manage_donations"
	CapManageCamps         Capability = "manage_camps"
	CapViewDashboard       Capability = "view_dashboard"
	CapAdminOverride       Capability = "admin_override"
)

type roleGrant struct {
	can      []Capability
	inherits []domain.Role
}

// hierarchy is acyclic by construction: admin -> volunteer -> victim.
var hierarchy = map[domain.Role]roleGrant{
	domain.RoleVictim: {
		can: []Capability{CapCreateRequest, CapViewOwnRequests, CapMakeDonation},
	},
	domain.RoleVolunteer: {
		can:      []Capability{CapAcceptRequests, CapUpdateRequestStatus, CapViewNearbyRequests},
		inherits: []domain.Role{domain.RoleVictim},
	},
	domain.RoleAdmin: {
		can:      []Capability{CapManageUsers, CapManageDonations, CapManageCamps, CapViewDashboard, CapAdminOverride},
		inherits: []domain.Role{domain.RoleVolunteer},
	},
}

// effective holds the flattened capability set per role, resolved once at
// package init so runtime checks are a single map lookup.
var effective map[domain.Role]map[Capability]struct{}

func init() {
	effective = make(map[domain.Role]map[Capability]struct{}, len(hierarchy))
	for role := range hierarchy {
		set := make(map[Capability]struct{})
		collect(role, set)
		effective[role] = set
	}
}

func collect(role domain.Role, set map[Capability]struct{}) {
	grant, ok := hierarchy[role]
	if !ok {
		return
	}
	for _, c := range grant.can {
		set[c] = struct{}{}
	}
	for _, parent := range grant.inherits {
		collect(parent, set)
	}
}

func HasCapability(role domain.Role, cap Capability) bool {
	set, ok := effective[role]
	if !ok {
		return false
	}
	_, ok = set[cap]
	return ok
}

// Authorize checks a capability for an authenticated actor.
func Authorize(actor domain.Actor, cap Capability) bool {
	if !actor.Known() {
		return false
	}
	return HasCapability(actor.Role, cap)
}

// CanActOn reports whether actor may manage a specific request: the
// requester, the assigned volunteer, or a holder of admin_override.
// Anonymous requests have no requester, so only override holders qualify
// through ownership.
func CanActOn(actor domain.Actor, req *domain.HelpRequest) bool {
	if !actor.Known() || req == nil {
		return false
	}
	if HasCapability(actor.Role, CapAdminOverride) {
		return true
	}
	if req.Requester != nil && *req.Requester == actor.ID {
		return true
	}
	if req.AssignedVolunteer != nil && *req.AssignedVolunteer == actor.ID {
		return true
	}
	return false
}

// CanComplete narrows CanActOn for the terminal transition: the requester
// alone may not close their own request, only the assigned volunteer or an
// override holder.
func CanComplete(actor domain.Actor, req *domain.HelpRequest) bool {
	if !CanActOn(actor, req) {
		return false
	}
	if HasCapability(actor.Role, CapAdminOverride) {
		return true
	}
	return req.AssignedVolunteer != nil && *req.AssignedVolunteer == actor.ID
}
