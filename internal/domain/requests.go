package domain

import "github.com/google/uuid"

type LocationInput struct {
	Lng     float64 `json:"lng" validate:"lng"`
	Lat     float64 `json:"lat" validate:"lat"`
	Address string  `json:"address,omitempty"`
}

type CreateHelpRequest struct {
	Category    Category      `json:"category" validate:"required,oneof=food water medical shelter rescue other"`
	Description string        `json:"description" validate:"required"`
	Location    LocationInput `json:"location" validate:"required"`
}

type UpdateHelpRequest struct {
	Status            RequestStatus `json:"status" validate:"required,oneof=accepted completed"`
	AssignedVolunteer *uuid.UUID    `json:"assigned_volunteer,omitempty" validate:"required_if=Status accepted"`
}

type OverrideHelpRequest struct {
	Status RequestStatus `json:"status" validate:"required,oneof=pending accepted completed"`
	Notes  string        `json:"notes,omitempty"`
}

type NearbyQuery struct {
	Lat          float64 `json:"lat" validate:"lat"`
	Lng          float64 `json:"lng" validate:"lng"`
	// Non-positive radii fall back to the configured default downstream.
	RadiusMeters float64 `json:"radius"`
}

type ListFilter struct {
	Status    *RequestStatus `json:"status,omitempty" validate:"omitempty,oneof=pending accepted completed"`
	Category  *Category      `json:"category,omitempty" validate:"omitempty,oneof=food water medical shelter rescue other"`
	Requester *uuid.UUID     `json:"requester,omitempty"`
	Assigned  *uuid.UUID     `json:"assigned,omitempty"`
	Limit     int            `json:"limit,omitempty" validate:"omitempty,min=1,max=200"`
}

type CreateDonation struct {
	Amount int64 `json:"amount" validate:"required,min=100"`
}
