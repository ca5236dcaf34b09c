package domain

import (
	"time"

	"github.com/google/uuid"
)

type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusAccepted  RequestStatus = "accepted"
	StatusCompleted RequestStatus = "completed"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusCompleted:
		return true
	}
	return false
}

type Category string

const (
	CategoryFood    Category = "food"
	CategoryWater   Category = "water"
	CategoryMedical Category = "medical"
	CategoryShelter Category = "shelter"
	CategoryRescue  Category = "rescue"
	CategoryOther   Category = "other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryWater, CategoryMedical, CategoryShelter, CategoryRescue, CategoryOther:
		return true
	}
	return false
}

// HelpRequest is the unit of atomicity for the whole engine: every lifecycle
// transition is a conditional commit against this one record.
type HelpRequest struct {
	ID                uuid.UUID     `json:"id"`
	Requester         *uuid.UUID    `json:"requester,omitempty"` // nil for anonymous requests
	Category          Category      `json:"category"`
	Description       string        `json:"description"`
	Lat               float64       `json:"lat" validate:"lat"`
	Lng               float64       `json:"lng" validate:"lng"`
	Address           string        `json:"address,omitempty"`
	Status            RequestStatus `json:"status"`
	AssignedVolunteer *uuid.UUID    `json:"assigned_volunteer,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	AcceptedAt        *time.Time    `json:"accepted_at,omitempty"`
	CompletedAt       *time.Time    `json:"completed_at,omitempty"`

	// DistanceMeters is populated by proximity queries only.
	DistanceMeters float64 `json:"distance_meters,omitempty"`
}
