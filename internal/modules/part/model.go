package part

import (
	"time"

	"github.com/google/uuid"
)

// Part is a single auto part in the catalogue together with its current
// stock level.
type Part struct {
	ID                 uuid.UUID   `json:"id"`
	Name               string      `json:"name"`
	Category           string      `json:"category,omitempty"`
	Price              float64     `json:"price"`
	Stock              int         `json:"stock"`
	SupplierID         *uuid.UUID  `json:"supplier_id,omitempty"`
	CompatibleVehicles []uuid.UUID `json:"compatible_vehicles,omitempty"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

// SavePartRequest is the payload for creating or updating a part.
type SavePartRequest struct {
	Name               string   `json:"name"`
	Category           string   `json:"category,omitempty"`
	Price              float64  `json:"price"`
	Stock              int      `json:"stock"`
	SupplierID         string   `json:"supplier_id,omitempty"`
	CompatibleVehicles []string `json:"compatible_vehicles,omitempty"`
}
