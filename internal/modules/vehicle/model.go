package vehicle

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle is a vehicle model that parts are catalogued against.
type Vehicle struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Model        string    `json:"model,omitempty"`
	Type         string    `json:"type,omitempty"`
	EngineNumber string    `json:"engine_number,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SaveVehicleRequest is the payload for creating or updating a vehicle.
type SaveVehicleRequest struct {
	Name         string `json:"name"`
	Model        string `json:"model,omitempty"`
	Type         string `json:"type,omitempty"`
	EngineNumber string `json:"engine_number,omitempty"`
}
