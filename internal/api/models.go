package api

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/pcmoraesmenezes/design-patterns-lab/internal/store"
)

// CreateShapeRequest is the request body for adding a shape to the
// gallery. Coordinates are bounded by the canvas dimensions.
type CreateShapeRequest struct {
	Kind string `json:"kind" validate:"required"`
	X    int    `json:"x" validate:"gte=0,lte=800"`
	Y    int    `json:"y" validate:"gte=0,lte=600"`
}

// ShapeResponse is the API representation of a stored shape. The
// payload carries the concrete shape fields produced by the factory.
type ShapeResponse struct {
	ID        uuid.UUID       `json:"id"`
	Kind      string          `json:"kind"`
	X         int             `json:"x"`
	Y         int             `json:"y"`
	Shape     json.RawMessage `json:"shape"`
	CreatedAt time.Time       `json:"created_at"`
}

// ShapeListResponse wraps the gallery listing.
type ShapeListResponse struct {
	Shapes []ShapeResponse `json:"shapes"`
	Kinds  []string        `json:"kinds"`
}

// ClearGalleryResponse reports how many shapes a gallery clear removed.
type ClearGalleryResponse struct {
	Removed int64 `json:"removed"`
}

// NotificationRequest is the request body for sending a notification.
type NotificationRequest struct {
	Channel   string `json:"channel" validate:"required"`
	Recipient string `json:"recipient" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

// LoginRequest is the request body for the admin login endpoint.
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// AuthResponse carries the issued access token.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
}

// newShapeResponse converts a stored record to its API representation.
func newShapeResponse(record *store.ShapeRecord) ShapeResponse {
	return ShapeResponse{
		ID:        record.ID,
		Kind:      record.Kind,
		X:         record.X,
		Y:         record.Y,
		Shape:     record.Payload,
		CreatedAt: record.CreatedAt,
	}
}
