package models

// Event types published on the image topic.
const (
	EventImageUploaded = "image.uploaded"
	EventImageApproved = "image.approved"
	EventImageRejected = "image.rejected"
)

// ImageEvent is published whenever an image enters or leaves moderation.
type ImageEvent struct {
	EventID   string      `json:"event_id"`
	Type      string      `json:"type"`
	ImageID   string      `json:"image_id"`
	OwnerID   string      `json:"owner_id"`
	ActorID   string      `json:"actor_id"`
	Status    ImageStatus `json:"status"`
	Timestamp int64       `json:"timestamp"`
}
