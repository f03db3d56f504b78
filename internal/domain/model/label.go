// Package model defines the core domain entities for the label service.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LabelStatus is the lifecycle state of a physical pack.
type LabelStatus string

const (
	// StatusProduced means the label has been generated and printed.
	StatusProduced LabelStatus = "produced"
	// StatusGrouped means the pack has been bundled into a shipment group.
	StatusGrouped LabelStatus = "grouped"
	// StatusShipped means the pack left the warehouse.
	StatusShipped LabelStatus = "shipped"
	// StatusReturned means the pack came back for reuse.
	StatusReturned LabelStatus = "returned"
	// StatusLost marks a pack that never came back. Terminal.
	StatusLost LabelStatus = "lost"
)

// transitions holds the allowed forward moves of the lifecycle.
// Lost is reachable from any non-terminal state; returned packs re-enter
// circulation as grouped.
var transitions = map[LabelStatus][]LabelStatus{
	StatusProduced: {StatusGrouped, StatusLost},
	StatusGrouped:  {StatusShipped, StatusLost},
	StatusShipped:  {StatusReturned, StatusLost},
	StatusReturned: {StatusGrouped, StatusLost},
	StatusLost:     {},
}

// Valid reports whether s is a known lifecycle status.
func (s LabelStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s LabelStatus) CanTransitionTo(next LabelStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// StatusChange records a single lifecycle transition.
type StatusChange struct {
	Status    LabelStatus `bson:"status" json:"status"`
	Actor     string      `bson:"actor,omitempty" json:"actor,omitempty"`
	Timestamp time.Time   `bson:"timestamp" json:"timestamp"`
}

// Label is a generated pack label. The LabelID string is immutable once
// generated; only the lifecycle fields change afterwards.
//
// @Description A trackable pack label and its lifecycle state
type Label struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	LabelID  string             `bson:"label_id" json:"label_id" example:"KBM2b100042"`
	Prefix   string             `bson:"prefix" json:"prefix" example:"KBM2b1"`
	Serial   string             `bson:"serial" json:"serial" example:"00042"`
	Sequence int64              `bson:"sequence" json:"sequence" example:"42"`

	Supplier      string `bson:"supplier" json:"supplier" example:"B"`
	PackagingType string `bson:"packaging_type" json:"packaging_type" example:"M"`
	Size          string `bson:"size" json:"size" example:"2"`

	BatchID   string         `bson:"batch_id" json:"batch_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Status    LabelStatus    `bson:"status" json:"status" example:"produced"`
	History   []StatusChange `bson:"history,omitempty" json:"history,omitempty"`
	CreatedAt time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time      `bson:"updated_at" json:"updated_at"`
}

// LabelBatch is the result of one batch generation request.
//
// @Description A batch of freshly generated pack labels
type LabelBatch struct {
	BatchID     string    `json:"batch_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Prefix      string    `json:"prefix" example:"KBM2b1"`
	StartSerial int64     `json:"start_serial" example:"42"`
	Count       int       `json:"count" example:"3"`
	Labels      []Label   `json:"labels"`
	CreatedAt   time.Time `json:"created_at"`
}

// LabelParts is the decoded view of a label string. Pure codec output, no
// persistence involved.
//
// @Description Decoded components of a pack label
type LabelParts struct {
	LabelID       string `json:"label_id" example:"KBM2b100042"`
	Prefix        string `json:"prefix" example:"KBM2b1"`
	Supplier      string `json:"supplier" example:"B"`
	PackagingType string `json:"packaging_type" example:"M"`
	Size          string `json:"size" example:"2"`
	MonthCode     string `json:"month_code" example:"b"`
	YearCode      string `json:"year_code" example:"1"`
	Serial        string `json:"serial" example:"00042"`
	Sequence      int64  `json:"sequence" example:"42"`
}

// LabelPayloads carries the strings embedded verbatim into the two rendering
// targets for a label.
//
// @Description QR and barcode payloads for a pack label
type LabelPayloads struct {
	LabelID    string `json:"label_id" example:"KBM2b100042"`
	QRPayload  string `json:"qr_payload" example:"https://track.kooply.com/p?id=KBM2b100042"`
	Code128    string `json:"code128_payload" example:"KBM2b100042"`
	TrackingURL string `json:"tracking_url" example:"https://track.kooply.com/p?id=KBM2b100042"`
}
