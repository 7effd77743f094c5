package entity

import (
	"time"
)

// Event represents a published event listing.
type Event struct {
	ID          string     `bson:"_id,omitempty" json:"id"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description" json:"description"`
	Date        *time.Time `bson:"date,omitempty" json:"date,omitempty"`
	Location    string     `bson:"location,omitempty" json:"location,omitempty"`
	ImageURLs   []string   `bson:"image_urls" json:"imageUrls"`
	Passed      bool       `bson:"passed" json:"passed"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updated_at"`
}

// MaxEventImages caps how many image references a single event may carry.
const MaxEventImages = 10
