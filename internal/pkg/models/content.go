package models

import "time"

// EventStatus represents the lifecycle state of a scheduled event
type EventStatus string

const (
	EventPending   EventStatus = "pending"
	EventConfirmed EventStatus = "confirmed"
	EventCancelled EventStatus = "cancelled"
)

// Valid reports whether s is a known event status
func (s EventStatus) Valid() bool {
	switch s {
	case EventPending, EventConfirmed, EventCancelled:
		return true
	}
	return false
}

// Music represents a published track
type Music struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	FileURL     string    `json:"file_url" db:"file_url"`
	CoverURL    string    `json:"cover_url" db:"cover_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Photo represents a gallery entry
type Photo struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	ImageURL  string    `json:"image_url" db:"image_url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Blog represents a blog post
type Blog struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Body      string    `json:"body" db:"body"`
	CoverURL  string    `json:"cover_url" db:"cover_url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Event represents a scheduled show or appearance
type Event struct {
	ID          int64       `json:"id" db:"id"`
	Title       string      `json:"title" db:"title"`
	Venue       string      `json:"venue" db:"venue"`
	Description string      `json:"description" db:"description"`
	EventDate   time.Time   `json:"event_date" db:"event_date"`
	Status      EventStatus `json:"status" db:"status"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" db:"updated_at"`
}

// About represents the single about-page record
type About struct {
	ID        int64     `json:"id" db:"id"`
	Body      string    `json:"body" db:"body"`
	ImageURL  string    `json:"image_url" db:"image_url"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ContactMessage represents a message sent through the contact form
type ContactMessage struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
