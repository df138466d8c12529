package models

import "time"

// Subscriber represents a mailing-list member
type Subscriber struct {
	ID        int64     `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// SubscribeRequest is the public subscribe payload
type SubscribeRequest struct {
	Email string `json:"email"`
}

// EventConfirmedMessage is published to NSQ when an event is confirmed and
// consumed by the mail fan-out worker
type EventConfirmedMessage struct {
	EventID   int64     `json:"event_id"`
	Title     string    `json:"title"`
	Venue     string    `json:"venue"`
	EventDate time.Time `json:"event_date"`
}
