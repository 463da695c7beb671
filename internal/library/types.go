package library

import "time"

// Book is one catalog entry. Identity lives in ID, which the service
// assigns; every other field is content the client treats opaquely.
type Book struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Genre         string    `json:"genre"`
	Description   *string   `json:"description"`
	TotalPages    int       `json:"total_pages"`
	PublishedYear int       `json:"published_year"`
	CreatedAt     time.Time `json:"created_at"`
}

// BookInput carries the writable fields sent on create and edit calls.
type BookInput struct {
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Genre         string  `json:"genre"`
	Description   *string `json:"description,omitempty"`
	TotalPages    int     `json:"total_pages"`
	PublishedYear int     `json:"published_year"`
}

// Message mirrors the service's response envelope for mutations and errors.
type Message struct {
	Detail string `json:"detail"`
}
