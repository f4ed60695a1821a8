package model

import "time"

type Card struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ListID      string    `json:"list_id"`
	CreatedAt   time.Time `json:"created_at"`
}
