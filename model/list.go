package model

import "time"

type List struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	BoardID   string    `json:"board_id"`
	CreatedAt time.Time `json:"created_at"`
}
