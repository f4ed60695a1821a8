package model

import "time"

type Comment struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	UserID    string    `json:"user_id"`
	CardID    string    `json:"card_id"`
	CreatedAt time.Time `json:"created_at"`
}
