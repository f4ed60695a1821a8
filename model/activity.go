// file: model/activity.go

package model

import "time"

// ActivityType enumerates the board events recorded in the activity feed.
type ActivityType string

const (
	ActivityAddList    ActivityType = "ADD_LIST"
	ActivityEditList   ActivityType = "EDIT_LIST"
	ActivityDeleteList ActivityType = "DELETE_LIST"
	ActivityAddCard    ActivityType = "ADD_CARD"
	ActivityEditCard   ActivityType = "EDIT_CARD"
	ActivityMoveCard   ActivityType = "MOVE_CARD"
	ActivityDeleteCard ActivityType = "DELETE_CARD"
	ActivityAddComment ActivityType = "ADD_COMMENT"
)

type Activity struct {
	ID          string       `json:"id"`
	UserID      string       `json:"user_id"`
	BoardID     string       `json:"board_id"`
	Description string       `json:"description"`
	Type        ActivityType `json:"type"`
	CreatedAt   time.Time    `json:"created_at"`
}
