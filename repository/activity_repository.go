package repository

import (
	"database/sql"
	"go-taskboard-api/logger"
	"go-taskboard-api/model"

	"github.com/sirupsen/logrus"
)

// IActivityRepository defines the contract for activity feed database operations.
type IActivityRepository interface {
	CreateActivity(activity *model.Activity) error
	GetActivitiesByBoardID(boardID string) ([]*model.Activity, error)
}

type ActivityRepository struct {
	DB *sql.DB
}

func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

// CreateActivity records a board event in the activity feed.
func (r *ActivityRepository) CreateActivity(activity *model.Activity) error {
	log := logger.Log.WithFields(logrus.Fields{
		"board_id": activity.BoardID,
		"type":     activity.Type,
	})
	log.Info("Executing query to create a new activity record")

	query := `INSERT INTO activities (id, user_id, board_id, description, type) VALUES ($1, $2, $3, $4, $5) RETURNING created_at`
	err := r.DB.QueryRow(query, activity.ID, activity.UserID, activity.BoardID, activity.Description, activity.Type).Scan(&activity.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create activity query")
		return err
	}
	return nil
}

// GetActivitiesByBoardID retrieves the full feed of a board, newest first.
func (r *ActivityRepository) GetActivitiesByBoardID(boardID string) ([]*model.Activity, error) {
	query := `
		SELECT id, user_id, board_id, description, type, created_at
		FROM activities
		WHERE board_id = $1
		ORDER BY created_at DESC`

	rows, err := r.DB.Query(query, boardID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute query for activities by board ID")
		return nil, err
	}
	defer rows.Close()

	var activities []*model.Activity
	for rows.Next() {
		var a model.Activity
		if err := rows.Scan(&a.ID, &a.UserID, &a.BoardID, &a.Description, &a.Type, &a.CreatedAt); err != nil {
			logger.Log.WithError(err).Error("Failed to scan activity row")
			return nil, err
		}
		activities = append(activities, &a)
	}
	return activities, nil
}
