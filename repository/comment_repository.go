package repository

import (
	"database/sql"
	"go-taskboard-api/model"
)

// ICommentRepository defines the contract for comment database operations.
type ICommentRepository interface {
	CreateComment(comment *model.Comment) error
	GetCommentsByCardID(cardID string) ([]*model.Comment, error)
}

type CommentRepository struct {
	DB *sql.DB
}

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{DB: db}
}

func (r *CommentRepository) CreateComment(comment *model.Comment) error {
	query := `INSERT INTO comments (id, text, user_id, card_id) VALUES ($1, $2, $3, $4) RETURNING created_at`
	return r.DB.QueryRow(query, comment.ID, comment.Text, comment.UserID, comment.CardID).Scan(&comment.CreatedAt)
}

func (r *CommentRepository) GetCommentsByCardID(cardID string) ([]*model.Comment, error) {
	rows, err := r.DB.Query(`SELECT id, text, user_id, card_id, created_at FROM comments WHERE card_id=$1 ORDER BY created_at`, cardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*model.Comment
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.Text, &c.UserID, &c.CardID, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, &c)
	}
	return comments, nil
}
