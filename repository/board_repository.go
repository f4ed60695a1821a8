package repository

import (
	"database/sql"
	"go-taskboard-api/logger"
	"go-taskboard-api/model"

	"github.com/sirupsen/logrus"
)

// IBoardRepository defines the contract for board database operations.
type IBoardRepository interface {
	CreateBoard(board *model.Board) error
	GetBoardByID(id string) (*model.Board, error)
	GetBoardByTitle(title string) (*model.Board, error)
	GetAllBoards() ([]*model.Board, error)
	UpdateBoardTitle(id, title string) (*model.Board, error)
	DeleteBoard(id string) error
}

type BoardRepository struct {
	DB *sql.DB
}

func NewBoardRepository(db *sql.DB) *BoardRepository {
	return &BoardRepository{DB: db}
}

// CreateBoard adds a new board to the database.
func (r *BoardRepository) CreateBoard(board *model.Board) error {
	log := logger.Log.WithFields(logrus.Fields{
		"title":   board.Title,
		"user_id": board.UserID,
	})
	log.Info("Executing query to create a new board")

	query := `INSERT INTO boards (id, title, user_id) VALUES ($1, $2, $3) RETURNING created_at`
	err := r.DB.QueryRow(query, board.ID, board.Title, board.UserID).Scan(&board.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create board query")
		return err
	}
	return nil
}

func (r *BoardRepository) GetBoardByID(id string) (*model.Board, error) {
	return r.getBoardBy(`SELECT id, title, user_id, created_at FROM boards WHERE id=$1`, id)
}

func (r *BoardRepository) GetBoardByTitle(title string) (*model.Board, error) {
	return r.getBoardBy(`SELECT id, title, user_id, created_at FROM boards WHERE title=$1`, title)
}

func (r *BoardRepository) getBoardBy(query string, arg string) (*model.Board, error) {
	board := &model.Board{}
	err := r.DB.QueryRow(query, arg).Scan(&board.ID, &board.Title, &board.UserID, &board.CreatedAt)
	if err != nil {
		return nil, err
	}
	return board, nil
}

// GetAllBoards retrieves every board, returning a slice of pointers.
func (r *BoardRepository) GetAllBoards() ([]*model.Board, error) {
	rows, err := r.DB.Query(`SELECT id, title, user_id, created_at FROM boards ORDER BY created_at`)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute query for all boards")
		return nil, err
	}
	defer rows.Close()

	var boards []*model.Board
	for rows.Next() {
		var b model.Board
		if err := rows.Scan(&b.ID, &b.Title, &b.UserID, &b.CreatedAt); err != nil {
			logger.Log.WithError(err).Error("Failed to scan board row")
			return nil, err
		}
		boards = append(boards, &b)
	}
	return boards, nil
}

func (r *BoardRepository) UpdateBoardTitle(id, title string) (*model.Board, error) {
	board := &model.Board{}
	query := `UPDATE boards SET title=$2 WHERE id=$1 RETURNING id, title, user_id, created_at`
	err := r.DB.QueryRow(query, id, title).Scan(&board.ID, &board.Title, &board.UserID, &board.CreatedAt)
	if err != nil {
		return nil, err
	}
	return board, nil
}

func (r *BoardRepository) DeleteBoard(id string) error {
	_, err := r.DB.Exec(`DELETE FROM boards WHERE id=$1`, id)
	return err
}
