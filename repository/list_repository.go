package repository

import (
	"database/sql"
	"go-taskboard-api/model"
)

// IListRepository defines the contract for list database operations.
type IListRepository interface {
	CreateList(list *model.List) error
	GetListByID(id string) (*model.List, error)
	GetListByBoardAndTitle(boardID, title string) (*model.List, error)
	UpdateListTitle(id, title string) (*model.List, error)
	DeleteList(id string) error
}

type ListRepository struct {
	DB *sql.DB
}

func NewListRepository(db *sql.DB) *ListRepository {
	return &ListRepository{DB: db}
}

func (r *ListRepository) CreateList(list *model.List) error {
	query := `INSERT INTO lists (id, title, board_id) VALUES ($1, $2, $3) RETURNING created_at`
	return r.DB.QueryRow(query, list.ID, list.Title, list.BoardID).Scan(&list.CreatedAt)
}

func (r *ListRepository) GetListByID(id string) (*model.List, error) {
	list := &model.List{}
	query := `SELECT id, title, board_id, created_at FROM lists WHERE id=$1`
	err := r.DB.QueryRow(query, id).Scan(&list.ID, &list.Title, &list.BoardID, &list.CreatedAt)
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ListRepository) GetListByBoardAndTitle(boardID, title string) (*model.List, error) {
	list := &model.List{}
	query := `SELECT id, title, board_id, created_at FROM lists WHERE board_id=$1 AND title=$2`
	err := r.DB.QueryRow(query, boardID, title).Scan(&list.ID, &list.Title, &list.BoardID, &list.CreatedAt)
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ListRepository) UpdateListTitle(id, title string) (*model.List, error) {
	list := &model.List{}
	query := `UPDATE lists SET title=$2 WHERE id=$1 RETURNING id, title, board_id, created_at`
	err := r.DB.QueryRow(query, id, title).Scan(&list.ID, &list.Title, &list.BoardID, &list.CreatedAt)
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ListRepository) DeleteList(id string) error {
	_, err := r.DB.Exec(`DELETE FROM lists WHERE id=$1`, id)
	return err
}
