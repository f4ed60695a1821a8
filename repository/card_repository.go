package repository

import (
	"database/sql"
	"go-taskboard-api/model"
)

// ICardRepository defines the contract for card database operations.
type ICardRepository interface {
	CreateCard(card *model.Card) error
	GetCardByID(id string) (*model.Card, error)
	UpdateCard(id, title, description string) (*model.Card, error)
	MoveCard(id, listID string) (*model.Card, error)
	DeleteCard(id string) error
}

type CardRepository struct {
	DB *sql.DB
}

func NewCardRepository(db *sql.DB) *CardRepository {
	return &CardRepository{DB: db}
}

func (r *CardRepository) CreateCard(card *model.Card) error {
	query := `INSERT INTO cards (id, title, description, list_id) VALUES ($1, $2, $3, $4) RETURNING created_at`
	return r.DB.QueryRow(query, card.ID, card.Title, card.Description, card.ListID).Scan(&card.CreatedAt)
}

func (r *CardRepository) GetCardByID(id string) (*model.Card, error) {
	card := &model.Card{}
	query := `SELECT id, title, description, list_id, created_at FROM cards WHERE id=$1`
	err := r.DB.QueryRow(query, id).Scan(&card.ID, &card.Title, &card.Description, &card.ListID, &card.CreatedAt)
	if err != nil {
		return nil, err
	}
	return card, nil
}

func (r *CardRepository) UpdateCard(id, title, description string) (*model.Card, error) {
	card := &model.Card{}
	query := `UPDATE cards SET title=$2, description=$3 WHERE id=$1 RETURNING id, title, description, list_id, created_at`
	err := r.DB.QueryRow(query, id, title, description).Scan(&card.ID, &card.Title, &card.Description, &card.ListID, &card.CreatedAt)
	if err != nil {
		return nil, err
	}
	return card, nil
}

func (r *CardRepository) MoveCard(id, listID string) (*model.Card, error) {
	card := &model.Card{}
	query := `UPDATE cards SET list_id=$2 WHERE id=$1 RETURNING id, title, description, list_id, created_at`
	err := r.DB.QueryRow(query, id, listID).Scan(&card.ID, &card.Title, &card.Description, &card.ListID, &card.CreatedAt)
	if err != nil {
		return nil, err
	}
	return card, nil
}

func (r *CardRepository) DeleteCard(id string) error {
	_, err := r.DB.Exec(`DELETE FROM cards WHERE id=$1`, id)
	return err
}
