package service

import (
	"go-taskboard-api/model"
	"go-taskboard-api/repository"

	"github.com/google/uuid"
)

// CardService handles card-related business logic.
type CardService struct {
	repo repository.ICardRepository
}

func NewCardService(repo repository.ICardRepository) *CardService {
	return &CardService{repo: repo}
}

func (s *CardService) FindCardByID(id string) (*model.Card, error) {
	return s.repo.GetCardByID(id)
}

func (s *CardService) CreateCard(title, listID string) (*model.Card, error) {
	card := &model.Card{
		ID:     uuid.NewString(),
		Title:  title,
		ListID: listID,
	}
	if err := s.repo.CreateCard(card); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *CardService) UpdateCard(id, title, description string) (*model.Card, error) {
	return s.repo.UpdateCard(id, title, description)
}

func (s *CardService) MoveCard(id, listID string) (*model.Card, error) {
	return s.repo.MoveCard(id, listID)
}

func (s *CardService) DeleteCard(id string) error {
	return s.repo.DeleteCard(id)
}
