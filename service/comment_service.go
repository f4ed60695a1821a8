package service

import (
	"go-taskboard-api/model"
	"go-taskboard-api/repository"

	"github.com/google/uuid"
)

// CommentService handles comment-related business logic.
type CommentService struct {
	repo repository.ICommentRepository
}

func NewCommentService(repo repository.ICommentRepository) *CommentService {
	return &CommentService{repo: repo}
}

func (s *CommentService) CreateComment(cardID, text, userID string) (*model.Comment, error) {
	comment := &model.Comment{
		ID:     uuid.NewString(),
		Text:   text,
		UserID: userID,
		CardID: cardID,
	}
	if err := s.repo.CreateComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) GetCommentsByCardID(cardID string) ([]*model.Comment, error) {
	return s.repo.GetCommentsByCardID(cardID)
}
