package service

import (
	"go-taskboard-api/model"
	"go-taskboard-api/repository"

	"github.com/google/uuid"
)

// ListService handles list-related business logic.
type ListService struct {
	repo repository.IListRepository
}

func NewListService(repo repository.IListRepository) *ListService {
	return &ListService{repo: repo}
}

func (s *ListService) FindListByID(id string) (*model.List, error) {
	return s.repo.GetListByID(id)
}

func (s *ListService) FindListByTitleAndBoard(boardID, title string) (*model.List, error) {
	return s.repo.GetListByBoardAndTitle(boardID, title)
}

func (s *ListService) CreateList(boardID, title string) (*model.List, error) {
	list := &model.List{
		ID:      uuid.NewString(),
		Title:   title,
		BoardID: boardID,
	}
	if err := s.repo.CreateList(list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *ListService) EditListByID(id, title string) (*model.List, error) {
	return s.repo.UpdateListTitle(id, title)
}

func (s *ListService) DeleteList(id string) error {
	return s.repo.DeleteList(id)
}
