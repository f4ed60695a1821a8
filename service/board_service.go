// file: service/board_service.go

package service

import (
	"context"
	"encoding/json"
	"go-taskboard-api/model"
	"go-taskboard-api/repository"
	"time"

	"github.com/google/uuid"
)

const boardListCacheKey = "boards:all"

// BoardService handles board business logic, with a cache-aside strategy
// for the board list.
type BoardService struct {
	repo  repository.IBoardRepository
	cache ICacheClient
}

func NewBoardService(repo repository.IBoardRepository, cache ICacheClient) *BoardService {
	return &BoardService{repo: repo, cache: cache}
}

func (s *BoardService) FindBoardByTitle(title string) (*model.Board, error) {
	return s.repo.GetBoardByTitle(title)
}

func (s *BoardService) FindBoardByID(id string) (*model.Board, error) {
	return s.repo.GetBoardByID(id)
}

// CreateBoard persists a new board and invalidates the board list cache.
func (s *BoardService) CreateBoard(title, userID string) (*model.Board, error) {
	board := &model.Board{
		ID:     uuid.NewString(),
		Title:  title,
		UserID: userID,
	}
	if err := s.repo.CreateBoard(board); err != nil {
		return nil, err
	}
	s.invalidate()
	return board, nil
}

func (s *BoardService) UpdateBoardByID(id, title string) (*model.Board, error) {
	board, err := s.repo.UpdateBoardTitle(id, title)
	if err != nil {
		return nil, err
	}
	s.invalidate()
	return board, nil
}

func (s *BoardService) DeleteBoardByID(id string) error {
	if err := s.repo.DeleteBoard(id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// GetAllBoards lists every board, serving from the cache when possible.
func (s *BoardService) GetAllBoards() ([]*model.Board, error) {
	ctx := context.Background()

	// 1. Try to get data from Redis.
	cached, err := s.cache.Get(ctx, boardListCacheKey).Result()
	if err == nil {
		var boards []*model.Board
		if err := json.Unmarshal([]byte(cached), &boards); err == nil {
			return boards, nil
		}
	}

	// 2. Cache miss. Fetch from the database.
	boards, err := s.repo.GetAllBoards()
	if err != nil {
		return nil, err
	}

	// 3. Store the result in Redis for future requests.
	if data, err := json.Marshal(boards); err == nil {
		s.cache.Set(ctx, boardListCacheKey, data, 10*time.Minute)
	}

	return boards, nil
}

func (s *BoardService) invalidate() {
	s.cache.Del(context.Background(), boardListCacheKey)
}
