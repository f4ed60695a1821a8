// file: router/fakes_test.go

package router_test

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"go-taskboard-api/model"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// In-memory repository fakes backing the endpoint tests. Each guards its map
// with a mutex so the handlers can be exercised concurrently.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (r *fakeUserRepo) CreateUser(user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.CreatedAt = time.Now()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) findBy(match func(*model.User) bool) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if match(user) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *fakeUserRepo) GetUserByEmail(email string) (*model.User, error) {
	return r.findBy(func(u *model.User) bool { return u.Email == email })
}

func (r *fakeUserRepo) GetUserByUsername(username string) (*model.User, error) {
	return r.findBy(func(u *model.User) bool { return u.Username == username })
}

func (r *fakeUserRepo) GetUserByID(id string) (*model.User, error) {
	return r.findBy(func(u *model.User) bool { return u.ID == id })
}

func (r *fakeUserRepo) DeleteUser(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

type fakeTokenRepo struct {
	mu      sync.Mutex
	records map[string]*model.RefreshToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{records: make(map[string]*model.RefreshToken)}
}

func opaqueToken() string {
	raw := make([]byte, 32)
	rand.Read(raw)
	return base64.URLEncoding.EncodeToString(raw)
}

func (r *fakeTokenRepo) Create(userID string, ttl time.Duration) (*model.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record := &model.RefreshToken{Token: opaqueToken(), UserID: userID, ExpiresAt: time.Now().Add(ttl), CreatedAt: time.Now()}
	r.records[record.Token] = record
	return record, nil
}

func (r *fakeTokenRepo) FindActive(token string) (*model.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[token]
	if !ok || !record.ExpiresAt.After(time.Now()) {
		return nil, sql.ErrNoRows
	}
	copied := *record
	return &copied, nil
}

func (r *fakeTokenRepo) DeleteByToken(token string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.records[token]
	delete(r.records, token)
	return ok, nil
}

func (r *fakeTokenRepo) Rotate(oldToken, userID string, ttl time.Duration) (*model.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[oldToken]
	if !ok || !record.ExpiresAt.After(time.Now()) {
		return nil, sql.ErrNoRows
	}
	delete(r.records, oldToken)
	replacement := &model.RefreshToken{Token: opaqueToken(), UserID: userID, ExpiresAt: time.Now().Add(ttl), CreatedAt: time.Now()}
	r.records[replacement.Token] = replacement
	return replacement, nil
}

func (r *fakeTokenRepo) DeleteExpired() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var purged int64
	for token, record := range r.records {
		if !record.ExpiresAt.After(time.Now()) {
			delete(r.records, token)
			purged++
		}
	}
	return purged, nil
}

type fakeBoardRepo struct {
	mu     sync.Mutex
	boards map[string]*model.Board
}

func newFakeBoardRepo() *fakeBoardRepo {
	return &fakeBoardRepo{boards: make(map[string]*model.Board)}
}

func (r *fakeBoardRepo) CreateBoard(board *model.Board) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	board.CreatedAt = time.Now()
	copied := *board
	r.boards[board.ID] = &copied
	return nil
}

func (r *fakeBoardRepo) GetBoardByID(id string) (*model.Board, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	board, ok := r.boards[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *board
	return &copied, nil
}

func (r *fakeBoardRepo) GetBoardByTitle(title string) (*model.Board, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, board := range r.boards {
		if board.Title == title {
			copied := *board
			return &copied, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *fakeBoardRepo) GetAllBoards() ([]*model.Board, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var boards []*model.Board
	for _, board := range r.boards {
		copied := *board
		boards = append(boards, &copied)
	}
	return boards, nil
}

func (r *fakeBoardRepo) UpdateBoardTitle(id, title string) (*model.Board, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	board, ok := r.boards[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	board.Title = title
	copied := *board
	return &copied, nil
}

func (r *fakeBoardRepo) DeleteBoard(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.boards, id)
	return nil
}

type fakeListRepo struct {
	mu    sync.Mutex
	lists map[string]*model.List
}

func newFakeListRepo() *fakeListRepo {
	return &fakeListRepo{lists: make(map[string]*model.List)}
}

func (r *fakeListRepo) CreateList(list *model.List) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list.CreatedAt = time.Now()
	copied := *list
	r.lists[list.ID] = &copied
	return nil
}

func (r *fakeListRepo) GetListByID(id string) (*model.List, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list, ok := r.lists[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *list
	return &copied, nil
}

func (r *fakeListRepo) GetListByBoardAndTitle(boardID, title string) (*model.List, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, list := range r.lists {
		if list.BoardID == boardID && list.Title == title {
			copied := *list
			return &copied, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *fakeListRepo) UpdateListTitle(id, title string) (*model.List, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list, ok := r.lists[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	list.Title = title
	copied := *list
	return &copied, nil
}

func (r *fakeListRepo) DeleteList(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.lists, id)
	return nil
}

type fakeCardRepo struct {
	mu    sync.Mutex
	cards map[string]*model.Card
}

func newFakeCardRepo() *fakeCardRepo {
	return &fakeCardRepo{cards: make(map[string]*model.Card)}
}

func (r *fakeCardRepo) CreateCard(card *model.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	card.CreatedAt = time.Now()
	copied := *card
	r.cards[card.ID] = &copied
	return nil
}

func (r *fakeCardRepo) GetCardByID(id string) (*model.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	card, ok := r.cards[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *card
	return &copied, nil
}

func (r *fakeCardRepo) UpdateCard(id, title, description string) (*model.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	card, ok := r.cards[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	card.Title = title
	card.Description = description
	copied := *card
	return &copied, nil
}

func (r *fakeCardRepo) MoveCard(id, listID string) (*model.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	card, ok := r.cards[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	card.ListID = listID
	copied := *card
	return &copied, nil
}

func (r *fakeCardRepo) DeleteCard(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.cards, id)
	return nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments map[string]*model.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[string]*model.Comment)}
}

func (r *fakeCommentRepo) CreateComment(comment *model.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	comment.CreatedAt = time.Now()
	copied := *comment
	r.comments[comment.ID] = &copied
	return nil
}

func (r *fakeCommentRepo) GetCommentsByCardID(cardID string) ([]*model.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var comments []*model.Comment
	for _, comment := range r.comments {
		if comment.CardID == cardID {
			copied := *comment
			comments = append(comments, &copied)
		}
	}
	return comments, nil
}

type fakeActivityRepo struct {
	mu         sync.Mutex
	activities []*model.Activity
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{}
}

func (r *fakeActivityRepo) CreateActivity(activity *model.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	activity.CreatedAt = time.Now()
	copied := *activity
	r.activities = append(r.activities, &copied)
	return nil
}

func (r *fakeActivityRepo) GetActivitiesByBoardID(boardID string) ([]*model.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var activities []*model.Activity
	for _, activity := range r.activities {
		if activity.BoardID == boardID {
			copied := *activity
			activities = append(activities, &copied)
		}
	}
	return activities, nil
}

// fakeCache satisfies service.ICacheClient without a live Redis.
type fakeCache struct {
	mu    sync.Mutex
	store map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string]string)}
}

func (c *fakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	c.mu.Lock()
	defer c.mu.Unlock()
	if val, ok := c.store[key]; ok {
		return redis.NewStringResult(val, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch v := value.(type) {
	case []byte:
		c.store[key] = string(v)
	case string:
		c.store[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

func (c *fakeCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.store, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}
