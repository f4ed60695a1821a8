package repository

import (
	"database/sql"
	"go-taskboard-api/model"
)

// IUserRepository defines the contract for the user directory.
type IUserRepository interface {
	CreateUser(user *model.User) error
	GetUserByEmail(email string) (*model.User, error)
	GetUserByUsername(username string) (*model.User, error)
	GetUserByID(id string) (*model.User, error)
	DeleteUser(id string) error
}

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) CreateUser(user *model.User) error {
	query := `INSERT INTO users (id, username, email, password) VALUES ($1, $2, $3, $4) RETURNING created_at`
	return r.DB.QueryRow(query, user.ID, user.Username, user.Email, user.Password).Scan(&user.CreatedAt)
}

func (r *UserRepository) GetUserByEmail(email string) (*model.User, error) {
	return r.getUserBy(`SELECT id, username, email, password, created_at FROM users WHERE email=$1`, email)
}

func (r *UserRepository) GetUserByUsername(username string) (*model.User, error) {
	return r.getUserBy(`SELECT id, username, email, password, created_at FROM users WHERE username=$1`, username)
}

func (r *UserRepository) GetUserByID(id string) (*model.User, error) {
	return r.getUserBy(`SELECT id, username, email, password, created_at FROM users WHERE id=$1`, id)
}

func (r *UserRepository) getUserBy(query string, arg string) (*model.User, error) {
	user := &model.User{}
	err := r.DB.QueryRow(query, arg).Scan(&user.ID, &user.Username, &user.Email, &user.Password, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) DeleteUser(id string) error {
	_, err := r.DB.Exec(`DELETE FROM users WHERE id=$1`, id)
	return err
}
