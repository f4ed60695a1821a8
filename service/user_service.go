package service

import (
	"go-taskboard-api/model"
	"go-taskboard-api/repository"
)

// UserService exposes the user directory plus the identity resolver used by
// the board handlers to attribute actions.
type UserService struct {
	userRepo  repository.IUserRepository
	tokenRepo repository.ITokenRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.IUserRepository, tokenRepo repository.ITokenRepository) *UserService {
	return &UserService{userRepo: userRepo, tokenRepo: tokenRepo}
}

func (s *UserService) FindUserByID(id string) (*model.User, error) {
	return s.userRepo.GetUserByID(id)
}

func (s *UserService) FindUserByEmail(email string) (*model.User, error) {
	return s.userRepo.GetUserByEmail(email)
}

func (s *UserService) DeleteUserByID(id string) error {
	return s.userRepo.DeleteUser(id)
}

// FindUserByToken resolves a presented refresh token to its owning user ID
// without re-implementing any token logic. Returns sql.ErrNoRows when the
// token is unknown or expired.
func (s *UserService) FindUserByToken(refreshToken string) (string, error) {
	record, err := s.tokenRepo.FindActive(refreshToken)
	if err != nil {
		return "", err
	}
	return record.UserID, nil
}
