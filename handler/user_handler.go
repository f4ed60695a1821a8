package handler

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"go-taskboard-api/common"
	"go-taskboard-api/service"
	"net/http"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// GetUserByID godoc
// @Summary      Get a user from the directory
// @Tags         user
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} model.User
// @Failure      400 {object} common.AppError
// @Security     BearerAuth
// @Router       /user/{id} [get]
func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) *common.AppError {
	id := r.PathValue("id")

	user, err := h.users.FindUserByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return common.NewAppError(http.StatusBadRequest, fmt.Sprintf("User with id %s does not exist", id), nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not look up user", err)
	}

	user.Password = ""
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(user)
	return nil
}

// DeleteUserByID godoc
// @Summary      Delete a user from the directory
// @Tags         user
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} map[string]string
// @Failure      400 {object} common.AppError
// @Security     BearerAuth
// @Router       /user/{id} [delete]
func (h *UserHandler) DeleteUserByID(w http.ResponseWriter, r *http.Request) *common.AppError {
	id := r.PathValue("id")

	if _, err := h.users.FindUserByID(id); err != nil {
		if err == sql.ErrNoRows {
			return common.NewAppError(http.StatusBadRequest, fmt.Sprintf("User with id %s does not exist", id), nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not look up user", err)
	}

	if err := h.users.DeleteUserByID(id); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not delete user", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "User deleted"})
	return nil
}
