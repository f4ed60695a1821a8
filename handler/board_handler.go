package handler

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"go-taskboard-api/common"
	"go-taskboard-api/logger"
	"go-taskboard-api/model"
	"go-taskboard-api/service"
	"net/http"
)

type BoardHandler struct {
	boards *service.BoardService
	users  *service.UserService
}

func NewBoardHandler(boards *service.BoardService, users *service.UserService) *BoardHandler {
	return &BoardHandler{boards: boards, users: users}
}

// CreateBoard godoc
// @Summary      Create a board
// @Tags         board
// @Accept       json
// @Produce      json
// @Param        request body model.BoardRequest true "Board payload"
// @Success      201 {object} model.Board
// @Failure      400 {object} common.AppError
// @Security     BearerAuth
// @Router       /board/create [post]
func (h *BoardHandler) CreateBoard(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.BoardRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	user, appErr := resolveActingUser(h.users, r)
	if appErr != nil {
		return appErr
	}

	logger.Log.WithField("title", req.Title).Info("Create board request received")

	if _, err := h.boards.FindBoardByTitle(req.Title); err == nil {
		return common.NewAppError(http.StatusBadRequest, fmt.Sprintf("Board with title %s is already in use", req.Title), nil)
	} else if err != sql.ErrNoRows {
		return common.NewAppError(http.StatusInternalServerError, "Could not check board title", err)
	}

	board, err := h.boards.CreateBoard(req.Title, user.ID)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not create board", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(board)
	return nil
}

// GetAllBoards godoc
// @Summary      List all boards
// @Tags         board
// @Produce      json
// @Success      200 {array} model.Board
// @Security     BearerAuth
// @Router       /board/all [get]
func (h *BoardHandler) GetAllBoards(w http.ResponseWriter, r *http.Request) *common.AppError {
	boards, err := h.boards.GetAllBoards()
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve boards", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(boards)
	return nil
}

// GetBoardByID godoc
// @Summary      Get one board
// @Tags         board
// @Produce      json
// @Param        id path string true "Board ID"
// @Success      200 {object} model.Board
// @Failure      400 {object} common.AppError
// @Security     BearerAuth
// @Router       /board/{id} [get]
func (h *BoardHandler) GetBoardByID(w http.ResponseWriter, r *http.Request) *common.AppError {
	id := r.PathValue("id")

	board, err := h.boards.FindBoardByID(id)
	if err != nil {
		return boardNotFound(id, err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(board)
	return nil
}

// UpdateBoardByID godoc
// @Summary      Rename a board
// @Tags         board
// @Accept       json
// @Produce      json
// @Param        id path string true "Board ID"
// @Param        request body model.BoardRequest true "Board payload"
// @Success      200 {object} model.Board
// @Failure      400 {object} common.AppError
// @Security     BearerAuth
// @Router       /board/update/{id} [put]
func (h *BoardHandler) UpdateBoardByID(w http.ResponseWriter, r *http.Request) *common.AppError {
	id := r.PathValue("id")

	var req model.BoardRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	if _, err := h.boards.FindBoardByID(id); err != nil {
		return boardNotFound(id, err)
	}

	board, err := h.boards.UpdateBoardByID(id, req.Title)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not update board", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(board)
	return nil
}

// DeleteBoardByID godoc
// @Summary      Delete a board
// @Tags         board
// @Produce      json
// @Param        id path string true "Board ID"
// @Success      200 {object} map[string]string
// @Failure      400 {object} common.AppError
// @Security     BearerAuth
// @Router       /board/delete/{id} [delete]
func (h *BoardHandler) DeleteBoardByID(w http.ResponseWriter, r *http.Request) *common.AppError {
	id := r.PathValue("id")

	if _, err := h.boards.FindBoardByID(id); err != nil {
		return boardNotFound(id, err)
	}

	if err := h.boards.DeleteBoardByID(id); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not delete board", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Board deleted"})
	return nil
}

func boardNotFound(id string, err error) *common.AppError {
	if err == sql.ErrNoRows {
		return common.NewAppError(http.StatusBadRequest, fmt.Sprintf("Board with id %s does not exist", id), nil)
	}
	return common.NewAppError(http.StatusInternalServerError, "Could not look up board", err)
}
