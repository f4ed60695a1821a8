package handler

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"go-taskboard-api/common"
	"go-taskboard-api/model"
	"go-taskboard-api/service"
	"net/http"
)

type ListHandler struct {
	lists      *service.ListService
	boards     *service.BoardService
	users      *service.UserService
	activities *service.ActivityService
}

func NewListHandler(lists *service.ListService, boards *service.BoardService, users *service.UserService, activities *service.ActivityService) *ListHandler {
	return &ListHandler{lists: lists, boards: boards, users: users, activities: activities}
}

// CreateList godoc
// @Summary      Create a list on a board
// @Tags         list
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID"
// @Param        request body model.ListRequest true "List payload"
// @Success      201 {object} model.Activity
// @Failure      400 {object} common.AppError
// @Security     BearerAuth
// @Router       /list/create/{boardId} [post]
func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) *common.AppError {
	boardID := r.PathValue("boardId")

	var req model.ListRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	if _, err := h.boards.FindBoardByID(boardID); err != nil {
		return boardNotFound(boardID, err)
	}

	if _, err := h.lists.FindListByTitleAndBoard(boardID, req.Title); err == nil {
		return common.NewAppError(http.StatusBadRequest,
			fmt.Sprintf("A list with title %s already exists in the board with id %s", req.Title, boardID), nil)
	} else if err != sql.ErrNoRows {
		return common.NewAppError(http.StatusInternalServerError, "Could not check list title", err)
	}

	user, appErr := resolveActingUser(h.users, r)
	if appErr != nil {
		return appErr
	}

	if _, err := h.lists.CreateList(boardID, req.Title); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not create list", err)
	}

	return h.recordActivity(w, user, boardID,
		fmt.Sprintf("%s added list '%s'", user.Email, req.Title), model.ActivityAddList, http.StatusCreated)
}

// EditListByID godoc
// @Summary      Rename a list
// @Tags         list
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID"
// @Param        listId path string true "List ID"
// @Param        request body model.ListRequest true "List payload"
// @Success      200 {object} model.Activity
// @Failure      400 {object} common.AppError
// @Security     BearerAuth
// @Router       /list/edit/{boardId}/{listId} [put]
func (h *ListHandler) EditListByID(w http.ResponseWriter, r *http.Request) *common.AppError {
	boardID := r.PathValue("boardId")
	listID := r.PathValue("listId")

	var req model.ListRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	if _, err := h.boards.FindBoardByID(boardID); err != nil {
		return boardNotFound(boardID, err)
	}

	list, err := h.lists.FindListByID(listID)
	if err != nil {
		return listNotFound(listID, err)
	}

	if _, err := h.lists.FindListByTitleAndBoard(boardID, req.Title); err == nil {
		return common.NewAppError(http.StatusBadRequest,
			fmt.Sprintf("A list with title %s already exists in the board with id %s", req.Title, boardID), nil)
	} else if err != sql.ErrNoRows {
		return common.NewAppError(http.StatusInternalServerError, "Could not check list title", err)
	}

	user, appErr := resolveActingUser(h.users, r)
	if appErr != nil {
		return appErr
	}

	if _, err := h.lists.EditListByID(listID, req.Title); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not edit list", err)
	}

	return h.recordActivity(w, user, boardID,
		fmt.Sprintf("%s changed list title '%s' to '%s'", user.Email, list.Title, req.Title), model.ActivityEditList, http.StatusOK)
}

// DeleteList godoc
// @Summary      Delete a list
// @Tags         list
// @Produce      json
// @Param        boardId path string true "Board ID"
// @Param        listId path string true "List ID"
// @Success      200 {object} model.Activity
// @Failure      400 {object} common.AppError
// @Security     BearerAuth
// @Router       /list/delete/{boardId}/{listId} [delete]
func (h *ListHandler) DeleteList(w http.ResponseWriter, r *http.Request) *common.AppError {
	boardID := r.PathValue("boardId")
	listID := r.PathValue("listId")

	if _, err := h.boards.FindBoardByID(boardID); err != nil {
		return boardNotFound(boardID, err)
	}

	list, err := h.lists.FindListByID(listID)
	if err != nil {
		return listNotFound(listID, err)
	}

	user, appErr := resolveActingUser(h.users, r)
	if appErr != nil {
		return appErr
	}

	if err := h.lists.DeleteList(listID); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not delete list", err)
	}

	return h.recordActivity(w, user, boardID,
		fmt.Sprintf("%s deleted list '%s'", user.Email, list.Title), model.ActivityDeleteList, http.StatusOK)
}

func (h *ListHandler) recordActivity(w http.ResponseWriter, user *model.User, boardID, description string, activityType model.ActivityType, status int) *common.AppError {
	activity, err := h.activities.CreateActivity(user.ID, boardID, description, activityType)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not record activity", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(activity)
	return nil
}

func listNotFound(id string, err error) *common.AppError {
	if err == sql.ErrNoRows {
		return common.NewAppError(http.StatusBadRequest, fmt.Sprintf("List with id %s does not exist", id), nil)
	}
	return common.NewAppError(http.StatusInternalServerError, "Could not look up list", err)
}
