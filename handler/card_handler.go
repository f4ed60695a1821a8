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

type CardHandler struct {
	cards      *service.CardService
	lists      *service.ListService
	boards     *service.BoardService
	users      *service.UserService
	activities *service.ActivityService
}

func NewCardHandler(cards *service.CardService, lists *service.ListService, boards *service.BoardService, users *service.UserService, activities *service.ActivityService) *CardHandler {
	return &CardHandler{cards: cards, lists: lists, boards: boards, users: users, activities: activities}
}

// CreateCard godoc
// @Summary      Create a card in a list
// @Tags         card
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID"
// @Param        listId path string true "List ID"
// @Param        request body model.CardCreateRequest true "Card payload"
// @Success      201 {object} model.Activity
// @Failure      400 {object} common.AppError
// @Security     BearerAuth
// @Router       /card/create/{boardId}/{listId} [post]
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) *common.AppError {
	boardID := r.PathValue("boardId")
	listID := r.PathValue("listId")

	var req model.CardCreateRequest
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

	user, appErr := resolveActingUser(h.users, r)
	if appErr != nil {
		return appErr
	}

	if _, err := h.cards.CreateCard(req.Title, listID); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not create card", err)
	}

	return h.recordActivity(w, user, boardID,
		fmt.Sprintf("%s added card '%s' in list '%s'", user.Email, req.Title, list.Title), model.ActivityAddCard, http.StatusCreated)
}

// UpdateCard godoc
// @Summary      Edit a card's title and description
// @Tags         card
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID"
// @Param        cardId path string true "Card ID"
// @Param        request body model.CardUpdateRequest true "Card payload"
// @Success      200 {object} model.Activity
// @Failure      400 {object} common.AppError
// @Security     BearerAuth
// @Router       /card/update/{boardId}/{cardId} [put]
func (h *CardHandler) UpdateCard(w http.ResponseWriter, r *http.Request) *common.AppError {
	boardID := r.PathValue("boardId")
	cardID := r.PathValue("cardId")

	var req model.CardUpdateRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	if _, err := h.cards.FindCardByID(cardID); err != nil {
		return cardNotFound(cardID, err)
	}

	if _, err := h.boards.FindBoardByID(boardID); err != nil {
		return boardNotFound(boardID, err)
	}

	user, appErr := resolveActingUser(h.users, r)
	if appErr != nil {
		return appErr
	}

	if _, err := h.cards.UpdateCard(cardID, req.Title, req.Description); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not update card", err)
	}

	return h.recordActivity(w, user, boardID,
		fmt.Sprintf("%s edited card '%s'", user.Email, req.Title), model.ActivityEditCard, http.StatusOK)
}

// MoveCard godoc
// @Summary      Move a card to another list
// @Tags         card
// @Produce      json
// @Param        boardId path string true "Board ID"
// @Param        cardId path string true "Card ID"
// @Param        listId path string true "Target list ID"
// @Success      200 {object} model.Activity
// @Failure      400 {object} common.AppError
// @Security     BearerAuth
// @Router       /card/move/{boardId}/{cardId}/{listId} [put]
func (h *CardHandler) MoveCard(w http.ResponseWriter, r *http.Request) *common.AppError {
	boardID := r.PathValue("boardId")
	cardID := r.PathValue("cardId")
	listID := r.PathValue("listId")

	card, err := h.cards.FindCardByID(cardID)
	if err != nil {
		return cardNotFound(cardID, err)
	}

	if _, err := h.boards.FindBoardByID(boardID); err != nil {
		return boardNotFound(boardID, err)
	}

	list, err := h.lists.FindListByID(listID)
	if err != nil {
		return listNotFound(listID, err)
	}
	if list.ID == card.ListID {
		return common.NewAppError(http.StatusBadRequest, "Card is already in that list", nil)
	}

	user, appErr := resolveActingUser(h.users, r)
	if appErr != nil {
		return appErr
	}

	if _, err := h.cards.MoveCard(cardID, listID); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not move card", err)
	}

	return h.recordActivity(w, user, boardID,
		fmt.Sprintf("%s moved card '%s' in list '%s'", user.Email, card.Title, list.Title), model.ActivityMoveCard, http.StatusOK)
}

// DeleteCard godoc
// @Summary      Delete a card
// @Tags         card
// @Produce      json
// @Param        boardId path string true "Board ID"
// @Param        cardId path string true "Card ID"
// @Success      200 {object} model.Activity
// @Failure      400 {object} common.AppError
// @Security     BearerAuth
// @Router       /card/delete/{boardId}/{cardId} [delete]
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) *common.AppError {
	boardID := r.PathValue("boardId")
	cardID := r.PathValue("cardId")

	card, err := h.cards.FindCardByID(cardID)
	if err != nil {
		return cardNotFound(cardID, err)
	}

	if _, err := h.boards.FindBoardByID(boardID); err != nil {
		return boardNotFound(boardID, err)
	}

	user, appErr := resolveActingUser(h.users, r)
	if appErr != nil {
		return appErr
	}

	if err := h.cards.DeleteCard(cardID); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not delete card", err)
	}

	return h.recordActivity(w, user, boardID,
		fmt.Sprintf("%s deleted card '%s'", user.Email, card.Title), model.ActivityDeleteCard, http.StatusOK)
}

func (h *CardHandler) recordActivity(w http.ResponseWriter, user *model.User, boardID, description string, activityType model.ActivityType, status int) *common.AppError {
	activity, err := h.activities.CreateActivity(user.ID, boardID, description, activityType)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not record activity", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(activity)
	return nil
}

func cardNotFound(id string, err error) *common.AppError {
	if err == sql.ErrNoRows {
		return common.NewAppError(http.StatusBadRequest, fmt.Sprintf("Card with id %s does not exist", id), nil)
	}
	return common.NewAppError(http.StatusInternalServerError, "Could not look up card", err)
}
