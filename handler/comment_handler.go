package handler

import (
	"encoding/json"
	"fmt"
	"go-taskboard-api/common"
	"go-taskboard-api/model"
	"go-taskboard-api/service"
	"net/http"
)

type CommentHandler struct {
	comments   *service.CommentService
	cards      *service.CardService
	boards     *service.BoardService
	users      *service.UserService
	activities *service.ActivityService
}

func NewCommentHandler(comments *service.CommentService, cards *service.CardService, boards *service.BoardService, users *service.UserService, activities *service.ActivityService) *CommentHandler {
	return &CommentHandler{comments: comments, cards: cards, boards: boards, users: users, activities: activities}
}

// CreateComment godoc
// @Summary      Comment on a card
// @Tags         comment
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID"
// @Param        cardId path string true "Card ID"
// @Param        request body model.CommentRequest true "Comment payload"
// @Success      201 {object} model.Activity
// @Failure      400 {object} common.AppError
// @Security     BearerAuth
// @Router       /comment/create/{boardId}/{cardId} [post]
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) *common.AppError {
	boardID := r.PathValue("boardId")
	cardID := r.PathValue("cardId")

	var req model.CommentRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

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

	if _, err := h.comments.CreateComment(cardID, req.Text, user.ID); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not create comment", err)
	}

	activity, err := h.activities.CreateActivity(user.ID, boardID,
		fmt.Sprintf("%s added comment to card '%s'", user.Email, card.Title), model.ActivityAddComment)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not record activity", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(activity)
	return nil
}
