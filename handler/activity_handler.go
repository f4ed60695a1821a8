package handler

import (
	"encoding/json"
	"go-taskboard-api/common"
	"go-taskboard-api/service"
	"net/http"
)

type ActivityHandler struct {
	activities *service.ActivityService
	boards     *service.BoardService
}

func NewActivityHandler(activities *service.ActivityService, boards *service.BoardService) *ActivityHandler {
	return &ActivityHandler{activities: activities, boards: boards}
}

// GetAllActivityByBoardID godoc
// @Summary      List a board's activity feed
// @Tags         activity
// @Produce      json
// @Param        boardId path string true "Board ID"
// @Success      200 {array} model.Activity
// @Failure      400 {object} common.AppError
// @Security     BearerAuth
// @Router       /activity/all/{boardId} [get]
func (h *ActivityHandler) GetAllActivityByBoardID(w http.ResponseWriter, r *http.Request) *common.AppError {
	boardID := r.PathValue("boardId")

	if _, err := h.boards.FindBoardByID(boardID); err != nil {
		return boardNotFound(boardID, err)
	}

	activities, err := h.activities.GetAllActivityByBoardID(boardID)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve activity", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(activities)
	return nil
}
