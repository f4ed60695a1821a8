package router

import (
	"go-taskboard-api/common"
	"go-taskboard-api/handler"
	"net/http"

	_ "go-taskboard-api/docs"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// NewRouter mounts every endpoint. Auth endpoints, health and swagger are
// open; everything else sits behind the guard.
func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	boardHandler *handler.BoardHandler,
	listHandler *handler.ListHandler,
	cardHandler *handler.CardHandler,
	commentHandler *handler.CommentHandler,
	activityHandler *handler.ActivityHandler,
	guard *handler.AuthGuard,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	mux.Handle("POST /auth/register", handler.ErrorHandlingMiddleware(authHandler.Register))
	mux.Handle("POST /auth/login", handler.ErrorHandlingMiddleware(authHandler.Login))
	mux.Handle("GET /auth/refresh", handler.ErrorHandlingMiddleware(authHandler.Refresh))
	mux.Handle("POST /auth/refresh", handler.ErrorHandlingMiddleware(authHandler.Refresh))
	mux.Handle("POST /auth/logout", handler.ErrorHandlingMiddleware(authHandler.Logout))

	protected := func(h func(http.ResponseWriter, *http.Request) *common.AppError) http.Handler {
		return guard.Middleware(handler.ErrorHandlingMiddleware(h))
	}

	mux.Handle("GET /user/{id}", protected(userHandler.GetUserByID))
	mux.Handle("DELETE /user/{id}", protected(userHandler.DeleteUserByID))

	mux.Handle("POST /board/create", protected(boardHandler.CreateBoard))
	mux.Handle("GET /board/all", protected(boardHandler.GetAllBoards))
	mux.Handle("GET /board/{id}", protected(boardHandler.GetBoardByID))
	mux.Handle("PUT /board/update/{id}", protected(boardHandler.UpdateBoardByID))
	mux.Handle("DELETE /board/delete/{id}", protected(boardHandler.DeleteBoardByID))

	mux.Handle("POST /list/create/{boardId}", protected(listHandler.CreateList))
	mux.Handle("PUT /list/edit/{boardId}/{listId}", protected(listHandler.EditListByID))
	mux.Handle("DELETE /list/delete/{boardId}/{listId}", protected(listHandler.DeleteList))

	mux.Handle("POST /card/create/{boardId}/{listId}", protected(cardHandler.CreateCard))
	mux.Handle("PUT /card/update/{boardId}/{cardId}", protected(cardHandler.UpdateCard))
	mux.Handle("PUT /card/move/{boardId}/{cardId}/{listId}", protected(cardHandler.MoveCard))
	mux.Handle("DELETE /card/delete/{boardId}/{cardId}", protected(cardHandler.DeleteCard))

	mux.Handle("POST /comment/create/{boardId}/{cardId}", protected(commentHandler.CreateComment))

	mux.Handle("GET /activity/all/{boardId}", protected(activityHandler.GetAllActivityByBoardID))

	return mux
}
