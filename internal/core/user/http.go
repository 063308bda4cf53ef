package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/filmorate/internal/platform/request"
	"github.com/taibuivan/filmorate/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listUsers)
	router.Post("/", handler.createUser)
	router.Put("/", handler.updateUser)

	router.Route("/{id}", func(userRoute chi.Router) {
		userRoute.Get("/", handler.getUser)
		userRoute.Delete("/", handler.deleteUser)

		// Friendship
		userRoute.Get("/friends", handler.listFriends)
		userRoute.Put("/friends/{friendId}", handler.addFriend)
		userRoute.Delete("/friends/{friendId}", handler.removeFriend)
		userRoute.Get("/friends/common/{otherId}", handler.commonFriends)
	})
}

func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	users, err := handler.service.ListUsers(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, users)
}

func (handler *Handler) getUser(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	found, err := handler.service.GetUser(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, found)
}

func (handler *Handler) createUser(writer http.ResponseWriter, request *http.Request) {
	var input User
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateUser(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateUser(writer http.ResponseWriter, request *http.Request) {
	var input User
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateUser(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteUser(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteUser(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) listFriends(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	friends, err := handler.service.Friends(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, friends)
}

func (handler *Handler) addFriend(writer http.ResponseWriter, request *http.Request) {
	id, friendID, err := pairParams(request, "friendId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AddFriend(request.Context(), id, friendID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) removeFriend(writer http.ResponseWriter, request *http.Request) {
	id, friendID, err := pairParams(request, "friendId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.RemoveFriend(request.Context(), id, friendID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) commonFriends(writer http.ResponseWriter, request *http.Request) {
	id, otherID, err := pairParams(request, "otherId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	common, err := handler.service.CommonFriends(request.Context(), id, otherID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, common)
}

// pairParams reads {id} and the named second identifier.
func pairParams(request *http.Request, other string) (int64, int64, error) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		return 0, 0, err
	}
	otherID, err := requestutil.ID(request, other)
	if err != nil {
		return 0, 0, err
	}
	return id, otherID, nil
}
