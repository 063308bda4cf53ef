package film

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/filmorate/internal/platform/request"
	"github.com/taibuivan/filmorate/internal/platform/respond"
	"github.com/taibuivan/filmorate/pkg/convert"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listFilms)
	router.Post("/", handler.createFilm)
	router.Put("/", handler.updateFilm)
	router.Get("/popular", handler.popularFilms)

	router.Route("/{id}", func(filmRoute chi.Router) {
		filmRoute.Get("/", handler.getFilm)
		filmRoute.Delete("/", handler.deleteFilm)

		// Likes
		filmRoute.Put("/like/{userId}", handler.addLike)
		filmRoute.Delete("/like/{userId}", handler.removeLike)
	})
}

func (handler *Handler) listFilms(writer http.ResponseWriter, request *http.Request) {
	films, err := handler.service.ListFilms(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, films)
}

func (handler *Handler) getFilm(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	found, err := handler.service.GetFilm(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, found)
}

func (handler *Handler) createFilm(writer http.ResponseWriter, request *http.Request) {
	var input Film
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateFilm(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateFilm(writer http.ResponseWriter, request *http.Request) {
	var input Film
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateFilm(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteFilm(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteFilm(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) addLike(writer http.ResponseWriter, request *http.Request) {
	filmID, userID, err := likeParams(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AddLike(request.Context(), filmID, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) removeLike(writer http.ResponseWriter, request *http.Request) {
	filmID, userID, err := likeParams(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.RemoveLike(request.Context(), filmID, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// popularFilms treats a missing or malformed count as the default.
func (handler *Handler) popularFilms(writer http.ResponseWriter, request *http.Request) {
	count := convert.ToIntD(request.URL.Query().Get("count"), DefaultPopularCount)

	films, err := handler.service.Popular(request.Context(), count)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, films)
}

func likeParams(request *http.Request) (int64, int64, error) {
	filmID, err := requestutil.ID(request, "id")
	if err != nil {
		return 0, 0, err
	}
	userID, err := requestutil.ID(request, "userId")
	if err != nil {
		return 0, 0, err
	}
	return filmID, userID, nil
}
