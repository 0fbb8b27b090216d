package product

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/nthanfp/vhiweb-assignment/internal/modules/auth"
	"github.com/nthanfp/vhiweb-assignment/internal/validate"
	"github.com/nthanfp/vhiweb-assignment/internal/web"
)

// Handler exposes the owner-scoped product endpoints.
type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the product endpoints. The router must already run the
// auth middleware.
func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Route("/products", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/{id}", h.get)
		r.Put("/{id}", h.update)
		r.Delete("/{id}", h.delete)
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	caller := auth.UserFromContext(r.Context())

	products, err := h.service.List(r.Context(), caller.ID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if products == nil {
		products = []*Product{}
	}

	web.OK(w, http.StatusOK, "Product list retrieved.", web.Payload{"products": products})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	caller := auth.UserFromContext(r.Context())

	var req CreateRequest
	if err := web.Decode(r, &req); err != nil {
		web.Fail(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	p, err := h.service.Create(r.Context(), caller.ID, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	web.OK(w, http.StatusCreated, "Product created successfully.", web.Payload{"product": p})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	caller := auth.UserFromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	p, err := h.service.Get(r.Context(), caller.ID, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	web.OK(w, http.StatusOK, "Product detail retrieved.", web.Payload{"product": p})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	caller := auth.UserFromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	var req UpdateRequest
	if err := web.Decode(r, &req); err != nil {
		web.Fail(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	p, err := h.service.Update(r.Context(), caller.ID, id, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	web.OK(w, http.StatusOK, "Product updated successfully.", web.Payload{"product": p})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	caller := auth.UserFromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := h.service.Delete(r.Context(), caller.ID, id); err != nil {
		h.fail(w, r, err)
		return
	}

	web.OK(w, http.StatusOK, "Product deleted successfully.", nil)
}

// parseID reads the path id. An unparseable id is indistinguishable from an
// unknown one, so callers turn the error into a 404.
func parseID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	var verrs validate.Errors
	switch {
	case errors.As(err, &verrs):
		web.FailValidation(w, verrs)
	case errors.Is(err, ErrNotOwned):
		web.Fail(w, http.StatusForbidden, "Unauthorized")
	case errors.Is(err, ErrNotFound):
		// Missing ids get the platform-default 404 body, not the envelope.
		http.NotFound(w, r)
	default:
		web.Fail(w, http.StatusInternalServerError, "Something went wrong.")
	}
}
