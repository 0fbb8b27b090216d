package user

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nthanfp/vhiweb-assignment/internal/validate"
	"github.com/nthanfp/vhiweb-assignment/internal/web"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public signup endpoint.
func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/register", h.registerUser)
}

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := web.Decode(r, &req); err != nil {
		web.Fail(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	u, err := h.service.RegisterUser(r.Context(), req)
	if err != nil {
		var verrs validate.Errors
		switch {
		case errors.As(err, &verrs):
			web.FailValidation(w, verrs)
		case errors.Is(err, ErrEmailTaken):
			web.Fail(w, http.StatusConflict, "Email already registered.")
		default:
			web.Fail(w, http.StatusInternalServerError, "Registration failed.")
		}
		return
	}

	web.OK(w, http.StatusCreated, "User registered successfully.", web.Payload{"user": u})
}
