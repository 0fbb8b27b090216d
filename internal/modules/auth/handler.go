package auth

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nthanfp/vhiweb-assignment/internal/web"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public login endpoint.
func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/login", h.login)
}

// RegisterProtectedRoutes mounts endpoints that require an authenticated user.
func (h *Handler) RegisterProtectedRoutes(router chi.Router) {
	router.Get("/profile", h.profile)
	router.Post("/logout", h.logout)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req request
	if err := web.Decode(r, &req); err != nil {
		web.Fail(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			web.Fail(w, http.StatusUnauthorized, "Invalid credentials.")
			return
		}
		web.Fail(w, http.StatusInternalServerError, "Login failed.")
		return
	}

	web.OK(w, http.StatusOK, "Login successful.", web.Payload{"token": token})
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	u := UserFromContext(r.Context())
	web.OK(w, http.StatusOK, "Profile retrieved.", web.Payload{"user": u})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context(), BearerToken(r)); err != nil {
		web.Fail(w, http.StatusInternalServerError, "Logout failed.")
		return
	}
	web.OK(w, http.StatusOK, "Logged out successfully.", nil)
}
