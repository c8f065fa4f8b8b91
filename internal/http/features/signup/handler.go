package signup

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/tendant/simple-signup-slim/internal/domain"
	"github.com/tendant/simple-signup-slim/internal/httputil"
	"github.com/tendant/simple-signup-slim/internal/registration"
)

// usernameRegex matches letters, numbers and @/./+/-/_ characters.
var usernameRegex = regexp.MustCompile(`^[\w.@+-]+$`)

const maxUsernameLen = 30

// Handler handles registration and activation endpoints.
type Handler struct {
	logger  *slog.Logger
	service *registration.Service
}

// NewHandler creates a new signup handler.
func NewHandler(logger *slog.Logger, service *registration.Service) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// RegisterRequest represents a registration request.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

// AccountResponse represents an account in API responses. The password hash
// and activation key never leave the service.
type AccountResponse struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Active   bool      `json:"active"`
	JoinedAt time.Time `json:"joined_at"`
}

func accountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:       a.ID.String(),
		Username: a.Username,
		Email:    a.Email,
		Active:   a.Active,
		JoinedAt: a.JoinedAt,
	}
}

// Register handles user registration.
// POST /v1/registration/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validateRegisterRequest(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	account, err := h.service.Register(r.Context(), req.Username, req.Email, req.Password, true)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			httputil.Error(w, http.StatusConflict, "username already taken")
			return
		}
		h.logger.Error("registration failed", "error", err)
		httputil.Error(w, http.StatusInternalServerError, "registration failed")
		return
	}

	httputil.JSON(w, http.StatusCreated, accountResponse(account))
}

// Activate handles account activation.
// GET /v1/registration/activate/{key}
//
// Unknown, expired and already-used keys all produce the same generic
// response so callers cannot probe which keys exist.
func (h *Handler) Activate(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	account, err := h.service.Activate(r.Context(), key)
	if err != nil {
		if errors.Is(err, domain.ErrNotActivated) {
			httputil.Error(w, http.StatusGone, "activation failed")
			return
		}
		h.logger.Error("activation failed", "error", err)
		httputil.Error(w, http.StatusInternalServerError, "activation failed")
		return
	}

	httputil.JSON(w, http.StatusOK, accountResponse(account))
}

func validateRegisterRequest(req *RegisterRequest) error {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return errors.New("username, email and password are required")
	}
	if len(req.Username) > maxUsernameLen || !usernameRegex.MatchString(req.Username) {
		return errors.New("invalid username: may contain only letters, numbers and @/./+/-/_ characters, up to 30 characters")
	}
	if !strings.Contains(req.Email, "@") {
		return domain.ErrInvalidEmail
	}
	if req.Password != req.PasswordConfirm {
		return domain.ErrPasswordMismatch
	}
	return nil
}
