package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/clothing-store/internal/api/middleware"
	"github.com/aaravmahajanofficial/clothing-store/internal/errors"
	"github.com/aaravmahajanofficial/clothing-store/internal/models"
	service "github.com/aaravmahajanofficial/clothing-store/internal/services"
	"github.com/aaravmahajanofficial/clothing-store/internal/utils"
	"github.com/aaravmahajanofficial/clothing-store/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type UserHandler struct {
	userService   service.UserService
	validator     *validator.Validate
	secureCookies bool
}

func NewUserHandler(userService service.UserService, secureCookies bool) *UserHandler {
	return &UserHandler{userService: userService, validator: utils.NewValidator(), secureCookies: secureCookies}
}

func (h *UserHandler) setTokenCookie(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Creates the account together with its client profile.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			user	body		models.RegisterRequest	true	"Registration details"
//	@Success		201		{object}	models.User
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		409		{object}	response.ErrorResponse	"Username or email already registered"
//	@Failure		500		{object}	response.ErrorResponse
//	@Router			/registration/ [post]
func (h *UserHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.RegisterRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid registration input")
			return
		}

		user, err := h.userService.Register(r.Context(), &req)
		if err != nil {
			logger.Warn("User registration failed", slog.String("username", req.Username), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("User registered", slog.String("userId", user.ID.String()))
		response.Success(w, http.StatusCreated, user)
	}
}

// Login godoc
//
//	@Summary		Log in
//	@Description	Returns a JWT and sets it as the access_token cookie. Repeated failures are rate limited per username.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		models.LoginRequest	true	"Credentials"
//	@Success		200			{object}	models.LoginResponse
//	@Failure		401			{object}	models.LoginResponse	"Invalid username or password"
//	@Failure		429			{object}	models.LoginResponse	"Too many login attempts"
//	@Router			/login/ [post]
func (h *UserHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid login input")
			return
		}

		logger = logger.With(slog.String("username", req.Username))

		resp, err := h.userService.Login(r.Context(), &req)
		if err != nil {
			logger.Error("Login failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		if !resp.Success {
			status := http.StatusUnauthorized
			if resp.RetryAfter > 0 {
				status = http.StatusTooManyRequests
			}

			logger.Warn("Login rejected", slog.Int("status", status))
			response.WriteJson(w, status, resp)
			return
		}

		h.setTokenCookie(w, resp.Token, resp.ExpiresIn)

		logger.Info("User logged in")
		response.WriteJson(w, http.StatusOK, resp)
	}
}

// Logout godoc
//
//	@Summary	Log out
//	@Tags		Users
//	@Success	200
//	@Success	303
//	@Router		/logout/ [post]
func (h *UserHandler) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		h.setTokenCookie(w, "", -1)

		middleware.LoggerFromContext(r.Context()).Info("User logged out")

		if wantsJSON(r) {
			response.Success(w, http.StatusOK, map[string]string{"message": "Logged out"})
			return
		}

		seeOther(w, r, homePath)
	}
}

// Profile godoc
//
//	@Summary		Current user's profile
//	@Description	The account, its client profile and a page of its orders.
//	@Tags			Users
//	@Produce		json
//	@Param			page	query		int	false	"Page number (default 1)"		minimum(1)
//	@Param			size	query		int	false	"Page size (default 10, max 50)"	minimum(1)	maximum(50)
//	@Success		200		{object}	models.ProfileResponse
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse	"User not found"
//	@Security		BearerAuth
//	@Router			/profile/ [get]
func (h *UserHandler) Profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized profile access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		page, size := utils.ParsePagination(r)

		profile, err := h.userService.Profile(r.Context(), claims.UserID, page, size)
		if err != nil {
			logger.Warn("Failed to load profile", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("User profile accessed")
		response.Success(w, http.StatusOK, profile)
	}
}
