// Package register реализует HTTP-обработчик регистрации пользователя.
package register

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/healthmon/auth-backend/internal/lib/fieldmap"
	"github.com/healthmon/auth-backend/internal/lib/sl"
	"github.com/healthmon/auth-backend/internal/models"
)

// Service описывает бизнес-логику регистрации.
type Service interface {
	Register(ctx context.Context, fields fieldmap.FieldMap) models.AuthResult
}

// Handler обрабатывает POST /api/auth/register.
type Handler struct {
	log     *slog.Logger
	service Service
	decoder fieldmap.Decoder
}

// New создает обработчик регистрации.
func New(log *slog.Logger, service Service, decoder fieldmap.Decoder) *Handler {
	return &Handler{
		log:     log,
		service: service,
		decoder: decoder,
	}
}

// ServeHTTP godoc
// @Summary Регистрация пользователя
// @Description Сохраняет пользователя. Ответ всегда 200, результат передаётся полем message.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body object true "username, age, gender, contact, email, password, userType"
// @Success 200 {object} models.AuthResult "User Registered, Email already exists, Registration Failed или Database Error"
// @Failure 405 "Метод не поддерживается"
// @Router /api/auth/register [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if r.Method != http.MethodPost {
		log.Debug("method not allowed", slog.String("method", r.Method))
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error("failed to read request body", sl.Err(err))
		panic(http.ErrAbortHandler)
	}

	fields := h.decoder.Decode(string(body))
	log.Debug("request body decoded", slog.Int("fields", len(fields)))

	result := h.service.Register(r.Context(), fields)
	log.Debug("request handled", slog.Bool("ok", result.OK()), slog.String("message", result.Message))
	render.JSON(w, r, result)
}
