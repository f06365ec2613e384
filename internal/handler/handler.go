package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/monitoring-tool-api/internal/domain"
	"github.com/monitoring-tool-api/internal/dto"
)

// base содержит общие для всех хендлеров зависимости и хелперы ответа
type base struct {
	validator *validator.Validate
	logger    *slog.Logger
}

func newBase(logger *slog.Logger) base {
	return base{
		validator: newValidator(),
		logger:    logger,
	}
}

// newValidator создаёт валидатор, который называет поля по json-тегам
// и понимает даты в формате YYYY-MM-DD или ISO 8601 с временем
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := dto.ParseDate(fl.Field().String())
		return err == nil
	})

	return v
}

// decodeAndValidate читает JSON из тела запроса и проверяет его по тегам validate
func (b *base) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		b.respondError(w, http.StatusUnprocessableEntity, "invalid request body: "+err.Error(), nil)
		return false
	}
	return b.validate(w, dst)
}

func (b *base) validate(w http.ResponseWriter, v any) bool {
	err := b.validator.Struct(v)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]dto.FieldError, len(verrs))
		for i, fe := range verrs {
			fields[i] = dto.FieldError{Field: fe.Field(), Rule: fe.Tag()}
		}
		b.respondError(w, http.StatusUnprocessableEntity, "validation error", fields)
		return false
	}

	b.respondError(w, http.StatusUnprocessableEntity, err.Error(), nil)
	return false
}

// pathID извлекает числовой идентификатор из параметра пути
func (b *base) pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		b.respondError(w, http.StatusUnprocessableEntity, fmt.Sprintf("invalid %s", name), nil)
		return 0, false
	}
	return id, true
}

func (b *base) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		b.respondError(w, http.StatusBadRequest, "Email already exists", nil)
	case errors.Is(err, domain.ErrEmployeeNotFound):
		b.respondError(w, http.StatusNotFound, "Employee not found", nil)
	case errors.Is(err, domain.ErrLoginActivityNotFound):
		b.respondError(w, http.StatusNotFound, "Login activity not found", nil)
	case errors.Is(err, domain.ErrLeaveNotFound):
		b.respondError(w, http.StatusNotFound, "Leave not found", nil)
	case errors.Is(err, domain.ErrTaskNotFound):
		b.respondError(w, http.StatusNotFound, "Task not found", nil)
	default:
		b.logger.Error("internal error", slog.Any("error", err))
		b.respondError(w, http.StatusInternalServerError, "internal server error", nil)
	}
}

func (b *base) respondJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		b.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func (b *base) respondError(w http.ResponseWriter, status int, detail string, fields []dto.FieldError) {
	w.WriteHeader(status)
	resp := dto.ErrorResponse{Detail: detail, Errors: fields}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		b.logger.Error("failed to encode error response", slog.Any("error", err))
	}
}
