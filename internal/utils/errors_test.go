package utils_test

import (
	"database/sql"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"

	"github.com/plateful/Plateful_Backend/internal/constants"
	"github.com/plateful/Plateful_Backend/internal/utils"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		statusCode int
		message    string
		wantMsg    string
	}{
		{
			name:       "Basic error",
			err:        errors.New("base error"),
			statusCode: http.StatusBadRequest,
			message:    "Error message",
			wantMsg:    "Error message",
		},
		{
			name:       "Internal server error",
			err:        errors.New("some internal error"),
			statusCode: http.StatusInternalServerError,
			message:    "Internal server error",
			wantMsg:    "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := utils.New(tt.err, tt.statusCode, tt.message)

			if appErr.Error() != tt.wantMsg {
				t.Errorf("New().Error() = %v, want %v", appErr.Error(), tt.wantMsg)
			}

			if appErr.StatusCode != tt.statusCode {
				t.Errorf("New().StatusCode = %v, want %v", appErr.StatusCode, tt.statusCode)
			}

			if !errors.Is(appErr.Unwrap(), tt.err) {
				t.Errorf("New().Unwrap() = %v, want %v", appErr.Unwrap(), tt.err)
			}
		})
	}
}

func TestNewValidationError(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		message string
		want    string
	}{
		{
			name:    "Basic validation error",
			field:   "score",
			message: "Score is out of range",
			want:    "score: Score is out of range",
		},
		{
			name:    "Empty field",
			field:   "",
			message: "General validation error",
			want:    "General validation error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := utils.NewValidationError(tt.field, tt.message)

			if appErr.Error() != tt.want {
				t.Errorf("NewValidationError().Error() = %v, want %v", appErr.Error(), tt.want)
			}

			if appErr.StatusCode != http.StatusBadRequest {
				t.Errorf("NewValidationError().StatusCode = %v, want %v", appErr.StatusCode, http.StatusBadRequest)
			}

			if appErr.Field != tt.field {
				t.Errorf("NewValidationError().Field = %v, want %v", appErr.Field, tt.field)
			}

			if !errors.Is(appErr.Unwrap(), utils.ErrValidation) {
				t.Errorf("NewValidationError().Unwrap() = %v, want %v", appErr.Unwrap(), utils.ErrValidation)
			}
		})
	}
}

func TestNewNotFoundError(t *testing.T) {
	tests := []struct {
		name         string
		resourceType string
		identifier   interface{}
		want         string
	}{
		{
			name:         "Int identifier",
			resourceType: "Recipe",
			identifier:   42,
			want:         "Recipe with identifier '42' not found",
		},
		{
			name:         "String identifier",
			resourceType: "CatalogItem",
			identifier:   "thai",
			want:         "CatalogItem with identifier 'thai' not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := utils.NewNotFoundError(tt.resourceType, tt.identifier)

			if appErr.Error() != tt.want {
				t.Errorf("NewNotFoundError().Error() = %v, want %v", appErr.Error(), tt.want)
			}

			if appErr.StatusCode != http.StatusNotFound {
				t.Errorf("NewNotFoundError().StatusCode = %v, want %v", appErr.StatusCode, http.StatusNotFound)
			}
		})
	}
}

func TestNewDuplicateError(t *testing.T) {
	appErr := utils.NewDuplicateError("Review", "user_id", 7)

	if appErr.StatusCode != http.StatusConflict {
		t.Errorf("NewDuplicateError().StatusCode = %v, want %v", appErr.StatusCode, http.StatusConflict)
	}

	if appErr.Field != "user_id" {
		t.Errorf("NewDuplicateError().Field = %v, want %v", appErr.Field, "user_id")
	}

	if !errors.Is(appErr.Unwrap(), utils.ErrDuplicate) {
		t.Errorf("NewDuplicateError().Unwrap() = %v, want %v", appErr.Unwrap(), utils.ErrDuplicate)
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantErr    error
	}{
		{
			name:       "Existing AppError passes through",
			err:        utils.NewForbiddenError("no"),
			wantStatus: http.StatusForbidden,
			wantErr:    utils.ErrForbidden,
		},
		{
			name:       "Sentinel not found",
			err:        utils.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantErr:    utils.ErrNotFound,
		},
		{
			name:       "Postgres unique violation",
			err:        &pq.Error{Code: pq.ErrorCode(constants.PGErrorDuplicateConstraint), Constraint: "idx_reviews_recipe_user"},
			wantStatus: http.StatusConflict,
			wantErr:    utils.ErrDuplicate,
		},
		{
			name:       "Postgres foreign key violation",
			err:        &pq.Error{Code: pq.ErrorCode(constants.PGErrorForeignKeyConstraint)},
			wantStatus: http.StatusBadRequest,
			wantErr:    utils.ErrBadRequest,
		},
		{
			name:       "Postgres not null violation",
			err:        &pq.Error{Code: pq.ErrorCode(constants.PGErrorNotNullConstraint), Column: "name"},
			wantStatus: http.StatusBadRequest,
			wantErr:    utils.ErrValidation,
		},
		{
			name:       "No rows maps to not found",
			err:        sql.ErrNoRows,
			wantStatus: http.StatusNotFound,
			wantErr:    utils.ErrNotFound,
		},
		{
			name:       "Duplicate key message maps to conflict",
			err:        errors.New(`duplicate key value violates unique constraint "recipes_pkey"`),
			wantStatus: http.StatusConflict,
			wantErr:    utils.ErrDuplicate,
		},
		{
			name:       "Unknown error maps to internal",
			err:        errors.New("something broke"),
			wantStatus: http.StatusInternalServerError,
			wantErr:    utils.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := utils.ParseError(tt.err)

			if appErr.StatusCode != tt.wantStatus {
				t.Errorf("ParseError().StatusCode = %v, want %v", appErr.StatusCode, tt.wantStatus)
			}

			if !errors.Is(appErr.Err, tt.wantErr) {
				t.Errorf("ParseError().Err = %v, want %v", appErr.Err, tt.wantErr)
			}
		})
	}
}

func TestParseError_ExtractsConstraintField(t *testing.T) {
	pqErr := &pq.Error{
		Code:       pq.ErrorCode(constants.PGErrorDuplicateConstraint),
		Constraint: "uq_idx_user_id",
	}

	appErr := utils.ParseError(pqErr)

	if appErr.Field != "user_id" {
		t.Errorf("ParseError().Field = %v, want %v", appErr.Field, "user_id")
	}

	if appErr.Message != constants.MsgResourceAlreadyExists {
		t.Errorf("ParseError().Message = %v, want %v", appErr.Message, constants.MsgResourceAlreadyExists)
	}
}

func TestErrorCheckers(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		checker func(error) bool
		want    bool
	}{
		{"NotFound AppError", utils.NewNotFoundError("Recipe", 1), utils.IsNotFoundError, true},
		{"NotFound sentinel", utils.ErrNotFound, utils.IsNotFoundError, true},
		{"NotFound mismatch", utils.NewBadRequestError("bad"), utils.IsNotFoundError, false},
		{"Duplicate AppError", utils.NewDuplicateError("Review", "user_id", 1), utils.IsDuplicateError, true},
		{"Validation AppError", utils.NewValidationError("score", "out of range"), utils.IsValidationError, true},
		{"Validation mismatch", utils.NewNotFoundError("Recipe", 1), utils.IsValidationError, false},
		{"Forbidden AppError", utils.NewForbiddenError(""), utils.IsForbiddenError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.checker(tt.err); got != tt.want {
				t.Errorf("checker(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestStatusCode(t *testing.T) {
	if got := utils.StatusCode(utils.NewNotFoundError("Recipe", 1)); got != http.StatusNotFound {
		t.Errorf("StatusCode() = %v, want %v", got, http.StatusNotFound)
	}

	if got := utils.StatusCode(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("StatusCode() = %v, want %v", got, http.StatusInternalServerError)
	}
}
