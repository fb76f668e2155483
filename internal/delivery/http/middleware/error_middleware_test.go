package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "nosh/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newErrorContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestHandleHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "domain error keeps its status and code",
			err:          errors.WithStack(domainerrors.ErrOutsideZone),
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: "OUTSIDE_ZONE",
		},
		{
			name:         "echo http error passes through",
			err:          echo.NewHTTPError(http.StatusNotFound, "route not found"),
			expectedCode: http.StatusNotFound,
			expectedBody: "HTTP_ERROR",
		},
		{
			name:         "unknown error becomes internal",
			err:          errors.New("database exploded"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newErrorContext(t)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			assert.Contains(t, rec.Body.String(), `"success":false`)
		})
	}
}

func TestHandleHTTPErrorSkipsCommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newErrorContext(t)

	c.Response().WriteHeader(http.StatusOK)
	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}
