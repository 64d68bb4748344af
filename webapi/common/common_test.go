package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amirasaad/minibank/pkg/domain"
	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/amirasaad/minibank/pkg/domain/user"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorToStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrInvalidCredentials, fiber.StatusUnauthorized},
		{account.ErrNotOwner, fiber.StatusUnauthorized},
		{user.ErrInvalidNationalID, fiber.StatusBadRequest},
		{account.ErrInvalidAmountPrecision, fiber.StatusBadRequest},
		{account.ErrAmountMustBePositive, fiber.StatusBadRequest},
		{account.ErrInsufficientFunds, fiber.StatusBadRequest},
		{account.ErrCannotTransferToSameAccount, fiber.StatusBadRequest},
		{account.ErrAccountNotFound, fiber.StatusNotFound},
		{user.ErrUserNotFound, fiber.StatusNotFound},
		{user.ErrNationalIDTaken, fiber.StatusConflict},
		{fmt.Errorf("wrapped: %w", account.ErrInsufficientFunds), fiber.StatusBadRequest},
		{fiber.ErrTooManyRequests, fiber.StatusTooManyRequests},
		{errors.New("boom"), fiber.StatusInternalServerError},
		{nil, fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrorToStatusCode(tt.err), "%v", tt.err)
	}
}

type amountInput struct {
	Amount     decimal.Decimal `json:"amount" validate:"required,gt=0"`
	NationalID string          `json:"national_id" validate:"required,number,len=11"`
}

func bindApp() *fiber.App {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		input, err := BindAndValidate[amountInput](c)
		if input == nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "ok", input.Amount.String())
	})
	return app
}

func post(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestBindAndValidate(t *testing.T) {
	app := bindApp()

	resp := post(t, app, `{"amount": 10.5, "national_id": "11111111111"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var ok Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ok))
	assert.Equal(t, "10.5", ok.Data)

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"zero amount", `{"amount": 0, "national_id": "11111111111"}`, "amount"},
		{"negative amount", `{"amount": -1, "national_id": "11111111111"}`, "amount"},
		{"short national id", `{"amount": 1, "national_id": "123"}`, "national_id"},
		{"non numeric national id", `{"amount": 1, "national_id": "1111111111a"}`, "national_id"},
		{"signed national id", `{"amount": 1, "national_id": "+1111111111"}`, "national_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, app, tt.body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "application/problem+json", resp.Header.Get(fiber.HeaderContentType))

			var pd struct {
				ProblemDetails
				Errors []FieldError `json:"errors"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
			assert.Equal(t, "Validation failed", pd.Title)
			require.Len(t, pd.Errors, 1)
			assert.Equal(t, tt.field, pd.Errors[0].Field)
		})
	}
}

func TestBindAndValidate_Malformed(t *testing.T) {
	resp := post(t, bindApp(), `{"amount":`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestProblemDetailsJSON_HidesInternalErrors(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return ProblemDetailsJSON(c, "Failed", errors.New("connection refused"))
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var pd ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	assert.Empty(t, pd.Detail)
	assert.Equal(t, "/", pd.Instance)
}
