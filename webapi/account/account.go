package account

import (
	"github.com/amirasaad/minibank/pkg/config"
	"github.com/amirasaad/minibank/pkg/middleware"
	accountsvc "github.com/amirasaad/minibank/pkg/service/account"
	authsvc "github.com/amirasaad/minibank/pkg/service/auth"
	"github.com/amirasaad/minibank/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Routes registers the account endpoints. All of them require a session.
func Routes(
	app *fiber.App,
	accountSvc *accountsvc.Service,
	authSvc *authsvc.Service,
	cfg *config.Auth,
) {
	group := app.Group("/account", middleware.JwtProtected(authSvc, cfg))
	group.Post("/deposit", Deposit(accountSvc))
	group.Post("/withdraw", Withdraw(accountSvc))
	group.Post("/transfer", Transfer(accountSvc))
	group.Get("/statement", Statement(accountSvc))
}

// Deposit returns a Fiber handler for depositing an amount into the
// caller's account.
// @Summary Deposit funds
// @Description Adds a strictly positive amount (at most 2 decimal places) to the caller's account. Returns the new balance and the ledger record.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body DepositRequest true "Deposit details"
// @Success 200 {object} common.Response "Deposit successful"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /account/deposit [post]
// @Security CookieAuth
func Deposit(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, "missing user context", fiber.StatusUnauthorized)
		}
		input, err := common.BindAndValidate[DepositRequest](c)
		if input == nil {
			return err // error response already written
		}
		log.Infof("Deposit handler: user %s, amount %s", user.ID, input.Amount)
		res, err := accountSvc.Deposit(c.UserContext(), user.ID, input.Amount)
		if err != nil {
			log.Errorf("Failed to deposit: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to deposit", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Deposit successful", toOperationResponse(res))
	}
}

// Withdraw returns a Fiber handler for withdrawing from the caller's
// account after re-checking their password.
// @Summary Withdraw funds
// @Description Withdraws a strictly positive amount from the caller's account. The password is verified again and the balance may not go negative.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body WithdrawRequest true "Withdrawal details"
// @Success 200 {object} common.Response "Withdrawal successful"
// @Failure 400 {object} common.ProblemDetails "Invalid request or insufficient funds"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /account/withdraw [post]
// @Security CookieAuth
func Withdraw(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, "missing user context", fiber.StatusUnauthorized)
		}
		input, err := common.BindAndValidate[WithdrawRequest](c)
		if input == nil {
			return err // error response already written
		}
		log.Infof("Withdraw handler: user %s, amount %s", user.ID, input.Amount)
		res, err := accountSvc.Withdraw(c.UserContext(), user.ID, input.Password, input.Amount)
		if err != nil {
			log.Errorf("Failed to withdraw: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to withdraw", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Withdrawal successful", toOperationResponse(res))
	}
}

// Transfer returns a Fiber handler for moving funds to the account of
// another customer identified by national ID.
// @Summary Transfer funds
// @Description Moves a strictly positive amount to the account of the customer with the given national ID. The password is verified again. Both sides are updated atomically.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body TransferRequest true "Transfer details"
// @Success 200 {object} common.Response "Transfer successful"
// @Failure 400 {object} common.ProblemDetails "Invalid request, insufficient funds or self transfer"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 404 {object} common.ProblemDetails "Destination not found"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /account/transfer [post]
// @Security CookieAuth
func Transfer(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, "missing user context", fiber.StatusUnauthorized)
		}
		input, err := common.BindAndValidate[TransferRequest](c)
		if input == nil {
			return err // error response already written
		}
		res, err := accountSvc.Transfer(
			c.UserContext(),
			user.ID,
			input.Password,
			input.DestinationNationalID,
			input.Amount,
		)
		if err != nil {
			log.Errorf("Failed to transfer: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to transfer", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transfer successful", toTransferResponse(res))
	}
}

// Statement returns a Fiber handler listing the caller's balance and ledger.
// @Summary Account statement
// @Description Returns the current balance and every ledger record of the caller's account, oldest first
// @Tags accounts
// @Produce json
// @Success 200 {object} common.Response "Statement"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /account/statement [get]
// @Security CookieAuth
func Statement(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, "missing user context", fiber.StatusUnauthorized)
		}
		st, err := accountSvc.Statement(c.UserContext(), user.ID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to load statement", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Statement", toStatementResponse(st))
	}
}
