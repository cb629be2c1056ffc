package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"trackbudget/internal/auth"
	"trackbudget/internal/config"
	"trackbudget/internal/handler"
	"trackbudget/internal/model"
)

// Handlers groups everything Register wires into the route table.
type Handlers struct {
	Auth          *handler.AuthHandler
	Profile       *handler.ProfileHandler
	Billing       *handler.BillingHandler
	Ledger        *handler.LedgerHandler
	Retirement    *handler.RetirementHandler
	Savings       *handler.SavingsHandler
	Bills         *handler.BillHandler
	Expenses      *handler.CrudHandler[model.Expense, *model.Expense]
	Income        *handler.CrudHandler[model.Income, *model.Income]
	Assets        *handler.CrudHandler[model.Asset, *model.Asset]
	Contributions *handler.CrudHandler[model.RetirementContribution, *model.RetirementContribution]
	Calendar      *handler.CrudHandler[model.CalendarNote, *model.CalendarNote]
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, tokenStore auth.TokenStoreInterface, h Handlers) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/signup", h.Auth.Signup)
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/refresh", h.Auth.Refresh)
	api.POST("/auth/logout", h.Auth.Logout)

	// Everything else requires a bearer credential. A missing token is
	// Unauthenticated; an invalid, expired or revoked one is Forbidden.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if errors.Is(err, echojwt.ErrJWTMissing) {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing credentials")
			}
			return echo.NewHTTPError(http.StatusForbidden, "invalid or expired credentials")
		},
	}), requireActiveUser(tokenStore))

	// Profile and account lifecycle
	secured.GET("/profile", h.Profile.GetProfile)
	secured.POST("/profile", h.Profile.SaveProfile)
	secured.PUT("/profile/password", h.Profile.ChangePassword)
	secured.PUT("/profile/upgrade", h.Profile.Upgrade)
	secured.DELETE("/account", h.Profile.DeleteAccount)
	secured.GET("/admin/users", h.Profile.ListUsers)

	// Billing sessions
	secured.POST("/billing/checkout-session", h.Billing.CreateCheckoutSession)
	secured.POST("/billing/portal-session", h.Billing.CreatePortalSession)

	// Aggregate views
	secured.GET("/dashboard", h.Ledger.Dashboard)
	secured.GET("/history", h.Ledger.History)
	secured.GET("/notifications", h.Ledger.Notifications)
	secured.GET("/expenses/breakdown", h.Ledger.ExpenseBreakdown)

	// Entity CRUD
	registerCrud(secured, "/expenses", h.Expenses)
	registerCrud(secured, "/income", h.Income)
	registerCrud(secured, "/assets", h.Assets)
	registerCrud(secured, "/calendar", h.Calendar)
	registerCrud(secured, "/retirement/contributions", h.Contributions)

	registerCrud(secured, "/savings", h.Savings.CrudHandler)
	secured.PUT("/savings/:id/add", h.Savings.AddFunds)

	registerCrud(secured, "/bills", h.Bills.CrudHandler)
	secured.PUT("/bills/:id/pay", h.Bills.Pay)

	// Retirement plan (single row, upsert) and contribution summary
	secured.GET("/retirement", h.Retirement.Outlook)
	secured.POST("/retirement", h.Retirement.SavePlan)
	secured.GET("/retirement/summary", h.Retirement.ContributionSummary)
}

func registerCrud[T any, PT interface {
	*T
	model.OwnedRecord
}](g *echo.Group, path string, h *handler.CrudHandler[T, PT]) {
	g.GET(path, h.List)
	g.POST(path, h.Create)
	g.PUT(path+"/:id", h.Update)
	g.DELETE(path+"/:id", h.Delete)
}

// requireActiveUser rejects tokens whose user has been revoked, e.g.
// after account deletion.
func requireActiveUser(store auth.TokenStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := handler.CurrentUser(c)
			if err != nil {
				return err
			}
			if revoked, _ := store.IsUserRevoked(c.Request().Context(), claims.UserID); revoked {
				return echo.NewHTTPError(http.StatusForbidden, "credentials revoked")
			}
			return next(c)
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
