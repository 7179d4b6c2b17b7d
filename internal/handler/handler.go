package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/openshelf/library-service/internal/errs"
	"github.com/openshelf/library-service/internal/model"
	"github.com/openshelf/library-service/pkg/auth"
	md "github.com/openshelf/library-service/pkg/middleware"
	"github.com/openshelf/library-service/pkg/validate"
)

type Handler struct {
	bookSvc    BookService
	catalogSvc CatalogService
	authSvc    AuthService
	log        *zap.Logger
}

func New(bookSvc BookService, catalogSvc CatalogService, authSvc AuthService, log *zap.Logger) *Handler {
	return &Handler{
		bookSvc:    bookSvc,
		catalogSvc: catalogSvc,
		authSvc:    authSvc,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/register", h.Register)
	api.POST("/login", h.Login)
	api.POST("/forgot-password", h.ForgotPassword)

	authed := api.Group("", md.JwtAuthentication)
	librarian := authed.Group("", md.RequireRole(auth.RoleLibrarian))

	authed.GET("/books", h.GetBooks)
	authed.GET("/books/:id", h.GetBook)
	librarian.POST("/books", h.CreateBook)
	librarian.PUT("/books/:id", h.UpdateBook)
	librarian.DELETE("/books/:id", h.DeleteBook)
	librarian.DELETE("/books/:id/cover", h.RemoveCover)

	authed.POST("/books/:id/checkout", h.Checkout)
	authed.POST("/books/:id/return", h.Return)
	authed.POST("/books/:id/reviews", h.SubmitReview)

	h.registerCatalog(authed, librarian, "/authors", model.KindAuthor)
	h.registerCatalog(authed, librarian, "/publishers", model.KindPublisher)
	h.registerCatalog(authed, librarian, "/categories", model.KindCategory)

	return e
}

func (h *Handler) registerCatalog(authed, librarian *echo.Group, path string, kind model.EntityKind) {
	authed.GET(path, h.listEntities(kind))
	librarian.POST(path, h.createEntity(kind))
	librarian.PUT(path+"/:id", h.renameEntity(kind))
	librarian.DELETE(path+"/:id", h.deleteEntity(kind))
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// identity pulls the authenticated caller installed by the JWT middleware.
func identity(c echo.Context) (auth.Identity, error) {
	id, ok := auth.FromContext(c.Request().Context())
	if !ok {
		return auth.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "no identity")
	}
	return id, nil
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}
	return id, nil
}

func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrDuplicateName),
		errors.Is(err, errs.ErrDuplicateTitle),
		errors.Is(err, errs.ErrDuplicateISBN),
		errors.Is(err, errs.ErrUserExists),
		errors.Is(err, errs.ErrInvalidTransition):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
