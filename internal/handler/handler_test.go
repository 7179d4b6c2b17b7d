package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/openshelf/library-service/internal/errs"
	"github.com/openshelf/library-service/internal/handler"
	service_mocks "github.com/openshelf/library-service/internal/handler/mocks"
	"github.com/openshelf/library-service/internal/model"
	"github.com/openshelf/library-service/pkg/auth"
	"github.com/openshelf/library-service/pkg/validate"
)

var (
	customer  = auth.Identity{UserID: 42, Username: "reader", Role: auth.RoleCustomer}
	librarian = auth.Identity{UserID: 1, Username: "keeper", Role: auth.RoleLibrarian}
)

// withIdentity installs the caller the same way the jwt middleware does.
func withIdentity(id auth.Identity) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := auth.SetAuthContext(c.Request().Context(), id)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func newTestHandler(t *testing.T) (*handler.Handler, *service_mocks.MockBookService, *service_mocks.MockCatalogService, *service_mocks.MockAuthService) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	bookSvc := service_mocks.NewMockBookService(c)
	catalogSvc := service_mocks.NewMockCatalogService(c)
	authSvc := service_mocks.NewMockAuthService(c)
	log := zap.NewExample().Named("test")
	return handler.New(bookSvc, catalogSvc, authSvc, log), bookSvc, catalogSvc, authSvc
}

func TestHandler_GetBooks(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBookService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().
					ListBooks(gomock.Any(), customer).
					Return([]model.BookSummary{
						{
							ID:           1,
							Title:        "Dune",
							Description:  "Desert planet epic",
							AuthorName:   "Frank Herbert",
							Availability: model.Available,
							AvgRating:    4.5,
						},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[{"id":1,"title":"Dune","description":"Desert planet epic","coverImage":null,"authorName":"Frank Herbert","availability":"available","avgRating":4.5}]`,
			},
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().
					ListBooks(gomock.Any(), customer).
					Return(nil, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, bookSvc, _, _ := newTestHandler(t)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/api/v1/books", h.GetBooks, withIdentity(customer))

			r := httptest.NewRequest(http.MethodGet, "/api/v1/books", http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(bookSvc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Checkout(t *testing.T) {
	t.Parallel()
	checkoutAt := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBookService, bookID int)

	var tests = []struct {
		name         string
		bookID       string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:   "ok",
			bookID: "3",
			mockBehavior: func(r *service_mocks.MockBookService, bookID int) {
				r.EXPECT().
					Checkout(gomock.Any(), customer, bookID).
					Return(model.CheckoutRecord{
						ID:           7,
						BookID:       bookID,
						UserID:       customer.UserID,
						Status:       model.StatusCheckedOut,
						CheckoutDate: checkoutAt,
						DueDate:      checkoutAt.Add(5 * 24 * time.Hour),
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":7,"bookId":3,"userId":42,"status":"checked_out","checkoutDate":"2026-09-01T10:00:00Z","dueDate":"2026-09-06T10:00:00Z","returnedDate":null}`,
			},
		},
		{
			name:   "err. already checked out",
			bookID: "3",
			mockBehavior: func(r *service_mocks.MockBookService, bookID int) {
				r.EXPECT().
					Checkout(gomock.Any(), customer, bookID).
					Return(model.CheckoutRecord{}, errs.ErrInvalidTransition)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"invalid availability transition"}`,
			},
		},
		{
			name:   "err. book not found",
			bookID: "99",
			mockBehavior: func(r *service_mocks.MockBookService, bookID int) {
				r.EXPECT().
					Checkout(gomock.Any(), customer, bookID).
					Return(model.CheckoutRecord{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
		{
			name:         "err. invalid id",
			bookID:       "abc",
			mockBehavior: func(r *service_mocks.MockBookService, bookID int) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"id is invalid"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, bookSvc, _, _ := newTestHandler(t)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/api/v1/books/:id/checkout", h.Checkout, withIdentity(customer))

			r := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/books/%s/checkout", tt.bookID), http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			bookID, _ := parseID(tt.bookID)
			tt.mockBehavior(bookSvc, bookID)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Return(t *testing.T) {
	t.Parallel()
	returnedAt := time.Date(2026, 9, 3, 15, 4, 5, 0, time.UTC)
	checkoutAt := returnedAt.Add(-2 * 24 * time.Hour)
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBookService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().
					Return(gomock.Any(), customer, 3).
					Return(model.CheckoutRecord{
						ID:           7,
						BookID:       3,
						UserID:       customer.UserID,
						Status:       model.StatusReturned,
						CheckoutDate: checkoutAt,
						DueDate:      checkoutAt.Add(5 * 24 * time.Hour),
						ReturnedDate: &returnedAt,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":7,"bookId":3,"userId":42,"status":"returned","checkoutDate":"2026-09-01T15:04:05Z","dueDate":"2026-09-06T15:04:05Z","returnedDate":"2026-09-03T15:04:05Z"}`,
			},
		},
		{
			name: "err. nothing to return",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().
					Return(gomock.Any(), customer, 3).
					Return(model.CheckoutRecord{}, errs.ErrInvalidTransition)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"invalid availability transition"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, bookSvc, _, _ := newTestHandler(t)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/api/v1/books/:id/return", h.Return, withIdentity(customer))

			r := httptest.NewRequest(http.MethodPost, "/api/v1/books/3/return", http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(bookSvc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_SubmitReview(t *testing.T) {
	t.Parallel()
	createdAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBookService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"rating":5,"reviewText":"Loved every page"}`,
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().
					SubmitReview(gomock.Any(), customer, 3, model.ReviewRequest{Rating: 5, ReviewText: "Loved every page"}).
					Return(model.Review{
						ID:         1,
						BookID:     3,
						UserID:     customer.UserID,
						Rating:     5,
						ReviewText: "Loved every page",
						CreatedAt:  createdAt,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":1,"bookId":3,"userId":42,"rating":5,"reviewText":"Loved every page","createdAt":"2026-09-01T12:00:00Z"}`,
			},
		},
		{
			name:         "err. rating out of range",
			body:         `{"rating":6,"reviewText":"Loved every page"}`,
			mockBehavior: func(r *service_mocks.MockBookService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'ReviewRequest.Rating' Error:Field validation for 'Rating' failed on the 'max' tag"}`,
			},
		},
		{
			name:         "err. review text too short",
			body:         `{"rating":4,"reviewText":"meh"}`,
			mockBehavior: func(r *service_mocks.MockBookService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'ReviewRequest.ReviewText' Error:Field validation for 'ReviewText' failed on the 'min' tag"}`,
			},
		},
		{
			name: "err. book not found",
			body: `{"rating":4,"reviewText":"Solid read overall"}`,
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().
					SubmitReview(gomock.Any(), customer, 3, model.ReviewRequest{Rating: 4, ReviewText: "Solid read overall"}).
					Return(model.Review{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, bookSvc, _, _ := newTestHandler(t)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/api/v1/books/:id/reviews", h.SubmitReview, withIdentity(customer))

			r := httptest.NewRequest(http.MethodPost, "/api/v1/books/3/reviews", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(bookSvc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CreateAuthor(t *testing.T) {
	t.Parallel()
	createdAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	entity := model.CatalogEntity{ID: 1, Name: "Frank Herbert", CreatedAt: createdAt, UpdatedAt: createdAt}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCatalogService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "created",
			body: `{"name":"Frank Herbert"}`,
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().
					GetOrCreateEntity(gomock.Any(), librarian, model.KindAuthor, "Frank Herbert").
					Return(entity, true, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":1,"name":"Frank Herbert","createdAt":"2026-09-01T12:00:00Z","updatedAt":"2026-09-01T12:00:00Z","created":true}`,
			},
		},
		{
			name: "already exists",
			body: `{"name":"Frank Herbert"}`,
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().
					GetOrCreateEntity(gomock.Any(), librarian, model.KindAuthor, "Frank Herbert").
					Return(entity, false, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":1,"name":"Frank Herbert","createdAt":"2026-09-01T12:00:00Z","updatedAt":"2026-09-01T12:00:00Z","created":false,"message":"author with this name already exists"}`,
			},
		},
		{
			name:         "err. blank name",
			body:         `{"name":"   "}`,
			mockBehavior: func(r *service_mocks.MockCatalogService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'CatalogEntityRequest.Name' Error:Field validation for 'Name' failed on the 'alphaspace' tag"}`,
			},
		},
		{
			name:         "err. digits in name",
			body:         `{"name":"R2D2"}`,
			mockBehavior: func(r *service_mocks.MockCatalogService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'CatalogEntityRequest.Name' Error:Field validation for 'Name' failed on the 'alphaspace' tag"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _, catalogSvc, _ := newTestHandler(t)
			e := h.NewRouter()

			r := httptest.NewRequest(http.MethodPost, "/api/v1/authors", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			r.Header.Set(auth.AuthorizationHeader, signToken(t, librarian))
			w := httptest.NewRecorder()

			tt.mockBehavior(catalogSvc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CatalogRequiresLibrarian(t *testing.T) {
	t.Parallel()
	h, _, _, _ := newTestHandler(t)
	e := h.NewRouter()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/categories", strings.NewReader(`{"name":"Fantasy"}`))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	r.Header.Set(auth.AuthorizationHeader, signToken(t, customer))
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, `{"message":"insufficient role"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_NoToken(t *testing.T) {
	t.Parallel()
	h, _, _, _ := newTestHandler(t)
	e := h.NewRouter()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/books", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, `{"message":"No Authorization Header"}`, strings.Trim(w.Body.String(), "\n"))
}

func signToken(t *testing.T, id auth.Identity) string {
	t.Helper()
	claims := new(auth.Claims)
	claims.Profile.UserID = id.UserID
	claims.Profile.Username = id.Username
	claims.Profile.Role = id.Role
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(time.Hour))

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(auth.JWTKey)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestHandler_Register(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockAuthService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"name":"Jane Reader","username":"reader","email":"reader@example.com","password":"s3cret","role":"customer"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {
				r.EXPECT().
					Register(gomock.Any(), model.RegisterRequest{
						Name:     "Jane Reader",
						Username: "reader",
						Email:    "reader@example.com",
						Password: "s3cret",
						Role:     "customer",
					}).
					Return(nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: "ok",
			},
		},
		{
			name: "err. username taken",
			body: `{"name":"Jane Reader","username":"reader","email":"reader@example.com","password":"s3cret","role":"customer"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {
				r.EXPECT().
					Register(gomock.Any(), gomock.Any()).
					Return(errs.ErrUserExists)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"username already taken"}`,
			},
		},
		{
			name:         "err. bad email",
			body:         `{"name":"Jane Reader","username":"reader","email":"not-an-email","password":"s3cret","role":"customer"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'RegisterRequest.Email' Error:Field validation for 'Email' failed on the 'email' tag"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _, _, authSvc := newTestHandler(t)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/api/v1/register", h.Register)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/register", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(authSvc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ForgotPassword(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockAuthService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"email":"reader@example.com"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {
				r.EXPECT().
					ForgotPassword(gomock.Any(), model.ForgotPasswordRequest{Email: "reader@example.com"}).
					Return(nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: "ok",
			},
		},
		{
			name:         "err. bad email",
			body:         `{"email":"not-an-email"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'ForgotPasswordRequest.Email' Error:Field validation for 'Email' failed on the 'email' tag"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _, _, authSvc := newTestHandler(t)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/api/v1/forgot-password", h.ForgotPassword)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/forgot-password", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(authSvc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		h, _, _, authSvc := newTestHandler(t)

		e := echo.New()
		e.Validator = validate.NewCustomValidator()
		e.POST("/api/v1/login", h.Login)

		authSvc.EXPECT().
			Login(gomock.Any(), model.LoginRequest{Username: "reader", Password: "s3cret"}).
			Return(model.User{ID: 42, Username: "reader", Email: "reader@example.com", Role: auth.RoleCustomer}, nil)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/login", strings.NewReader(`{"username":"reader","password":"s3cret"}`))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)

		var resp model.AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.AccessToken)

		claims := new(auth.Claims)
		token, err := jwt.ParseWithClaims(resp.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
			return auth.JWTKey, nil
		})
		require.NoError(t, err)
		require.True(t, token.Valid)
		require.Equal(t, 42, claims.Profile.UserID)
		require.Equal(t, auth.RoleCustomer, claims.Profile.Role)
	})

	t.Run("err. invalid credentials", func(t *testing.T) {
		t.Parallel()
		h, _, _, authSvc := newTestHandler(t)

		e := echo.New()
		e.Validator = validate.NewCustomValidator()
		e.POST("/api/v1/login", h.Login)

		authSvc.EXPECT().
			Login(gomock.Any(), model.LoginRequest{Username: "reader", Password: "wrong"}).
			Return(model.User{}, errs.ErrInvalidCredentials)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/login", strings.NewReader(`{"username":"reader","password":"wrong"}`))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Equal(t, `{"message":"invalid credentials"}`, strings.Trim(w.Body.String(), "\n"))
	})
}

func parseID(s string) (int, error) {
	var id int
	_, err := fmt.Sscanf(s, "%d", &id)
	return id, err
}
