package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/openshelf/library-service/internal/model"
)

const maxCoverSize = 2 << 20 // 2 MB

type createBookPayload struct {
	model.CreateBookRequest
	cover    []byte
	coverExt string
}

var coverExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}

func (h *Handler) GetBooks(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	books, err := h.bookSvc.ListBooks(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetBook(c echo.Context) error {
	bookID, err := pathID(c)
	if err != nil {
		return err
	}
	details, err := h.bookSvc.GetBookDetails(c.Request().Context(), bookID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, details)
}

func (h *Handler) CreateBook(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	var req createBookPayload
	if err := bindBookPayload(c, &req); err != nil {
		return err
	}

	book, err := h.bookSvc.CreateBook(c.Request().Context(), id, req.CreateBookRequest, req.cover, req.coverExt)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	bookID, err := pathID(c)
	if err != nil {
		return err
	}
	var req createBookPayload
	if err := bindBookPayload(c, &req); err != nil {
		return err
	}

	book, err := h.bookSvc.UpdateBook(c.Request().Context(), id, bookID, req.CreateBookRequest, req.cover, req.coverExt)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	bookID, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.bookSvc.DeleteBook(c.Request().Context(), id, bookID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) RemoveCover(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	bookID, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.bookSvc.RemoveCover(c.Request().Context(), id, bookID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Checkout(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	bookID, err := pathID(c)
	if err != nil {
		return err
	}
	rec, err := h.bookSvc.Checkout(c.Request().Context(), id, bookID)
	if err != nil {
		checkoutsTotal.WithLabelValues("error").Inc()
		return httpError(err)
	}
	checkoutsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) Return(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	bookID, err := pathID(c)
	if err != nil {
		return err
	}
	rec, err := h.bookSvc.Return(c.Request().Context(), id, bookID)
	if err != nil {
		returnsTotal.WithLabelValues("error").Inc()
		return httpError(err)
	}
	returnsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) SubmitReview(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	bookID, err := pathID(c)
	if err != nil {
		return err
	}
	var req model.ReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.bookSvc.SubmitReview(c.Request().Context(), id, bookID, req)
	if err != nil {
		return httpError(err)
	}
	reviewsTotal.Inc()
	return c.JSON(http.StatusCreated, review)
}

// bindBookPayload binds json or multipart book fields plus the optional
// cover upload.
func bindBookPayload(c echo.Context, payload *createBookPayload) error {
	if err := c.Bind(&payload.CreateBookRequest); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&payload.CreateBookRequest); err != nil {
		return err
	}

	fh, err := c.FormFile("coverImage")
	if err != nil {
		return nil // no cover supplied
	}
	if fh.Size > maxCoverSize {
		return echo.NewHTTPError(http.StatusBadRequest, "the image size must not exceed 2MB")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !coverExts[ext] {
		return echo.NewHTTPError(http.StatusBadRequest, "only jpeg, png and jpg images are allowed")
	}

	data, err := readUpload(fh)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	payload.cover = data
	payload.coverExt = ext
	return nil
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return io.ReadAll(io.LimitReader(src, maxCoverSize))
}
