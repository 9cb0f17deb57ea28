package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/linkvault/bookmark-api/internal/api/metrics"
	"github.com/linkvault/bookmark-api/internal/core/ports"
)

// BookmarkHandler handles HTTP requests for bookmark operations. The owner id
// on every call comes from the verified token via ctxUserID, never from the
// request body.
type BookmarkHandler struct {
	service ports.BookmarkService
}

func NewBookmarkHandler(service ports.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{service: service}
}

// List returns all bookmarks owned by the caller.
//
// @Summary      List own bookmarks
// @Tags         bookmarks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   bookmarkResponse
// @Failure      401  {object}  errorResponse
// @Router       /bookmarks [get]
func (h *BookmarkHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookmarkListResponse(items))
}

// Create stores a new bookmark owned by the caller.
//
// @Summary      Create a bookmark
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookmarkRequest  true  "Bookmark details"
// @Success      201   {object}  bookmarkResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /bookmarks [post]
func (h *BookmarkHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createBookmarkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), userID, ports.CreateBookmarkInput{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		return err
	}

	metrics.BookmarksCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toBookmarkResponse(created))
}

// Get returns a single bookmark by id.
//
// @Summary      Get a bookmark
// @Tags         bookmarks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Bookmark id"
// @Success      200  {object}  bookmarkResponse
// @Failure      404  {object}  errorResponse
// @Router       /bookmarks/{id} [get]
func (h *BookmarkHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	b, err := h.service.Get(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookmarkResponse(b))
}

// Update applies a partial edit to an owned bookmark.
//
// @Summary      Edit a bookmark
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Bookmark id"
// @Param        body  body      editBookmarkRequest  true  "Fields to change"
// @Success      200   {object}  bookmarkResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /bookmarks/{id} [patch]
func (h *BookmarkHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req editBookmarkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.service.Update(c.Request().Context(), userID, c.Param("id"), req.toFields())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookmarkResponse(updated))
}

// Delete removes an owned bookmark.
//
// @Summary      Delete a bookmark
// @Tags         bookmarks
// @Security     BearerAuth
// @Param        id  path  string  true  "Bookmark id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Router       /bookmarks/{id} [delete]
func (h *BookmarkHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	metrics.BookmarksDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
