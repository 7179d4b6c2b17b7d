package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openshelf/library-service/internal/model"
)

func (h *Handler) listEntities(kind model.EntityKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := identity(c)
		if err != nil {
			return err
		}
		items, err := h.catalogSvc.ListEntities(c.Request().Context(), id, kind)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, items)
	}
}

func (h *Handler) createEntity(kind model.EntityKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := identity(c)
		if err != nil {
			return err
		}
		var req model.CatalogEntityRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		if err := c.Validate(&req); err != nil {
			return err
		}

		entity, created, err := h.catalogSvc.GetOrCreateEntity(c.Request().Context(), id, kind, req.Name)
		if err != nil {
			return httpError(err)
		}

		resp := model.CatalogEntityResponse{CatalogEntity: entity, Created: created}
		if created {
			return c.JSON(http.StatusCreated, resp)
		}
		resp.Message = string(kind) + " with this name already exists"
		return c.JSON(http.StatusOK, resp)
	}
}

func (h *Handler) renameEntity(kind model.EntityKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := identity(c)
		if err != nil {
			return err
		}
		entityID, err := pathID(c)
		if err != nil {
			return err
		}
		var req model.CatalogEntityRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		if err := c.Validate(&req); err != nil {
			return err
		}

		entity, err := h.catalogSvc.RenameEntity(c.Request().Context(), id, kind, entityID, req.Name)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, entity)
	}
}

func (h *Handler) deleteEntity(kind model.EntityKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := identity(c)
		if err != nil {
			return err
		}
		entityID, err := pathID(c)
		if err != nil {
			return err
		}
		if err := h.catalogSvc.DeleteEntity(c.Request().Context(), id, kind, entityID); err != nil {
			return httpError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
