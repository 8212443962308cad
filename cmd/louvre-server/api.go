package main

import (
	"errors"
	"net/http"

	"louvre-backend/services/louvre"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// The adapter only frames the text payloads the service produces. The
// one failure that surfaces to callers is a resolution that exhausted
// both sources; everything else renders as a normal response.

type api struct {
	service louvre.Service
}

func newRouter(service louvre.Service) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	a := api{service: service}
	e.POST("/tools/get-artwork-detail", a.getArtworkDetail)
	e.POST("/tools/get-artwork-images", a.getArtworkImages)
	e.POST("/tools/search-artwork", a.searchArtwork)

	return e
}

type textResponse struct {
	Text string `json:"text"`
}

func toolError(err error) error {
	var resErr *louvre.ResolutionError
	if errors.As(err, &resErr) {
		return echo.NewHTTPError(http.StatusBadGateway, resErr.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

type detailRequest struct {
	Id string `json:"id"`
}

func (a api) getArtworkDetail(c echo.Context) error {
	var req detailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}

	text, err := a.service.GetArtworkDetail(c.Request().Context(), req.Id)
	if err != nil {
		return toolError(err)
	}
	return c.JSON(http.StatusOK, textResponse{Text: text})
}

type imagesRequest struct {
	Id       string `json:"id"`
	Type     string `json:"type"`
	Position *int   `json:"position"`
}

func (a api) getArtworkImages(c echo.Context) error {
	var req imagesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}
	switch req.Type {
	case "", "thumbnail", "full", louvre.ImageTypeAll:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, `type must be one of "thumbnail", "full", "all"`)
	}

	text, err := a.service.GetArtworkImages(c.Request().Context(), req.Id, req.Type, req.Position)
	if err != nil {
		return toolError(err)
	}
	return c.JSON(http.StatusOK, textResponse{Text: text})
}

type searchRequest struct {
	Query string `json:"query"`
	Page  int    `json:"page"`
}

func (a api) searchArtwork(c echo.Context) error {
	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	text, err := a.service.SearchArtwork(c.Request().Context(), req.Query, req.Page)
	if err != nil {
		return toolError(err)
	}
	return c.JSON(http.StatusOK, textResponse{Text: text})
}
