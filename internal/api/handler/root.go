package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RootHandler handles GET /, the API entry point with discovery links.
type RootHandler struct {
	version string
}

func NewRootHandler(version string) *RootHandler {
	return &RootHandler{version: version}
}

type rootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
	Health  string `json:"health"`
}

func (h *RootHandler) Info(c echo.Context) error {
	return c.JSON(http.StatusOK, rootResponse{
		Message: "Client Management API",
		Version: h.version,
		Docs:    "/swagger/index.html",
		Health:  "/health",
	})
}
