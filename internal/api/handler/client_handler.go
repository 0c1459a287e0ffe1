package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/clientdesk/client-management/internal/api/metrics"
	"github.com/clientdesk/client-management/internal/core/ports"
)

// ClientHandler handles HTTP requests for client operations.
//
// Handlers return domain errors as-is; the central HTTPErrorHandler maps them
// to status codes and the JSON error envelope.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// List handles GET /clients.
//
// @Summary      List all clients
// @Tags         clients
// @Produce      json
// @Success      200  {array}   clientResponse
// @Failure      500  {object}  errorResponse
// @Router       /clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	timer := prometheus.NewTimer(metrics.OperationDuration.WithLabelValues("list"))
	defer timer.ObserveDuration()

	clients, err := h.service.ListClients(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]clientResponse, 0, len(clients))
	for _, client := range clients {
		resp = append(resp, toClientResponse(client))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /clients/:id.
//
// @Summary      Get a client by ID
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client ID"
// @Success      200  {object}  clientResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	timer := prometheus.NewTimer(metrics.OperationDuration.WithLabelValues("get"))
	defer timer.ObserveDuration()

	client, err := h.service.GetClient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientResponse(client))
}

// Create handles POST /clients.
//
// @Summary      Register a new client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body      createClientRequest  true  "Client details"
// @Success      201   {object}  clientResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	timer := prometheus.NewTimer(metrics.OperationDuration.WithLabelValues("create"))
	defer timer.ObserveDuration()

	client, err := h.service.CreateClient(c.Request().Context(), ports.CreateClientInput{
		Name:     req.Name,
		LastName: req.LastName,
		Age:      *req.Age,
	})
	if err != nil {
		return err
	}

	metrics.CreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toClientResponse(client))
}

// Update handles PUT /clients/:id.
//
// @Summary      Update an existing client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Client ID"
// @Param        body  body      updateClientRequest  true  "Fields to change"
// @Success      200   {object}  clientResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /clients/{id} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	var req updateClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	timer := prometheus.NewTimer(metrics.OperationDuration.WithLabelValues("update"))
	defer timer.ObserveDuration()

	client, err := h.service.UpdateClient(c.Request().Context(), c.Param("id"), ports.UpdateClientInput{
		Name:     req.Name,
		LastName: req.LastName,
		Age:      req.Age,
	})
	if err != nil {
		return err
	}

	metrics.UpdatedTotal.Inc()
	return c.JSON(http.StatusOK, toClientResponse(client))
}

// Delete handles DELETE /clients/:id.
//
// @Summary      Delete a client
// @Tags         clients
// @Produce      json
// @Param        id  path  string  true  "Client ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	timer := prometheus.NewTimer(metrics.OperationDuration.WithLabelValues("delete"))
	defer timer.ObserveDuration()

	if err := h.service.DeleteClient(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.DeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
