package client

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/infinitivesi/lab-8/pkg/apperror"
	"github.com/infinitivesi/lab-8/pkg/httpserver"
)

type clientHandler struct {
	log           *logrus.Entry
	clientService ClientService
}

func NewHandler(clientService ClientService, log *logrus.Entry) *clientHandler {
	return &clientHandler{
		log:           log,
		clientService: clientService,
	}
}

type clientRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	HasCourses flag   `json:"has_courses"`
}

func (r clientRequest) toClient() *Client {
	return &Client{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Address:    r.Address,
		HasCourses: bool(r.HasCourses),
	}
}

func (h *clientHandler) Register(router *gin.RouterGroup) {
	clients := router.Group("/clients")
	{
		clients.GET("", h.list)
		clients.GET("/:id", h.get)
		clients.POST("", h.create)
		clients.PUT("/:id", h.update)
		clients.DELETE("/:id", h.delete)
	}
}

func (h *clientHandler) list(c *gin.Context) {
	clients, err := h.clientService.List()
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": clients})
}

func (h *clientHandler) get(c *gin.Context) {
	id, err := httpserver.ParamID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	client, err := h.clientService.GetByID(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if client == nil {
		h.respondError(c, errClientNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": client})
}

func (h *clientHandler) create(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, apperror.NewError(apperror.JsonAppError, "name is required", http.StatusBadRequest, err))
		return
	}

	id, err := h.clientService.Create(req.toClient())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": gin.H{"id": id}})
}

func (h *clientHandler) update(c *gin.Context) {
	id, err := httpserver.ParamID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, apperror.NewError(apperror.JsonAppError, "name is required", http.StatusBadRequest, err))
		return
	}

	if err := h.clientService.Update(id, req.toClient()); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *clientHandler) delete(c *gin.Context) {
	id, err := httpserver.ParamID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.clientService.Delete(id); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *clientHandler) respondError(c *gin.Context, err error) {
	if errors.Is(err, errClientNotFound) {
		err = apperror.NewError(apperror.NotFoundAppError, err.Error(), http.StatusNotFound, err)
	}
	apperror.Respond(c, h.log, err)
}
