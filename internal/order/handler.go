package order

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/infinitivesi/lab-8/pkg/apperror"
	"github.com/infinitivesi/lab-8/pkg/httpserver"
)

type orderHandler struct {
	log          *logrus.Entry
	orderService OrderService
}

func NewHandler(orderService OrderService, log *logrus.Entry) *orderHandler {
	return &orderHandler{
		log:          log,
		orderService: orderService,
	}
}

type statusRequest struct {
	Status Status `json:"status"`
}

type contactRequest struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func (h *orderHandler) Register(router *gin.RouterGroup) {
	orders := router.Group("/orders")
	{
		orders.POST("", h.place)
		orders.GET("", h.list)
		orders.GET("/search", h.search)
		orders.GET("/:id", h.details)
		orders.PUT("/:id/status", h.updateStatus)
		orders.PUT("/:id/contact", h.updateContact)
		orders.DELETE("/:id", h.delete)
	}
}

func (h *orderHandler) place(c *gin.Context) {
	var input PlaceOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.respondError(c, apperror.NewError(apperror.JsonAppError, "email is required", http.StatusBadRequest, err))
		return
	}

	id, err := h.orderService.PlaceOrder(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": gin.H{"id": id}})
}

// list returns the orders of one customer when email is given, all orders
// otherwise.
func (h *orderHandler) list(c *gin.Context) {
	var (
		orders []Order
		err    error
	)
	if email := c.Query("email"); email != "" {
		orders, err = h.orderService.GetByEmail(email)
	} else {
		orders, err = h.orderService.List()
	}
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": orders})
}

func (h *orderHandler) search(c *gin.Context) {
	orders, err := h.orderService.SearchByEmail(c.Query("email"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": orders})
}

func (h *orderHandler) details(c *gin.Context) {
	id, err := httpserver.ParamID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	details, err := h.orderService.GetDetails(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if details == nil {
		h.respondError(c, errOrderNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": details})
}

func (h *orderHandler) updateStatus(c *gin.Context) {
	id, err := httpserver.ParamID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, apperror.NewError(apperror.JsonAppError, "invalid body", http.StatusBadRequest, err))
		return
	}

	if err := h.orderService.UpdateStatus(id, req.Status); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *orderHandler) updateContact(c *gin.Context) {
	id, err := httpserver.ParamID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, apperror.NewError(apperror.JsonAppError, "invalid body", http.StatusBadRequest, err))
		return
	}

	if err := h.orderService.UpdateContact(id, req.Address, req.Phone); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *orderHandler) delete(c *gin.Context) {
	id, err := httpserver.ParamID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.orderService.Delete(id); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *orderHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errOrderNotFound):
		err = apperror.NewError(apperror.NotFoundAppError, err.Error(), http.StatusNotFound, err)
	case errors.Is(err, ErrInvalidCart), errors.Is(err, ErrEmptyStatus):
		err = apperror.NewError(apperror.ValidationAppError, err.Error(), http.StatusBadRequest, err)
	}
	apperror.Respond(c, h.log, err)
}
