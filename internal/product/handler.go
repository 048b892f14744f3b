package product

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/infinitivesi/lab-8/pkg/apperror"
	"github.com/infinitivesi/lab-8/pkg/httpserver"
)

type productHandler struct {
	log            *logrus.Entry
	productService ProductService
}

func NewHandler(productService ProductService, log *logrus.Entry) *productHandler {
	return &productHandler{
		log:            log,
		productService: productService,
	}
}

type productRequest struct {
	Name        string   `json:"name" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
}

func (r productRequest) toProduct() *Product {
	return &Product{
		Name:        r.Name,
		Price:       *r.Price,
		Image:       r.Image,
		Description: r.Description,
	}
}

func (h *productHandler) Register(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", h.list)
		products.GET("/:id", h.get)
		products.POST("", h.create)
		products.PUT("/:id", h.update)
		products.DELETE("/:id", h.delete)
	}
}

func (h *productHandler) list(c *gin.Context) {
	filter := Filter{
		Query:        c.Query("q"),
		MinPrice:     c.Query("min_price"),
		MaxPrice:     c.Query("max_price"),
		RequireImage: c.Query("has_image") == "1" || c.Query("has_image") == "true",
	}

	products, err := h.productService.List(filter)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": products})
}

func (h *productHandler) get(c *gin.Context) {
	id, err := httpserver.ParamID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	product, err := h.productService.GetByID(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if product == nil {
		h.respondError(c, errProductNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": product})
}

func (h *productHandler) create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, apperror.NewError(apperror.JsonAppError, "name and price are required", http.StatusBadRequest, err))
		return
	}

	id, err := h.productService.Create(req.toProduct())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": gin.H{"id": id}})
}

func (h *productHandler) update(c *gin.Context) {
	id, err := httpserver.ParamID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, apperror.NewError(apperror.JsonAppError, "name and price are required", http.StatusBadRequest, err))
		return
	}

	if err := h.productService.Update(id, req.toProduct()); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *productHandler) delete(c *gin.Context) {
	id, err := httpserver.ParamID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.productService.Delete(id); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *productHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errProductNotFound):
		err = apperror.NewError(apperror.NotFoundAppError, err.Error(), http.StatusNotFound, err)
	case errors.Is(err, errNameRequired):
		err = apperror.NewError(apperror.ValidationAppError, err.Error(), http.StatusBadRequest, err)
	}
	apperror.Respond(c, h.log, err)
}
