package feedback

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/infinitivesi/lab-8/pkg/apperror"
	"github.com/infinitivesi/lab-8/pkg/httpserver"
)

type feedbackHandler struct {
	log             *logrus.Entry
	feedbackService FeedbackService
}

func NewHandler(feedbackService FeedbackService, log *logrus.Entry) *feedbackHandler {
	return &feedbackHandler{
		log:             log,
		feedbackService: feedbackService,
	}
}

type feedbackRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message" binding:"required"`
	Type    Type   `json:"feedback_type"`
}

func (h *feedbackHandler) Register(router *gin.RouterGroup) {
	feedback := router.Group("/feedback")
	{
		feedback.GET("", h.list)
		feedback.POST("", h.add)
		feedback.DELETE("/:id", h.delete)
	}
}

func (h *feedbackHandler) list(c *gin.Context) {
	entries, err := h.feedbackService.ListByType(Type(c.Query("type")))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entries})
}

func (h *feedbackHandler) add(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, apperror.NewError(apperror.JsonAppError, "message is required", http.StatusBadRequest, err))
		return
	}

	id, err := h.feedbackService.Add(req.Name, req.Email, req.Message, req.Type)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": gin.H{"id": id}})
}

func (h *feedbackHandler) delete(c *gin.Context) {
	id, err := httpserver.ParamID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.feedbackService.Delete(id); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *feedbackHandler) respondError(c *gin.Context, err error) {
	if errors.Is(err, errFeedbackNotFound) {
		err = apperror.NewError(apperror.NotFoundAppError, err.Error(), http.StatusNotFound, err)
	}
	apperror.Respond(c, h.log, err)
}
