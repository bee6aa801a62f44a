package api

import (
	"net/http"

	"github.com/Domenick1991/skypulse/internal/domain"
	"github.com/Domenick1991/skypulse/internal/service/search"
	"github.com/gin-gonic/gin"
)

type AirportHandler struct {
	service search.SearchUseCase
}

type airportSearchRequest struct {
	Keyword string `form:"keyword"`
	UseMock bool   `form:"useMock"`
}

func NewAirportHandler(service search.SearchUseCase) *AirportHandler {
	return &AirportHandler{service: service}
}

func (h *AirportHandler) Register(router *gin.RouterGroup) {
	router.GET("/search", h.search)
}

func (h *AirportHandler) search(c *gin.Context) {
	var req airportSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	airports, err := h.service.Airports(c.Request.Context(), req.Keyword, req.UseMock)
	if err != nil {
		writeSearchError(c, err)
		return
	}

	if airports == nil {
		airports = []domain.Airport{}
	}
	c.JSON(http.StatusOK, gin.H{"data": airports})
}
