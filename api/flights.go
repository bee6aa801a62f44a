package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/skypulse/internal/domain"
	"github.com/Domenick1991/skypulse/internal/service/search"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service search.SearchUseCase
}

type flightSearchRequest struct {
	Origin        string `form:"origin"`
	Destination   string `form:"destination"`
	DepartureDate string `form:"departureDate"`
	ReturnDate    string `form:"returnDate"`
	Adults        int    `form:"adults,default=1"`
	Children      int    `form:"children"`
	Infants       int    `form:"infants"`
	CabinClass    string `form:"cabinClass"`
	Max           int    `form:"max"`
	UseMock       bool   `form:"useMock"`
}

type flightSearchResponse struct {
	Data         []domain.FlightOffer `json:"data"`
	Dictionaries dictionaries         `json:"dictionaries"`
}

type dictionaries struct {
	Carriers map[string]string `json:"carriers"`
}

func NewFlightHandler(service search.SearchUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/search", h.search)
}

func (h *FlightHandler) search(c *gin.Context) {
	var req flightSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Search(c.Request.Context(), domain.SearchParams{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Adults:        req.Adults,
		Children:      req.Children,
		Infants:       req.Infants,
		CabinClass:    domain.CabinClass(req.CabinClass),
		MaxResults:    req.Max,
	}, req.UseMock)
	if err != nil {
		writeSearchError(c, err)
		return
	}

	flights := result.Flights
	if flights == nil {
		flights = []domain.FlightOffer{}
	}
	c.JSON(http.StatusOK, flightSearchResponse{
		Data:         flights,
		Dictionaries: dictionaries{Carriers: result.Carriers},
	})
}

// writeSearchError maps the error taxonomy to HTTP statuses: local
// validation 400, collaborator non-success 502, transport failure 503.
func writeSearchError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	var upstreamErr *domain.UpstreamError
	var networkErr *domain.NetworkError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.As(err, &upstreamErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": upstreamErr.Message, "retryable": true})
	case errors.As(err, &networkErr):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":     "could not reach the flight search provider, check your connection",
			"retryable": true,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
