package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yatradesk/tourism-directory-backend/internal/domain"
	"github.com/yatradesk/tourism-directory-backend/internal/usecase/search"
)

type SearchHandler struct {
	engine *search.Engine
}

func NewSearchHandler(engine *search.Engine) *SearchHandler {
	return &SearchHandler{engine: engine}
}

// SearchGuides handles POST /search/guides
// @Summary Search tour guides
// @Description Search visible tour guide listings with filters, sorting and pagination
// @Tags search
// @Accept json
// @Produce json
// @Param request body domain.SearchQuery true "Search query"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 500 {object} Response
// @Router /search/guides [post]
func (h *SearchHandler) SearchGuides(c *gin.Context) {
	var query domain.SearchQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		respondError(c, http.StatusBadRequest, domain.ErrInvalidInput.Error())
		return
	}

	result, err := h.engine.SearchGuides(c.Request.Context(), &query)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondOK(c, http.StatusOK, result)
}

// SearchHotels handles POST /search/hotels
// @Summary Search hotels
// @Tags search
// @Accept json
// @Produce json
// @Param request body domain.SearchQuery true "Search query"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 500 {object} Response
// @Router /search/hotels [post]
func (h *SearchHandler) SearchHotels(c *gin.Context) {
	var query domain.SearchQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		respondError(c, http.StatusBadRequest, domain.ErrInvalidInput.Error())
		return
	}

	result, err := h.engine.SearchHotels(c.Request.Context(), &query)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondOK(c, http.StatusOK, result)
}

// GetSuggestions handles GET /search/suggestions?q=
func (h *SearchHandler) GetSuggestions(c *gin.Context) {
	suggestions, err := h.engine.GetSuggestions(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondOK(c, http.StatusOK, suggestions)
}
