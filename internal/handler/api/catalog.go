package api

import (
	"errors"
	"net/http"

	"breakfast-deals/internal/domain/deal"
	"breakfast-deals/internal/domain/hotel"
	reqdto "breakfast-deals/internal/handler/dto/request"
	resdto "breakfast-deals/internal/handler/dto/response"
	"breakfast-deals/internal/handler/httperr"
	"breakfast-deals/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary List booked hotels
// @Tags hotels
// @Produce json
// @Success 200 {object} resdto.CatalogResponse[[]resdto.BookedHotelResponse]
// @Router /hotels/booked [get]
func (h *CatalogHandler) GetBookedHotels(c *gin.Context) {
	res := h.q.BookedHotels(c.Request.Context())
	c.JSON(http.StatusOK, resdto.Wrap(res, resdto.FromBookedHotels))
}

// @Summary Get booked hotel
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} resdto.CatalogResponse[resdto.BookedHotelResponse]
// @Failure 404 {object} httperr.Response
// @Router /hotels/booked/{id} [get]
func (h *CatalogHandler) GetBookedHotel(c *gin.Context) {
	res, err := h.q.BookedHotelByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Wrap(res, resdto.FromBookedHotel))
}

// @Summary Search hotels
// @Tags hotels
// @Produce json
// @Param location query string true "Location"
// @Param check_in query string false "Check-in date"
// @Param check_out query string false "Check-out date"
// @Success 200 {object} resdto.CatalogResponse[[]resdto.HotelResponse]
// @Failure 400 {object} httperr.Response
// @Router /hotels/search [get]
func (h *CatalogHandler) SearchHotels(c *gin.Context) {
	var query reqdto.HotelSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res := h.q.SearchHotels(c.Request.Context(), query.Location, query.CheckIn, query.CheckOut)
	c.JSON(http.StatusOK, resdto.Wrap(res, resdto.FromHotels))
}

// @Summary Get hotel details
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} resdto.CatalogResponse[resdto.HotelResponse]
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id} [get]
func (h *CatalogHandler) GetHotel(c *gin.Context) {
	res, err := h.q.HotelDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Wrap(res, resdto.FromHotel))
}

// @Summary Breakfast menu of a hotel
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Param name query string false "Hotel name used in the default deal"
// @Success 200 {object} resdto.CatalogResponse[[]resdto.DealResponse]
// @Router /hotels/{id}/breakfast [get]
func (h *CatalogHandler) GetBreakfastMenu(c *gin.Context) {
	var query reqdto.BreakfastMenuQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	name := query.Name
	if name == "" {
		name = "our hotel"
	}
	res := h.q.BreakfastMenu(c.Request.Context(), c.Param("id"), name)
	c.JSON(http.StatusOK, resdto.Wrap(res, resdto.FromDeals))
}

// @Summary List deals
// @Tags deals
// @Produce json
// @Param hotel_ids query string false "Comma separated hotel ids"
// @Success 200 {object} resdto.CatalogResponse[[]resdto.DealResponse]
// @Router /deals [get]
func (h *CatalogHandler) ListDeals(c *gin.Context) {
	var query reqdto.DealsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res := h.q.Deals(c.Request.Context(), query.IDs())
	c.JSON(http.StatusOK, resdto.Wrap(res, resdto.FromDeals))
}

// @Summary Today's deals at booked hotels
// @Tags deals
// @Produce json
// @Success 200 {object} resdto.CatalogResponse[[]resdto.DealResponse]
// @Router /deals/today [get]
func (h *CatalogHandler) GetTodaysDeals(c *gin.Context) {
	res := h.q.TodaysDeals(c.Request.Context())
	c.JSON(http.StatusOK, resdto.Wrap(res, resdto.FromDeals))
}

// @Summary Get deal
// @Tags deals
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} resdto.CatalogResponse[resdto.DealResponse]
// @Failure 404 {object} httperr.Response
// @Router /deals/{id} [get]
func (h *CatalogHandler) GetDeal(c *gin.Context) {
	res, err := h.q.DealByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Wrap(res, resdto.FromDeal))
}

// @Summary Breakfast image
// @Tags images
// @Produce json
// @Param cuisine query string false "Cuisine type"
// @Success 200 {object} resdto.ImageResponse
// @Router /images/breakfast [get]
func (h *CatalogHandler) BreakfastImage(c *gin.Context) {
	url := h.q.RandomBreakfastImage()
	if cuisine := c.Query("cuisine"); cuisine != "" {
		url = h.q.BreakfastImageByCuisine(cuisine)
	}
	c.JSON(http.StatusOK, resdto.ImageResponse{URL: url})
}

// @Summary Hotel image
// @Tags images
// @Produce json
// @Param type query string false "Hotel type or location"
// @Success 200 {object} resdto.ImageResponse
// @Router /images/hotel [get]
func (h *CatalogHandler) HotelImage(c *gin.Context) {
	url := h.q.RandomHotelImage()
	if hotelType := c.Query("type"); hotelType != "" {
		url = h.q.HotelImageByType(hotelType)
	}
	c.JSON(http.StatusOK, resdto.ImageResponse{URL: url})
}

// @Summary Search images
// @Tags images
// @Produce json
// @Param query query string true "Search terms"
// @Success 200 {object} resdto.CatalogResponse[[]resdto.ImageResponse]
// @Failure 400 {object} httperr.Response
// @Router /images/search [get]
func (h *CatalogHandler) SearchImages(c *gin.Context) {
	var query reqdto.ImageSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res := h.q.SearchImages(c.Request.Context(), query.Query)
	c.JSON(http.StatusOK, resdto.Wrap(res, resdto.FromImageURLs))
}

func abortCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, hotel.ErrHotelNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Hotel not found", nil)
	case errors.Is(err, deal.ErrDealNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Deal not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
