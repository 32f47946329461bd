package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rate-calendar-backend/services"
	"rate-calendar-backend/utils"
)

type previewPayload struct {
	HotelID  uint    `json:"hotel_id" binding:"required"`
	BaseRate float64 `json:"base_rate"`
	Date     string  `json:"date" binding:"required"`
}

type PricingController struct {
	Config  *services.ConfigService
	Pricing services.PricingService
}

func NewPricingController(cfg *services.ConfigService) *PricingController {
	return &PricingController{Config: cfg}
}

// PreviewSellRate handles POST /api/pricing/preview: the live preview path
// used while editing, same pipeline as the calendar.
func (ctl *PricingController) PreviewSellRate(c *gin.Context) {
	var payload previewPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	date, err := utils.ParseDate(payload.Date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	calc, err := ctl.Config.LoadCalculatorState(payload.HotelID)
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	hotel, err := ctl.Config.LoadHotel(payload.HotelID)
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	sellRate := ctl.Pricing.ComputeSellRate(payload.BaseRate, hotel.GeniusPct, calc, date)
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"date":      utils.FormatDate(date),
		"base_rate": payload.BaseRate,
		"sell_rate": sellRate,
	})
}
