package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rate-calendar-backend/config"
	"rate-calendar-backend/models"
	"rate-calendar-backend/utils"
)

type campaignPayload struct {
	HotelID   uint    `json:"hotel_id" binding:"required"`
	Slug      string  `json:"slug" binding:"required"`
	Name      string  `json:"name"`
	Discount  float64 `json:"discount"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Active    bool    `json:"active"`
}

func GetCampaigns(c *gin.Context) {
	hotelID, ok := parseUintQuery(c, "hotel_id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "hotel_id is required")
		return
	}

	var rows []models.CampaignRow
	if err := config.DB.Where("hotel_id = ?", hotelID).Order("id").Find(&rows).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rows)
}

func CreateCampaign(c *gin.Context) {
	var payload campaignPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if payload.Discount < 0 || payload.Discount > 100 {
		utils.JSONError(c, http.StatusBadRequest, "discount must be between 0 and 100")
		return
	}

	row := models.CampaignRow{
		HotelID:  payload.HotelID,
		Slug:     payload.Slug,
		Name:     payload.Name,
		Discount: payload.Discount,
		Active:   payload.Active,
	}
	if payload.StartDate != "" {
		t, err := utils.ParseDate(payload.StartDate)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
			return
		}
		row.StartDate = &t
	}
	if payload.EndDate != "" {
		t, err := utils.ParseDate(payload.EndDate)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
			return
		}
		row.EndDate = &t
	}
	if row.StartDate != nil && row.EndDate != nil && row.EndDate.Before(*row.StartDate) {
		utils.JSONError(c, http.StatusBadRequest, "end_date cannot be before start_date")
		return
	}

	if err := config.DB.Create(&row).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, row)
}

func DeleteCampaign(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid campaign id")
		return
	}
	if err := config.DB.Delete(&models.CampaignRow{}, id).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
