package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"rate-calendar-backend/config"
	"rate-calendar-backend/models"
	"rate-calendar-backend/utils"
)

type rateConfigPayload struct {
	BaseRoomTypeID    uint                      `json:"base_room_type_id" binding:"required"`
	GuardrailMax      float64                   `json:"guardrail_max"`
	RateFreezePeriod  int                       `json:"rate_freeze_period"`
	LMFEnabled        bool                      `json:"lmf_enabled"`
	LMFRate           float64                   `json:"lmf_rate"`
	LMFDays           int                       `json:"lmf_days"`
	LMFDow            []string                  `json:"lmf_dow"`
	MonthlyMinRates   map[string]float64        `json:"monthly_min_rates"`
	RoomDifferentials []models.RoomDifferential `json:"room_differentials"`
}

type calculatorPayload struct {
	Multiplier           float64 `json:"multiplier"`
	MobileActive         bool    `json:"mobile_active"`
	MobilePercent        float64 `json:"mobile_percent"`
	NonRefundableActive  bool    `json:"non_refundable_active"`
	NonRefundablePercent float64 `json:"non_refundable_percent"`
	CountryRateActive    bool    `json:"country_rate_active"`
	CountryRatePercent   float64 `json:"country_rate_percent"`
}

func hotelIDParam(c *gin.Context) (uint, bool) {
	v, err := strconv.ParseUint(c.Param("hotelID"), 10, 64)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}

func GetRateSettings(c *gin.Context) {
	hotelID, ok := hotelIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel id")
		return
	}

	var row models.RateConfig
	if err := config.DB.Where("hotel_id = ?", hotelID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "config_not_found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, row)
}

func UpdateRateSettings(c *gin.Context) {
	hotelID, ok := hotelIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel id")
		return
	}

	var payload rateConfigPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	dow, err := json.Marshal(payload.LMFDow)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	minRates, err := json.Marshal(payload.MonthlyMinRates)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	diffs, err := json.Marshal(payload.RoomDifferentials)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	var row models.RateConfig
	err = config.DB.Where("hotel_id = ?", hotelID).First(&row).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	row.HotelID = hotelID
	row.BaseRoomTypeID = payload.BaseRoomTypeID
	row.GuardrailMax = payload.GuardrailMax
	row.RateFreezePeriod = payload.RateFreezePeriod
	row.LMFEnabled = payload.LMFEnabled
	row.LMFRate = payload.LMFRate
	row.LMFDays = payload.LMFDays
	row.LMFDow = datatypes.JSON(dow)
	row.MonthlyMinRates = datatypes.JSON(minRates)
	row.RoomDifferentials = datatypes.JSON(diffs)

	if err := config.DB.Save(&row).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, row)
}

func GetCalculatorSettings(c *gin.Context) {
	hotelID, ok := hotelIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel id")
		return
	}

	var row models.CalculatorSetting
	if err := config.DB.Where("hotel_id = ?", hotelID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "config_not_found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, row)
}

func UpdateCalculatorSettings(c *gin.Context) {
	hotelID, ok := hotelIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel id")
		return
	}

	var payload calculatorPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if payload.Multiplier < 0 {
		utils.JSONError(c, http.StatusBadRequest, "multiplier must be >= 0")
		return
	}

	var row models.CalculatorSetting
	err := config.DB.Where("hotel_id = ?", hotelID).First(&row).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	row.HotelID = hotelID
	row.Multiplier = payload.Multiplier
	row.MobileActive = payload.MobileActive
	row.MobilePercent = payload.MobilePercent
	row.NonRefundableActive = payload.NonRefundableActive
	row.NonRefundablePercent = payload.NonRefundablePercent
	row.CountryRateActive = payload.CountryRateActive
	row.CountryRatePercent = payload.CountryRatePercent

	if err := config.DB.Save(&row).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, row)
}
