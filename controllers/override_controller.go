package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rate-calendar-backend/services"
	"rate-calendar-backend/utils"
)

type overridePayload struct {
	HotelID    uint   `json:"hotel_id" binding:"required"`
	RoomTypeID uint   `json:"room_type_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Value      string `json:"value"`
}

type submitPayload struct {
	HotelID    uint `json:"hotel_id" binding:"required"`
	RoomTypeID uint `json:"room_type_id" binding:"required"`
}

type OverrideController struct {
	Config     *services.ConfigService
	Overrides  *services.OverrideService
	Submission *services.SubmissionService
	Calendar   services.CalendarService
}

func NewOverrideController(cfg *services.ConfigService, overrides *services.OverrideService, submission *services.SubmissionService) *OverrideController {
	return &OverrideController{
		Config:     cfg,
		Overrides:  overrides,
		Submission: submission,
	}
}

// SetOverride handles PUT /api/overrides. A blank or non-numeric value
// clears the pending override; a frozen date answers ok with applied:false
// (rejection is silent, never an error).
func (ctl *OverrideController) SetOverride(c *gin.Context) {
	var payload overridePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	date, err := utils.ParseDate(payload.Date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}
	dateKey := utils.FormatDate(date)

	rules, err := ctl.Config.LoadRateRules(payload.HotelID)
	if err != nil {
		if errors.Is(err, services.ErrConfigNotFound) || errors.Is(err, services.ErrBaseRoomTypeMissing) {
			utils.JSONError(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	frozen := ctl.Calendar.IsFrozen(rules, time.Now(), date)

	value, hasValue := utils.ParseOverrideValue(payload.Value)
	if !hasValue {
		applied := ctl.Overrides.Clear(payload.HotelID, rules.BaseRoomTypeID, frozen, dateKey)
		utils.JSONSuccess(c, http.StatusOK, gin.H{"date": dateKey, "applied": applied, "cleared": applied})
		return
	}

	applied := ctl.Overrides.Set(payload.HotelID, rules.BaseRoomTypeID, frozen, dateKey, value)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"date": dateKey, "applied": applied, "cleared": false})
}

// ClearOverride handles DELETE /api/overrides?hotel_id&room_type_id&date.
func (ctl *OverrideController) ClearOverride(c *gin.Context) {
	hotelID, ok := parseUintQuery(c, "hotel_id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "hotel_id is required")
		return
	}
	if _, ok := parseUintQuery(c, "room_type_id"); !ok {
		utils.JSONError(c, http.StatusBadRequest, "room_type_id is required")
		return
	}
	date, err := utils.ParseDate(c.Query("date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	rules, err := ctl.Config.LoadRateRules(hotelID)
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	dateKey := utils.FormatDate(date)
	frozen := ctl.Calendar.IsFrozen(rules, time.Now(), date)
	cleared := ctl.Overrides.Clear(hotelID, rules.BaseRoomTypeID, frozen, dateKey)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"date": dateKey, "cleared": cleared})
}

// SubmitOverrides handles POST /api/overrides/submit. The commit is
// optimistic; on sink failure the user's input is restored to pending and
// the error surfaces here for the notification layer.
func (ctl *OverrideController) SubmitOverrides(c *gin.Context) {
	var payload submitPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	rules, err := ctl.Config.LoadRateRules(payload.HotelID)
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	frozen := func(d string) bool {
		t, err := utils.ParseDate(d)
		if err != nil {
			return true
		}
		return ctl.Calendar.IsFrozen(rules, time.Now(), t)
	}
	batchID, count, err := ctl.Submission.Submit(payload.HotelID, rules.BaseRoomTypeID, frozen)
	if err != nil {
		if errors.Is(err, services.ErrNoPendingOverrides) {
			utils.JSONSuccess(c, http.StatusOK, gin.H{"submitted": 0})
			return
		}
		utils.JSONError(c, http.StatusBadGateway, err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"batch_id": batchID, "submitted": count})
}
