package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"rate-calendar-backend/services"
	"rate-calendar-backend/utils"
)

const defaultHorizonDays = 90

type CalendarController struct {
	Config    *services.ConfigService
	Rates     *services.DailyRateService
	Overrides *services.OverrideService
	Calendar  services.CalendarService
	Resolver  services.ResolverService
}

func NewCalendarController(cfg *services.ConfigService, rates *services.DailyRateService, overrides *services.OverrideService) *CalendarController {
	return &CalendarController{
		Config:    cfg,
		Rates:     rates,
		Overrides: overrides,
	}
}

func parseUintQuery(c *gin.Context, key string) (uint, bool) {
	v, err := strconv.ParseUint(c.Query(key), 10, 64)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}

// GetCalendar handles GET /api/calendar?hotel_id&room_type_id&days.
// Configuration errors block the whole calendar; there is never a partial
// body.
func (ctl *CalendarController) GetCalendar(c *gin.Context) {
	hotelID, ok := parseUintQuery(c, "hotel_id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "hotel_id is required")
		return
	}
	roomTypeID, ok := parseUintQuery(c, "room_type_id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "room_type_id is required")
		return
	}

	days := defaultHorizonDays
	if raw := c.Query("days"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 || v > 365 {
			utils.JSONError(c, http.StatusBadRequest, "days must be between 1 and 365")
			return
		}
		days = v
	}

	rules, err := ctl.Config.LoadRateRules(hotelID)
	if err != nil {
		if errors.Is(err, services.ErrConfigNotFound) || errors.Is(err, services.ErrBaseRoomTypeMissing) {
			utils.JSONBlocked(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		utils.JSONBlocked(c, http.StatusInternalServerError, err.Error())
		return
	}

	calc, err := ctl.Config.LoadCalculatorState(hotelID)
	if err != nil {
		utils.JSONBlocked(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	hotel, err := ctl.Config.LoadHotel(hotelID)
	if err != nil {
		utils.JSONBlocked(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	today := utils.DateAtUTC(time.Now())
	skeleton := ctl.Calendar.GenerateSkeleton(rules, today, days)

	// the feed and overrides are always keyed by the base room; other
	// room types are derived through their differential
	from := utils.FormatDate(today)
	to := utils.FormatDate(today.AddDate(0, 0, days-1))
	external, err := ctl.Rates.LoadWindow(hotelID, rules.BaseRoomTypeID, from, to)
	if err != nil {
		utils.JSONBlocked(c, http.StatusInternalServerError, err.Error())
		return
	}

	state := ctl.Overrides.State(hotelID, rules.BaseRoomTypeID)
	resolved := ctl.Resolver.MergeCalendar(skeleton, external, state.Saved, state.Pending, state.Unconfirmed)
	resolved = ctl.Resolver.ScaleForRoomType(resolved, rules, roomTypeID)
	resolved = ctl.Resolver.PriceCalendar(resolved, hotel.GeniusPct, calc, rules)

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"hotel_id":      hotelID,
		"room_type_id":  roomTypeID,
		"base_room":     roomTypeID == rules.BaseRoomTypeID,
		"guardrail_max": rules.GuardrailMax,
		"days":          resolved,
	})
}
