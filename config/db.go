package config

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	sqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"rate-calendar-backend/models"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "rate_calendar")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

func mustJSON(v interface{}) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		log.Fatalf("Error marshaling seed JSON: %v", err)
	}
	return datatypes.JSON(b)
}

func datePtr(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		log.Fatalf("Error parsing seed date (%s): %v", s, err)
	}
	u := t.UTC()
	return &u
}

// SeedDatabase provisions a demo hotel so the calendar works out of the box.
func SeedDatabase() {
	var hotelCount int64
	DB.Model(&models.Hotel{}).Count(&hotelCount)
	if hotelCount > 0 {
		log.Println("Demo hotel already seeded")
		return
	}

	hotel := models.Hotel{Name: "Harborview Resort", GeniusPct: 10}
	if err := DB.Create(&hotel).Error; err != nil {
		log.Printf("warning: failed to seed hotel: %v", err)
		return
	}

	roomTypes := []models.RoomType{
		{HotelID: hotel.ID, TypeName: "Standard", Description: "Standard Room", MaxGuests: 2},
		{HotelID: hotel.ID, TypeName: "Superior", Description: "Superior Room", MaxGuests: 3},
		{HotelID: hotel.ID, TypeName: "Deluxe", Description: "Deluxe Room", MaxGuests: 4},
	}
	if err := DB.Create(&roomTypes).Error; err != nil {
		log.Printf("warning: failed to seed room types: %v", err)
		return
	}

	rateConfig := models.RateConfig{
		HotelID:          hotel.ID,
		BaseRoomTypeID:   roomTypes[0].ID,
		GuardrailMax:     900,
		RateFreezePeriod: 2,
		LMFEnabled:       true,
		LMFRate:          85,
		LMFDays:          7,
		LMFDow:           mustJSON([]string{"sun", "mon"}),
		MonthlyMinRates: mustJSON(map[string]float64{
			"jan": 95, "feb": 95, "mar": 100, "apr": 105, "may": 110, "jun": 120,
			"jul": 130, "aug": 130, "sep": 115, "oct": 110, "nov": 100, "dec": 125,
		}),
		RoomDifferentials: mustJSON([]models.RoomDifferential{
			{RoomTypeID: roomTypes[1].ID, Operator: "+", Value: 15},
			{RoomTypeID: roomTypes[2].ID, Operator: "+", Value: 30},
		}),
	}
	if err := DB.Create(&rateConfig).Error; err != nil {
		log.Printf("warning: failed to seed rate config: %v", err)
	}

	calcSetting := models.CalculatorSetting{
		HotelID:              hotel.ID,
		Multiplier:           1,
		MobileActive:         true,
		MobilePercent:        10,
		NonRefundableActive:  true,
		NonRefundablePercent: 5,
		CountryRateActive:    false,
		CountryRatePercent:   0,
	}
	if err := DB.Create(&calcSetting).Error; err != nil {
		log.Printf("warning: failed to seed calculator settings: %v", err)
	}

	campaigns := []models.CampaignRow{
		{HotelID: hotel.ID, Slug: "summer-deal", Name: "Summer Deal", Discount: 12, StartDate: datePtr("2026-06-01"), EndDate: datePtr("2026-08-31"), Active: true},
		{HotelID: hotel.ID, Slug: "early-deal", Name: "Early Booker", Discount: 10, StartDate: datePtr("2026-01-01"), EndDate: datePtr("2026-12-31"), Active: true},
		{HotelID: hotel.ID, Slug: "black-friday", Name: "Black Friday", Discount: 30, StartDate: datePtr("2026-11-27"), EndDate: datePtr("2026-11-30"), Active: true},
	}
	if err := DB.Create(&campaigns).Error; err != nil {
		log.Printf("warning: failed to seed campaigns: %v", err)
	}

	// 90 days of demo feed data for the base room
	today := time.Now().UTC()
	rates := make([]models.DailyRate, 0, 90)
	for i := 0; i < 90; i++ {
		date := today.AddDate(0, 0, i)
		base := 120.0
		switch date.Weekday() {
		case time.Friday, time.Saturday:
			base = 150
		case time.Sunday:
			base = 110
		}
		rates = append(rates, models.DailyRate{
			HotelID:    hotel.ID,
			RoomTypeID: roomTypes[0].ID,
			Date:       date.Format("2006-01-02"),
			Rate:       base,
			Source:     string(models.SourceAI),
			LiveRate:   base,
			Occupancy:  55 + float64(i%40),
			ADR:        base - 8,
		})
	}
	if err := DB.Create(&rates).Error; err != nil {
		log.Printf("warning: failed to seed daily rates: %v", err)
	}

	log.Println("Demo hotel seeded")
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	// fail fast on a malformed DSN before gorm dials
	if _, err := sqldriver.ParseDSN(dsn); err != nil {
		return fmt.Errorf("invalid mysql dsn: %w", err)
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.Hotel{},
		&models.RoomType{},
		&models.RateConfig{},
		&models.CalculatorSetting{},
		&models.CampaignRow{},
		&models.DailyRate{},
		&models.RateOverride{},
	); err != nil {
		return err
	}

	if strings.ToLower(envOrDefault("SEED_DEMO_DATA", "true")) == "true" {
		SeedDatabase()
	}
	return nil
}
