package database

import (
	"log"
	"os"
	"time"

	"github.com/sefazor/coworkly-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDatabase() *gorm.DB {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return db
}

func RunMigrations(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.MembershipPlan{},
		&models.PlanPerk{},
		&models.Membership{},
		&models.PerkUsage{},
		&models.MeetingRoom{},
		&models.RoomBooking{},
		&models.Event{},
		&models.EventRegistration{},
		&models.Customer{},
		&models.GuestVisit{},
		&models.Payment{},
		&models.Inquiry{},
		&models.ActivityLog{},
	)
	if err != nil {
		return err
	}

	if err := seedPlans(db); err != nil {
		return err
	}
	return seedRooms(db)
}

// seedPlans inserts the default membership plans if they are missing.
// Existing plans are never modified: perk definitions referenced by active
// memberships must stay stable.
func seedPlans(db *gorm.DB) error {
	hotDesk := models.MembershipPlan{
		Name:         "Hot Desk",
		Description:  "Flexible desk access with basic perks",
		Price:        99,
		DurationDays: 30,
		IsActive:     true,
		Perks: []models.PlanPerk{
			{
				Type:        models.PerkMeetingRoomHours,
				Name:        "Meeting Room Hours",
				Quantity:    2,
				Unit:        "hours",
				IsRecurring: true,
			},
			{
				Type:        models.PerkCoffeeVouchers,
				Name:        "Coffee Vouchers",
				Quantity:    1,
				Unit:        "vouchers",
				MaxPerDay:   intPtr(2),
				IsRecurring: true,
			},
		},
	}

	dedicated := models.MembershipPlan{
		Name:         "Dedicated Desk",
		Description:  "Your own desk plus expanded perks",
		Price:        249,
		DurationDays: 30,
		IsActive:     true,
		Perks: []models.PlanPerk{
			{
				Type:        models.PerkMeetingRoomHours,
				Name:        "Meeting Room Hours",
				Quantity:    4,
				Unit:        "hours",
				IsRecurring: true,
			},
			{
				Type:        models.PerkPrintingCredits,
				Name:        "Printing Credits",
				Quantity:    1,
				Unit:        "credits",
				MaxPerDay:   intPtr(5),
				MaxPerMonth: intPtr(50),
				IsRecurring: true,
			},
			{
				Type:        models.PerkGuestPasses,
				Name:        "Guest Passes",
				Quantity:    1,
				Unit:        "passes",
				MaxPerWeek:  intPtr(2),
				DaysOfWeek:  models.NewWeekdaySet(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday),
				IsRecurring: true,
			},
		},
	}

	for _, plan := range []models.MembershipPlan{hotDesk, dedicated} {
		var count int64
		db.Model(&models.MembershipPlan{}).Where("name = ?", plan.Name).Count(&count)
		if count == 0 {
			if err := db.Create(&plan).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func seedRooms(db *gorm.DB) error {
	rooms := []models.MeetingRoom{
		{Name: "Focus Room", Location: "1st floor", Capacity: 4, HourlyRate: 15, IsActive: true},
		{Name: "Board Room", Location: "2nd floor", Capacity: 12, HourlyRate: 40, IsActive: true},
		{Name: "Huddle Space", Location: "1st floor", Capacity: 6, HourlyRate: 20, IsActive: true},
	}

	for _, room := range rooms {
		var count int64
		db.Model(&models.MeetingRoom{}).Where("name = ?", room.Name).Count(&count)
		if count == 0 {
			if err := db.Create(&room).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func intPtr(v int) *int {
	return &v
}
