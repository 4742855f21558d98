package helper

import (
	"log"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"

	"github.com/go-co-op/gocron/v2"
)

var tableScheduler gocron.Scheduler

// StartTableScheduler runs the nightly housekeeping: per-table daily order
// counters reset at 00:05 and confirmed reservations whose window has passed
// are marked completed.
func StartTableScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	tableScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(ResetDailyTableCounters),
	)
	if err != nil {
		log.Fatal(err)
	}

	_, err = s.NewJob(
		gocron.DurationJob(15*time.Minute),
		gocron.NewTask(CompleteExpiredReservations),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Table scheduler started")
}

func StopTableScheduler() {
	if tableScheduler != nil {
		if err := tableScheduler.Shutdown(); err != nil {
			log.Printf("Scheduler shutdown error: %v", err)
		}
	}
}

func ResetDailyTableCounters() {
	result := database.DB.Model(&model.Table{}).
		Where("total_orders_today > 0").
		Update("total_orders_today", 0)

	if result.Error != nil {
		log.Printf("Daily counter reset error: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Reset daily order counters for %d tables", result.RowsAffected)
	}
}

func CompleteExpiredReservations() {
	now := time.Now()
	result := database.DB.Model(&model.Reservation{}).
		Where("status = ? AND end_time < ?", constants.RESERVATION_CONFIRMED, now).
		Update("status", constants.RESERVATION_COMPLETED)

	if result.Error != nil {
		log.Printf("Reservation sweep error: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Completed %d expired reservations", result.RowsAffected)
	}
}
