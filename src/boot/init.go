package boot

import (
	"carhive/src/common"
	"carhive/src/db"
	"carhive/src/lib"
	"carhive/src/models"
	"log"
	"time"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.User{},
		&models.Vendor{},
		&models.Car{},
		&models.Booking{},
		&models.AvailabilityBlock{},
		&models.Transaction{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}

func InitScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	id, err := lib.CreateCronJob(common.SweepBookingLifecycle, 15*time.Minute)
	if err != nil {
		log.Printf("Error scheduling lifecycle sweep: %s\n", err.Error())
		return
	}
	log.Printf("Scheduled lifecycle sweep job: %s\n", *id)
	sched.Start()
}

func StopScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("Error retrieving Scheduler. Check logs for info")
		return
	}
	if err := sched.Shutdown(); err != nil {
		log.Println("An error has occurred while stopping Scheduler. Check logs for info")
	}
}
