package main

import (
	"carhive/src/db"
	"carhive/src/models"
	"carhive/src/types"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func errInvalidTransition(from, to types.BookingStatus) error {
	return fmt.Errorf("invalid status transition %s -> %s", from, to)
}

func bookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/bookings", func(ctx *gin.Context) {
			customerId := ctx.GetUint("id")
			db := db.GetDb()
			var bookings []models.Booking
			err := db.
				Model(&models.Booking{}).
				Where(&models.Booking{CustomerID: customerId}).
				Preload("Car").
				Order("created_at DESC").
				Limit(50).
				Find(&bookings).
				Error
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": bookings, "count": len(bookings)})
		}).
		GET("/bookings/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			customerId := ctx.GetUint("id")
			db := db.GetDb()
			var booking models.Booking
			if err := db.
				Model(&models.Booking{}).
				Where(&models.Booking{ID: params.ID, CustomerID: customerId}).
				Preload("Car").
				First(&booking).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		}).
		PUT("/bookings/:id/status", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.UpdateBookingStatusRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			next := types.BookingStatus(body.Status)
			if !next.Valid() {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
				return
			}
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				var booking models.Booking
				if err := tx.
					Model(&models.Booking{}).
					Where("id = ?", params.ID).
					First(&booking).
					Error; err != nil {
					return err
				}
				if !booking.Status.CanTransition(next) {
					return errInvalidTransition(booking.Status, next)
				}
				return tx.
					Model(&models.Booking{}).
					Where("id = ?", params.ID).
					Update("status", next).
					Error
			})
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		PUT("/bookings/:id/cancel", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			customerId := ctx.GetUint("id")
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				var booking models.Booking
				if err := tx.
					Model(&models.Booking{}).
					Where(&models.Booking{ID: params.ID, CustomerID: customerId}).
					First(&booking).
					Error; err != nil {
					return err
				}
				if !booking.Status.CanTransition(types.BOOKING_CANCELED) {
					return errInvalidTransition(booking.Status, types.BOOKING_CANCELED)
				}
				if err := tx.
					Model(&models.Booking{}).
					Where("id = ?", booking.ID).
					Update("status", types.BOOKING_CANCELED).
					Error; err != nil {
					return err
				}
				// Release the hold so the car can be rebooked right away
				// instead of waiting for the lifecycle sweep.
				return tx.
					Where(&models.AvailabilityBlock{BookingID: booking.ID}).
					Delete(&models.AvailabilityBlock{}).
					Error
			})
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
