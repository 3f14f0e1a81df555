package main

import (
	"carhive/src/common"
	"carhive/src/config"
	"carhive/src/db"
	"carhive/src/lib"
	"carhive/src/models"
	"carhive/src/types"
	"carhive/src/utils"
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func checkoutHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/checkout", func(ctx *gin.Context) {
			var body types.CreateCheckoutRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			customerId := ctx.GetUint("id")
			if customerId == 0 {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "missing customer identity"})
				return
			}
			startDate, err := time.Parse(config.DATE_PARSE_FORMAT, body.StartDate)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			endDate, err := time.Parse(config.DATE_PARSE_FORMAT, body.EndDate)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			var car models.Car
			db := db.GetDb()
			if err := db.
				Model(&models.Car{}).
				Where(&models.Car{ID: body.CarID}).
				Preload("Vendor").
				First(&car).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "car not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if car.Vendor == nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "vendor not found"})
				return
			}

			breakdown := common.CalculatePrice(common.RateCard{
				DailyRate:      car.DailyRate,
				WeeklyRate:     car.WeeklyRate,
				MonthlyRate:    car.MonthlyRate,
				CommissionRate: car.Vendor.CommissionRate,
			}, startDate, endDate)

			intent := types.CheckoutIntent{
				BookingNumber:   utils.NewBookingNumber(),
				CarID:           car.ID,
				CustomerID:      customerId,
				VendorID:        car.VendorID,
				StartDate:       startDate,
				EndDate:         endDate,
				PickupLocation:  body.PickupLocation,
				DropoffLocation: body.DropoffLocation,
				Breakdown:       breakdown,
			}

			appHost := os.Getenv("APP_HOST")
			gw := lib.GetPaymentGateway()
			session, err := gw.CreateSession(ctx, &lib.CreateSessionInput{
				AmountMinor:   int64(math.Round(breakdown.TotalAmount * 100)),
				Currency:      "usd",
				ProductName:   fmt.Sprintf("%s (%s)", car.Name, intent.BookingNumber),
				CustomerEmail: ctx.GetString("email"),
				SuccessURL:    fmt.Sprintf("%s/checkout/callback/success?session_id={CHECKOUT_SESSION_ID}", appHost),
				CancelURL:     fmt.Sprintf("%s/cars/%s", appHost, car.Slug),
				Metadata:      intent.ToMetadata(),
			})
			if err != nil {
				log.Printf("Error creating checkout session for car [%d]: %s\n", car.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to start checkout"})
				return
			}
			log.Printf("CheckoutSessionID: %s\n", session.ID)

			if rd := lib.GetRedisClient(); rd != nil {
				rd.SetEx(context.Background(), session.ID, intent.BookingNumber, time.Hour)
			}

			ctx.JSON(http.StatusCreated, gin.H{
				"session_id":     session.ID,
				"url":            session.URL,
				"booking_number": intent.BookingNumber,
			})
		})
	return g
}

func settlementRoutes(g *gin.Engine) *gin.RouterGroup {
	apiv1 := apiv1Group(g)
	apiv1.
		GET("/checkout/verify", func(ctx *gin.Context) {
			var query struct {
				SessionID string `form:"session_id" binding:"required"`
			}
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			gw := lib.GetPaymentGateway()
			session, err := gw.RetrieveSession(ctx, query.SessionID)
			if err != nil {
				log.Printf("[Stripe] Unable to retrieve session [%s]: %s\n", query.SessionID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to retrieve payment session"})
				return
			}
			if session.PaymentStatus != "paid" {
				ctx.JSON(http.StatusPaymentRequired, gin.H{"error": "payment not completed"})
				return
			}
			bookingNumber := session.Metadata["bookingNumber"]
			if bookingNumber == "" {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "session has no booking reference"})
				return
			}

			// The webhook usually races the redirect back, so the Booking may
			// not exist yet. Callers poll until it does.
			var booking *models.Booking
			var found models.Booking
			db := db.GetDb()
			err = db.
				Model(&models.Booking{}).
				Where(&models.Booking{BookingNumber: bookingNumber}).
				Preload("Car").
				First(&found).
				Error
			if err == nil {
				booking = &found
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}

			ctx.JSON(http.StatusOK, gin.H{
				"status":         session.PaymentStatus,
				"booking":        booking,
				"customer_email": session.CustomerEmail,
				"amount_total":   session.AmountTotal,
			})
		})
	return apiv1
}
