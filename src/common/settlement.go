package common

import (
	"carhive/src/db"
	"carhive/src/lib"
	"carhive/src/lib/mailer"
	"carhive/src/models"
	"carhive/src/types"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MaterializeBooking turns a decoded checkout intent into the persisted
// Booking + AvailabilityBlock + Transaction triple. The three inserts run in
// one transaction; the Booking insert uses insert-or-ignore against the
// unique booking_number/payment_intent_id indexes, so redelivered events
// collapse into a no-op instead of a second triple. Returns false when the
// event was a duplicate.
func MaterializeBooking(intent *types.CheckoutIntent, paymentIntentId string) (*models.Booking, bool, error) {
	booking := models.Booking{
		BookingNumber:   intent.BookingNumber,
		CustomerID:      intent.CustomerID,
		CarID:           intent.CarID,
		VendorID:        intent.VendorID,
		PaymentIntentId: &paymentIntentId,
		StartDate:       intent.StartDate,
		EndDate:         intent.EndDate,
		TotalDays:       intent.Breakdown.TotalDays,
		BasePrice:       intent.Breakdown.BasePrice,
		Discount:        intent.Breakdown.Discount,
		Tax:             intent.Breakdown.Tax,
		Commission:      intent.Breakdown.Commission,
		TotalAmount:     intent.Breakdown.TotalAmount,
		DepositAmount:   intent.Breakdown.DepositAmount,
		PickupLocation:  intent.PickupLocation,
		DropoffLocation: intent.DropoffLocation,
		Status:          types.BOOKING_CONFIRMED,
		PaymentStatus:   types.PAYMENT_PAID,
	}
	created := false
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&booking)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			log.Printf("[settlement] Duplicate delivery for booking [%s], skipping\n", intent.BookingNumber)
			return nil
		}
		created = true
		block := models.AvailabilityBlock{
			CarID:     intent.CarID,
			StartDate: intent.StartDate,
			EndDate:   intent.EndDate,
			Reason:    "booked",
			BookingID: booking.ID,
		}
		if err := tx.Create(&block).Error; err != nil {
			return err
		}
		txn := models.Transaction{
			BookingID:            booking.ID,
			UserID:               intent.CustomerID,
			Type:                 "payment",
			Amount:               intent.Breakdown.TotalAmount,
			Currency:             "usd",
			Status:               types.TRANSACTION_COMPLETED,
			PaymentMethod:        "card",
			TransactionReference: paymentIntentId,
		}
		if err := tx.Create(&txn).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &booking, created, nil
}

// CompensatePaymentFailure marks the Booking tied to a failed payment as
// cancelled. The Booking usually does not exist yet when the failure event
// arrives, because rows are only created on completed sessions; that case is
// a logged no-op, not an error.
func CompensatePaymentFailure(paymentIntentId string) error {
	db := db.GetDb()
	return db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		err := tx.
			Model(&models.Booking{}).
			Where("payment_intent_id = ?", paymentIntentId).
			First(&booking).
			Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[settlement] No Booking for failed payment [%s], nothing to compensate\n", paymentIntentId)
			return nil
		}
		if err != nil {
			return err
		}
		return tx.
			Model(&models.Booking{}).
			Where("id = ?", booking.ID).
			Updates(map[string]any{
				"status":         types.BOOKING_CANCELED,
				"payment_status": types.PAYMENT_PENDING,
			}).
			Error
	})
}

// SendBookingConfirmation mails the customer a receipt for a freshly
// materialized booking. Delivery failures are logged by the mailer, never
// surfaced to the webhook response.
func SendBookingConfirmation(booking *models.Booking, email string) {
	if email == "" {
		return
	}
	body := fmt.Sprintf(`
		<p>Your booking <b>%s</b> is confirmed.</p>
		<p>Rental period: %s to %s (%d days)</p>
		<p>Total charged: %.2f USD. Refundable deposit: %.2f USD.</p>
	`,
		booking.BookingNumber,
		booking.StartDate.Format("2006-01-02"),
		booking.EndDate.Format("2006-01-02"),
		booking.TotalDays,
		booking.TotalAmount,
		booking.DepositAmount,
	)
	mailer.NewMailerMessage(&lib.SendMailInput{
		From:     os.Getenv("SMTP_FROM"),
		FromName: "noreply",
		To:       []string{email},
		Subject:  fmt.Sprintf("Booking %s confirmed", booking.BookingNumber),
		Body:     body,
		Html:     true,
	})
}

// SweepBookingLifecycle advances confirmed bookings whose rental window has
// opened or closed, and releases availability held by cancelled bookings.
// Runs periodically from the scheduler.
func SweepBookingLifecycle() {
	now := time.Now()
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Model(&models.Booking{}).
			Where("status = ? AND start_date <= ?", types.BOOKING_CONFIRMED, now).
			Update("status", types.BOOKING_ACTIVE).
			Error; err != nil {
			return err
		}
		if err := tx.
			Model(&models.Booking{}).
			Where("status = ? AND end_date < ?", types.BOOKING_ACTIVE, now).
			Update("status", types.BOOKING_COMPLETED).
			Error; err != nil {
			return err
		}
		var cancelledIds []uint
		if err := tx.
			Model(&models.Booking{}).
			Where("status = ?", types.BOOKING_CANCELED).
			Pluck("id", &cancelledIds).
			Error; err != nil {
			return err
		}
		if len(cancelledIds) == 0 {
			return nil
		}
		return tx.
			Where("booking_id IN (?)", cancelledIds).
			Delete(&models.AvailabilityBlock{}).
			Error
	})
	if err != nil {
		log.Printf("[lifecycle] Sweep failed: %s\n", err.Error())
	}
}
