package main

import (
	"carhive/src/common"
	"carhive/src/lib"
	"carhive/src/types"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func stripeWebhookRoute(g *gin.Engine) *gin.RouterGroup {
	apiv1 := apiv1Group(g)
	apiv1.POST("/webhook/stripe", func(ctx *gin.Context) {
		payload, err := io.ReadAll(ctx.Request.Body)
		if err != nil {
			log.Printf("Error reading request body: %s\n", err.Error())
			ctx.Status(http.StatusServiceUnavailable)
			return
		}
		gw := lib.GetPaymentGateway()
		event, err := gw.VerifyAndParseEvent(payload, ctx.GetHeader("Stripe-Signature"))
		if err != nil {
			log.Printf("Error verifying webhook signature: %s\n", err.Error())
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
			return
		}
		log.Printf("[StripeEvent] %s\n", event.Type)
		switch event.Type {
		case "checkout.session.completed":
			cs := event.Session
			if cs == nil {
				log.Printf("[Stripe] Completed session event carries no session payload\n")
				break
			}
			log.Printf("[CheckoutSession] ID: %s %s\n", cs.ID, cs.PaymentStatus)
			intent, err := types.IntentFromMetadata(cs.Metadata)
			if err != nil {
				// A malformed intent cannot be repaired by a provider retry;
				// log loudly and acknowledge with nothing written.
				log.Printf("[Stripe] Rejecting session [%s]: %s\n", cs.ID, err.Error())
				break
			}
			booking, created, err := common.MaterializeBooking(intent, cs.PaymentIntentID)
			if err != nil {
				log.Printf("Error materializing Booking [%s]: %s\n", intent.BookingNumber, err.Error())
				break
			}
			if created {
				log.Printf("Booking [%s] confirmed with payment [%s]\n", booking.BookingNumber, cs.PaymentIntentID)
				common.SendBookingConfirmation(booking, cs.CustomerEmail)
			}
		case "payment_intent.succeeded":
			log.Printf("[PaymentIntent] %s succeeded\n", event.PaymentIntentID)
		case "payment_intent.payment_failed":
			if err := common.CompensatePaymentFailure(event.PaymentIntentID); err != nil {
				log.Printf("Error compensating failed payment [%s]: %s\n", event.PaymentIntentID, err.Error())
			}
		default:
			log.Printf("[StripeEvent] Ignoring event type %s\n", event.Type)
		}
		ctx.JSON(http.StatusOK, gin.H{"received": true})
	})
	return apiv1
}
