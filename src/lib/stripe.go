package lib

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// PaymentSession is the provider-neutral view of a hosted checkout session.
type PaymentSession struct {
	ID              string
	URL             string
	PaymentStatus   string
	PaymentIntentID string
	CustomerEmail   string
	AmountTotal     int64
	Metadata        map[string]string
}

// PaymentEvent is a verified webhook notification. Session is set for
// checkout session events; PaymentIntentID for payment intent events.
type PaymentEvent struct {
	Type            string
	Session         *PaymentSession
	PaymentIntentID string
}

type CreateSessionInput struct {
	AmountMinor   int64
	Currency      string
	ProductName   string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	Metadata      map[string]string
}

// PaymentGateway is the injected payment capability. Handlers depend on this
// interface so settlement logic can be tested against a fake.
type PaymentGateway interface {
	CreateSession(ctx context.Context, input *CreateSessionInput) (*PaymentSession, error)
	RetrieveSession(ctx context.Context, id string) (*PaymentSession, error)
	VerifyAndParseEvent(payload []byte, signature string) (*PaymentEvent, error)
}

var stripeClient *stripe.Client
var gateway PaymentGateway

func GetStripeClient() *stripe.Client {
	if stripeClient != nil {
		return stripeClient
	}
	apiKey := os.Getenv("STRIPE_SECRET_KEY")
	sc := stripe.NewClient(apiKey)
	stripeClient = sc

	return sc
}

func NewStripeClient(c *stripe.Client) {
	stripeClient = c
}

func GetPaymentGateway() PaymentGateway {
	if gateway != nil {
		return gateway
	}
	gateway = &stripeGateway{
		webhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
	}
	return gateway
}

// NewPaymentGateway replaces the gateway instance, used by tests to inject a
// fake implementation.
func NewPaymentGateway(g PaymentGateway) {
	gateway = g
}

type stripeGateway struct {
	webhookSecret string
}

func (s *stripeGateway) CreateSession(ctx context.Context, input *CreateSessionInput) (*PaymentSession, error) {
	sc := GetStripeClient()
	piParams := &stripe.CheckoutSessionCreatePaymentIntentDataParams{}
	for k, v := range input.Metadata {
		piParams.AddMetadata(k, v)
	}
	params := stripe.CheckoutSessionCreateParams{
		SuccessURL:        stripe.String(input.SuccessURL),
		CancelURL:         stripe.String(input.CancelURL),
		UIMode:            stripe.String("hosted"),
		Mode:              stripe.String("payment"),
		CustomerEmail:     stripe.String(input.CustomerEmail),
		PaymentIntentData: piParams,
		Metadata:          input.Metadata,
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
					Currency:   stripe.String(input.Currency),
					UnitAmount: stripe.Int64(input.AmountMinor),
					ProductData: &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
						Name: stripe.String(input.ProductName),
					},
				},
			},
		},
	}
	cs, err := sc.V1CheckoutSessions.Create(ctx, &params)
	if err != nil {
		return nil, err
	}
	return sessionFromStripe(cs), nil
}

func (s *stripeGateway) RetrieveSession(ctx context.Context, id string) (*PaymentSession, error) {
	sc := GetStripeClient()
	cs, err := sc.V1CheckoutSessions.Retrieve(ctx, id, nil)
	if err != nil {
		return nil, err
	}
	return sessionFromStripe(cs), nil
}

func (s *stripeGateway) VerifyAndParseEvent(payload []byte, signature string) (*PaymentEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, s.webhookSecret)
	if err != nil {
		return nil, err
	}
	pe := &PaymentEvent{Type: string(event.Type)}
	switch event.Type {
	case "checkout.session.completed", "checkout.session.expired":
		var cs stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
			return nil, fmt.Errorf("error parsing CheckoutSession: %s", err.Error())
		}
		pe.Session = sessionFromStripe(&cs)
		pe.PaymentIntentID = pe.Session.PaymentIntentID
	case "payment_intent.succeeded", "payment_intent.payment_failed", "payment_intent.created":
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return nil, fmt.Errorf("error parsing PaymentIntent: %s", err.Error())
		}
		pe.PaymentIntentID = pi.ID
	}
	return pe, nil
}

func sessionFromStripe(cs *stripe.CheckoutSession) *PaymentSession {
	ps := &PaymentSession{
		ID:            cs.ID,
		URL:           cs.URL,
		PaymentStatus: string(cs.PaymentStatus),
		AmountTotal:   cs.AmountTotal,
		Metadata:      cs.Metadata,
	}
	if cs.PaymentIntent != nil {
		ps.PaymentIntentID = cs.PaymentIntent.ID
	}
	if cs.CustomerDetails != nil {
		ps.CustomerEmail = cs.CustomerDetails.Email
	} else {
		ps.CustomerEmail = cs.CustomerEmail
	}
	return ps
}
