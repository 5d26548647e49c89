package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/razorpay/razorpay-go"
)

// GatewayIntent is the processor's handle for an in-progress charge. Its
// fields are stored verbatim on the payment record.
type GatewayIntent struct {
	OrderId  string
	Status   string
	Amount   int64
	Currency string
}

// PaymentGateway abstracts the external payment processor.
type PaymentGateway interface {
	// CreateIntent registers a charge for amount in the smallest currency
	// unit and returns the processor's correlation handle.
	CreateIntent(amount int64, currency, receipt string) (*GatewayIntent, error)
	// VerifySignature checks the processor's confirmation signature over
	// the order/payment id pair.
	VerifySignature(orderId, paymentId, signature string) bool
}

type RazorpayGateway struct {
	client    *razorpay.Client
	keySecret string
}

func NewRazorpayGateway(keyId, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{
		client:    razorpay.NewClient(keyId, keySecret),
		keySecret: keySecret,
	}
}

func (g *RazorpayGateway) CreateIntent(amount int64, currency, receipt string) (*GatewayIntent, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}

	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, err
	}

	orderId, ok := order["id"].(string)
	if !ok {
		return nil, fmt.Errorf("processor order response missing id")
	}
	status, _ := order["status"].(string)

	return &GatewayIntent{
		OrderId:  orderId,
		Status:   status,
		Amount:   amount,
		Currency: currency,
	}, nil
}

func (g *RazorpayGateway) VerifySignature(orderId, paymentId, signature string) bool {
	h := hmac.New(sha256.New, []byte(g.keySecret))
	h.Write([]byte(orderId + "|" + paymentId))
	expected := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
