// Package donations holds the donation intake and manual verification
// services sitting between the HTTP handlers and the storage/gateway layers.
package donations

import (
	"errors"

	"github.com/MagloireKITIO/ifa-donations/pkg/paystack"
	"github.com/MagloireKITIO/ifa-donations/pkg/reconcile"
	"github.com/MagloireKITIO/ifa-donations/pkg/storage"
)

// ErrInvalidAmount is returned when the donation amount is not positive.
var ErrInvalidAmount = errors.New("donation amount must be positive")

// ErrFundNotAcceptingDonations is returned when the target fund exists but is not active.
var ErrFundNotAcceptingDonations = errors.New("fund is not accepting donations")

// ErrNoTransaction is returned when verification is requested for a donation
// that never received a gateway transaction reference.
var ErrNoTransaction = errors.New("donation has no gateway transaction")

// ErrPaymentUnavailable is returned when the payment gateway could not produce
// a usable payment intent. The donor may retry with a new donation.
var ErrPaymentUnavailable = errors.New("payment gateway unavailable")

// Service implements donation intake and manual verification.
type Service struct {
	Store       storage.ApiStore
	Gateway     paystack.Gateway
	Engine      *reconcile.Engine
	CallbackURL string
}

// NewService creates a new Service. callbackURL is where the gateway redirects
// the donor after payment.
func NewService(store storage.ApiStore, gateway paystack.Gateway, engine *reconcile.Engine, callbackURL string) *Service {
	return &Service{
		Store:       store,
		Gateway:     gateway,
		Engine:      engine,
		CallbackURL: callbackURL,
	}
}
