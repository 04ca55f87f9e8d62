package donations

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MagloireKITIO/ifa-donations/pkg/models"
	"github.com/MagloireKITIO/ifa-donations/pkg/paystack"
)

// IntakeResult is what a successful donation creation returns to the caller.
type IntakeResult struct {
	Donation   *models.Donation
	PaymentURL string
}

// Create validates the target fund, persists a PENDING donation, and asks the
// gateway for a payment intent carrying the donation's own ID as the
// correlation reference. On any gateway failure the donation is moved to
// FAILED rather than left as an orphaned PENDING row.
func (s *Service) Create(ctx context.Context, donation *models.Donation) (*IntakeResult, error) {
	if donation.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	fund, err := s.Store.GetFund(ctx, donation.FundId)
	if err != nil {
		return nil, err
	}
	if fund.Status != models.FundActive {
		return nil, ErrFundNotAcceptingDonations
	}
	if donation.Currency == "" {
		donation.Currency = fund.Currency
	}

	created, err := s.Store.CreateDonation(ctx, donation)
	if err != nil {
		return nil, fmt.Errorf("failed to create donation record: %w", err)
	}

	intent, err := s.Gateway.CreatePayment(ctx, &paystack.PaymentRequest{
		Amount:      created.Amount,
		Currency:    created.Currency,
		Reference:   created.Id,
		CallbackURL: s.CallbackURL,
		Email:       created.DonorEmail,
		Phone:       created.DonorPhone,
		Description: fmt.Sprintf("Donation to %s", fund.Name),
	})
	if err != nil {
		s.failIntake(ctx, created.Id, fmt.Sprintf("payment creation failed: %v", err))
		return nil, fmt.Errorf("%w: %v", ErrPaymentUnavailable, err)
	}

	// A payment intent without a hosted payment page is unusable for the
	// donor, so it counts as a gateway failure.
	if intent.AuthorizationURL == "" {
		s.failIntake(ctx, created.Id, "payment creation returned no authorization_url")
		return nil, fmt.Errorf("%w: gateway returned no payment URL", ErrPaymentUnavailable)
	}

	if err := s.Store.AttachReference(ctx, created.Id, intent.Reference, intent.Raw); err != nil {
		return nil, fmt.Errorf("failed to store gateway reference for donation %s: %w", created.Id, err)
	}
	created.Reference = intent.Reference
	created.Metadata = intent.Raw

	return &IntakeResult{
		Donation:   created,
		PaymentURL: intent.AuthorizationURL,
	}, nil
}

// failIntake moves a fresh donation to FAILED after the gateway refused it.
// The donor sees a retryable error; this write only closes out the local row.
func (s *Service) failIntake(ctx context.Context, donationID, reason string) {
	if _, err := s.Store.MarkDonationFailed(ctx, donationID, reason); err != nil {
		slog.Error("failed to mark rejected donation as failed", "donation_id", donationID, "error", err)
	}
}
