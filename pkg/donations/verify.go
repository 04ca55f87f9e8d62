package donations

import (
	"context"
	"fmt"

	"github.com/MagloireKITIO/ifa-donations/pkg/models"
)

// Verify polls the gateway for the donation's transaction status and feeds the
// result through the reconciliation engine, exactly as the webhook path does.
// It covers lost webhooks and lets donors or admins confirm a payment on
// demand.
//
// A donation that is already COMPLETED is returned unchanged with no gateway
// call. A donation without a gateway reference cannot be verified.
func (s *Service) Verify(ctx context.Context, donationID string) (*models.Donation, error) {
	donation, err := s.Store.GetDonation(ctx, donationID)
	if err != nil {
		return nil, err
	}

	if donation.Reference == "" {
		return nil, ErrNoTransaction
	}
	if donation.Status == models.COMPLETED {
		return donation, nil
	}

	tx, err := s.Gateway.GetTransaction(ctx, donation.Reference)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentUnavailable, err)
	}

	if err := s.Engine.Reconcile(ctx, donation.Reference, tx.Outcome(), tx.Raw); err != nil {
		return nil, fmt.Errorf("failed to reconcile donation %s: %w", donationID, err)
	}

	return s.Store.GetDonation(ctx, donationID)
}
