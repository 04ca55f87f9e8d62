// Package reconcile applies externally reported payment outcomes to the
// internal donation and fund state. Both the webhook path and the manual
// verification path funnel through the Engine, so the idempotency guard lives
// in exactly one place.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/MagloireKITIO/ifa-donations/pkg/models"
	"github.com/MagloireKITIO/ifa-donations/pkg/notify"
	"github.com/MagloireKITIO/ifa-donations/pkg/storage"
)

// Engine applies a payment outcome to a donation exactly once.
type Engine struct {
	Donations  storage.DonationStore
	Funds      storage.FundReader
	Ledger     storage.FundLedger
	Dispatcher notify.Dispatcher
}

// NewEngine creates a new Engine.
func NewEngine(donations storage.DonationStore, funds storage.FundReader, ledger storage.FundLedger, dispatcher notify.Dispatcher) *Engine {
	return &Engine{
		Donations:  donations,
		Funds:      funds,
		Ledger:     ledger,
		Dispatcher: dispatcher,
	}
}

// Reconcile looks up the donation carrying the given gateway reference and
// applies the observed outcome.
//
// An unknown reference is not an error: it covers gateway test traffic,
// replays after local cleanup, and races with intake. A donation already in a
// terminal state is left untouched regardless of what the outcome says; the
// storage-level conditional write ensures this holds even when two calls for
// the same reference run concurrently.
func (e *Engine) Reconcile(ctx context.Context, reference string, outcome models.PaymentOutcome, metadata string) error {
	donation, err := e.Donations.GetDonationByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, storage.ErrDonationNotFound) {
			slog.Info("reconciliation for unknown reference, ignoring", "reference", reference, "outcome", outcome)
			return nil
		}
		return fmt.Errorf("failed to look up donation for reference %s: %w", reference, err)
	}

	if donation.Status.Terminal() {
		slog.Debug("donation already terminal, skipping", "donation_id", donation.Id, "status", donation.Status)
		return nil
	}

	switch outcome {
	case models.OutcomeComplete:
		return e.applyCompletion(ctx, donation, metadata)
	case models.OutcomeFailed:
		return e.applyFailure(ctx, donation, metadata)
	default:
		slog.Info("ignoring unhandled payment outcome", "donation_id", donation.Id, "outcome", outcome)
		return nil
	}
}

// applyCompletion transitions the donation to COMPLETED and, if this call won
// the conditional write, credits the fund and notifies the donor. The fund
// increment runs at most once per donation because only the winning writer
// reaches it.
func (e *Engine) applyCompletion(ctx context.Context, donation *models.Donation, metadata string) error {
	applied, err := e.Donations.MarkDonationCompleted(ctx, donation.Id, metadata, time.Now())
	if err != nil {
		return fmt.Errorf("failed to complete donation %s: %w", donation.Id, err)
	}
	if !applied {
		slog.Debug("completion already applied elsewhere", "donation_id", donation.Id)
		return nil
	}

	if err := e.Ledger.IncrementFundAmount(ctx, donation.FundId, donation.Amount); err != nil {
		// The donation is terminal and will not be retried through this path;
		// the fund total needs an operator adjustment.
		slog.Error("CRITICAL: donation completed but fund increment failed", "donation_id", donation.Id, "fund_id", donation.FundId, "error", err)
		return fmt.Errorf("failed to credit fund %s for donation %s: %w", donation.FundId, donation.Id, err)
	}

	e.notifyDonor(ctx, donation)
	return nil
}

// applyFailure transitions the donation to FAILED. No ledger or notification
// side effect.
func (e *Engine) applyFailure(ctx context.Context, donation *models.Donation, metadata string) error {
	applied, err := e.Donations.MarkDonationFailed(ctx, donation.Id, metadata)
	if err != nil {
		return fmt.Errorf("failed to mark donation %s failed: %w", donation.Id, err)
	}
	if !applied {
		slog.Debug("failure already applied elsewhere", "donation_id", donation.Id)
	}
	return nil
}

// notifyDonor dispatches the confirmation message. Best effort: a failure here
// is logged and otherwise ignored, never rolled back into the ledger.
func (e *Engine) notifyDonor(ctx context.Context, donation *models.Donation) {
	fundName := ""
	if fund, err := e.Funds.GetFund(ctx, donation.FundId); err == nil {
		fundName = fund.Name
	} else {
		slog.Warn("failed to resolve fund name for notification", "fund_id", donation.FundId, "error", err)
	}

	confirmation := notify.DonationConfirmation{
		UserID:     donation.UserId,
		DonationID: donation.Id,
		Amount:     donation.Amount,
		Currency:   donation.Currency,
		FundName:   fundName,
	}

	if err := e.Dispatcher.DonationConfirmed(ctx, confirmation); err != nil {
		slog.Error("failed to dispatch donation confirmation", "donation_id", donation.Id, "error", err)
	}
}
