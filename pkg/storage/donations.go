package storage

import (
	"context"
	"time"

	"github.com/MagloireKITIO/ifa-donations/pkg/models"
)

// DonationReader defines the interface for reading donation data.
type DonationReader interface {
	// GetDonation retrieves a donation by its ID.
	GetDonation(ctx context.Context, donationID string) (*models.Donation, error)

	// GetDonationByReference retrieves a donation by its external gateway reference.
	// Returns ErrDonationNotFound if no donation carries the reference.
	GetDonationByReference(ctx context.Context, reference string) (*models.Donation, error)

	// ListDonationsByUserID retrieves all donations for a specific user.
	ListDonationsByUserID(ctx context.Context, userID string) ([]models.Donation, error)

	// GetStalePendingDonations retrieves donations that have been in a 'PENDING' state for longer than the specified duration.
	GetStalePendingDonations(ctx context.Context, maxAge time.Duration) ([]models.Donation, error)
}

// DonationWriter defines the interface for creating and transitioning donations.
type DonationWriter interface {
	// CreateDonation persists a new donation in PENDING state and returns it.
	CreateDonation(ctx context.Context, donation *models.Donation) (*models.Donation, error)

	// AttachReference stores the gateway transaction reference and raw gateway
	// response on a donation after the payment intent has been created.
	AttachReference(ctx context.Context, donationID, reference, metadata string) error

	// MarkDonationCompleted atomically transitions a donation from PENDING to
	// COMPLETED, setting the completion timestamp and merging metadata. It
	// returns false with a nil error when the donation is already terminal,
	// which callers must treat as "transition already applied elsewhere".
	MarkDonationCompleted(ctx context.Context, donationID, metadata string, completedAt time.Time) (bool, error)

	// MarkDonationFailed atomically transitions a donation from PENDING to
	// FAILED. Same idempotency contract as MarkDonationCompleted.
	MarkDonationFailed(ctx context.Context, donationID, metadata string) (bool, error)
}

// DonationStore combines the reader and writer interfaces.
type DonationStore interface {
	DonationReader
	DonationWriter
}
