package storage

import (
	"context"

	"github.com/MagloireKITIO/ifa-donations/pkg/models"
)

// FundReader defines the interface for reading fund data.
type FundReader interface {
	// GetFund retrieves a fund by its ID.
	GetFund(ctx context.Context, fundID string) (*models.Fund, error)

	// ListFunds retrieves all funds.
	ListFunds(ctx context.Context) ([]models.Fund, error)
}

// FundWriter defines the interface for creating funds.
type FundWriter interface {
	// CreateFund creates a new fund and returns the created fund.
	CreateFund(ctx context.Context, fund *models.Fund) (*models.Fund, error)
}

// FundStore combines the reader and writer interfaces.
type FundStore interface {
	FundReader
	FundWriter
}

// FundLedger defines the privileged interface for mutating a fund's balance.
// The increment must be a single atomic storage-level operation; it is invoked
// exactly once per donation, at the moment the donation first completes.
type FundLedger interface {
	// IncrementFundAmount atomically adds amount to the fund's accumulated
	// total. If the fund is a campaign and the new total meets or exceeds the
	// target, the fund's status flips to COMPLETED.
	IncrementFundAmount(ctx context.Context, fundID string, amount int64) error
}
