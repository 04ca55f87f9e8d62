package notify

import (
	"context"
)

// Dispatcher defines the interface for sending donor-facing notifications.
// Dispatch is fire-and-forget from the caller's perspective: a failure must
// never undo or block the financial mutation that triggered it.
type Dispatcher interface {
	DonationConfirmed(ctx context.Context, confirmation DonationConfirmation) error
}
