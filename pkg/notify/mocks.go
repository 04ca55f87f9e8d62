package notify

import "context"

// NoOpDispatcher is a mock dispatcher that does nothing.
type NoOpDispatcher struct{}

// DonationConfirmed does nothing.
func (d *NoOpDispatcher) DonationConfirmed(ctx context.Context, confirmation DonationConfirmation) error {
	return nil
}
