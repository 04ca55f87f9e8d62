package reconcile

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/MagloireKITIO/ifa-donations/pkg/models"
	"github.com/MagloireKITIO/ifa-donations/pkg/notify"
	"github.com/MagloireKITIO/ifa-donations/pkg/storage"
	storage_mocks "github.com/MagloireKITIO/ifa-donations/pkg/storage/mocks"
)

func pendingDonation(reference string) *models.Donation {
	return &models.Donation{
		Id:        uuid.New().String(),
		UserId:    "user1",
		FundId:    "fund1",
		Amount:    5000,
		Currency:  "XAF",
		Status:    models.PENDING,
		Reference: reference,
	}
}

func TestReconcile_UnknownReference(t *testing.T) {
	mockStore := new(storage_mocks.ApiStore)
	mockLedger := new(storage_mocks.FundLedger)
	engine := NewEngine(mockStore, mockStore, mockLedger, &notify.NoOpDispatcher{})

	mockStore.On("GetDonationByReference", mock.Anything, "ref-unknown").Return(nil, storage.ErrDonationNotFound)

	err := engine.Reconcile(context.Background(), "ref-unknown", models.OutcomeComplete, "{}")

	assert.NoError(t, err)
	mockStore.AssertExpectations(t)
	mockLedger.AssertNotCalled(t, "IncrementFundAmount", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcile_AlreadyTerminal(t *testing.T) {
	for _, status := range []models.DonationStatus{models.COMPLETED, models.FAILED} {
		t.Run(string(status), func(t *testing.T) {
			mockStore := new(storage_mocks.ApiStore)
			mockLedger := new(storage_mocks.FundLedger)
			engine := NewEngine(mockStore, mockStore, mockLedger, &notify.NoOpDispatcher{})

			donation := pendingDonation("ref-1")
			donation.Status = status
			mockStore.On("GetDonationByReference", mock.Anything, "ref-1").Return(donation, nil)

			err := engine.Reconcile(context.Background(), "ref-1", models.OutcomeComplete, "{}")

			assert.NoError(t, err)
			mockStore.AssertExpectations(t)
			mockStore.AssertNotCalled(t, "MarkDonationCompleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			mockLedger.AssertNotCalled(t, "IncrementFundAmount", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestReconcile_Complete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStore := new(storage_mocks.ApiStore)
		mockLedger := new(storage_mocks.FundLedger)
		engine := NewEngine(mockStore, mockStore, mockLedger, &notify.NoOpDispatcher{})

		donation := pendingDonation("ref-1")
		mockStore.On("GetDonationByReference", mock.Anything, "ref-1").Return(donation, nil)
		mockStore.On("MarkDonationCompleted", mock.Anything, donation.Id, "{}", mock.AnythingOfType("time.Time")).Return(true, nil)
		mockLedger.On("IncrementFundAmount", mock.Anything, "fund1", int64(5000)).Return(nil).Once()
		mockStore.On("GetFund", mock.Anything, "fund1").Return(&models.Fund{Id: "fund1", Name: "Building Fund"}, nil)

		err := engine.Reconcile(context.Background(), "ref-1", models.OutcomeComplete, "{}")

		assert.NoError(t, err)
		mockStore.AssertExpectations(t)
		mockLedger.AssertExpectations(t)
	})

	t.Run("Lost Conditional Write", func(t *testing.T) {
		// Another caller completed the donation between the read and the write.
		mockStore := new(storage_mocks.ApiStore)
		mockLedger := new(storage_mocks.FundLedger)
		engine := NewEngine(mockStore, mockStore, mockLedger, &notify.NoOpDispatcher{})

		donation := pendingDonation("ref-1")
		mockStore.On("GetDonationByReference", mock.Anything, "ref-1").Return(donation, nil)
		mockStore.On("MarkDonationCompleted", mock.Anything, donation.Id, "{}", mock.AnythingOfType("time.Time")).Return(false, nil)

		err := engine.Reconcile(context.Background(), "ref-1", models.OutcomeComplete, "{}")

		assert.NoError(t, err)
		mockStore.AssertExpectations(t)
		mockLedger.AssertNotCalled(t, "IncrementFundAmount", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Increment Fails", func(t *testing.T) {
		mockStore := new(storage_mocks.ApiStore)
		mockLedger := new(storage_mocks.FundLedger)
		engine := NewEngine(mockStore, mockStore, mockLedger, &notify.NoOpDispatcher{})

		donation := pendingDonation("ref-1")
		mockStore.On("GetDonationByReference", mock.Anything, "ref-1").Return(donation, nil)
		mockStore.On("MarkDonationCompleted", mock.Anything, donation.Id, "{}", mock.AnythingOfType("time.Time")).Return(true, nil)
		mockLedger.On("IncrementFundAmount", mock.Anything, "fund1", int64(5000)).Return(errors.New("dynamodb unavailable"))

		err := engine.Reconcile(context.Background(), "ref-1", models.OutcomeComplete, "{}")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to credit fund")
	})
}

func TestReconcile_Failed(t *testing.T) {
	mockStore := new(storage_mocks.ApiStore)
	mockLedger := new(storage_mocks.FundLedger)
	engine := NewEngine(mockStore, mockStore, mockLedger, &notify.NoOpDispatcher{})

	donation := pendingDonation("ref-1")
	mockStore.On("GetDonationByReference", mock.Anything, "ref-1").Return(donation, nil)
	mockStore.On("MarkDonationFailed", mock.Anything, donation.Id, `{"reason":"card declined"}`).Return(true, nil)

	err := engine.Reconcile(context.Background(), "ref-1", models.OutcomeFailed, `{"reason":"card declined"}`)

	assert.NoError(t, err)
	mockStore.AssertExpectations(t)
	mockLedger.AssertNotCalled(t, "IncrementFundAmount", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcile_UnknownOutcome(t *testing.T) {
	mockStore := new(storage_mocks.ApiStore)
	mockLedger := new(storage_mocks.FundLedger)
	engine := NewEngine(mockStore, mockStore, mockLedger, &notify.NoOpDispatcher{})

	donation := pendingDonation("ref-1")
	mockStore.On("GetDonationByReference", mock.Anything, "ref-1").Return(donation, nil)

	err := engine.Reconcile(context.Background(), "ref-1", models.OutcomeUnknown, "{}")

	assert.NoError(t, err)
	mockStore.AssertNotCalled(t, "MarkDonationCompleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockStore.AssertNotCalled(t, "MarkDonationFailed", mock.Anything, mock.Anything, mock.Anything)
}

// failingDispatcher always errors, to prove notification failures never
// propagate into the financial path.
type failingDispatcher struct{}

func (d *failingDispatcher) DonationConfirmed(ctx context.Context, c notify.DonationConfirmation) error {
	return errors.New("push service down")
}

func TestReconcile_NotificationFailureIsSwallowed(t *testing.T) {
	mockStore := new(storage_mocks.ApiStore)
	mockLedger := new(storage_mocks.FundLedger)
	engine := NewEngine(mockStore, mockStore, mockLedger, &failingDispatcher{})

	donation := pendingDonation("ref-1")
	mockStore.On("GetDonationByReference", mock.Anything, "ref-1").Return(donation, nil)
	mockStore.On("MarkDonationCompleted", mock.Anything, donation.Id, "{}", mock.AnythingOfType("time.Time")).Return(true, nil)
	mockLedger.On("IncrementFundAmount", mock.Anything, "fund1", int64(5000)).Return(nil).Once()
	mockStore.On("GetFund", mock.Anything, "fund1").Return(&models.Fund{Id: "fund1", Name: "Building Fund"}, nil)

	err := engine.Reconcile(context.Background(), "ref-1", models.OutcomeComplete, "{}")

	assert.NoError(t, err)
	mockLedger.AssertExpectations(t)
}

// fakeStore is an in-memory store whose transitions use the same
// check-and-set semantics as the DynamoDB conditional writes. It backs the
// concurrency tests below, where expectation-driven mocks would be awkward.
type fakeStore struct {
	mu         sync.Mutex
	donation   *models.Donation
	fundTotal  int64
	increments int
}

func (f *fakeStore) GetDonation(ctx context.Context, id string) (*models.Donation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.donation == nil || f.donation.Id != id {
		return nil, storage.ErrDonationNotFound
	}
	copy := *f.donation
	return &copy, nil
}

func (f *fakeStore) GetDonationByReference(ctx context.Context, reference string) (*models.Donation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.donation == nil || f.donation.Reference != reference {
		return nil, storage.ErrDonationNotFound
	}
	copy := *f.donation
	return &copy, nil
}

func (f *fakeStore) ListDonationsByUserID(ctx context.Context, userID string) ([]models.Donation, error) {
	return nil, nil
}

func (f *fakeStore) GetStalePendingDonations(ctx context.Context, maxAge time.Duration) ([]models.Donation, error) {
	return nil, nil
}

func (f *fakeStore) CreateDonation(ctx context.Context, d *models.Donation) (*models.Donation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.donation = d
	return d, nil
}

func (f *fakeStore) AttachReference(ctx context.Context, id, reference, metadata string) error {
	return nil
}

func (f *fakeStore) MarkDonationCompleted(ctx context.Context, id, metadata string, completedAt time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.donation == nil || f.donation.Id != id || f.donation.Status != models.PENDING {
		return false, nil
	}
	f.donation.Status = models.COMPLETED
	f.donation.CompletedAt = &completedAt
	f.donation.Metadata = metadata
	return true, nil
}

func (f *fakeStore) MarkDonationFailed(ctx context.Context, id, metadata string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.donation == nil || f.donation.Id != id || f.donation.Status != models.PENDING {
		return false, nil
	}
	f.donation.Status = models.FAILED
	f.donation.Metadata = metadata
	return true, nil
}

func (f *fakeStore) GetFund(ctx context.Context, fundID string) (*models.Fund, error) {
	return &models.Fund{Id: fundID, Name: "Building Fund"}, nil
}

func (f *fakeStore) ListFunds(ctx context.Context) ([]models.Fund, error) { return nil, nil }

func (f *fakeStore) CreateFund(ctx context.Context, fund *models.Fund) (*models.Fund, error) {
	return fund, nil
}

func (f *fakeStore) IncrementFundAmount(ctx context.Context, fundID string, amount int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fundTotal += amount
	f.increments++
	return nil
}

func TestReconcile_ConcurrentDuplicateDeliveries(t *testing.T) {
	store := &fakeStore{donation: pendingDonation("ref-dup")}
	engine := NewEngine(store, store, store, &notify.NoOpDispatcher{})

	const deliveries = 20
	var wg sync.WaitGroup
	for i := 0; i < deliveries; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := engine.Reconcile(context.Background(), "ref-dup", models.OutcomeComplete, "{}")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, store.increments, "fund must be credited exactly once")
	assert.Equal(t, int64(5000), store.fundTotal)
	assert.Equal(t, models.COMPLETED, store.donation.Status)
	assert.NotNil(t, store.donation.CompletedAt)
}

func TestReconcile_ContradictoryOutcomes(t *testing.T) {
	t.Run("Complete Then Failed", func(t *testing.T) {
		store := &fakeStore{donation: pendingDonation("ref-c")}
		engine := NewEngine(store, store, store, &notify.NoOpDispatcher{})

		assert.NoError(t, engine.Reconcile(context.Background(), "ref-c", models.OutcomeComplete, "{}"))
		assert.NoError(t, engine.Reconcile(context.Background(), "ref-c", models.OutcomeFailed, "{}"))

		assert.Equal(t, models.COMPLETED, store.donation.Status)
		assert.Equal(t, 1, store.increments)
	})

	t.Run("Failed Then Complete", func(t *testing.T) {
		store := &fakeStore{donation: pendingDonation("ref-f")}
		engine := NewEngine(store, store, store, &notify.NoOpDispatcher{})

		assert.NoError(t, engine.Reconcile(context.Background(), "ref-f", models.OutcomeFailed, "{}"))
		assert.NoError(t, engine.Reconcile(context.Background(), "ref-f", models.OutcomeComplete, "{}"))

		assert.Equal(t, models.FAILED, store.donation.Status)
		assert.Equal(t, 0, store.increments, "a failed donation must never credit the fund")
	})
}
