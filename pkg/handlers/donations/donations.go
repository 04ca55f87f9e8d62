package donations

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MagloireKITIO/ifa-donations/pkg/api"
	donationsvc "github.com/MagloireKITIO/ifa-donations/pkg/donations"
	"github.com/MagloireKITIO/ifa-donations/pkg/mapping"
	"github.com/MagloireKITIO/ifa-donations/pkg/storage"
)

// DonationsHandler holds the dependencies for donation-related handlers.
type DonationsHandler struct {
	Service *donationsvc.Service
	Store   storage.DonationReader
}

// NewDonationsHandler creates a new DonationsHandler.
func NewDonationsHandler(service *donationsvc.Service, store storage.DonationReader) *DonationsHandler {
	return &DonationsHandler{Service: service, Store: store}
}

// CreateDonation handles the logic for creating a new donation and its payment intent.
func (h *DonationsHandler) CreateDonation(w http.ResponseWriter, r *http.Request) {
	var newDonation api.NewDonation
	if err := json.NewDecoder(r.Body).Decode(&newDonation); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if newDonation.FundId == "" || newDonation.UserId == "" {
		http.Error(w, "fund_id and user_id are required", http.StatusBadRequest)
		return
	}

	domainDonation := mapping.ToDomainNewDonation(&newDonation)

	result, err := h.Service.Create(r.Context(), domainDonation)
	if err != nil {
		switch {
		case errors.Is(err, donationsvc.ErrInvalidAmount):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, storage.ErrFundNotFound):
			http.Error(w, "Fund not found", http.StatusNotFound)
		case errors.Is(err, donationsvc.ErrFundNotAcceptingDonations):
			http.Error(w, "Fund is not accepting donations", http.StatusUnprocessableEntity)
		case errors.Is(err, donationsvc.ErrPaymentUnavailable):
			http.Error(w, "Payment gateway unavailable, please retry", http.StatusBadGateway)
		default:
			http.Error(w, fmt.Sprintf("Failed to create donation: %v", err), http.StatusInternalServerError)
		}
		return
	}

	apiDonation := mapping.ToApiDonation(result.Donation)
	response := api.DonationCreated{
		DonationId: apiDonation.Id,
		PaymentUrl: result.PaymentURL,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetDonationById handles the logic for retrieving a donation by its ID.
func (h *DonationsHandler) GetDonationById(w http.ResponseWriter, r *http.Request) {
	donationID := chi.URLParam(r, "donationId")

	domainDonation, err := h.Store.GetDonation(r.Context(), donationID)
	if err != nil {
		if errors.Is(err, storage.ErrDonationNotFound) {
			http.Error(w, "Donation not found", http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to retrieve donation: %v", err), http.StatusInternalServerError)
		}
		return
	}

	apiDonation := mapping.ToApiDonation(domainDonation)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiDonation); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// VerifyDonation handles the on-demand manual verification of a donation's payment.
func (h *DonationsHandler) VerifyDonation(w http.ResponseWriter, r *http.Request) {
	donationID := chi.URLParam(r, "donationId")

	domainDonation, err := h.Service.Verify(r.Context(), donationID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrDonationNotFound):
			http.Error(w, "Donation not found", http.StatusNotFound)
		case errors.Is(err, donationsvc.ErrNoTransaction):
			http.Error(w, "Donation has no gateway transaction to verify", http.StatusUnprocessableEntity)
		case errors.Is(err, donationsvc.ErrPaymentUnavailable):
			http.Error(w, "Payment gateway unavailable, please retry", http.StatusBadGateway)
		default:
			http.Error(w, fmt.Sprintf("Failed to verify donation: %v", err), http.StatusInternalServerError)
		}
		return
	}

	apiDonation := mapping.ToApiDonation(domainDonation)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiDonation); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListDonationsByUserId handles the logic for retrieving all donations for a user.
func (h *DonationsHandler) ListDonationsByUserId(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	domainDonations, err := h.Store.ListDonationsByUserID(r.Context(), userID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve donations: %v", err), http.StatusInternalServerError)
		return
	}

	apiDonations := make([]*api.Donation, len(domainDonations))
	for i, donation := range domainDonations {
		apiDonations[i] = mapping.ToApiDonation(&donation)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiDonations); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
