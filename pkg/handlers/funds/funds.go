package funds

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MagloireKITIO/ifa-donations/pkg/api"
	"github.com/MagloireKITIO/ifa-donations/pkg/mapping"
	"github.com/MagloireKITIO/ifa-donations/pkg/models"
	"github.com/MagloireKITIO/ifa-donations/pkg/storage"
)

// FundsHandler holds the dependencies for fund-related handlers.
type FundsHandler struct {
	Store storage.FundStore
}

// NewFundsHandler creates a new FundsHandler.
func NewFundsHandler(store storage.FundStore) *FundsHandler {
	return &FundsHandler{Store: store}
}

// CreateFund handles the logic for creating a new fund.
func (h *FundsHandler) CreateFund(w http.ResponseWriter, r *http.Request) {
	var newFund api.NewFund
	if err := json.NewDecoder(r.Body).Decode(&newFund); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if newFund.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	switch models.FundType(newFund.FundType) {
	case models.FundTypeTithe, models.FundTypeOffering, models.FundTypeCampaign:
	default:
		http.Error(w, "fund_type must be one of TITHE, OFFERING, CAMPAIGN", http.StatusBadRequest)
		return
	}

	domainFund := mapping.ToDomainNewFund(&newFund)
	if domainFund.Currency == "" {
		domainFund.Currency = "XAF"
	}

	createdFund, err := h.Store.CreateFund(r.Context(), domainFund)
	if err != nil {
		if errors.Is(err, storage.ErrFundAlreadyExists) {
			http.Error(w, "Fund already exists", http.StatusConflict)
		} else {
			http.Error(w, fmt.Sprintf("Failed to create fund: %v", err), http.StatusInternalServerError)
		}
		return
	}

	apiFund := mapping.ToApiFund(createdFund)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(apiFund); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetFundById handles the logic for retrieving a fund by its ID.
func (h *FundsHandler) GetFundById(w http.ResponseWriter, r *http.Request) {
	fundID := chi.URLParam(r, "fundId")

	domainFund, err := h.Store.GetFund(r.Context(), fundID)
	if err != nil {
		if errors.Is(err, storage.ErrFundNotFound) {
			http.Error(w, "Fund not found", http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to retrieve fund: %v", err), http.StatusInternalServerError)
		}
		return
	}

	apiFund := mapping.ToApiFund(domainFund)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiFund); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListFunds handles the logic for retrieving all funds.
func (h *FundsHandler) ListFunds(w http.ResponseWriter, r *http.Request) {
	domainFunds, err := h.Store.ListFunds(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve funds: %v", err), http.StatusInternalServerError)
		return
	}

	apiFunds := make([]*api.Fund, len(domainFunds))
	for i, fund := range domainFunds {
		apiFunds[i] = mapping.ToApiFund(&fund)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiFunds); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
