package mapping

import (
	"github.com/google/uuid"

	"github.com/MagloireKITIO/ifa-donations/pkg/api"
	"github.com/MagloireKITIO/ifa-donations/pkg/models"
)

// ToApiDonation converts a domain Donation model to an API Donation model.
func ToApiDonation(d *models.Donation) *api.Donation {
	id, _ := uuid.Parse(d.Id)
	return &api.Donation{
		Id:          id,
		UserId:      d.UserId,
		FundId:      d.FundId,
		Amount:      d.Amount,
		Currency:    d.Currency,
		Status:      api.DonationStatus(d.Status),
		Reference:   d.Reference,
		Anonymous:   d.Anonymous,
		Recurring:   d.Recurring,
		CompletedAt: d.CompletedAt,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// ToDomainNewDonation converts an API NewDonation model to a domain Donation model.
// Note: This is a simplified mapping and does not create the full Donation object.
func ToDomainNewDonation(nd *api.NewDonation) *models.Donation {
	d := &models.Donation{
		UserId:    nd.UserId,
		FundId:    nd.FundId,
		Amount:    nd.Amount,
		Currency:  nd.Currency,
		Anonymous: nd.Anonymous,
		Recurring: nd.Recurring,
	}
	if nd.DonorEmail != nil {
		d.DonorEmail = string(*nd.DonorEmail)
	}
	if nd.DonorPhone != nil {
		d.DonorPhone = *nd.DonorPhone
	}
	return d
}

// ToApiFund converts a domain Fund model to an API Fund model.
func ToApiFund(f *models.Fund) *api.Fund {
	return &api.Fund{
		Id:            f.Id,
		Name:          f.Name,
		Description:   f.Description,
		FundType:      string(f.FundType),
		TargetAmount:  f.TargetAmount,
		CurrentAmount: f.CurrentAmount,
		Currency:      f.Currency,
		Status:        api.FundStatus(f.Status),
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}

// ToDomainNewFund converts an API NewFund model to a domain Fund model.
func ToDomainNewFund(nf *api.NewFund) *models.Fund {
	return &models.Fund{
		Name:         nf.Name,
		Description:  nf.Description,
		FundType:     models.FundType(nf.FundType),
		TargetAmount: nf.TargetAmount,
		Currency:     nf.Currency,
	}
}
