package storage

import "errors"

// ErrDonationNotFound is returned when no donation matches the given ID or reference.
var ErrDonationNotFound = errors.New("donation not found")

// ErrFundNotFound is returned when no fund matches the given ID.
var ErrFundNotFound = errors.New("fund not found")

// ErrFundAlreadyExists is returned when creating a fund whose ID is already taken.
var ErrFundAlreadyExists = errors.New("fund already exists")
