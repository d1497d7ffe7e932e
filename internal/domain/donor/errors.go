package donor

import "errors"

var (
	ErrDonorNotFound     = errors.New("donor not found")
	ErrDuplicateEmail    = errors.New("donor email already in use")
	ErrDonorHasDonations = errors.New("donor still has donations")
)
