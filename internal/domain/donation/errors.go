package donation

import "errors"

var (
	ErrDonationNotFound = errors.New("donation not found")
	ErrRecordNotFound   = errors.New("donation record not found")
	ErrExceedsDonation  = errors.New("donation record exceeds what is left of the donation")
)
