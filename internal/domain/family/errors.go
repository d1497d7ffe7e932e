package family

import "errors"

var (
	ErrFamilyNotFound        = errors.New("family not found")
	ErrMemberNotFound        = errors.New("family member not found")
	ErrDuplicateEmail        = errors.New("family member email already in use")
	ErrMultiplePersonCharge  = errors.New("only one family member can be the person in charge")
	ErrPersonChargeExists    = errors.New("family already has a person in charge")
	ErrPersonChargeProtected = errors.New("person in charge cannot be deleted")
)
