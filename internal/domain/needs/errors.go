package needs

import "errors"

var ErrMemberNeedNotFound = errors.New("member need not found")
