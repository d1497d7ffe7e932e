package health

import "errors"

var ErrHealthHistoryNotFound = errors.New("health history not found")
