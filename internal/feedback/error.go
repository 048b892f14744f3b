package feedback

import "errors"

var errFeedbackNotFound = errors.New("feedback not found")
