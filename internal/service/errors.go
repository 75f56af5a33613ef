package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrRouteOwnership is returned when a captain files a report against a
	// route that is assigned to a different captain.
	ErrRouteOwnership = errors.New("route belongs to another captain")

	// ErrReportOwnership is returned when a captain tries to cancel a report
	// filed by somebody else.
	ErrReportOwnership = errors.New("report belongs to another captain")
)
