package utils

import "errors"

// Domain-level errors used by the service layer to provide
// fine-grained failure reasons.
var (
	ErrInvalidEmail  = errors.New("invalid_email")
	ErrInvalidMobile = errors.New("invalid_mobile")
	ErrEmailExists   = errors.New("email_exists")
	ErrMobileExists  = errors.New("mobile_exists")

	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidOTP         = errors.New("invalid_otp")

	ErrUserNotFound     = errors.New("user_not_found")
	ErrPropertyNotFound = errors.New("property_not_found")
	ErrProjectNotFound  = errors.New("project_not_found")
	ErrCategoryNotFound = errors.New("category_not_found")
	ErrPostNotFound     = errors.New("post_not_found")

	// Owner-restricted actions attempted by a non-owner.
	ErrNotOwner = errors.New("not_owner")

	// A property's owner cannot favorite or express interest
	// in their own listing.
	ErrOwnProperty = errors.New("own_property")

	// Listing-status transitions out of the allowed set.
	ErrPropertySold     = errors.New("property_sold")
	ErrPropertyNotActive   = errors.New("property_not_active")
	ErrPropertyNotArchived = errors.New("property_not_archived")

	// For external service failures (e.g., Twilio, SendGrid, uploads)
	ErrExternalServiceFailure = errors.New("external_service_failure")
	ErrUploadFailed           = errors.New("upload_failed")
)
