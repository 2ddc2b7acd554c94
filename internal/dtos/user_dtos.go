package dtos

// ----------------------------------------------------------------
// /api/user/info
// ----------------------------------------------------------------

type UserInfoResponse struct {
	User UserInfo `json:"user"`
}

// ----------------------------------------------------------------
// /api/user/verify-mobile, /api/user/verify-email
// ----------------------------------------------------------------

type VerifyOTPRequest struct {
	OTP string `json:"otp"`
}

// ----------------------------------------------------------------
// /api/user/request-otp
// ----------------------------------------------------------------

type RequestOTPRequest struct {
	Channel string `json:"channel" validate:"required,oneof=email mobile"`
}

// ----------------------------------------------------------------
// /api/user/get-password
// ----------------------------------------------------------------

type GetPasswordRequest struct {
	Password *string `json:"password"`
}

// GetPasswordResponse never carries the real password, nor any id field.
// PasswordDisplay is always the fixed 12-character mask.
type GetPasswordResponse struct {
	PasswordDisplay string `json:"passwordDisplay"`
	HasPassword     bool   `json:"hasPassword"`
	IsValidPassword bool   `json:"isValidPassword"`
}

// ----------------------------------------------------------------
// /api/user/properties — the transformed owner view
// ----------------------------------------------------------------

type UserPropertiesResponse struct {
	Properties []UserProperty `json:"properties"`
}

type UserProperty struct {
	ID            string               `json:"id"`
	Builder       string               `json:"builder"`
	Project       string               `json:"project"`
	PropertyType  string               `json:"propertyType"`
	Details       interface{}          `json:"details"`
	Location      UserPropertyLocation `json:"location"`
	ImageURLs     []string             `json:"imageUrls"`
	ThumbnailURL  *string              `json:"thumbnailUrl"`
	ListingStatus string               `json:"listingStatus"`
	SoldDate      *string              `json:"soldDate"`
	PostedDate    string               `json:"postedDate"`
	Interests     []PropertyInterest   `json:"interests"`
}

type UserPropertyLocation struct {
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zipcode"`
	Locality    string `json:"locality"`
	FullAddress string `json:"fullAddress"`
}

type PropertyInterest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Message   string `json:"message,omitempty"`
	CreatedAt string `json:"createdAt"`
}
