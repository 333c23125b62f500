package services

import "errors"

// ErrorKind groups application errors by how a caller should react.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindConflict
	KindNotFound
	KindAuthentication
	KindAuthorization
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	default:
		return "unknown"
	}
}

// AppError is a business rule failure with a stable code, e.g. SGR-001.
type AppError struct {
	Kind    ErrorKind
	Code    string
	Message string
}

func (e *AppError) Error() string {
	return e.Code + ": " + e.Message
}

func newError(kind ErrorKind, code, message string) *AppError {
	return &AppError{Kind: kind, Code: code, Message: message}
}

// AsAppError unwraps err into an *AppError when it is one.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Signup
var (
	ErrDuplicateContact = newError(KindConflict, "SGR-001", "This contact number is already registered! Try other contact number")
	ErrInvalidEmail     = newError(KindValidation, "SGR-002", "Invalid email-id format!")
	ErrInvalidContact   = newError(KindValidation, "SGR-003", "Invalid contact number!")
	ErrWeakPassword     = newError(KindValidation, "SGR-004", "Weak password!")
	ErrMissingField     = newError(KindValidation, "SGR-005", "Except last name all fields should be filled")
	ErrDuplicateEmail   = newError(KindConflict, "SGR-006", "This email address is already registered! Try other email address.")
)

// Login
var (
	ErrUnknownContact     = newError(KindAuthentication, "ATH-001", "This contact number has not been registered!")
	ErrBadCredentials     = newError(KindAuthentication, "ATH-002", "Invalid Credentials")
	ErrMalformedBasicAuth = newError(KindAuthentication, "ATH-003", "Incorrect format of decoded customer name and password")
)

// Session
var (
	ErrNotLoggedIn          = newError(KindAuthorization, "ATHR-001", "Customer is not Logged in.")
	ErrLoggedOut            = newError(KindAuthorization, "ATHR-002", "Customer is logged out. Log in again to access this endpoint.")
	ErrSessionExpired       = newError(KindAuthorization, "ATHR-003", "Your session is expired. Log in again to access this endpoint.")
	ErrAddressNotAuthorized = newError(KindAuthorization, "ATHR-004", "You are not authorized to view/update/delete any one else's address ")
)

// Profile
var (
	ErrWeakNewPassword    = newError(KindValidation, "UCR-001", "Weak password!")
	ErrEmptyFirstName     = newError(KindValidation, "UCR-002", "First name field should not be empty")
	ErrEmptyPasswordField = newError(KindValidation, "UCR-003", "No field should be empty")
	ErrWrongOldPassword   = newError(KindValidation, "UCR-004", "Incorrect old password!")
)

// Address
var (
	ErrSaveAddressEmpty = newError(KindValidation, "SAR-001", "No field can be empty")
	ErrInvalidPincode   = newError(KindValidation, "SAR-002", "Invalid pincode")
	ErrStateNotFound    = newError(KindNotFound, "ANF-002", "No state by this id")
	ErrAddressNotFound  = newError(KindNotFound, "ANF-003", "No address by this id")
	ErrAddressIDEmpty   = newError(KindNotFound, "ANF-005", "Address id can not be empty")
)

// Orders and catalog
var (
	ErrCouponNotFound        = newError(KindNotFound, "CPF-001", "No coupon by this name")
	ErrCouponNameEmpty       = newError(KindNotFound, "CPF-002", "Coupon name field should not be empty")
	ErrCouponNotFoundByID    = newError(KindNotFound, "CPF-002", "No coupon by this id")
	ErrPaymentMethodNotFound = newError(KindNotFound, "PNF-002", "No payment method found by this id")
	ErrRestaurantNotFound    = newError(KindNotFound, "RNF-001", "No restaurant by this id")
	ErrRestaurantIDEmpty     = newError(KindNotFound, "RNF-002", "Restaurant id field should not be empty")
	ErrRestaurantNameEmpty   = newError(KindNotFound, "RNF-003", "Restaurant name field should not be empty")
	ErrCategoryIDEmpty       = newError(KindNotFound, "CNF-001", "Category id field should not be empty")
	ErrCategoryNotFound      = newError(KindNotFound, "CNF-002", "No category by this id")
	ErrItemNotFound          = newError(KindNotFound, "INF-003", "No item by this id exist")
	ErrInvalidRating         = newError(KindValidation, "IRE-001", "Restaurant should be in the range of 1 to 5")
	ErrEmptyOrder            = newError(KindValidation, "ORD-001", "Order should contain at least one item")
	ErrInvalidOrderLine      = newError(KindValidation, "ORD-002", "Item quantity should be at least one and price should not be negative")
)
