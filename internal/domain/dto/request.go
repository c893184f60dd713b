// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model, providing validation
// and serialization for API communication.
package dto

import "regexp"

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrPatientIDRequired is returned when a request lacks a patient id.
	ErrPatientIDRequired = &ValidationError{Field: "patientId", Message: "is required"}
	// ErrPatientNameRequired is returned when a request lacks a patient name.
	ErrPatientNameRequired = &ValidationError{Field: "patientName", Message: "is required"}
	// ErrContactNumberInvalid is returned when a contact number is not 10 digits.
	ErrContactNumberInvalid = &ValidationError{Field: "contactNumber", Message: "must be a 10-digit number"}
	// ErrDietPackageRequired is returned when an order lacks a package reference.
	ErrDietPackageRequired = &ValidationError{Field: "dietPackage", Message: "is required"}
	// ErrStartDateRequired is returned when an order lacks a start date.
	ErrStartDateRequired = &ValidationError{Field: "startDate", Message: "is required"}
	// ErrNameRequired is returned when an entity lacks a name.
	ErrNameRequired = &ValidationError{Field: "name", Message: "is required"}
	// ErrStatusRequired is returned when a status payload lacks a status.
	ErrStatusRequired = &ValidationError{Field: "status", Message: "is required"}
)

var contactNumberPattern = regexp.MustCompile(`^\d{10}$`)

// ValidContactNumber reports whether s is an acceptable contact number.
// Empty is allowed; presence requires exactly 10 digits.
func ValidContactNumber(s string) bool {
	return s == "" || contactNumberPattern.MatchString(s)
}

// InstructionsRequest carries dietician instructions for approve/reject actions.
//
// @Description Dietician instructions attached to an approval decision
type InstructionsRequest struct {
	// Instructions is free-form dietician guidance stamped onto the order.
	Instructions string `json:"instructions"`
} // @name InstructionsRequest

// CanteenStatusRequest advances a canteen order through the kitchen workflow.
//
// @Description Kitchen status transition request
type CanteenStatusRequest struct {
	// Status is the target kitchen status; only the exact successor of the
	// current status is accepted.
	Status string `json:"status" binding:"required" example:"prepared"`
} // @name CanteenStatusRequest

// Validate performs custom validation on the request.
func (r *CanteenStatusRequest) Validate() error {
	if r.Status == "" {
		return ErrStatusRequired
	}
	return nil
}

// LoginRequest authenticates a staff member when auth is enabled.
//
// @Description Staff login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required"`
} // @name LoginRequest

// TokenResponse carries an issued staff session token.
//
// @Description Issued JWT session token
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in" example:"900"`
} // @name TokenResponse
