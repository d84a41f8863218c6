// Package domain contains the core business entities for Valoriza.
package domain

import "errors"

// Domain errors - these represent business rule violations.
// They are distinct from infrastructure errors (database, network, etc.).
//
// The message strings are part of the API contract: clients and the
// integration tests match them verbatim, including the historical
// per-operation spellings of "user not found".

var (
	// ===========================================
	// Authentication Errors
	// ===========================================

	// ErrInvalidCredentials indicates a failed login. The same error is
	// returned for an unknown email and a wrong password so that the
	// response does not reveal which one was wrong.
	ErrInvalidCredentials = errors.New("Email/Password incorrect")

	// ===========================================
	// User Errors
	// ===========================================

	// ErrEmailRequired indicates user creation without an email.
	ErrEmailRequired = errors.New("Email incorrect")

	// ErrUserAlreadyExists indicates the email is already taken.
	ErrUserAlreadyExists = errors.New("User already exists")

	// ErrPasswordNotNumeric indicates the password contains non-digit characters.
	ErrPasswordNotNumeric = errors.New("Password must contain only numbers!")

	// ErrPasswordWrongSize indicates the password is not exactly 4 digits.
	ErrPasswordWrongSize = errors.New("Password size must be equal to 4!")

	// ErrUserNotFound indicates a user lookup by ID found nothing.
	ErrUserNotFound = errors.New("User not found!")

	// ErrEditUserNotFound is the user-edit spelling of the not-found error.
	ErrEditUserNotFound = errors.New("User don't exist!")

	// ErrDeleteUserNotFound is the user-delete spelling of the not-found error.
	ErrDeleteUserNotFound = errors.New("User does not exist!")

	// ErrPasswordUserNotFound is the password-update spelling of the
	// not-found error.
	ErrPasswordUserNotFound = errors.New("User does not exists!")

	// ErrNoChanges indicates a user edit where nothing differs from the
	// stored record.
	ErrNoChanges = errors.New("No changes were made!")

	// ErrCannotDeleteSelf indicates a user tried to delete their own account.
	ErrCannotDeleteSelf = errors.New("An user can't delete himself!")

	// ===========================================
	// Tag Errors
	// ===========================================

	// ErrTagNameRequired indicates tag creation or rename without a name.
	ErrTagNameRequired = errors.New("Incorrect name!")

	// ErrTagNameTooLong indicates the tag name exceeds TagNameMaxLength.
	ErrTagNameTooLong = errors.New("Tag name must have a maximum size of 50 chars!")

	// ErrTagAlreadyExists indicates a tag with the same name exists.
	ErrTagAlreadyExists = errors.New("Tag already exists!")

	// ErrTagNotFound indicates a tag lookup by ID found nothing.
	ErrTagNotFound = errors.New("Tag does not exist!")

	// ===========================================
	// Compliment Errors
	// ===========================================

	// ErrSelfCompliment indicates sender and receiver are the same user.
	ErrSelfCompliment = errors.New("Incorrect User Receiver")

	// ErrComplimentTagNotFound indicates the referenced tag does not exist.
	ErrComplimentTagNotFound = errors.New("Tag does not exists!")

	// ErrReceiverNotFound indicates the receiving user does not exist.
	ErrReceiverNotFound = errors.New("User Receiver does not exists!")

	// ErrComplimentNotFound indicates a compliment lookup found nothing.
	// Also returned when a delete is attempted by someone other than the
	// sender: ownership is part of the lookup there.
	ErrComplimentNotFound = errors.New("Compliment not found!")

	// ErrNotComplimentOwner indicates a message edit by a user other than
	// the original sender.
	ErrNotComplimentOwner = errors.New("Only the compliment owner can change its message!")

	// ErrInvalidMessage indicates an empty compliment message.
	ErrInvalidMessage = errors.New("The informed message is invalid")

	// ===========================================
	// Infrastructure
	// ===========================================

	// ErrInternal indicates an unexpected infrastructure failure. Handlers
	// map it to a 500 without exposing the underlying cause.
	ErrInternal = errors.New("internal server error")
)

// IsBusinessError reports whether err is one of the business rule
// violations above, i.e. a client error rather than a server fault.
func IsBusinessError(err error) bool {
	for _, target := range []error{
		ErrInvalidCredentials,
		ErrEmailRequired,
		ErrUserAlreadyExists,
		ErrPasswordNotNumeric,
		ErrPasswordWrongSize,
		ErrUserNotFound,
		ErrEditUserNotFound,
		ErrDeleteUserNotFound,
		ErrPasswordUserNotFound,
		ErrNoChanges,
		ErrCannotDeleteSelf,
		ErrTagNameRequired,
		ErrTagNameTooLong,
		ErrTagAlreadyExists,
		ErrTagNotFound,
		ErrSelfCompliment,
		ErrComplimentTagNotFound,
		ErrReceiverNotFound,
		ErrComplimentNotFound,
		ErrNotComplimentOwner,
		ErrInvalidMessage,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
