package utils

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrInvalidDate     = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidMealType = errors.New("invalid meal type")

	ErrAlreadyPaid              = errors.New("meal already paid for this date")
	ErrActiveSubscriptionExists = errors.New("an active subscription already exists")
	ErrNotEntitled              = errors.New("student has not paid for this date and meal type")

	ErrMenuItemNotFound     = errors.New("menu item not found")
	ErrInsufficientQuantity = errors.New("not enough portions left")

	ErrRequestNotFound = errors.New("purchase request not found")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")

	ErrDatabaseError = errors.New("database error")
)
