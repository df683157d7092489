package model

import "errors"

var (
	ErrValidation        = errors.New("validation error")    // 400
	ErrInvalidArgument   = errors.New("invalid argument")    // 400
	ErrMissingCredential = errors.New("api key is required") // 401
	ErrInvalidCredential = errors.New("invalid api key")     // 401
	ErrPartNotFound      = errors.New("part not found")      // 404
	ErrOrderNotFound     = errors.New("order not found")     // 404
	ErrUserNotFound      = errors.New("user not found")      // 404
	ErrUserExists        = errors.New("user already exists") // 409
	ErrEndpointNotFound  = errors.New("endpoint not found")  // 404
	ErrCartItemNotFound  = errors.New("cart item not found") // 404
	ErrMalformedCart     = errors.New("malformed cart data")
)
