package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"
	MessageUserNotAllowed       = "user not allowed"

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrUserNotAllowed = errors.New("user not allowed")
	ErrTokenNotFound  = errors.New("failed to token not found")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")

	ErrAlreadyFollowing = errors.New("user already follows this record")
	ErrNotFollowing     = errors.New("user is not following this record")

	ErrInvalidQuantity    = errors.New("amount must be a non-negative number")
	ErrUnitConversion     = errors.New("unit doesnt match the ingredient units")
	ErrDivisionDegenerate = errors.New("cannot divide by a zero amount or zero servings")
)

type (
	PaginationRequest struct {
		Page         int `query:"page"`
		ItemsPerPage int `query:"itemsPerPage"`
	}

	PaginationResponse struct {
		Page       int   `json:"page"`
		Items      int   `json:"items"`
		TotalPages int64 `json:"totalPages"`
		TotalItems int64 `json:"totalItems"`
	}
)

// NewPaginationResponse builds the pagination block for a page of items out
// of total matching records.
func NewPaginationResponse(page, perPage, items int, total int64) PaginationResponse {
	var totalPages int64
	if perPage > 0 {
		totalPages = (total-1)/int64(perPage) + 1
		if total == 0 {
			totalPages = 0
		}
	}
	return PaginationResponse{
		Page:       page,
		Items:      items,
		TotalPages: totalPages,
		TotalItems: total,
	}
}
