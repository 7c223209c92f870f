package errors

import "net/http"

const (
	CodeRouteExists             = "ROUTE_EXISTS"
	CodeDestinationEqualsSource = "DESTINATION_EQUALS_SOURCE"
	CodeFlightExists            = "FLIGHT_EXISTS"
	CodeInvalidTimeRange        = "INVALID_TIME_RANGE"
	CodeEmptyTicketList         = "EMPTY_TICKET_LIST"
	CodeSeatTaken               = "SEAT_TAKEN"
	CodeSeatOutOfRange          = "SEAT_OUT_OF_RANGE"
	CodeValidationFailed        = "VALIDATION_FAILED"
)

var (
	ErrRouteExists = New(
		CodeRouteExists,
		"Route already exists",
		http.StatusBadRequest,
	)

	ErrDestinationEqualsSource = New(
		CodeDestinationEqualsSource,
		"Destination cannot be equal to source",
		http.StatusBadRequest,
	)

	ErrFlightExists = New(
		CodeFlightExists,
		"Flight already exists",
		http.StatusBadRequest,
	)

	ErrInvalidTimeRange = New(
		CodeInvalidTimeRange,
		"The departure time and arrival time cannot be same",
		http.StatusBadRequest,
	)

	ErrEmptyTicketList = New(
		CodeEmptyTicketList,
		"Order must contain at least one ticket",
		http.StatusBadRequest,
	)

	ErrSeatTaken = New(
		CodeSeatTaken,
		"Seat is already taken",
		http.StatusBadRequest,
	)

	ErrSeatOutOfRange = New(
		CodeSeatOutOfRange,
		"Seat is outside of the airplane layout",
		http.StatusBadRequest,
	)

	ErrValidationFailed = New(
		CodeValidationFailed,
		"Validation failed",
		http.StatusBadRequest,
	)

	ErrNotFound = New(
		"NOT_FOUND",
		"Resource not found",
		http.StatusNotFound,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Authentication credentials were not provided or are invalid",
		http.StatusUnauthorized,
	)

	ErrForbidden = New(
		"FORBIDDEN",
		"You do not have permission to perform this action",
		http.StatusForbidden,
	)

	ErrInvalidCredentials = New(
		"INVALID_CREDENTIALS",
		"No active account found with the given credentials",
		http.StatusUnauthorized,
	)

	ErrEmailTaken = New(
		"EMAIL_TAKEN",
		"User with this email already exists",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
