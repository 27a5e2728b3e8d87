package errs

// Sentinels shared by the usecase and handler layers
var (
	// Booking errors
	ErrBookingNotFound     = New("booking not found")
	ErrBookingForbidden    = New("booking belongs to another user")
	ErrBookingStateChanged = New("booking status does not allow this operation")
	ErrBookingHoldExpired  = New("booking hold has expired")

	// Showtime errors
	ErrShowtimeNotFound = New("showtime not found")

	// Job errors
	ErrJobNotFound       = New("job not found")
	ErrJobAlreadyRunning = New("job is already running")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
	ErrPublishFailed           = New("message publish failed")
)
