package request

// ListBookingsQuery pages through the caller's bookings, newest first.
type ListBookingsQuery struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,gte=0"`
}
