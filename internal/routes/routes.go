package routes

const (
	// Health
	Health = "/health"

	// Auth
	Register    = "/api/v1/auth/register"
	LoginRenter = "/api/v1/auth/renter/login"
	LoginAgent  = "/api/v1/auth/agent/login"
	Logout      = "/api/v1/auth/logout"

	// Shared reference data
	Categories = "/api/v1/categories"

	// Renter area
	RenterDashboard = "/api/v1/renter/dashboard"
	PropertySearch  = "/api/v1/properties/search"
	PropertyDetail  = "/api/v1/properties/{prop_id:[0-9]+}"
	RenterCards     = "/api/v1/renter/cards"
	RenterCard      = "/api/v1/renter/cards/{card_id:[0-9]+}"
	RenterBookings  = "/api/v1/renter/bookings"
	RenterBooking   = "/api/v1/renter/bookings/{booking_id:[0-9]+}"

	// Agent area
	AgentDashboard  = "/api/v1/agent/dashboard"
	AgentProperties = "/api/v1/agent/properties"
	AgentProperty   = "/api/v1/agent/properties/{prop_id:[0-9]+}"
	AgentBookings   = "/api/v1/agent/bookings"
)
