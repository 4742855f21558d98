package constants

// Roles
const (
	ROLE_SUPERADMIN = "superadmin"
	ROLE_ADMIN      = "admin"
	ROLE_MANAGER    = "manager"
	ROLE_STAFF      = "staff"
	ROLE_WAITER     = "waiter"
	ROLE_KITCHEN    = "kitchen"
	ROLE_CASHIER    = "cashier"
)

// Table status
const (
	TABLE_AVAILABLE   = "available"
	TABLE_OCCUPIED    = "occupied"
	TABLE_RESERVED    = "reserved"
	TABLE_MAINTENANCE = "maintenance"
)

// Table sections
const (
	SECTION_INDOOR  = "indoor"
	SECTION_OUTDOOR = "outdoor"
	SECTION_BALCONY = "balcony"
	SECTION_PRIVATE = "private"
	SECTION_ROOFTOP = "rooftop"
)

// Order status (kitchen pipeline, forward-only)
const (
	ORDER_PENDING   = "PENDING"
	ORDER_PREPARING = "PREPARING"
	ORDER_READY     = "READY"
	ORDER_SERVED    = "SERVED"
)

// Reservation status
const (
	RESERVATION_PENDING   = "pending"
	RESERVATION_CONFIRMED = "confirmed"
	RESERVATION_CANCELLED = "cancelled"
	RESERVATION_COMPLETED = "completed"
)

// Maintenance log status
const (
	ISSUE_REPORTED    = "reported"
	ISSUE_IN_PROGRESS = "in-progress"
	ISSUE_RESOLVED    = "resolved"
)

// Payment methods
const (
	PAY_CASH   = "cash"
	PAY_CARD   = "card"
	PAY_UPI    = "upi"
	PAY_WALLET = "wallet"
)

// Billing rates
const (
	SERVICE_CHARGE_RATE = 0.10
	GST_RATE            = 0.18
)

// Realtime event names
const (
	EVENT_ORDER_NEW       = "order:new"
	EVENT_ORDER_UPDATE    = "order:update"
	EVENT_BILL_PAID       = "bill:paid"
	EVENT_TABLE_CREATED   = "table-created"
	EVENT_TABLE_UPDATED   = "table-updated"
	EVENT_TABLE_DELETED   = "table-deleted"
	EVENT_WAITER_ASSIGNED = "waiter-assigned"
	EVENT_TABLE_ISSUE     = "table-issue"
	EVENT_MENU_UPDATE     = "menu-update"
)

// Table capacity bounds
const (
	MIN_TABLE_CAPACITY = 1
	MAX_TABLE_CAPACITY = 20
)
