package constants

// User-facing messages returned in the response envelope.
const (
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_INPUT                = "Invalid input data"
	ERROR_PARSE_DATA_TO_LOCALS = "Could not read validated input"
	DATA_INPUT_IS_NOT_NUMBER   = "Parameter must be a number"

	MISSING_LOGIN_INPUT   = "Username and password are required"
	INVALID_CREDENTIALS   = "Invalid username or password"
	ACCOUNT_NOT_ACTIVE    = "Account is deactivated"
	MISSING_TOKEN         = "Missing authentication token"
	INVALID_TOKEN         = "Invalid or expired token"
	NOT_AUTHORIZED        = "Not authorized to access this route"
	CAN_NOT_HASH_PASSWORD = "Could not hash password"

	USERNAME_EXISTS        = "Username already exists"
	EMAIL_EXISTS           = "Email already exists"
	USER_NOT_FOUND         = "User not found"
	USER_ASSIGNED_TO_TABLE = "User is still assigned to a table"
	ADMIN_TIER_SHIELDED    = "Admins cannot manage admin or superadmin accounts"

	TABLE_NOT_FOUND        = "Table not found"
	TABLE_NUMBER_EXISTS    = "Table number already exists"
	TABLE_OCCUPIED_DELETE  = "Cannot delete an occupied table"
	GUESTS_EXCEED_CAPACITY = "Current guests cannot exceed table capacity"
	INVALID_TABLE_CAPACITY = "Table capacity must be between 1 and 20"
	RESERVATION_CONFLICT   = "Table is not available for the requested window"
	RESERVATION_NOT_FOUND  = "Reservation not found"
	ISSUE_NOT_FOUND        = "Maintenance entry not found"

	MENU_ITEM_NOT_FOUND   = "Menu item not found"
	MENU_ITEM_UNAVAILABLE = "Menu item is not available"

	ORDER_NOT_FOUND        = "Order not found"
	INVALID_ORDER_DATA     = "Invalid order data"
	STATUS_REQUIRED        = "Status required"
	INVALID_ORDER_STATUS   = "Unknown order status"
	ILLEGAL_STATUS_REGRESS = "Order status cannot move backwards"
	NO_UNPAID_ORDERS       = "No unpaid orders for this table"
	INVALID_PAYMENT_METHOD = "Unknown payment method"
)
