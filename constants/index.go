package constants

// Account roles
const (
	ROLE_ADMIN  = "ADMIN"
	ROLE_OWNER  = "OWNER"
	ROLE_RENTER = "RENTER"
)

var ROLES = []string{ROLE_ADMIN, ROLE_OWNER, ROLE_RENTER}

// Gender restriction on a room type. Display/filter attribute only, never
// enforced when a renter contacts an owner.
const (
	GENDER_MALE   = "male"
	GENDER_FEMALE = "female"
	GENDER_ANY    = "any"
)

var GENDERS = []string{GENDER_MALE, GENDER_FEMALE, GENDER_ANY}

// Listing sort keys
const (
	SORT_NEWEST     = "newest"
	SORT_OLDEST     = "oldest"
	SORT_PRICE_ASC  = "price-asc"
	SORT_PRICE_DESC = "price-desc"
)

var SORT_KEYS = []string{SORT_NEWEST, SORT_OLDEST, SORT_PRICE_ASC, SORT_PRICE_DESC}

// Sentinel disabling a filter dimension
const FILTER_ALL = "all"

// Property publication status
const (
	PROPERTY_DRAFT     = "DRAFT"
	PROPERTY_PUBLISHED = "PUBLISHED"
	PROPERTY_ARCHIVED  = "ARCHIVED"
)

// Response messages
const (
	ERROR_INTERNAL_ERROR        = "Internal server error"
	ERROR_INPUT                 = "Invalid input"
	ERROR_CREATE                = "Create failed"
	ERROR_UPDATE                = "Update failed"
	ERROR_DELETE                = "Delete failed"
	ERROR_NOT_FOUND             = "Record not found"
	ERROR_PARSE_DATA_TO_LOCALS  = "Failed to read validated input"
	MISSING_LOGIN_INPUT         = "Email and password are required"
	INVALID_EMAIL               = "Email does not exist"
	INVALID_PASSWORD            = "Incorrect password"
	ACCOUNT_NOT_ACTIVE          = "Account is deactivated"
	CAN_NOT_HASH_PASSWORD       = "Could not hash password"
	NOT_PERMISSION              = "Not permitted"
	EMAIL_ALREADY_EXISTS        = "Email already registered"
	PHONE_ALREADY_EXISTS        = "Phone number already registered"
	USERNAME_ALREADY_EXISTS     = "Username already taken"
	PROPERTY_NOT_FOUND          = "Property not found"
	ROOM_TYPE_NOT_FOUND         = "Room type not found"
	CONVERSATION_NOT_FOUND      = "Conversation not found"
	RESET_TOKEN_INVALID         = "Reset token is invalid or expired"
	DATA_INPUT_IS_NOT_NUMBER    = "Parameter must be a number"
	SEARCH_KEYWORD_REQUIRED     = "Search keyword is required"
	CAN_NOT_SEND_TO_YOURSELF    = "Cannot start a conversation with yourself"
)
