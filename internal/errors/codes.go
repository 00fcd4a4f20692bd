package errors

// Error code constants, format: CATEGORY_SPECIFIC_DETAIL.
// The frontend maps these codes to presentation.

const (
	// ==================== Auth (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"        // login required
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // wrong username/password
	AuthUsernameExists     = "AUTH_USERNAME_EXISTS"     // username taken
	AuthNoPendingSignup    = "AUTH_NO_PENDING_SIGNUP"   // maze step without a staged signup
	AuthMazeNotCompleted   = "AUTH_MAZE_NOT_COMPLETED"  // verification challenge failed
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"       // session token expired
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"       // session token malformed

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput     = "VALIDATION_INVALID_INPUT"     // bad form input
	ValidationInvalidID        = "VALIDATION_INVALID_ID"        // malformed id
	ValidationRequired         = "VALIDATION_REQUIRED"          // missing required field
	ValidationPasswordMismatch = "VALIDATION_PASSWORD_MISMATCH" // confirm differs

	// ==================== Business (BUSINESS_) ====================
	BusinessNotFound = "BUSINESS_NOT_FOUND" // unknown business id

	// ==================== Review (REVIEW_) ====================
	ReviewInvalidRating = "REVIEW_INVALID_RATING" // rating outside 1..5

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError  = "INTERNAL_SERVER_ERROR" // server error
	InternalStorageError = "INTERNAL_STORAGE_ERROR" // collection write failed
)
