package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeSerializationFailure signals a serialization conflict between
	// concurrent transactions; the operation is safe to retry.
	PgErrorCodeSerializationFailure = "40001"
	// PgErrorCodeDeadlockDetected is retried the same way as a serialization
	// failure.
	PgErrorCodeDeadlockDetected = "40P01"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgFailedToCommit           = "failed to commit transaction"
)

// Error Messages - Catalog Operations
const (
	ErrMsgFailedToListCases    = "failed to list cases"
	ErrMsgFailedToGetCase      = "failed to get case"
	ErrMsgFailedToGetCaseItems = "failed to get case items"
)

// Error Messages - Opening Operations
const (
	ErrMsgFailedToGetUser         = "failed to get user"
	ErrMsgFailedToDebitBalance    = "failed to debit balance"
	ErrMsgFailedToAddInventory    = "failed to add inventory entry"
	ErrMsgFailedToRecordOpening   = "failed to record opening"
	ErrMsgFailedToCountOpenings   = "failed to count openings"
	ErrMsgFailedToListInventory   = "failed to list inventory"
	ErrMsgFailedToListOpenings    = "failed to list openings"
	ErrMsgFailedToCheckUserExists = "failed to check user exists"
)
