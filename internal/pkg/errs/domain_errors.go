package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase and handler layers
var (
	// Lookup errors
	ErrPlanNotFound         = errors.New("subscription plan not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// Delivery errors
	ErrArtifactWrite   = errors.New("artifact write failed")
	ErrNoRendererFound = errors.New("no QR renderer succeeded")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
