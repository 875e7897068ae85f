package response

// Business status codes.
const (
	CodeSuccess = 0
	CodeError   = 1

	// User module errors 100xx
	ErrUserNotFound = 10002
	ErrAuthFailed   = 10003
	ErrTokenInvalid = 10004
	ErrNoPermission = 10005

	// Moderation module errors 200xx
	ErrPostNotFound    = 20001
	ErrContentNotFound = 20002
	ErrActionFailed    = 20003
	ErrUnknownAction   = 20004

	// Token module errors 300xx
	ErrChainUnavailable      = 30001
	ErrNotContractOwner      = 30002
	ErrTxRejected            = 30003
	ErrInsufficientAllowance = 30004
	ErrInsufficientBalance   = 30005
	ErrInvalidAmount         = 30006

	// Upstream errors 400xx
	ErrUpstreamUnavailable = 40001
	ErrUpstreamStatus      = 40002

	// System errors 500xx
	ErrServerInternal  = 50001
	ErrInvalidParam    = 50002
	ErrTooManyRequests = 50003
)
