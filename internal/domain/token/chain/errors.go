package chain

import "strings"

// ChainError carries a message safe to show to the dashboard operator
// alongside the raw node error.
type ChainError struct {
	Message string
	Cause   error
}

func (e *ChainError) Error() string {
	return e.Message
}

func (e *ChainError) Unwrap() error {
	return e.Cause
}

// revertMessages maps substrings of node errors to operator-facing text.
// Order matters; the first match wins.
var revertMessages = []struct {
	needle  string
	message string
}{
	{"OwnableUnauthorizedAccount", "Only the contract owner can perform this action."},
	{"user rejected", "The transaction was rejected."},
	{"insufficient allowance", "The platform is not approved to spend that many tokens."},
	{"insufficient balance", "The account does not hold enough tokens."},
}

// TranslateChainError wraps known revert reasons with a readable message.
// Anything else propagates unchanged: an unrecognized revert still carries
// its raw reason, which the operator needs to diagnose it.
func TranslateChainError(err error) error {
	if err == nil {
		return nil
	}
	text := err.Error()
	for _, rm := range revertMessages {
		if strings.Contains(text, rm.needle) {
			return &ChainError{Message: rm.message, Cause: err}
		}
	}
	return err
}
