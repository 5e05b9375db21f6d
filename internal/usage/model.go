package usage

import "errors"

// ErrInsufficientTokens is returned when the client has no remote-generation
// tokens remaining for the current month.
var ErrInsufficientTokens = errors.New("insufficient tokens")

// DefaultTokens is the number of remote generations granted per month.
const DefaultTokens = 1000
