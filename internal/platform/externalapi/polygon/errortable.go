package polygon

import (
	"sort"
	"strings"

	"market_gateway/internal/feature/marketdata/domain"
)

// Upstream status values.
const (
	StatusOK            = "OK"
	StatusError         = "ERROR"
	StatusNotFound      = "NOT_FOUND"
	StatusNotAuthorized = "NOT_AUTHORIZED"
	StatusDelayed       = "DELAYED"
)

// RuleKind selects which typed failure a recognized upstream response becomes.
type RuleKind int

const (
	RuleValidation RuleKind = iota
	RuleNotFound
	RuleRateLimit
	RuleEntitlement
)

// ErrorKey identifies an upstream failure by status and message text.
// An empty Message matches every message of that status.
type ErrorKey struct {
	Status  string
	Message string
}

// Rule describes the typed failure for a recognized upstream response.
type Rule struct {
	Kind   RuleKind
	Field  string // offending parameter, validation rules only
	Reason string
}

// ErrorTable maps recognized upstream failures to typed errors.
// Messages may contain {name} placeholders filled from request values, e.g. {date}.
type ErrorTable map[ErrorKey]Rule

const (
	reasonDateUnsupported = "is not supported yet, perhaps 'date' is in the future"
	reasonDateFormat      = "should be of format 'YYYY-MM-DD'"
)

// DefaultErrorTable returns the literals the upstream is known to send.
func DefaultErrorTable() ErrorTable {
	return ErrorTable{
		{StatusError, "The parameter 'to' cannot be a time that occurs before 'from'"}: {
			Kind: RuleValidation, Field: "to", Reason: "should be a date that occurs after 'from'",
		},
		{StatusError, "Could not parse the time parameter: 'to'. Use YYYY-MM-DD or Unix MS Timestamps"}: {
			Kind: RuleValidation, Field: "to", Reason: reasonDateFormat,
		},
		{StatusError, "Could not parse the time parameter: 'from'. Use YYYY-MM-DD or Unix MS Timestamps"}: {
			Kind: RuleValidation, Field: "from", Reason: reasonDateFormat,
		},
		{StatusError, "today's Date not supported yet"}: {
			Kind: RuleValidation, Field: "date", Reason: reasonDateUnsupported,
		},
		{StatusError, "could not parse from Date. use YYYY-MM-DD timestamps"}: {
			Kind: RuleValidation, Field: "date", Reason: reasonDateFormat,
		},
		{StatusError, "Ticker was incorrectly formatted"}: {
			Kind: RuleValidation, Field: "ticker", Reason: "was incorrectly formatted",
		},
		{StatusError, "The path parameter `date` with value {date} is invalid, must be of the format YYYY-MM-DD."}: {
			Kind: RuleValidation, Field: "date", Reason: reasonDateFormat,
		},
		{StatusError, "You've exceeded the maximum requests per minute, please wait or upgrade your subscription to continue."}: {
			Kind: RuleRateLimit, Reason: "perhaps use a premium API key",
		},
		{StatusNotFound, "Data not found."}: {
			Kind: RuleNotFound, Reason: "perhaps the identifier is incorrect or the market was not open on 'date'",
		},
		{StatusNotAuthorized, "Attempted to request data past historical entitlements. Please upgrade your plan at https://polygon.io/pricing"}: {
			Kind: RuleEntitlement, Reason: "perhaps use a premium API key",
		},
		{StatusDelayed, ""}: {
			Kind: RuleValidation, Field: "date", Reason: reasonDateUnsupported,
		},
	}
}

// Lookup finds the rule for status and message. It tries the literal message,
// then every templated message of that status with its placeholders filled
// from vars, then the status alone.
func (t ErrorTable) Lookup(status, message string, vars map[string]string) (Rule, bool) {
	if message != "" {
		if r, ok := t[ErrorKey{status, message}]; ok {
			return r, true
		}
		for key, r := range t {
			if key.Status == status && strings.Contains(key.Message, "{") && fill(key.Message, vars) == message {
				return r, true
			}
		}
	}
	r, ok := t[ErrorKey{Status: status}]
	return r, ok
}

// fill replaces each {name} placeholder of tmpl with vars[name] in a single pass.
// Placeholders without a var are left as they are.
func fill(tmpl string, vars map[string]string) string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, 2*len(names))
	for _, name := range names {
		pairs = append(pairs, "{"+name+"}", vars[name])
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

func (r Rule) err(identifier string) error {
	switch r.Kind {
	case RuleNotFound:
		return &domain.NotFoundError{Identifier: identifier, Detail: r.Reason}
	case RuleRateLimit:
		return &domain.RateLimitError{Detail: r.Reason}
	case RuleEntitlement:
		return &domain.EntitlementError{Detail: r.Reason}
	default:
		return domain.NewValidationError(r.Field, r.Reason)
	}
}
