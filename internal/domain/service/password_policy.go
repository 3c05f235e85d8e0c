package service

// PasswordRule identifies a single password strength rule.
type PasswordRule string

// Rules a candidate password can violate.
const (
	RuleMinLength PasswordRule = "min_length"
	RuleUppercase PasswordRule = "uppercase"
	RuleLowercase PasswordRule = "lowercase"
	RuleDigit     PasswordRule = "digit"
	RuleSpecial   PasswordRule = "special"
	RuleMaxLength PasswordRule = "max_length"
)

// PasswordViolation reports one violated rule with its human-readable message.
type PasswordViolation struct {
	Rule    PasswordRule
	Message string
}

// PasswordPolicy validates a candidate password against composable strength
// rules and reports every violated rule. Implementations are pure functions
// of their configuration.
type PasswordPolicy interface {
	// Validate returns the violated rules, empty on success.
	Validate(candidate string) []PasswordViolation
}
