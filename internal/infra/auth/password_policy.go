package auth

import (
	"fmt"
	"unicode"

	"vintagecomics/config"
	"vintagecomics/internal/domain/service"
)

// rulePolicy validates passwords against the configured strength rules.
// With no configuration it enforces the storefront defaults: length >= 8,
// at least one uppercase letter, one lowercase letter and one digit.
type rulePolicy struct {
	minLength        int
	maxLength        int
	requireUppercase bool
	requireLowercase bool
	requireNumbers   bool
	requireSpecial   bool
}

const defaultMinLength = 8

// NewPasswordPolicy builds a PasswordPolicy from the passwordStrength config section.
func NewPasswordPolicy(cfg *config.Config) service.PasswordPolicy {
	policy := &rulePolicy{
		minLength:        defaultMinLength,
		requireUppercase: true,
		requireLowercase: true,
		requireNumbers:   true,
	}

	if strength := cfg.PasswordStrength; strength != nil {
		if strength.MinLength > 0 {
			policy.minLength = strength.MinLength
		}
		policy.maxLength = strength.MaxLength
		policy.requireUppercase = strength.RequireUppercase
		policy.requireLowercase = strength.RequireLowercase
		policy.requireNumbers = strength.RequireNumbers
		policy.requireSpecial = strength.RequireSpecial
	}

	return policy
}

// Validate returns every violated rule. Pure function of the candidate.
func (p *rulePolicy) Validate(candidate string) []service.PasswordViolation {
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	length := 0
	for _, r := range candidate {
		length++
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	var violations []service.PasswordViolation
	if length < p.minLength {
		violations = append(violations, service.PasswordViolation{
			Rule:    service.RuleMinLength,
			Message: fmt.Sprintf("Password must be at least %d characters long", p.minLength),
		})
	}
	if p.maxLength > 0 && length > p.maxLength {
		violations = append(violations, service.PasswordViolation{
			Rule:    service.RuleMaxLength,
			Message: fmt.Sprintf("Password must be at most %d characters long", p.maxLength),
		})
	}
	if p.requireUppercase && !hasUpper {
		violations = append(violations, service.PasswordViolation{
			Rule:    service.RuleUppercase,
			Message: "Password must contain at least one uppercase letter",
		})
	}
	if p.requireLowercase && !hasLower {
		violations = append(violations, service.PasswordViolation{
			Rule:    service.RuleLowercase,
			Message: "Password must contain at least one lowercase letter",
		})
	}
	if p.requireNumbers && !hasDigit {
		violations = append(violations, service.PasswordViolation{
			Rule:    service.RuleDigit,
			Message: "Password must contain at least one digit",
		})
	}
	if p.requireSpecial && !hasSpecial {
		violations = append(violations, service.PasswordViolation{
			Rule:    service.RuleSpecial,
			Message: "Password must contain at least one special character",
		})
	}

	return violations
}
