package auth

import (
	"testing"

	"vintagecomics/config"
	"vintagecomics/internal/domain/service"

	"github.com/stretchr/testify/assert"
)

func defaultPolicy() service.PasswordPolicy {
	return NewPasswordPolicy(&config.Config{})
}

func violatedRules(violations []service.PasswordViolation) []service.PasswordRule {
	rules := make([]service.PasswordRule, 0, len(violations))
	for _, v := range violations {
		rules = append(rules, v.Rule)
	}

	return rules
}

func TestPasswordPolicy_AcceptsStrongPassword(t *testing.T) {
	policy := defaultPolicy()

	validPasswords := []string{
		"StrongPass123",
		"MySecurePass1",
		"ComplexSecret9",
		"ValidPhrase2024",
	}

	for _, password := range validPasswords {
		assert.Empty(t, policy.Validate(password), "Expected no violations for password: %s", password)
	}
}

func TestPasswordPolicy_ShortPasswordReportsLengthRule(t *testing.T) {
	policy := defaultPolicy()

	shortPasswords := []string{"", "Ab1", "Short1A"}
	for _, password := range shortPasswords {
		violations := policy.Validate(password)
		assert.Contains(t, violatedRules(violations), service.RuleMinLength,
			"Expected min_length violation for password: %s", password)
	}
}

func TestPasswordPolicy_ReportsEveryViolatedRule(t *testing.T) {
	policy := defaultPolicy()

	tests := []struct {
		password string
		want     []service.PasswordRule
	}{
		{password: "PASSWORD123", want: []service.PasswordRule{service.RuleLowercase}},
		{password: "password123", want: []service.PasswordRule{service.RuleUppercase}},
		{password: "PasswordABC", want: []service.PasswordRule{service.RuleDigit}},
		{password: "abc", want: []service.PasswordRule{
			service.RuleMinLength,
			service.RuleUppercase,
			service.RuleDigit,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			violations := policy.Validate(tt.password)
			assert.ElementsMatch(t, tt.want, violatedRules(violations))
		})
	}
}

func TestPasswordPolicy_ViolationMessagesAreHumanReadable(t *testing.T) {
	policy := defaultPolicy()

	violations := policy.Validate("abc")
	for _, v := range violations {
		assert.NotEmpty(t, v.Message)
	}
}

func TestPasswordPolicy_ConfiguredRules(t *testing.T) {
	policy := NewPasswordPolicy(&config.Config{
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:      12,
			RequireSpecial: true,
			MaxLength:      64,
		},
	})

	// Satisfies the default rules but not the configured ones.
	violations := policy.Validate("Weakpass1")
	rules := violatedRules(violations)
	assert.Contains(t, rules, service.RuleMinLength)
	assert.Contains(t, rules, service.RuleSpecial)

	assert.Empty(t, policy.Validate("longpassword!WITH#caps9"))
}

func TestPasswordPolicy_UnicodeCountsRunes(t *testing.T) {
	policy := defaultPolicy()

	// 8 runes, more than 8 bytes.
	assert.Empty(t, policy.Validate("Pässwrd1"))
}
