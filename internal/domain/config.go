package domain

import "fmt"

// EngineConfig controls session behavior. SafetyMode is consulted once per
// session when the plan is built, so a session's behavior is fixed for its
// full duration even if the mode is toggled concurrently.
type EngineConfig struct {
	SafetyMode     bool     `json:"safety_mode" yaml:"safety_mode"`
	SafeThreshold  float64  `json:"safe_threshold" yaml:"safe_threshold"`
	RiskyThreshold float64  `json:"risky_threshold" yaml:"risky_threshold"`
	DisabledRules  []string `json:"disabled_rules,omitempty" yaml:"disabled_rules"`
}

// DefaultConfig returns the stock configuration: safety mode on, risky
// fixes withheld for human review.
func DefaultConfig() EngineConfig {
	return EngineConfig{
		SafetyMode:     true,
		SafeThreshold:  0.8,
		RiskyThreshold: 0.6,
	}
}

func (c EngineConfig) Validate() error {
	if c.SafeThreshold < 0 || c.SafeThreshold > 1 {
		return fmt.Errorf("safe_threshold %.2f out of range [0,1]", c.SafeThreshold)
	}
	if c.RiskyThreshold < 0 || c.RiskyThreshold > 1 {
		return fmt.Errorf("risky_threshold %.2f out of range [0,1]", c.RiskyThreshold)
	}
	if c.RiskyThreshold > c.SafeThreshold {
		return fmt.Errorf("risky_threshold %.2f exceeds safe_threshold %.2f", c.RiskyThreshold, c.SafeThreshold)
	}
	return nil
}

// RuleDisabled reports whether a rule id is excluded from remediation.
func (c EngineConfig) RuleDisabled(ruleID string) bool {
	for _, r := range c.DisabledRules {
		if r == ruleID {
			return true
		}
	}
	return false
}
