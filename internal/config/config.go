package config

import (
	"github.com/spf13/viper"
)

// EngineConfig holds the run-time knobs for the transaction engine.
type EngineConfig struct {
	// DisputeDepositsOnly restricts the dispute lifecycle to deposit
	// transactions. Off by default: withdrawals are disputable too.
	DisputeDepositsOnly bool

	// AuditEnabled turns on JSON audit logging for every processed
	// record. Audit output goes to stderr and never affects state.
	AuditEnabled bool
}

// GetConfig reads the engine configuration from viper.
func GetConfig() *EngineConfig {
	viper.SetDefault("dispute.deposits_only", false)
	viper.SetDefault("audit.enabled", false)

	return &EngineConfig{
		DisputeDepositsOnly: viper.GetBool("dispute.deposits_only"),
		AuditEnabled:        viper.GetBool("audit.enabled"),
	}
}
