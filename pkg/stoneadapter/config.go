package stoneadapter

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Config controls the two knobs the split-proof pipeline actually has:
// whether task metadata skips a leading bootloader-config header, and
// which verifier ID the verifyProofAndRegister call targets.
type Config struct {
	// IncludeBootloaderConfig, when true, skips the first two program
	// output cells before reading n_tasks and each task's header
	// (spec.md §4.5, "Task metadata").
	IncludeBootloaderConfig bool

	// CairoVerifierID is the value verifyProofAndRegister's final
	// argument carries. Fixed at 6 by the on-chain ABI convention
	// (spec.md §4.6), but left configurable the way the teacher exposes
	// HashFunction even though most callers use the default.
	CairoVerifierID *uint256.Int
}

// DefaultConfig returns the configuration used when no Stone bootloader
// wraps the Cairo program, targeting Cairo verifier ID 6.
func DefaultConfig() *Config {
	return &Config{
		IncludeBootloaderConfig: false,
		CairoVerifierID:         uint256.NewInt(6),
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.CairoVerifierID == nil {
		return fmt.Errorf("stoneadapter: CairoVerifierID must not be nil")
	}
	return nil
}

// WithIncludeBootloaderConfig sets IncludeBootloaderConfig.
func (c *Config) WithIncludeBootloaderConfig(include bool) *Config {
	c.IncludeBootloaderConfig = include
	return c
}

// WithCairoVerifierID sets CairoVerifierID.
func (c *Config) WithCairoVerifierID(id *uint256.Int) *Config {
	c.CairoVerifierID = id
	return c
}

// Clone creates a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := &Config{IncludeBootloaderConfig: c.IncludeBootloaderConfig}
	if c.CairoVerifierID != nil {
		clone.CairoVerifierID = new(uint256.Int).Set(c.CairoVerifierID)
	}
	return clone
}
