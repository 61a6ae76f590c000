package stoneadapter

import (
	"testing"

	"github.com/holiman/uint256"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig() should validate, got %v", err)
	}
	if !cfg.CairoVerifierID.Eq(uint256.NewInt(6)) {
		t.Errorf("default CairoVerifierID = %v, expected 6", cfg.CairoVerifierID)
	}
}

func TestConfigRejectsNilVerifierID(t *testing.T) {
	cfg := DefaultConfig().WithCairoVerifierID(nil)
	if err := cfg.Validate(); err == nil {
		t.Errorf("expected validation error for nil CairoVerifierID")
	}
}

func TestConfigWithIncludeBootloaderConfig(t *testing.T) {
	cfg := DefaultConfig().WithIncludeBootloaderConfig(true)
	if !cfg.IncludeBootloaderConfig {
		t.Errorf("WithIncludeBootloaderConfig(true) did not set the field")
	}
}

func TestConfigClone(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()
	clone.CairoVerifierID.SetUint64(9)
	if cfg.CairoVerifierID.Eq(clone.CairoVerifierID) {
		t.Errorf("Clone() should not alias CairoVerifierID")
	}
}
