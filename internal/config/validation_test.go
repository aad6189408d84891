package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_AllDefaults_Pass(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestValidate_Files(t *testing.T) {
	t.Run("Zero File Size Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Files.MaxFileSize = 0
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "max_file_size")
	})

	t.Run("Permission Bits Beyond 0777 Fail", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Files.DefaultPerm = 0o1777
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "default_perm")
	})

	t.Run("Zero Concurrency Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Files.Concurrency = 0
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "concurrency")
	})
}

func TestValidate_Output(t *testing.T) {
	t.Run("Unknown Format Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Output.Format = "yaml"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "output.format")
	})
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Files.MaxFileSize = -1
	cfg.Files.Concurrency = -1

	err := cfg.Validate()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "max_file_size")
	assert.Contains(t, err.Error(), "concurrency")
}
