package alertconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 7, cfg.ExpiryDays)
	assert.Equal(t, 10, cfg.LowStockUnits)
}

func TestNewHolderWithoutConfigFile(t *testing.T) {
	holder, err := NewHolder()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), holder.Get())
}

func TestStaticHolder(t *testing.T) {
	cfg := Config{ExpiryDays: 3, LowStockUnits: 2}
	holder := NewStaticHolder(cfg)
	assert.Equal(t, cfg, holder.Get())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validate(DefaultConfig()))
	assert.NoError(t, validate(Config{}))
	assert.Error(t, validate(Config{ExpiryDays: -1}))
	assert.Error(t, validate(Config{LowStockUnits: -1}))
}
