package browserhub

import (
	"context"
	"strings"
	"testing"

	"github.com/browserhub/browserhub/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
)

const testConfig = `
drivers:
  dir: /opt/browserhub/drivers
  manifest: drivers.yaml
failures:
  limit: 16
policy:
  mode: auto
  block: [quit]
`

func TestLoadConfig(t *testing.T) {
	fs := afs.New()
	ctx := context.Background()
	err := fs.Upload(ctx, "mem://localhost/config/core.yaml", 0644, strings.NewReader(testConfig))
	require.Nil(t, err)

	config, err := LoadConfig(ctx, "mem://localhost/config/core.yaml")
	require.Nil(t, err)
	assert.Equal(t, "/opt/browserhub/drivers", config.Drivers.Dir)
	assert.Equal(t, "drivers.yaml", config.Drivers.Manifest)
	assert.Equal(t, 16, config.Failures.Limit)
	require.NotNil(t, config.Policy)
	assert.Equal(t, policy.ModeAuto, config.Policy.Mode)
	assert.Equal(t, []string{"quit"}, config.Policy.BlockList)
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(context.Background(), "mem://localhost/config/absent.yaml")
	assert.NotNil(t, err)
}

func TestConfigValidate(t *testing.T) {
	assert.Nil(t, DefaultConfig().Validate())
	assert.NotNil(t, (&Config{}).Validate())
	var config *Config
	assert.Nil(t, config.Validate())
}
