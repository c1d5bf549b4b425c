package manifest_test

import (
	"context"
	"strings"
	"testing"

	"github.com/browserhub/browserhub/driver"
	"github.com/browserhub/browserhub/driver/drivertest"
	"github.com/browserhub/browserhub/service/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
)

const validManifest = `
drivers:
  - capabilities: {browser: test}
    type: FakeDriver
  - capabilities: {browser: chrome}
    type: NoSuchDriver
`

func TestServiceLoad(t *testing.T) {
	fs := afs.New()
	ctx := context.Background()
	err := fs.Upload(ctx, "mem://localhost/manifests/drivers.yaml", 0644, strings.NewReader(validManifest))
	require.Nil(t, err)

	service := manifest.New(fs, "mem://localhost/manifests")
	loaded, err := service.Load(ctx, "drivers.yaml")
	require.Nil(t, err)
	require.Equal(t, 2, len(loaded.Drivers))
	assert.Equal(t, "FakeDriver", loaded.Drivers[0].Type)
	assert.Equal(t, driver.Capabilities{"browser": "test"}, loaded.Drivers[0].Capabilities)
	assert.Equal(t, "NoSuchDriver", loaded.Drivers[1].Type)

	// An absolute location bypasses the base URL.
	loaded, err = service.Load(ctx, "mem://localhost/manifests/drivers.yaml")
	require.Nil(t, err)
	assert.Equal(t, 2, len(loaded.Drivers))
}

func TestServiceLoadMissing(t *testing.T) {
	service := manifest.New(afs.New(), "mem://localhost/manifests")
	_, err := service.Load(context.Background(), "absent.yaml")
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "absent.yaml")
}

func TestServiceLoadMalformed(t *testing.T) {
	fs := afs.New()
	ctx := context.Background()
	err := fs.Upload(ctx, "mem://localhost/manifests/broken.yaml", 0644, strings.NewReader("drivers: {not a list"))
	require.Nil(t, err)

	service := manifest.New(fs, "mem://localhost/manifests")
	_, err = service.Load(ctx, "broken.yaml")
	assert.NotNil(t, err)
}

func TestServiceApply(t *testing.T) {
	var failed []string
	registry := driver.NewRegistry(driver.WithFailureListener(func(descriptor, reason string) {
		failed = append(failed, descriptor)
	}))
	registry.RegisterType(drivertest.Type())

	service := manifest.New(nil, "")
	applied := service.Apply(&manifest.Manifest{Drivers: []manifest.Entry{
		{Capabilities: driver.Capabilities{"browser": "test"}, Type: drivertest.TypeName},
		{Capabilities: driver.Capabilities{"browser": "chrome"}, Type: "NoSuchDriver"},
	}}, registry)

	assert.Equal(t, 2, applied)
	// The broken entry fails through the listener, the healthy one stays.
	assert.Equal(t, []string{"NoSuchDriver"}, failed)
	assert.Equal(t, []string{drivertest.TypeName}, registry.Registered())

	assert.Equal(t, 0, service.Apply(nil, registry))
}
