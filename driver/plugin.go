package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"plugin"
	"sync"

	"github.com/viant/afs"
)

// DefaultLibrariesDir is the conventional libraries directory, resolved
// relative to the server executable when not overridden.
const DefaultLibrariesDir = "drivers"

// moduleExt is the shared-object suffix plugin modules are built with
// (go build -buildmode=plugin).
const moduleExt = ".so"

// pluginLoader loads driver modules on first reference and reuses them for
// the lifetime of the process. The plugin package never unloads a shared
// object, so the cache only ever grows.
type pluginLoader struct {
	fs     afs.Service
	dir    string
	mux    sync.Mutex
	loaded map[string]*plugin.Plugin
}

func newPluginLoader(fs afs.Service, dir string) *pluginLoader {
	if fs == nil {
		fs = afs.New()
	}
	return &pluginLoader{
		fs:     fs,
		dir:    dir,
		loaded: map[string]*plugin.Plugin{},
	}
}

// lookup resolves the named symbol within module, loading the module from
// the libraries directory when it is not already present in the process.
func (l *pluginLoader) lookup(ctx context.Context, module, symbol string) (plugin.Symbol, error) {
	l.mux.Lock()
	defer l.mux.Unlock()

	loaded, ok := l.loaded[module]
	if !ok {
		location := filepath.Join(l.librariesDir(), module+moduleExt)
		if exists, _ := l.fs.Exists(ctx, location); !exists {
			return nil, fmt.Errorf("module %q not found at %v", module, location)
		}
		var err error
		if loaded, err = plugin.Open(location); err != nil {
			return nil, fmt.Errorf("failed to load module %q: %w", module, err)
		}
		l.loaded[module] = loaded
	}

	sym, err := loaded.Lookup(symbol)
	if err != nil {
		return nil, fmt.Errorf("module %q does not export %q: %w", module, symbol, err)
	}
	return sym, nil
}

// librariesDir resolves the configured directory; a relative directory is
// anchored beside the running executable.
func (l *pluginLoader) librariesDir() string {
	dir := l.dir
	if dir == "" {
		dir = DefaultLibrariesDir
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	executable, err := os.Executable()
	if err != nil {
		return dir
	}
	return filepath.Join(filepath.Dir(executable), dir)
}
