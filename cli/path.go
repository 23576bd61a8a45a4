package cli

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ardnew/teamport/pkg"
)

const (
	// baseConfig is the base name of the configuration file and the key of
	// its top-level namespace.
	baseConfig = "config"

	// baseCatalog is the base name of the user catalog kept beside the
	// configuration file. It is loaded after every other catalog file.
	baseCatalog = "catalog.yaml"
)

const dirMode os.FileMode = 0o700

// appName names the per-user directories. It follows the executable so that
// a renamed binary keeps its own configuration, except for debugger builds
// and hidden names.
var appName = sync.OnceValue(func() string {
	exe, err := os.Executable()
	if err != nil {
		exe = os.Args[0]
	}

	name := filepath.Base(exe)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.TrimLeft(name, ".")

	if name == "" || strings.HasPrefix(name, "__debug_bin") {
		return pkg.Name
	}

	return name
})

// userDir resolves a per-user base directory with lookup, falling back to
// fallback under the home directory and then to the working directory.
func userDir(lookup func() (string, error), fallback string) string {
	if dir, err := lookup(); err == nil {
		return filepath.Join(dir, appName())
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, fallback, appName())
	}

	if wd, err := os.Getwd(); err == nil {
		return filepath.Join(wd, "."+appName())
	}

	return "." + appName()
}

var (
	configDir = sync.OnceValue(func() string { return userDir(os.UserConfigDir, ".config") })
	cacheDir  = sync.OnceValue(func() string { return userDir(os.UserCacheDir, ".cache") })
)

// configPath joins elem onto the configuration directory.
func configPath(elem ...string) string {
	return filepath.Join(append([]string{configDir()}, elem...)...)
}

// userCatalog is the path of the catalog file maintained by the user. The
// file need not exist.
func userCatalog() string { return configPath(baseCatalog) }

// mkdirAllRequired creates the configuration and cache directories.
func mkdirAllRequired() error {
	for _, dir := range []string{configDir(), cacheDir()} {
		if err := os.MkdirAll(dir, dirMode); err != nil {
			return err
		}
	}

	return nil
}
