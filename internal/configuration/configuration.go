// Package configuration reads optional env-style configuration files and
// turns them into [Settings].
package configuration

import (
	"fmt"
	"os"
	"strconv"

	"github.com/desertwitch/skeleton/internal/materialize"
)

const (
	KeyBase       = "SKELETON_BASE"
	KeySchema     = "SKELETON_SCHEMA"
	KeyOnExisting = "SKELETON_ON_EXISTING"
	KeyDirPerms   = "SKELETON_DIR_PERMS"
	KeyFilePerms  = "SKELETON_FILE_PERMS"

	defaultBase = "."
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// Settings is the effective configuration of a run. An empty SchemaPath
// selects the built-in layout.
type Settings struct {
	BasePath   string
	SchemaPath string
	Options    materialize.Options
}

// DefaultSettings returns the settings of a run without any configuration:
// the built-in layout in the current working directory.
func DefaultSettings() Settings {
	return Settings{
		BasePath: defaultBase,
		Options:  materialize.DefaultOptions(),
	}
}

// Handler is the principal implementation for the configuration.
type Handler struct {
	GenericHandler genericConfigProvider
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(genericHandler genericConfigProvider) *Handler {
	return &Handler{
		GenericHandler: genericHandler,
	}
}

// ReadGeneric reads generic configuration files into a map.
func (c *Handler) ReadGeneric(filenames ...string) (map[string]string, error) {
	return c.GenericHandler.Read(filenames...)
}

// Load applies the keys found in the given files on top of
// [DefaultSettings]. Unknown keys are ignored.
func (c *Handler) Load(filenames ...string) (Settings, error) {
	settings := DefaultSettings()

	envMap, err := c.ReadGeneric(filenames...)
	if err != nil {
		return settings, fmt.Errorf("(config) %w", err)
	}

	if v := c.MapKeyToString(envMap, KeyBase); v != "" {
		settings.BasePath = v
	}

	settings.SchemaPath = c.MapKeyToString(envMap, KeySchema)

	policy, err := materialize.ParsePolicy(c.MapKeyToString(envMap, KeyOnExisting))
	if err != nil {
		return settings, fmt.Errorf("(config) %s: %w", KeyOnExisting, err)
	}
	settings.Options.OnExisting = policy

	if perms, ok, err := c.MapKeyToFileMode(envMap, KeyDirPerms); err != nil {
		return settings, fmt.Errorf("(config) %w", err)
	} else if ok {
		settings.Options.DirPerms = perms
	}

	if perms, ok, err := c.MapKeyToFileMode(envMap, KeyFilePerms); err != nil {
		return settings, fmt.Errorf("(config) %w", err)
	} else if ok {
		settings.Options.FilePerms = perms
	}

	return settings, nil
}

// MapKeyToString returns the value of key, or the empty string.
func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return value
	}

	return ""
}

// MapKeyToFileMode parses the value of key as octal permission bits. The
// boolean reports whether the key was set at all.
func (c *Handler) MapKeyToFileMode(envMap map[string]string, key string) (os.FileMode, bool, error) {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return 0, false, nil
	}

	perms, err := strconv.ParseUint(value, 8, 32)
	if err != nil || perms > uint64(os.ModePerm) {
		return 0, false, fmt.Errorf("%w: %s=%q (expected octal permissions)", ErrInvalidValue, key, value)
	}

	return os.FileMode(perms), true, nil
}
