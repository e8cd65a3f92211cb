package cli

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/mhalvorsen/cutsheet/pkg/cache"
)

// openArtifactCache opens the file-backed render cache under the user cache
// directory. Any failure falls back to a no-op cache so rendering still
// works on read-only or misconfigured systems.
func openArtifactCache(logger *log.Logger) cache.Cache {
	base, err := os.UserCacheDir()
	if err != nil {
		logger.Debug("no user cache dir, rendering uncached", "error", err)
		return cache.NewNullCache()
	}
	c, err := cache.NewFileCache(filepath.Join(base, "cutsheet", "artifacts"))
	if err != nil {
		logger.Debug("artifact cache unavailable, rendering uncached", "error", err)
		return cache.NewNullCache()
	}
	return c
}
