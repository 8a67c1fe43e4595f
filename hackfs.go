// Package hackfs provides an in-memory simulated hierarchical namespace: a
// tree of directories and files manipulated through a shell-like
// [filesystem.Session] (navigation, creation, read/write, removal, and
// recursive search). There is no persistent storage and no permission model;
// the only boundary is the programmatic operation surface.
package hackfs

import (
	"github.com/hackfs/hackfs/config"
	"github.com/hackfs/hackfs/filesystem"
)

// New creates a Session over a fresh, empty namespace tree given your config.
func New(cfg *config.Config) *filesystem.Session {
	return filesystem.NewSession(filesystem.NewFS(cfg))
}
