package filesystem

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/hackfs/hackfs/config"
	"github.com/hackfs/hackfs/internal/util"
)

// RootID is the registry handle reserved for the root directory.
const RootID uint64 = 1

// FileSystem is the namespace tree aggregate: the root directory plus a
// registry handing out a stable uint64 handle for every attached node.
// Handles survive for the lifetime of the node's attachment and are released
// on removal.
type FileSystem struct {
	cfg      *config.Config
	root     *Node                     // Root of node tree
	lastID   atomic.Uint64             // Last registry handle assigned
	registry *xsync.Map[uint64, *Node] // maps registry handles to Nodes
}

// NewFS creates an empty tree: a root directory with the empty name and no
// parent, registered under RootID.
func NewFS(cfg *config.Config) *FileSystem {
	root := NewDirectory("")
	root.id = RootID

	fs := &FileSystem{cfg: cfg, root: root, registry: xsync.NewMap[uint64, *Node]()}
	fs.lastID.Store(RootID)
	fs.registry.Store(RootID, root)
	return fs
}

// Root returns the tree's root directory.
func (fs *FileSystem) Root() *Node { return fs.root }

// NodeByID resolves a registry handle to its node, if still attached.
func (fs *FileSystem) NodeByID(id uint64) (*Node, bool) {
	return fs.registry.Load(id)
}

// register assigns the next handle to n and stores it in the registry.
func (fs *FileSystem) register(n *Node) uint64 {
	id := fs.lastID.Add(1)
	n.id = id
	fs.registry.Store(id, n)
	return id
}

// deregister releases n's handle after detach.
func (fs *FileSystem) deregister(n *Node) {
	if n.id != 0 {
		fs.registry.Delete(n.id)
		n.id = 0
	}
}

// AddDirNode adds all missing directories along the "/"-separated path
// starting at the root and returns the leaf. It is equivalent to calling
// `mkdir -p` from a shell: existing directories along the way are reused and
// an existing leaf directory is not an error. A path component naming a file
// fails with ErrAlreadyExists.
func (fs *FileSystem) AddDirNode(path string) (*Node, error) {
	logger := util.GetLogger("AddDirNode")

	cur := fs.root
	newCnt := 0
	for _, name := range strings.Split(path, "/") {
		if name == "" {
			// leading, trailing, or doubled separators
			continue
		}
		if child, ok := cur.Lookup(name); ok {
			if child.kind != KindDirectory {
				err := fmt.Errorf("%s: %w", child.Path(), ErrAlreadyExists)
				logger.Error().Err(err).Str("path", path).Msg("Path component is a file")
				return nil, err
			}
			cur = child
			continue
		}
		node := NewDirectory(name)
		if err := cur.AddChild(node); err != nil {
			return nil, err
		}
		fs.register(node)
		newCnt++
		cur = node
	}
	if newCnt > 0 {
		logger.Debug().Str("path", path).Int("created", newCnt).Msg("Created missing directories")
	}
	return cur, nil
}

// AddFileNode adds a new file node to the tree. It will add any missing
// directories in the path and return the newly created leaf node.
// If a node already exists at the requested path, it returns ErrAlreadyExists.
func (fs *FileSystem) AddFileNode(path, content string) (*Node, error) {
	logger := util.GetLogger("AddFileNode")

	dirPath, name := splitLeaf(path)
	if name == "" {
		err := fmt.Errorf("%s: %w", path, ErrNoSuchFileOrDirectory)
		logger.Error().Err(err).Str("path", path).Msg("Empty file name")
		return nil, err
	}

	parent := fs.root
	if dirPath != "" {
		d, err := fs.AddDirNode(dirPath)
		if err != nil {
			logger.Error().Err(err).Str("path", path).Msg("Failed to create file's ancestor directory(s)")
			return nil, err
		}
		parent = d
	}

	if _, ok := parent.Lookup(name); ok {
		err := fmt.Errorf("%s: %w", path, ErrAlreadyExists)
		logger.Error().Err(err).Str("path", path).Msg("Failed to create file")
		return nil, err
	}

	node := NewFile(name)
	node.content = content
	if err := parent.AddChild(node); err != nil {
		return nil, err
	}
	fs.register(node)
	logger.Debug().Str("path", path).Msg("Added new file node")
	return node, nil
}

// splitLeaf splits a "/"-separated path into its parent portion and leaf
// name. Trailing separators are ignored.
func splitLeaf(path string) (dir, name string) {
	path = strings.TrimSuffix(path, "/")
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return "", path
	}
	return path[:i], path[i+1:]
}
