package filesystem

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hackfs/hackfs/internal/util"
)

// Session is the name-relative facade over one namespace tree. It holds the
// fixed root (through the FileSystem aggregate) and a mutable
// working-directory cursor, initialized to the root, that every operation
// resolves against.
//
// NOTE: A Session assumes exactly one caller at a time. It defines no
// locking discipline; callers sharing one between goroutines must add
// external synchronization around the whole tree.
type Session struct {
	fs     *FileSystem
	wd     *Node // working-directory cursor
	logger zerolog.Logger
}

// NewSession creates a Session over fs with the cursor at the root.
func NewSession(fs *FileSystem) *Session {
	return &Session{
		fs: fs,
		wd: fs.root,
		logger: util.GetLogger("session").With().
			Str("session_id", uuid.NewString()).Logger(),
	}
}

// FS exposes the underlying tree aggregate, e.g. for path-based seeding.
func (s *Session) FS() *FileSystem { return s.fs }

// EnterRoot unconditionally resets the cursor to the root directory.
func (s *Session) EnterRoot() {
	s.wd = s.fs.root
}

// Enter moves the cursor into the named subdirectory of the working
// directory. A name that does not resolve to a directory, either missing
// entirely or naming a file, fails with ErrNoSuchFileOrDirectory.
func (s *Session) Enter(name string) error {
	child, ok := s.wd.Lookup(name)
	if !ok || child.kind != KindDirectory {
		return fmt.Errorf("%s: %w", name, ErrNoSuchFileOrDirectory)
	}
	s.wd = child
	s.logger.Trace().Str("wd", s.wd.Path()).Msg("Entered directory")
	return nil
}

// Leave moves the cursor to its parent directory. At the root it is a no-op.
func (s *Session) Leave() {
	if s.wd.parent != nil {
		s.wd = s.wd.parent
	}
}

// WorkingDirectory returns the derived path of the cursor.
func (s *Session) WorkingDirectory() string {
	return s.wd.Path()
}

// CreateDirectory creates a new empty directory inside the working
// directory. An existing entry of the same name, of either kind, fails with
// ErrAlreadyExists.
func (s *Session) CreateDirectory(name string) error {
	dir := NewDirectory(name)
	if err := s.wd.AddChild(dir); err != nil {
		return err
	}
	s.fs.register(dir)
	s.logger.Debug().Str("path", dir.Path()).Msg("Created directory")
	return nil
}

// CreateFile creates a new empty file inside the working directory. An
// existing entry of the same name, of either kind, fails with
// ErrAlreadyExists.
func (s *Session) CreateFile(name string) error {
	file := NewFile(name)
	if err := s.wd.AddChild(file); err != nil {
		return err
	}
	s.fs.register(file)
	s.logger.Debug().Str("path", file.Path()).Msg("Created file")
	return nil
}

// WriteFile completely overwrites the named file's content; there is no
// append mode. Naming a missing entry or a directory fails with
// ErrNoSuchFileOrDirectory.
func (s *Session) WriteFile(name, content string) error {
	file, ok := s.wd.Lookup(name)
	if !ok || file.kind != KindFile {
		return fmt.Errorf("%s: %w", name, ErrNoSuchFileOrDirectory)
	}
	file.SetContent(content)
	s.logger.Trace().Str("path", file.Path()).Int("size", file.Size()).Msg("Wrote file")
	return nil
}

// ReadFile returns the named file's content. A file never written reads as
// the empty string, not an error. Naming a missing entry or a directory
// fails with ErrNoSuchFileOrDirectory.
func (s *Session) ReadFile(name string) (string, error) {
	file, ok := s.wd.Lookup(name)
	if !ok || file.kind != KindFile {
		return "", fmt.Errorf("%s: %w", name, ErrNoSuchFileOrDirectory)
	}
	return file.Content(), nil
}

// Remove detaches the named entry from the working directory and releases
// its registry handle. A non-empty directory fails with ErrNotEmpty and
// nothing changes.
func (s *Session) Remove(name string) error {
	node, ok := s.wd.Lookup(name)
	if !ok {
		return fmt.Errorf("%s: %w", name, ErrNoSuchFileOrDirectory)
	}
	if err := node.Remove(); err != nil {
		return err
	}
	s.fs.deregister(node)
	s.logger.Debug().Str("name", name).Msg("Removed entry")
	return nil
}

// List returns the working directory's recursive bare-name listing.
func (s *Session) List() string { return s.wd.List() }

// ListLong returns the working directory's recursive annotated listing.
func (s *Session) ListLong() string { return s.wd.ListLong() }

// Find returns the full paths of every entry beneath the working directory.
func (s *Session) Find() string { return s.wd.Find() }

// FindContaining returns the full paths of entries beneath the working
// directory whose bare name contains term.
func (s *Session) FindContaining(term string) string { return s.wd.FindContaining(term) }
