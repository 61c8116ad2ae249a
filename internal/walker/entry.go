package walker

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/depthls/depthls/internal/logging"
)

// Entry is a single listed filesystem entry, container or not.
type Entry struct {
	Name    string      // base name
	Path    string      // path rooted at the walked root
	IsDir   bool        // true for containers
	Size    int64       // size in bytes (0 when metadata is unavailable)
	Mode    fs.FileMode // permission and type bits
	ModTime time.Time   // last modification time
	Depth   int         // levels below the root; root's children are 1
}

// newEntry builds an Entry from a directory listing record.
//
// DirEntry.Info uses metadata cached by ReadDir, so no extra stat call is
// made per entry. If the metadata is unavailable the entry is still
// returned, with zero Size/Mode/ModTime, rather than failing the walk.
func newEntry(parent string, d os.DirEntry, depth int, logger *logging.Logger) Entry {
	e := Entry{
		Name:  d.Name(),
		Path:  filepath.Join(parent, d.Name()),
		IsDir: d.IsDir(),
		Depth: depth,
	}

	info, err := d.Info()
	if err != nil {
		logger.Debug().Err(err).Str("path", e.Path).Msg("cannot read entry metadata")
		return e
	}

	e.Size = info.Size()
	e.Mode = info.Mode()
	e.ModTime = info.ModTime()
	return e
}
