package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/Hajin-Jeon/KRGDB-parser/internal/ports"
	"github.com/Hajin-Jeon/KRGDB-parser/internal/types"
)

// DocumentCacheAdapter keeps raw pages as plain files named exactly after
// their identifier, so a page saved by a browser works as a cache entry.
type DocumentCacheAdapter struct {
	Dir string
}

func NewDocumentCacheAdapter(dir string) DocumentCacheAdapter {
	if dir == "" {
		dir = "."
	}
	return DocumentCacheAdapter{Dir: dir}
}

func (a DocumentCacheAdapter) Path(id types.Identifier) string {
	return filepath.Join(a.Dir, id.String())
}

func (a DocumentCacheAdapter) Exists(id types.Identifier) bool {
	info, err := os.Stat(a.Path(id))
	return err == nil && info.Mode().IsRegular()
}

func (a DocumentCacheAdapter) ReadCached(id types.Identifier) (types.RawDocument, error) {
	data, err := os.ReadFile(a.Path(id))
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read cached document").
			WithCause(err)
	}
	return types.RawDocument(data), nil
}

func (a DocumentCacheAdapter) Store(id types.Identifier, raw types.RawDocument) error {
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create cache directory").
			WithCause(err)
	}
	path := a.Path(id)
	tmp := path + ".part"
	if err := os.WriteFile(tmp, []byte(raw), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write cached document").
			WithCause(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to finalize cached document").
			WithCause(err)
	}
	return nil
}

var _ ports.DocumentCachePort = DocumentCacheAdapter{}
