package feed

import (
	"io/fs"
)

// noListingFS hides directories so the file server answers 404 instead of
// an index page.
type noListingFS struct {
	fs.FS
}

func (n noListingFS) Open(name string) (fs.File, error) {
	f, err := n.FS.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, fs.ErrNotExist
	}
	return f, nil
}
