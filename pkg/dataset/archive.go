package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mholt/archives"
)

// Archive bundles the record directory dir into a gzip compressed tarball at out. Entries are
// stored below the base name of dir.
func Archive(ctx context.Context, dir, out string) error {
	files, err := archives.FilesFromDisk(ctx, nil, map[string]string{
		dir: filepath.Base(filepath.Clean(dir)),
	})
	if err != nil {
		return fmt.Errorf("failed to collect files from %s: %v", dir, err)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create archive %s: %v", out, err)
	}
	defer f.Close()

	format := archives.CompressedArchive{
		Compression: archives.Gz{},
		Archival:    archives.Tar{},
	}
	if err := format.Archive(ctx, f, files); err != nil {
		return fmt.Errorf("failed to write archive %s: %v", out, err)
	}
	return nil
}
