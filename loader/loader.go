package loader

import (
	"fmt"
	"path"

	"go.uber.org/zap"

	"github.com/hibiscus-lang/hibiscus"
	"github.com/hibiscus-lang/hibiscus/errors"
	"github.com/hibiscus-lang/hibiscus/vfs"
)

// Interp is the loader's view of the interpreter state: a borrowed handle
// to the virtual filesystem source units are registered into.
type Interp interface {
	VFS() vfs.Filesystem
}

// resolve anchors a relative load path under hibiscus.LoadRoot. Absolute
// paths are used verbatim.
func resolve(p string) string {
	if path.IsAbs(p) {
		return path.Clean(p)
	}
	return path.Join(hibiscus.LoadRoot, p)
}

// stub is the placeholder content written for native-backed source units.
// The guest require machinery sees this text as "already loaded" if it
// ever reads content directly.
func stub(p string) []byte {
	return []byte(fmt.Sprintf("# virtual source file -- %q", p))
}

// DefineNativeSource registers a native-code-backed source unit at p,
// creating missing ancestor directories. A stub file is written only if
// no file exists at the resolved path, so re-registration never clobbers
// content; the metadata's initializer is always set to init, so the last
// registration wins there.
//
// Filesystem failures propagate unchanged. Registration runs during
// interpreter bootstrap, where any failure should abort startup.
func DefineNativeSource(ip Interp, p string, init hibiscus.InitFunc) error {
	if init == nil {
		return errors.Registration("nil initializer for %q", p)
	}

	fs := ip.VFS()
	full := resolve(p)

	if err := fs.CreateDirAll(path.Dir(full)); err != nil {
		return err
	}
	if !fs.IsFile(full) {
		if err := fs.WriteFile(full, stub(full)); err != nil {
			return err
		}
	}

	md := fs.Metadata(full)
	md.Init = init
	if err := fs.SetMetadata(full, md); err != nil {
		return err
	}

	Logger().Debug("registered native-backed source file", zap.String("path", full))
	return nil
}

// DefineScriptSource registers a plain-text source unit at p, creating
// missing ancestor directories. Content is always replaced. The metadata
// record is read (or default-initialized) and written back unchanged: a
// native initializer previously attached to the path survives the text
// overwrite, and a metadata record is guaranteed to exist afterward.
//
// Filesystem failures propagate unchanged.
func DefineScriptSource(ip Interp, p string, contents []byte) error {
	fs := ip.VFS()
	full := resolve(p)

	if err := fs.CreateDirAll(path.Dir(full)); err != nil {
		return err
	}
	if err := fs.WriteFile(full, contents); err != nil {
		return err
	}

	md := fs.Metadata(full)
	if err := fs.SetMetadata(full, md); err != nil {
		return err
	}

	Logger().Debug("registered script source file", zap.String("path", full))
	return nil
}
