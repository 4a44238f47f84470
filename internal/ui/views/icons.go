package views

import (
	"os"
	"path/filepath"
	"time"

	devicons "github.com/epilande/go-devicons"
)

// iconFileInfo satisfies os.FileInfo with just a name, which is all
// the icon lookup matches on.
type iconFileInfo struct {
	name string
}

func (i iconFileInfo) Name() string { return i.name }

func (i iconFileInfo) Size() int64 { return 0 }

func (i iconFileInfo) Mode() os.FileMode { return 0 }

func (i iconFileInfo) ModTime() time.Time { return time.Time{} }

func (i iconFileInfo) IsDir() bool { return false }

func (i iconFileInfo) Sys() any { return nil }

// deviconForName returns the filetype icon for a path, or "" when
// there is nothing to match on.
func deviconForName(path string) string {
	base := filepath.Base(path)
	if base == "" || base == "." || base == "/" {
		return ""
	}
	return devicons.IconForInfo(iconFileInfo{name: base}).Icon
}
