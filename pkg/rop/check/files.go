package check

import (
	"errors"
	"io/fs"
	"os"

	"github.com/ib-77/ropflag/pkg/rop"
)

// FileExists fails when nothing exists at path.
func FileExists() rop.Callback[string, string] {
	return func(_ *rop.Invocation, path string) (string, error) {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", rop.BadParameterf("File not found: %s", path)
			}
			return "", rop.ToBadParameter(err)
		}
		return path, nil
	}
}

func IsFile() rop.Callback[string, string] {
	return func(_ *rop.Invocation, path string) (string, error) {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			return "", rop.BadParameterf("Not a file: %s", path)
		}
		return path, nil
	}
}

func IsDir() rop.Callback[string, string] {
	return func(_ *rop.Invocation, path string) (string, error) {
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			return "", rop.BadParameterf("Not a directory: %s", path)
		}
		return path, nil
	}
}
