//go:build !wasm
// +build !wasm

package env

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tinywasm/chart/errs"
)

// SetupDefaultLogger writes to stderr so stdout stays free for chart output.
func SetupDefaultLogger() func(a ...any) {
	return func(a ...any) {
		fmt.Fprintln(os.Stderr, a...)
	}
}

func SetupDefaultFileWriter() func(filename string, data []byte) error {
	return func(filename string, data []byte) error {
		if dir := filepath.Dir(filename); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
		}
		return os.WriteFile(filename, data, 0644)
	}
}

// SetupDefaultReader reads definition files from disk. Directories are
// rejected with a readable message instead of the bare read error.
func SetupDefaultReader() func(source string) ([]byte, error) {
	return func(source string) ([]byte, error) {
		info, err := os.Stat(source)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errs.New("file does not exist:", source)
			}
			return nil, err
		}
		if info.IsDir() {
			return nil, errs.New("path is a directory, not a file:", source)
		}
		return os.ReadFile(source)
	}
}
