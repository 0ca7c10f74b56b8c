package stage

import (
	"fmt"
	"io"
	"os"
	"runtime"
)

// createLink creates a symbolic link from link pointing to target.
// On Unix this is os.Symlink directly. On Windows, os.Symlink needs
// developer mode; when it fails the file is copied instead, which is
// equivalent for read-only staging consumers.
func createLink(target, link string) error {
	if runtime.GOOS != "windows" {
		return os.Symlink(target, link)
	}

	if err := os.Symlink(target, link); err == nil {
		return nil
	}

	if err := copyFile(target, link); err != nil {
		return fmt.Errorf("symlink fallback (copy) failed: %w", err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
