// Package atomicfile writes files through a temporary sibling and a rename,
// so readers never observe a partially written file.
package atomicfile

import "os"

// WriteFile writes the segments to path. The content lands in path+".tmp"
// first and replaces path only after every byte is flushed. On error the
// original file is left as it was.
func WriteFile(path string, segments ...[]byte) error {
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	for _, seg := range segments {
		if _, err := f.Write(seg); err != nil {
			f.Close()
			os.Remove(tmp)
			return err
		}
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
