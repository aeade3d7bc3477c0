package extsort

import "os"

func fileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// removeIfScratch deletes path unless it is the caller's original input
// file; the original is never modified or deleted by the sorter.
func (s *sorter) removeIfScratch(path string) error {
	if path == s.originalInput {
		return nil
	}
	if err := os.Remove(path); err != nil {
		return err
	}
	s.obs.ScratchRemoved(path)
	return nil
}
