package ingest

// FileResult is the per-file scan outcome.
type FileResult struct {
	Path    string
	FileExt string
	Size    int64
	HashHex string
	Err     string
}

// DirStats summarizes a directory scan.
type DirStats struct {
	Scanned uint32
	Matched uint32
	Failed  uint32
}
