package store

// PerTaskShare splits a container-wide byte budget evenly across tasks.
// Integer division, remainder discarded. taskCount >= 1 is the caller's
// contract; no clamping is applied here.
func PerTaskShare(totalBytes int64, taskCount int) int64 {
	return totalBytes / int64(taskCount)
}

// BlockCacheSize is the per-task block cache budget. Exposed on its own
// because container memory accounting needs it without building full options.
func BlockCacheSize(cfg Config, taskCount int) int64 {
	return PerTaskShare(cfg.GetLong(KeyContainerCacheSizeBytes, DefaultBlockCacheTotalBytes), taskCount)
}
