package store

// Store-level tuning keys.
const (
	KeyWALEnabled     = "wal.enabled"
	KeyCompression    = "compression"
	KeyBlockSizeBytes = "block.size.bytes"

	KeyCompactionNumLevels             = "compaction.num.levels"
	KeyCompactionLevel0FileNumTrigger  = "compaction.level0.file.num.compaction.trigger"
	KeyCompactionMaxBackgroundCompacts = "compaction.max.background.compactions"
	KeyCompactionTargetFileSizeBase    = "compaction.target.file.size.base"
	KeyCompactionTargetFileSizeMult    = "compaction.target.file.size.multiplier"
	KeyMaxBackgroundJobs               = "max.background.jobs"

	KeyCompactionStyle                 = "compaction.style"
	KeyUniversalMaxSizeAmplification   = "compaction.universal.max.size.amplification.percent"
	KeyUniversalSizeRatio              = "compaction.universal.size.ratio"
	KeyUniversalMinMergeWidth          = "compaction.universal.min.merge.width"
	KeyUniversalMaxMergeWidth          = "compaction.universal.max.merge.width"
	KeyUniversalCompactionStopStyle    = "compaction.universal.compaction.stop.style"

	KeyNumWriteBuffers                 = "num.write.buffers"
	KeyMaxLogFileSizeBytes             = "max.log.file.size.bytes"
	KeyKeepLogFileNum                  = "keep.log.file.num"
	KeyDeleteObsoleteFilesPeriodMicros = "delete.obsolete.files.period.micros"
	KeyMaxManifestFileSize             = "max.manifest.file.size"
	KeyMaxOpenFiles                    = "max.open.files"
	KeyMaxFileOpeningThreads           = "max.file.opening.threads"
)

// Container-scoped keys, outside the per-store namespace. Both budgets are
// split evenly across the container's tasks.
const (
	KeyContainerWriteBufferSizeBytes = "container.write.buffer.size.bytes"
	KeyContainerCacheSizeBytes       = "container.cache.size.bytes"
)

// Defaults applied when a key is absent. Presence-gated compaction keys carry
// no entry here: absent means the engine's compiled-in value stands.
const (
	DefaultCompression     = "snappy"
	DefaultCompactionStyle = "universal"

	DefaultWriteBufferTotalBytes = 32 * 1024 * 1024
	DefaultBlockCacheTotalBytes  = 100 * 1024 * 1024
	DefaultBlockSizeBytes        = 4096
	DefaultNumWriteBuffers       = 3

	DefaultMaxLogFileSizeBytes             = 64 * 1024 * 1024
	DefaultKeepLogFileNum                  = 2
	DefaultDeleteObsoleteFilesPeriodMicros = 21600000000 // 6h
	DefaultMaxOpenFiles                    = -1          // unlimited
	DefaultMaxFileOpeningThreads           = 16

	// The engine's own defaults are 1 and 2 respectively; this workload
	// benefits from more compaction parallelism.
	DefaultMaxBackgroundCompactions = 4
	DefaultMaxBackgroundJobs        = 4
)
