package engine

// CompressionType is the block compression codec applied to data files.
type CompressionType int

const (
	NoCompression CompressionType = iota
	SnappyCompression
	Bzip2Compression
	ZlibCompression
	LZ4Compression
	LZ4HCCompression
)

func (c CompressionType) String() string {
	switch c {
	case NoCompression:
		return "none"
	case SnappyCompression:
		return "snappy"
	case Bzip2Compression:
		return "bzip2"
	case ZlibCompression:
		return "zlib"
	case LZ4Compression:
		return "lz4"
	case LZ4HCCompression:
		return "lz4hc"
	}
	return "unknown"
}

// CompactionStyle selects the engine's compaction family.
type CompactionStyle int

const (
	LevelCompaction CompactionStyle = iota
	UniversalCompaction
	FIFOCompaction
)

func (s CompactionStyle) String() string {
	switch s {
	case LevelCompaction:
		return "level"
	case UniversalCompaction:
		return "universal"
	case FIFOCompaction:
		return "fifo"
	}
	return "unknown"
}

// CompactionStopStyle bounds how universal compaction picks files to merge.
type CompactionStopStyle int

const (
	StopStyleSimilarSize CompactionStopStyle = iota
	StopStyleTotalSize
)

// WALRecoveryMode controls how the engine reacts to a damaged write-ahead log
// at open time.
type WALRecoveryMode int

const (
	TolerateCorruptedTailRecords WALRecoveryMode = iota
	AbsoluteConsistency
	PointInTime
	SkipAnyCorruptedRecords
)

// BlockBasedTableOptions configures the block-based data file format.
type BlockBasedTableOptions struct {
	BlockCacheSize int64
	BlockSize      int
}

// UniversalCompactionOptions are the universal-family sub-parameters. Every
// field is a pointer: nil means no override, the engine's compiled-in value
// stands.
type UniversalCompactionOptions struct {
	MaxSizeAmplificationPercent *int
	SizeRatio                   *int
	MinMergeWidth               *int
	MaxMergeWidth               *int
	StopStyle                   *CompactionStopStyle
}

// Options is the full tuning-parameter record handed to the engine's open
// routine. Pointer fields carry an override only when set; nil leaves the
// engine's compiled-in default untouched.
type Options struct {
	CreateIfMissing bool
	ErrorIfExists   bool

	ManualWALFlush bool
	WALRecovery    *WALRecoveryMode

	WriteBufferSize      int64
	MaxWriteBufferNumber int

	Compression CompressionType
	Table       *BlockBasedTableOptions

	CompactionStyle                CompactionStyle
	DisableAutoCompactions         bool
	NumLevels                      *int
	Level0FileNumCompactionTrigger *int
	MaxBackgroundCompactions       *int
	MaxBackgroundJobs              *int
	TargetFileSizeBase             *int64
	TargetFileSizeMultiplier       *int
	Universal                      *UniversalCompactionOptions

	MaxLogFileSize                  int64
	KeepLogFileNum                  int64
	DeleteObsoleteFilesPeriodMicros int64
	MaxManifestFileSize             int64
	MaxOpenFiles                    int
	MaxFileOpeningThreads           int
}

// DefaultOptions returns the engine's compiled-in values for the non-gated
// fields.
func DefaultOptions() *Options {
	return &Options{
		WriteBufferSize:                 64 << 20,
		MaxWriteBufferNumber:            2,
		Compression:                     SnappyCompression,
		CompactionStyle:                 LevelCompaction,
		KeepLogFileNum:                  1000,
		DeleteObsoleteFilesPeriodMicros: 21600000000,
		MaxManifestFileSize:             1 << 30,
		MaxOpenFiles:                    -1,
		MaxFileOpeningThreads:           16,
	}
}

const bulkLoadLevel0Trigger = 1 << 30

// PrepareForBulkLoad reconfigures the options for raw ingest throughput:
// compaction is deferred until the load finishes and flushes are widened.
// Unsafe on a store that already holds data.
func (o *Options) PrepareForBulkLoad() {
	o.DisableAutoCompactions = true
	trigger := bulkLoadLevel0Trigger
	o.Level0FileNumCompactionTrigger = &trigger
	if o.MaxWriteBufferNumber < 6 {
		o.MaxWriteBufferNumber = 6
	}
}
