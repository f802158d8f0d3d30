package store

import (
	"strings"

	"github.com/prometheus/common/log"

	"github.com/lomakv/storetune/internal/engine"
)

// LoadMode is how the caller intends to open the store.
type LoadMode int

const (
	LoadModeNormal LoadMode = iota
	LoadModeBulkLoad
)

// Logger is the compiler's logging capability. The prometheus/common logger
// satisfies it; tests inject a recorder.
type Logger interface {
	Infof(format string, v ...interface{})
	Warnf(format string, v ...interface{})
}

// ExistsFunc reports whether dir already contains a store.
type ExistsFunc func(dir string) bool

// Compiler turns a store Config into the engine options record. The zero
// value logs through prometheus/common and stats the disk for the bulk-load
// check.
type Compiler struct {
	Log    Logger
	Exists ExistsFunc
}

// CompileOptions compiles cfg with the default logger and on-disk existence
// oracle.
func CompileOptions(cfg Config, taskCount int, defaultMaxManifestFileSize int64, storeDir string, mode LoadMode) *engine.Options {
	return Compiler{}.Compile(cfg, taskCount, defaultMaxManifestFileSize, storeDir, mode)
}

// Compile resolves durability, per-task sizing, codec, compaction and
// bookkeeping parameters into a fresh engine.Options. It never fails:
// unrecognized enum strings are warned about and replaced by their defaults.
func (c Compiler) Compile(cfg Config, taskCount int, defaultMaxManifestFileSize int64, storeDir string, mode LoadMode) *engine.Options {
	logr := c.logger()
	opts := engine.DefaultOptions()

	if cfg.GetBool(KeyWALEnabled, false) {
		// Store flush becomes an explicit synchronous WAL flush, and a
		// truncated log fails open instead of silently shrinking.
		opts.ManualWALFlush = true
		rec := engine.AbsoluteConsistency
		opts.WALRecovery = &rec
	}

	// Write buffer and cache budgets are container-wide; each task gets an
	// equal integer share.
	writeBufTotal := cfg.GetLong(KeyContainerWriteBufferSizeBytes, DefaultWriteBufferTotalBytes)
	opts.WriteBufferSize = PerTaskShare(writeBufTotal, taskCount)

	opts.Compression = resolveCompression(cfg.Get(KeyCompression, DefaultCompression), logr)

	opts.Table = &engine.BlockBasedTableOptions{
		BlockCacheSize: BlockCacheSize(cfg, taskCount),
		BlockSize:      cfg.GetInt(KeyBlockSizeBytes, DefaultBlockSizeBytes),
	}

	resolveCompaction(cfg, opts, logr)

	opts.MaxWriteBufferNumber = cfg.GetInt(KeyNumWriteBuffers, DefaultNumWriteBuffers)

	// Reopening an existing store must succeed.
	opts.CreateIfMissing = true
	opts.ErrorIfExists = false

	opts.MaxLogFileSize = cfg.GetLong(KeyMaxLogFileSizeBytes, DefaultMaxLogFileSizeBytes)
	opts.KeepLogFileNum = cfg.GetLong(KeyKeepLogFileNum, DefaultKeepLogFileNum)
	opts.DeleteObsoleteFilesPeriodMicros = cfg.GetLong(KeyDeleteObsoleteFilesPeriodMicros, DefaultDeleteObsoleteFilesPeriodMicros)
	opts.MaxOpenFiles = cfg.GetInt(KeyMaxOpenFiles, DefaultMaxOpenFiles)
	opts.MaxFileOpeningThreads = cfg.GetInt(KeyMaxFileOpeningThreads, DefaultMaxFileOpeningThreads)
	opts.MaxManifestFileSize = cfg.GetLong(KeyMaxManifestFileSize, defaultMaxManifestFileSize)

	// Bulk load reconfigures the engine for raw ingest throughput, which does
	// not mix with data already on disk; only a fresh directory qualifies.
	if shouldPrepareBulkLoad(mode, storeDir, c.exists()) {
		logr.Infof("preparing %s for bulk load", storeDir)
		opts.PrepareForBulkLoad()
	}

	return opts
}

func (c Compiler) logger() Logger {
	if c.Log != nil {
		return c.Log
	}
	return log.Base()
}

func (c Compiler) exists() ExistsFunc {
	if c.Exists != nil {
		return c.Exists
	}
	return engine.StoreExists
}

func shouldPrepareBulkLoad(mode LoadMode, dir string, exists ExistsFunc) bool {
	return mode == LoadModeBulkLoad && !exists(dir)
}

func resolveCompression(name string, logr Logger) engine.CompressionType {
	switch name {
	case "snappy":
		return engine.SnappyCompression
	case "bzip2":
		return engine.Bzip2Compression
	case "zlib":
		return engine.ZlibCompression
	case "lz4":
		return engine.LZ4Compression
	case "lz4hc":
		return engine.LZ4HCCompression
	case "none":
		return engine.NoCompression
	}
	logr.Warnf("unknown %s codec %q, overwriting to %s", KeyCompression, name, engine.SnappyCompression)
	return engine.SnappyCompression
}

func resolveCompactionStyle(name string, logr Logger) engine.CompactionStyle {
	switch name {
	case "universal":
		return engine.UniversalCompaction
	case "fifo":
		return engine.FIFOCompaction
	case "level":
		return engine.LevelCompaction
	}
	logr.Warnf("unknown %s %q, overwriting to %s", KeyCompactionStyle, name, engine.UniversalCompaction)
	return engine.UniversalCompaction
}

// compactionField binds one configuration key to one options field. Gated
// fields apply only when the key is present so the engine's compiled-in
// default survives operator silence.
type compactionField struct {
	key   string
	gated bool
	apply func(cfg Config, opts *engine.Options, logr Logger)
}

var compactionFields = []compactionField{
	{KeyCompactionNumLevels, true, func(cfg Config, opts *engine.Options, _ Logger) {
		opts.NumLevels = intRef(cfg.GetInt(KeyCompactionNumLevels, 0))
	}},
	{KeyCompactionLevel0FileNumTrigger, true, func(cfg Config, opts *engine.Options, _ Logger) {
		opts.Level0FileNumCompactionTrigger = intRef(cfg.GetInt(KeyCompactionLevel0FileNumTrigger, 0))
	}},
	{KeyCompactionMaxBackgroundCompacts, true, func(cfg Config, opts *engine.Options, _ Logger) {
		opts.MaxBackgroundCompactions = intRef(cfg.GetInt(KeyCompactionMaxBackgroundCompacts, DefaultMaxBackgroundCompactions))
	}},
	{KeyCompactionTargetFileSizeBase, true, func(cfg Config, opts *engine.Options, _ Logger) {
		opts.TargetFileSizeBase = longRef(cfg.GetLong(KeyCompactionTargetFileSizeBase, 0))
	}},
	{KeyCompactionTargetFileSizeMult, true, func(cfg Config, opts *engine.Options, _ Logger) {
		opts.TargetFileSizeMultiplier = intRef(cfg.GetInt(KeyCompactionTargetFileSizeMult, 0))
	}},
	{KeyMaxBackgroundJobs, true, func(cfg Config, opts *engine.Options, _ Logger) {
		opts.MaxBackgroundJobs = intRef(cfg.GetInt(KeyMaxBackgroundJobs, DefaultMaxBackgroundJobs))
	}},
}

var universalFields = []compactionField{
	{KeyUniversalMaxSizeAmplification, true, func(cfg Config, opts *engine.Options, _ Logger) {
		opts.Universal.MaxSizeAmplificationPercent = intRef(cfg.GetInt(KeyUniversalMaxSizeAmplification, 0))
	}},
	{KeyUniversalSizeRatio, true, func(cfg Config, opts *engine.Options, _ Logger) {
		opts.Universal.SizeRatio = intRef(cfg.GetInt(KeyUniversalSizeRatio, 0))
	}},
	{KeyUniversalMinMergeWidth, true, func(cfg Config, opts *engine.Options, _ Logger) {
		opts.Universal.MinMergeWidth = intRef(cfg.GetInt(KeyUniversalMinMergeWidth, 0))
	}},
	{KeyUniversalMaxMergeWidth, true, func(cfg Config, opts *engine.Options, _ Logger) {
		opts.Universal.MaxMergeWidth = intRef(cfg.GetInt(KeyUniversalMaxMergeWidth, 0))
	}},
	{KeyUniversalCompactionStopStyle, true, func(cfg Config, opts *engine.Options, logr Logger) {
		name := cfg.Get(KeyUniversalCompactionStopStyle, "")
		if strings.TrimSpace(name) == "" {
			// Blank leaves the engine default untouched.
			return
		}
		style, ok := parseStopStyle(name)
		if !ok {
			logr.Warnf("unknown %s %q, leaving engine default", KeyUniversalCompactionStopStyle, name)
			return
		}
		opts.Universal.StopStyle = &style
	}},
}

func resolveCompaction(cfg Config, opts *engine.Options, logr Logger) {
	applyFields(compactionFields, cfg, opts, logr)

	opts.CompactionStyle = resolveCompactionStyle(cfg.Get(KeyCompactionStyle, DefaultCompactionStyle), logr)

	if opts.CompactionStyle == engine.UniversalCompaction {
		opts.Universal = &engine.UniversalCompactionOptions{}
		applyFields(universalFields, cfg, opts, logr)
	}
}

func applyFields(fields []compactionField, cfg Config, opts *engine.Options, logr Logger) {
	for _, f := range fields {
		if f.gated && !cfg.Contains(f.key) {
			continue
		}
		f.apply(cfg, opts, logr)
	}
}

// parseStopStyle accepts the engine's stop-style enum names verbatim.
func parseStopStyle(name string) (engine.CompactionStopStyle, bool) {
	switch name {
	case "COMPACTION_STOP_STYLE_SIMILAR_SIZE":
		return engine.StopStyleSimilarSize, true
	case "COMPACTION_STOP_STYLE_TOTAL_SIZE":
		return engine.StopStyleTotalSize, true
	}
	return 0, false
}

func intRef(v int) *int { return &v }

func longRef(v int64) *int64 { return &v }
