package config

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
)

// String defaults are overrideable at build time via -ldflags -X
// Example: -ldflags "-X 'book-sorter/pkg/config.DefaultWorkersStr=4'"
var (
	DefaultSourceDirStr    = "./books"
	DefaultDestDirStr      = "./books_sorted"
	DefaultRulesPathStr    = "rules.yaml"
	DefaultWorkersStr      = "" // empty -> runtime.NumCPU()
	DefaultMoveStr         = "false"
	DefaultDryRunStr       = "false"
	DefaultDedupeStr       = "false"
	DefaultVerboseStr      = "false"
	DefaultQuietStr        = "false"
	DefaultAssumeYesStr    = "false"
	DefaultIncludeGlobsStr = ""
	DefaultExcludeGlobsStr = ""
	DefaultMinSizeBytesStr = "0"
	DefaultMaxSizeBytesStr = "0"
	DefaultCatalogPathStr  = ""
	DefaultSnapshotPathStr = ""
	DefaultLogFileStr      = ""
)

type Config struct {
	SourceDir    string
	DestDir      string
	RulesPath    string
	Workers      int
	Move         bool
	DryRun       bool
	Dedupe       bool
	Verbose      bool
	Quiet        bool
	AssumeYes    bool
	IncludeGlobs string
	ExcludeGlobs string
	MinSizeBytes int64
	MaxSizeBytes int64
	CatalogPath  string
	SnapshotPath string
	LogFile      string
	DemoRules    bool
	ShowHelp     bool
}

func DefaultConfig() *Config {
	workers := parseIntOr(DefaultWorkersStr, runtime.NumCPU())
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return &Config{
		SourceDir:    orString(DefaultSourceDirStr, "./books"),
		DestDir:      orString(DefaultDestDirStr, "./books_sorted"),
		RulesPath:    orString(DefaultRulesPathStr, "rules.yaml"),
		Workers:      workers,
		Move:         parseBoolOr(DefaultMoveStr, false),
		DryRun:       parseBoolOr(DefaultDryRunStr, false),
		Dedupe:       parseBoolOr(DefaultDedupeStr, false),
		Verbose:      parseBoolOr(DefaultVerboseStr, false),
		Quiet:        parseBoolOr(DefaultQuietStr, false),
		AssumeYes:    parseBoolOr(DefaultAssumeYesStr, false),
		IncludeGlobs: orString(DefaultIncludeGlobsStr, ""),
		ExcludeGlobs: orString(DefaultExcludeGlobsStr, ""),
		MinSizeBytes: parseInt64Or(DefaultMinSizeBytesStr, 0),
		MaxSizeBytes: parseInt64Or(DefaultMaxSizeBytesStr, 0),
		CatalogPath:  orString(DefaultCatalogPathStr, ""),
		SnapshotPath: orString(DefaultSnapshotPathStr, ""),
		LogFile:      orString(DefaultLogFileStr, ""),
	}
}

// ApplyEnv layers BOOKSORT_* environment variables over the defaults. A
// .env file in the working directory is loaded first when present;
// variables already set in the environment win over the file.
func (c *Config) ApplyEnv() {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("BOOKSORT_SOURCE_DIR"); ok {
		c.SourceDir = v
	}
	if v, ok := os.LookupEnv("BOOKSORT_DEST_DIR"); ok {
		c.DestDir = v
	}
	if v, ok := os.LookupEnv("BOOKSORT_RULES"); ok {
		c.RulesPath = v
	}
	if v, ok := os.LookupEnv("BOOKSORT_WORKERS"); ok {
		if n := parseIntOr(v, 0); n > 0 {
			c.Workers = n
		}
	}
	if v, ok := os.LookupEnv("BOOKSORT_CATALOG"); ok {
		c.CatalogPath = v
	}
	if v, ok := os.LookupEnv("BOOKSORT_SNAPSHOT"); ok {
		c.SnapshotPath = v
	}
	if v, ok := os.LookupEnv("BOOKSORT_LOG_FILE"); ok {
		c.LogFile = v
	}
	if v, ok := os.LookupEnv("BOOKSORT_DEDUPE"); ok {
		c.Dedupe = parseBoolOr(v, c.Dedupe)
	}
	if v, ok := os.LookupEnv("BOOKSORT_VERBOSE"); ok {
		c.Verbose = parseBoolOr(v, c.Verbose)
	}
}

func ParseFlags(appName string) (*Config, error) {
	config := DefaultConfig()
	config.ApplyEnv()

	flag.StringVar(&config.SourceDir, "src", config.SourceDir, "Source directory with unsorted books")
	flag.StringVar(&config.DestDir, "dst", config.DestDir, "Destination directory for the sorted tree")
	flag.StringVar(&config.RulesPath, "rules", config.RulesPath, "Path to the rules YAML file")
	flag.IntVar(&config.Workers, "workers", config.Workers, "Number of worker goroutines")
	flag.BoolVar(&config.Move, "move", config.Move, "Delete source files after a successful pass")
	flag.BoolVar(&config.DryRun, "dry-run", config.DryRun, "Preview operations without modifying files")
	flag.BoolVar(&config.Dedupe, "dedupe", config.Dedupe, "Skip files whose content was already sorted this run")
	flag.BoolVar(&config.Verbose, "verbose", config.Verbose, "Enable verbose output")
	flag.BoolVar(&config.Quiet, "quiet", config.Quiet, "Suppress non-error output")
	flag.StringVar(&config.IncludeGlobs, "include", config.IncludeGlobs, "Comma-separated glob patterns to include")
	flag.StringVar(&config.ExcludeGlobs, "exclude", config.ExcludeGlobs, "Comma-separated glob patterns to exclude")
	flag.Int64Var(&config.MinSizeBytes, "min-size", config.MinSizeBytes, "Minimum file size to process in bytes")
	flag.Int64Var(&config.MaxSizeBytes, "max-size", config.MaxSizeBytes, "Maximum file size to process in bytes (0 for unlimited)")
	flag.StringVar(&config.CatalogPath, "catalog", config.CatalogPath, "Path to a SQLite catalog of sorted files")
	flag.StringVar(&config.SnapshotPath, "snapshot", config.SnapshotPath, "Write a tar.lz4 snapshot of the sorted tree to this path")
	flag.StringVar(&config.LogFile, "log", config.LogFile, "Also write logs to this file")
	flag.BoolVar(&config.DemoRules, "demo-rules", config.DemoRules, "Write the built-in demo rules file and exit")
	flag.BoolVar(&config.ShowHelp, "help", config.ShowHelp, "Show help message")

	// Confirmation skipping
	flag.BoolVar(&config.AssumeYes, "yes", config.AssumeYes, "Assume yes; skip confirmation prompts")
	flag.BoolVar(&config.AssumeYes, "y", config.AssumeYes, "Assume yes; skip confirmation prompts (alias)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", appName)
		fmt.Fprintf(os.Stderr, "\nSorts a book library into a grouped directory tree by filename.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -src ./books -dst ./books_sorted -rules rules.yaml\n", appName)
		fmt.Fprintf(os.Stderr, "  %s -src ./books -move -yes            # relocate instead of copying\n", appName)
		fmt.Fprintf(os.Stderr, "  %s -demo-rules -rules rules_demo.yaml # write the example rules\n", appName)
	}

	flag.Parse()

	if config.ShowHelp {
		flag.Usage()
		os.Exit(0)
	}

	if config.DemoRules {
		// No further validation needed; the caller writes the file and exits.
		return config, nil
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	if c.SourceDir == "" {
		return fmt.Errorf("source directory cannot be empty")
	}

	if c.DestDir == "" {
		return fmt.Errorf("destination directory cannot be empty")
	}

	if c.RulesPath == "" {
		return fmt.Errorf("rules file cannot be empty")
	}

	if c.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0")
	}

	if c.MinSizeBytes < 0 {
		return fmt.Errorf("min size must be >= 0")
	}

	if c.MaxSizeBytes < 0 {
		return fmt.Errorf("max size must be >= 0")
	}

	if c.MaxSizeBytes > 0 && c.MinSizeBytes > c.MaxSizeBytes {
		return fmt.Errorf("min size cannot exceed max size")
	}

	if _, err := os.Stat(c.SourceDir); os.IsNotExist(err) {
		return fmt.Errorf("source directory does not exist: %s", c.SourceDir)
	}

	return nil
}

// SplitGlobs turns a comma-separated flag value into a pattern list.
func SplitGlobs(value string) []string {
	var globs []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			globs = append(globs, part)
		}
	}
	return globs
}

func (c *Config) PrintConfig(appName string) {
	fmt.Printf("🔧 %s Configuration\n", appName)
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("📁 Source: %s\n", c.SourceDir)
	fmt.Printf("📂 Destination: %s\n", c.DestDir)
	fmt.Printf("📝 Rules: %s\n", c.RulesPath)
	fmt.Printf("⚡ Workers: %d\n", c.Workers)
	fmt.Printf("🚚 Mode: %s\n", map[bool]string{true: "Move", false: "Copy"}[c.Move])
	if c.Dedupe {
		fmt.Println("🔍 Dedupe: Enabled")
	}
	if c.CatalogPath != "" {
		fmt.Printf("🗃️  Catalog: %s\n", c.CatalogPath)
	}
	if c.SnapshotPath != "" {
		fmt.Printf("📦 Snapshot: %s\n", c.SnapshotPath)
	}
	if c.DryRun {
		fmt.Println("👀 Dry run: no files will be written")
	}
	fmt.Printf("💻 Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("🧮 CPU Cores: %d\n", runtime.NumCPU())
}

// Helpers for parsing ldflag-provided strings
func parseBoolOr(val string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	case "0", "f", "false", "n", "no", "off":
		return false
	default:
		return fallback
	}
}

func parseIntOr(val string, fallback int) int {
	s := strings.TrimSpace(val)
	if s == "" {
		return fallback
	}
	sign := 1
	idx := 0
	if s[0] == '-' {
		sign = -1
		idx = 1
	}
	n := 0
	for ; idx < len(s); idx++ {
		ch := s[idx]
		if ch < '0' || ch > '9' {
			return fallback
		}
		n = n*10 + int(ch-'0')
	}
	return sign * n
}

func parseInt64Or(val string, fallback int64) int64 {
	s := strings.TrimSpace(val)
	if s == "" {
		return fallback
	}
	sign := int64(1)
	idx := 0
	if s[0] == '-' {
		sign = -1
		idx = 1
	}
	var n int64
	for ; idx < len(s); idx++ {
		ch := s[idx]
		if ch < '0' || ch > '9' {
			return fallback
		}
		n = n*10 + int64(ch-'0')
	}
	return sign * n
}

func orString(val string, fallback string) string {
	s := strings.TrimSpace(val)
	if s == "" {
		return fallback
	}
	return s
}
