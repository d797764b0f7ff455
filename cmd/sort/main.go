package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"book-sorter/internal/archive"
	"book-sorter/internal/catalog"
	"book-sorter/internal/sorter"
	"book-sorter/pkg/config"
	"book-sorter/pkg/rules"
)

var version = "dev"

func main() {
	cfg, err := config.ParseFlags("Book Sorter")
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	if cfg.DemoRules {
		if err := rules.WriteDemoRules(cfg.RulesPath); err != nil {
			log.Fatalf("❌ Failed to write demo rules: %v", err)
		}
		fmt.Printf("✨ Demo rules written to %s\n", cfg.RulesPath)
		return
	}

	logger, closeLog, err := setupLogger(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to set up logging: %v", err)
	}
	defer closeLog()

	groups, err := rules.LoadFile(cfg.RulesPath)
	if err != nil {
		log.Fatalf("❌ Failed to load rules: %v", err)
	}

	// Move mode destroys the source layout, so ask first.
	if cfg.Move && !cfg.DryRun && !cfg.AssumeYes {
		if !confirmProceed("Proceed with MOVE (source files will be deleted)? [Y/n]: ") {
			fmt.Println("Aborted.")
			return
		}
	}

	if !cfg.Quiet {
		cfg.PrintConfig("Book Sorter")
	}

	var cat *catalog.Catalog
	if cfg.CatalogPath != "" && !cfg.DryRun {
		cat, err = catalog.Open(cfg.CatalogPath)
		if err != nil {
			log.Fatalf("❌ Failed to open catalog: %v", err)
		}
		defer cat.Close()
	}

	s := sorter.New(sorter.Options{
		SourceDir:    cfg.SourceDir,
		DestDir:      cfg.DestDir,
		Groups:       groups,
		Workers:      cfg.Workers,
		Move:         cfg.Move,
		DryRun:       cfg.DryRun,
		Dedupe:       cfg.Dedupe,
		IncludeGlobs: config.SplitGlobs(cfg.IncludeGlobs),
		ExcludeGlobs: config.SplitGlobs(cfg.ExcludeGlobs),
		MinSize:      cfg.MinSizeBytes,
		MaxSize:      cfg.MaxSizeBytes,
		Logger:       logger,
		Catalog:      cat,
	})

	if !cfg.Quiet {
		fmt.Printf("\n🚀 Sorting %s with %d workers...\n", cfg.SourceDir, cfg.Workers)
	}
	startTime := time.Now()
	totals, err := s.Run()
	if err != nil {
		log.Fatalf("❌ Sorting failed: %v", err)
	}
	duration := time.Since(startTime)

	if !cfg.Quiet {
		printSummary(totals, duration)
	}

	if cfg.SnapshotPath != "" && !cfg.DryRun {
		if err := archive.WriteSnapshot(cfg.SnapshotPath, cfg.DestDir); err != nil {
			log.Fatalf("❌ Failed to write snapshot: %v", err)
		}
		if !cfg.Quiet {
			fmt.Printf("📦 Snapshot written to %s\n", cfg.SnapshotPath)
		}
	}

	if totals.Failed > 0 {
		os.Exit(1)
	}
}

func setupLogger(cfg *config.Config) (*logrus.Logger, func(), error) {
	logger := logrus.New()
	switch {
	case cfg.Verbose:
		logger.SetLevel(logrus.DebugLevel)
	case cfg.Quiet:
		logger.SetLevel(logrus.ErrorLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}

	closeLog := func() {}
	if cfg.LogFile != "" {
		file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", cfg.LogFile, err)
		}
		logger.SetOutput(io.MultiWriter(os.Stderr, file))
		closeLog = func() { file.Close() }
	}
	return logger, closeLog, nil
}

func printSummary(t sorter.Totals, duration time.Duration) {
	fmt.Printf("\n📊 Sorting Complete!\n")
	fmt.Printf("   🔍 Scanned: %d\n", t.Scanned)
	fmt.Printf("   ✅ Matched: %d\n", t.Matched)
	fmt.Printf("   📄 Copied: %d\n", t.Copied)
	fmt.Printf("   🔗 Linked: %d\n", t.Linked)
	if t.Duplicates > 0 {
		fmt.Printf("   ♻️  Duplicates: %d\n", t.Duplicates)
	}
	if t.Skipped > 0 {
		fmt.Printf("   ⏭️  Skipped: %d\n", t.Skipped)
	}
	if t.Failed > 0 {
		fmt.Printf("   ❌ Failed: %d\n", t.Failed)
	}
	if duration > 0 && t.Copied > 0 {
		fmt.Printf("   ⏱️  Time: %.2f seconds\n", duration.Seconds())
		fmt.Printf("   💾 Volume: %s\n", formatBytes(t.Bytes))
	}
}

func formatBytes(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.1f GB", float64(bytes)/GB)
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

func confirmProceed(prompt string) bool {
	fmt.Print(prompt)
	r := bufio.NewReader(os.Stdin)
	line, _ := r.ReadString('\n')
	s := strings.TrimSpace(strings.ToLower(line))
	if s == "" {
		return true
	}
	return s == "y" || s == "yes"
}
