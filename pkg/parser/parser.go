// Package parser orchestrates extractors over codex run logs and aggregates
// the results into per-run and per-session result objects.
package parser

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/codextrace/codextrace/pkg/extract"
	"github.com/codextrace/codextrace/pkg/model"
)

// DefaultLogPattern is the glob pattern used to discover run logs.
const DefaultLogPattern = "codex_run_*.log"

// ErrNotText indicates file content that cannot be interpreted as text.
var ErrNotText = errors.New("content is not valid text")

// Parser runs registered extractors over log files and builds run and
// session results.
//
// Registering an extractor concurrently with an in-flight parse call on the
// same instance is not supported; register before parsing.
type Parser struct {
	logDir     string
	pattern    string
	extractors map[string]extract.Extractor
	order      []string
	workers    int
	logger     zerolog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithPattern overrides the log discovery glob pattern.
func WithPattern(pattern string) Option {
	return func(p *Parser) {
		if pattern != "" {
			p.pattern = pattern
		}
	}
}

// WithExtractor registers an extractor under the given category,
// replacing any previous registration for that category.
func WithExtractor(category string, e extract.Extractor) Option {
	return func(p *Parser) {
		p.register(category, e)
	}
}

// WithWorkers parses session files on n workers. Results are merged back
// into lexical path order, so output is identical to the sequential case.
func WithWorkers(n int) Option {
	return func(p *Parser) {
		if n > 1 {
			p.workers = n
		}
	}
}

// WithLogger sets the logger used for per-file batch failures.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// New creates a parser over the given log directory with the default
// extractor set. Returns an error when the directory does not exist.
func New(logDir string, opts ...Option) (*Parser, error) {
	info, err := os.Stat(logDir)
	if err != nil {
		return nil, fmt.Errorf("log directory %s: %w", logDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("log directory %s: not a directory", logDir)
	}

	p := &Parser{
		logDir:     logDir,
		pattern:    DefaultLogPattern,
		extractors: make(map[string]extract.Extractor),
		workers:    1,
		logger:     log.Logger,
	}
	for _, e := range defaultExtractors() {
		p.register(e.Category(), e)
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func defaultExtractors() []extract.Extractor {
	return []extract.Extractor{
		extract.NewPatchExtractor(),
		extract.NewCommandExtractor(),
		extract.NewToolUsageExtractor(),
		extract.NewChangeDetector(nil),
	}
}

func (p *Parser) register(category string, e extract.Extractor) {
	if _, exists := p.extractors[category]; !exists {
		p.order = append(p.order, category)
	}
	p.extractors[category] = e
}

// RegisterExtractor adds an extractor under a new category or replaces an
// existing one. Must not be called while a parse is in flight.
func (p *Parser) RegisterExtractor(category string, e extract.Extractor) {
	p.register(category, e)
}

// Categories returns the registered extractor categories in registration order.
func (p *Parser) Categories() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// LogFiles returns the discovered log files in lexical path order. This is
// the session run order.
func (p *Parser) LogFiles() ([]string, error) {
	return DiscoverLogs(p.logDir, p.pattern)
}

// ParseRun parses a single log file into a RunResult. The returned result
// is fully built before it is handed to the caller and never mutated after.
func (p *Parser) ParseRun(path string) (*model.RunResult, error) {
	content, err := readLogFile(path)
	if err != nil {
		return nil, err
	}

	result := &model.RunResult{
		RunID:     filepath.Base(path),
		LogFile:   path,
		StartTime: detectStartTime(content, path),
		Patches:   []*model.PatchRecord{},
		Commands:  []*model.CommandRecord{},
		Tools:     []*model.ToolUsageRecord{},
		Changes:   []*model.ChangeRecord{},
	}

	for _, category := range p.order {
		for _, rec := range p.extractors[category].Extract(path, content) {
			switch r := rec.(type) {
			case *model.PatchRecord:
				result.Patches = append(result.Patches, r)
			case *model.CommandRecord:
				result.Commands = append(result.Commands, r)
			case *model.ToolUsageRecord:
				result.Tools = append(result.Tools, r)
			case *model.ChangeRecord:
				result.Changes = append(result.Changes, r)
			}
		}
	}

	result.Success = len(result.Patches) > 0 || len(result.Changes) > 0
	return result, nil
}

// ParseSession parses all discovered logs in lexical path order and builds
// one SessionResult. A single file's failure is recorded in the session
// failure list and does not abort the batch.
func (p *Parser) ParseSession(ctx context.Context) (*model.SessionResult, error) {
	files, err := p.LogFiles()
	if err != nil {
		return nil, err
	}

	session := &model.SessionResult{
		SessionID: uuid.NewString()[:8],
		StartTime: time.Now(),
	}

	runs := make([]*model.RunResult, len(files))
	failures := make([]*model.ParseFailure, len(files))

	if p.workers > 1 {
		err = p.parseParallel(ctx, files, runs, failures)
	} else {
		err = p.parseSequential(ctx, files, runs, failures)
	}
	if err != nil {
		return nil, err
	}

	// Deterministic merge: files stayed index-addressed, so run order is
	// lexical path order regardless of execution parallelism.
	for i := range files {
		if failures[i] != nil {
			session.Failures = append(session.Failures, *failures[i])
			continue
		}
		if runs[i] != nil {
			session.Runs = append(session.Runs, runs[i])
		}
	}

	session.EndTime = time.Now()
	return session, nil
}

func (p *Parser) parseSequential(ctx context.Context, files []string, runs []*model.RunResult, failures []*model.ParseFailure) error {
	for i, file := range files {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		runs[i], failures[i] = p.parseOne(file)
	}
	return nil
}

func (p *Parser) parseParallel(ctx context.Context, files []string, runs []*model.RunResult, failures []*model.ParseFailure) error {
	indexes := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				runs[i], failures[i] = p.parseOne(files[i])
			}
		}()
	}

	var ctxErr error
feed:
	for i := range files {
		select {
		case <-ctx.Done():
			ctxErr = ctx.Err()
			break feed
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()
	return ctxErr
}

// parseOne parses a single file for a session, converting the error into a
// recorded failure.
func (p *Parser) parseOne(file string) (*model.RunResult, *model.ParseFailure) {
	run, err := p.ParseRun(file)
	if err != nil {
		p.logger.Warn().Str("log_file", file).Err(err).Msg("skipping unparseable log file")
		return nil, &model.ParseFailure{LogFile: file, Reason: err.Error()}
	}
	return run, nil
}

// readLogFile reads a log file and verifies the content is text.
func readLogFile(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided log paths are expected
	if err != nil {
		return "", fmt.Errorf("reading log file %s: %w", path, err)
	}
	if bytes.ContainsRune(data, 0) || !utf8.Valid(data) {
		return "", fmt.Errorf("decoding log file %s: %w", path, ErrNotText)
	}
	return string(data), nil
}
