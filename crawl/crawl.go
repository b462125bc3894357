// Package crawl builds a document index from a mirrored tree.
// It coordinates scanning, parallel header parsing and index assembly.
package crawl

import (
	"context"
	"runtime"

	"github.com/fwojciec/rfz"
	"golang.org/x/sync/errgroup"
)

// Ensure Crawler implements rfz.IndexBuilder at compile time.
var _ rfz.IndexBuilder = (*Crawler)(nil)

// Crawler orchestrates one scan-and-parse pass over a mirror.
type Crawler struct {
	Scanner     rfz.Scanner
	Parser      rfz.MetadataParser
	Concurrency int
	Policy      rfz.DuplicatePolicy
}

// crawlResult holds the outcome of parsing a single document.
type crawlResult struct {
	position int
	handle   rfz.DocumentHandle
	meta     *rfz.Metadata
	err      error
}

// Build scans root, parses every document and returns the index. Parsing
// runs in parallel but results are assembled in scan order, so the index is
// the same for every run over an unchanged tree. Unreadable documents are
// reported as parse diagnostics and left out.
func (c *Crawler) Build(ctx context.Context, root string, diag rfz.Diagnostics) (*rfz.Index, error) {
	if diag == nil {
		diag = rfz.DiscardDiagnostics
	}

	handles, err := c.Scanner.Scan(ctx, root, diag)
	if err != nil {
		return nil, err
	}

	// Set up concurrency
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	// Channel for collecting results
	resultCh := make(chan crawlResult, concurrency)

	// Start workers
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		position := 0
		for h := range handles {
			if gctx.Err() != nil {
				break
			}
			i := position
			position++
			g.Go(func() error {
				resultCh <- c.parse(gctx, i, h)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results by scan position
	var results []crawlResult
	for result := range resultCh {
		for len(results) <= result.position {
			results = append(results, crawlResult{position: -1})
		}
		results[result.position] = result
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := make([]*rfz.Metadata, 0, len(results))
	for _, result := range results {
		if result.err != nil {
			diag.Report(rfz.Diagnostic{
				Kind: rfz.DiagnosticParse,
				Path: result.handle.Path,
				ID:   result.handle.ID,
				Err:  result.err,
			})
			continue
		}
		records = append(records, result.meta)
	}

	return rfz.BuildIndex(records, c.Policy, diag), nil
}

// parse parses a single document.
func (c *Crawler) parse(ctx context.Context, position int, h rfz.DocumentHandle) crawlResult {
	m, err := c.Parser.ParseMetadata(ctx, h)
	return crawlResult{
		position: position,
		handle:   h,
		meta:     m,
		err:      err,
	}
}
