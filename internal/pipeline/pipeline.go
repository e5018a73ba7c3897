// Package pipeline drives header generation end to end: load a
// Specification interchange file, emit the C99 header, write it. Batch
// requests run concurrently; distinct output paths need no
// coordination, so the only precondition checked up front is that no
// two requests target the same file.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"vigil/internal/backend/c99"
	"vigil/internal/spec"
)

// Request names one generation unit.
type Request struct {
	SpecPath string
	OutDir   string
	Prefix   c99.Prefix
}

// HeaderPath returns the path Run would write for this request,
// without performing any I/O.
func (r Request) HeaderPath() string {
	return filepath.Join(r.OutDir, c99.HeaderFileName(r.Prefix))
}

// Result reports one written artifact.
type Result struct {
	SpecPath   string
	HeaderPath string
}

// Run executes a single generation request.
func Run(req Request) (Result, error) {
	sp, err := spec.LoadFile(req.SpecPath)
	if err != nil {
		return Result{}, err
	}
	headerPath, err := c99.Generate(sp, req.OutDir, req.Prefix)
	if err != nil {
		return Result{}, err
	}
	return Result{SpecPath: req.SpecPath, HeaderPath: headerPath}, nil
}

// RunAll executes the requests concurrently, one goroutine per
// request. Two requests resolving to the same output path would race
// with last-writer-wins ordering, so RunAll rejects such batches
// before launching any work. Results are returned in request order.
func RunAll(ctx context.Context, reqs []Request) ([]Result, error) {
	targets := make(map[string]string, len(reqs))
	for _, req := range reqs {
		target := req.HeaderPath()
		if prev, clash := targets[target]; clash {
			return nil, fmt.Errorf("specs %q and %q both generate %q; use distinct prefixes or out dirs", prev, req.SpecPath, target)
		}
		targets[target] = req.SpecPath
	}

	results := make([]Result, len(reqs))
	g, _ := errgroup.WithContext(ctx)
	for i, req := range reqs {
		g.Go(func() error {
			res, err := Run(req)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
