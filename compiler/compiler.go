// Package compiler runs the whole pipeline over one source text:
//
//	bytes → lexer → parser → transformer → generator → text
//
// The stages themselves never return errors. Input they cannot read is
// truncated silently, and Result reports how far each stage got so callers
// can tell. The only failure is an internal-consistency violation inside a
// stage, which Compile turns into an error wrapping [ErrInternal].
package compiler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/metaphox/vbnorm/ast"
	"github.com/metaphox/vbnorm/generator"
	"github.com/metaphox/vbnorm/internal/invariant"
	"github.com/metaphox/vbnorm/lexer"
	"github.com/metaphox/vbnorm/parser"
	"github.com/metaphox/vbnorm/transformer"
)

// ErrInternal is wrapped by every error caused by an internal-consistency
// violation. No output is produced for such a run.
var ErrInternal = errors.New("internal compiler error")

// Options configures a compilation.
type Options struct {
	// PreserveCase writes identifiers as scanned instead of lowercasing them.
	PreserveCase bool

	// Workers bounds the number of concurrent compilations in CompileAll.
	// Zero or negative means no limit.
	Workers int

	// Logger receives stage records. Nil disables logging.
	Logger *slog.Logger
}

// Source is one named input for [CompileAll].
type Source struct {
	Name string
	Data []byte
}

// Result holds every intermediate product of a compilation.
type Result struct {
	Name        string
	Tokens      []ast.Token
	Statements  []ast.Statement // as parsed
	Transformed []ast.Statement
	Output      string

	// InputBytes is the length of the source and LexedBytes how much of it
	// the lexer consumed.
	InputBytes int
	LexedBytes int

	// RemainingTokens counts tokens the parser could not match.
	RemainingTokens int
}

// Truncated reports whether lexing or parsing stopped before the end of input.
func (r *Result) Truncated() bool {
	return r.LexedBytes < r.InputBytes || r.RemainingTokens > 0
}

// Compile runs the pipeline over src.
func Compile(src []byte, opts Options) (*Result, error) {
	return compile(Source{Data: src}, opts)
}

// CompileAll compiles every source concurrently. Results are returned in
// input order. The first failure cancels compilations not yet started and is
// returned with the name of the failing source.
func CompileAll(ctx context.Context, sources []Source, opts Options) ([]*Result, error) {
	results := make([]*Result, len(sources))
	g, ctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := compile(src, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", src.Name, err)
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

func compile(src Source, opts Options) (res *Result, err error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = logger.With(
		slog.String("component", "compiler"),
		slog.String("run", uuid.New().String()[:8]),
	)
	if src.Name != "" {
		logger = logger.With(slog.String("source", src.Name))
	}

	defer func() {
		if r := recover(); r != nil {
			v := invariant.Recover(r)
			logger.Error("compilation aborted", slog.String("violation", v.Error()))
			res, err = nil, fmt.Errorf("%w: %v", ErrInternal, v)
		}
	}()

	res = &Result{Name: src.Name, InputBytes: len(src.Data)}

	lx := lexer.New(src.Data)
	res.Tokens = lx.Tokens()
	res.LexedBytes = lx.Offset()
	logger.Debug("lexed", slog.Int("tokens", len(res.Tokens)), slog.Int("bytes", res.LexedBytes))
	if res.LexedBytes < res.InputBytes {
		logger.Warn("lexing stopped before end of input",
			slog.Int("offset", res.LexedBytes), slog.Int("size", res.InputBytes))
	}

	p := parser.New(res.Tokens)
	res.Statements = p.Parse()
	res.RemainingTokens = p.Remaining()
	logger.Debug("parsed", slog.Int("statements", len(res.Statements)))
	if res.RemainingTokens > 0 {
		logger.Warn("parsing stopped before end of input", slog.Int("remaining_tokens", res.RemainingTokens))
	}

	res.Transformed = transformer.Transform(res.Statements)
	logger.Debug("transformed", slog.Int("statements", len(res.Transformed)))

	res.Output = generator.New(generator.Options{PreserveCase: opts.PreserveCase}).Generate(res.Transformed)
	logger.Debug("generated", slog.Int("bytes", len(res.Output)))
	return res, nil
}
