package engine

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"doclint/internal/decl"
	"doclint/internal/diag"
	"doclint/internal/doctree"
	"doclint/internal/ingest"
	"doclint/internal/rules"
)

// Options tunes one lint run.
type Options struct {
	// Jobs caps worker parallelism; 0 means GOMAXPROCS.
	Jobs int
	// MaxDiagnostics caps the merged bag; 0 means the default of 100.
	MaxDiagnostics int
	// IgnoreWarnings drops warning findings from the result.
	IgnoreWarnings bool
	// WarningsAsErrors escalates warning findings to errors.
	WarningsAsErrors bool
}

const defaultMaxDiagnostics = 100

func (o Options) jobs() int {
	if o.Jobs > 0 {
		return o.Jobs
	}
	return runtime.GOMAXPROCS(0)
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics > 0 {
		return o.MaxDiagnostics
	}
	return defaultMaxDiagnostics
}

// Lint runs the rule set over one decoded batch. Declarations and trivia
// blocks are independent of each other, so each gets its own worker and its
// own bag; the bags are merged in input order, then sorted and deduped, so
// the result does not depend on scheduling.
func Lint(ctx context.Context, b *ingest.Batch, set *rules.Set, opts Options) (*diag.Bag, error) {
	max := opts.maxDiagnostics()

	declBags := make([]*diag.Bag, len(b.Decls))
	triviaBags := make([]*diag.Bag, len(b.Trivia))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.jobs())

	for i := range b.Decls {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			declBags[i] = checkDecl(&b.Decls[i], set, max)
			return nil
		})
	}
	for i := range b.Trivia {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			triviaBags[i] = checkTrivia(&b.Trivia[i], set, max)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := diag.NewBag(max)
	for _, bag := range declBags {
		out.Merge(bag)
	}
	for _, bag := range triviaBags {
		out.Merge(bag)
	}
	if opts.IgnoreWarnings {
		out.DropWarnings()
	}
	if opts.WarningsAsErrors {
		out.EscalateWarnings()
	}
	out.Sort()
	out.Dedup()
	out.Truncate(max)
	return out, nil
}

func checkDecl(d *decl.Declaration, set *rules.Set, max int) *diag.Bag {
	bag := diag.NewBag(max)
	rep := diag.BagReporter{Bag: bag}

	var tree *doctree.Tree
	if d.Comment != nil {
		tree = doctree.Parse(d.Comment.Text, d.Comment.Span)
	}
	for _, rule := range set.Decl {
		rule.CheckDecl(d, tree, rep)
	}
	return bag
}

func checkTrivia(c *decl.Comment, set *rules.Set, max int) *diag.Bag {
	bag := diag.NewBag(max)
	rep := diag.BagReporter{Bag: bag}

	tree := doctree.Parse(c.Text, c.Span)
	for _, rule := range set.Comment {
		rule.CheckComment(tree, rep)
	}
	return bag
}
