package processor

import (
	"context"
	"sort"

	"github.com/vk/brewdoc/internal/ctxlog"
	"github.com/vk/brewdoc/internal/registry"
	"github.com/vk/brewdoc/internal/store"
	"github.com/vk/brewdoc/internal/xmltree"
)

// Counts is the per-kind tally surfaced after a document completes.
type Counts struct {
	// Stored is how many records reached the Stored outcome.
	Stored int
	// Skipped is how many were adopted as duplicates of stored entities.
	Skipped int
}

// Result aggregates the outcome of one document import.
type Result struct {
	PerKind map[string]Counts
}

// Kinds returns the kinds with any activity, sorted.
func (r Result) Kinds() []string {
	out := make([]string, 0, len(r.PerKind))
	for k := range r.PerKind {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Importer processes whole documents: each top-level record independently,
// with its own rollback journal, accumulating a running tally. A fatal
// error aborts only the record being processed; records that already
// reached a terminal outcome stay committed, and the caller decides whether
// the partial tally is acceptable.
type Importer struct {
	reg   *registry.Registry
	store store.Store
	opts  Options

	// byTag maps external record tags to kind names for top-level
	// dispatch.
	byTag map[string]string
}

// NewImporter builds an importer over the registry and store.
func NewImporter(reg *registry.Registry, st store.Store, opts Options) *Importer {
	byTag := make(map[string]string)
	for _, name := range reg.Names() {
		k := reg.Lookup(name)
		byTag[k.Tag] = name
	}
	return &Importer{reg: reg, store: st, opts: opts, byTag: byTag}
}

// ImportDocument walks the root's children in document order, processing
// every node whose tag names a registered kind. A child that is not itself
// a record but wraps records (a plural grouping tag) is descended one
// level. Unknown tags are logged and skipped.
func (imp *Importer) ImportDocument(ctx context.Context, root *xmltree.Node) (Result, error) {
	res := Result{PerKind: make(map[string]Counts)}
	logger := ctxlog.FromContext(ctx)

	var records []*xmltree.Node
	for _, child := range root.Children {
		if _, ok := imp.byTag[child.Name]; ok {
			records = append(records, child)
			continue
		}
		wrapped := false
		for _, grand := range child.Children {
			if _, ok := imp.byTag[grand.Name]; ok {
				records = append(records, grand)
				wrapped = true
			}
		}
		if !wrapped && child.Name != "" {
			logger.Debug("skipping unrecognized top-level element", "tag", child.Name)
		}
	}

	for _, node := range records {
		kindName := imp.byTag[node.Name]
		if err := imp.importRecord(ctx, kindName, node, &res); err != nil {
			return res, err
		}
	}
	return res, nil
}

// importRecord runs one top-level record through the full parse,
// normalize, and store pipeline under its own journal.
func (imp *Importer) importRecord(ctx context.Context, kindName string, node *xmltree.Node, res *Result) error {
	proc := New(imp.reg, kindName, node, imp.opts)
	op := NewOp()

	if err := proc.Parse(ctx); err != nil {
		// Nothing stored yet during parse; no rollback needed.
		return err
	}
	state, err := proc.NormalizeAndStore(ctx, imp.store, op, nil)
	if err != nil {
		op.Rollback(ctx, imp.store)
		return err
	}
	if proc.Entity() == nil {
		// An empty record constructs nothing and inserts no row; it must
		// not show up in the stored tally.
		return nil
	}

	counts := res.PerKind[kindName]
	switch state {
	case StateStored:
		counts.Stored++
	case StateDuplicate:
		counts.Skipped++
	}
	res.PerKind[kindName] = counts
	return nil
}
