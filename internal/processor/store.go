package processor

import (
	"context"
	"fmt"

	"github.com/vk/brewdoc/internal/ctxlog"
	"github.com/vk/brewdoc/internal/entity"
	"github.com/vk/brewdoc/internal/schema"
	"github.com/vk/brewdoc/internal/store"
	"github.com/vk/brewdoc/internal/value"
)

// Op journals every insert made during one top-level record operation so
// the failure path can undo exactly what the operation itself stored.
// Entities that existed before the operation (adopted duplicates included)
// are never journaled and therefore never deleted.
type Op struct {
	inserted []insertRec
}

type insertRec struct {
	kind string
	id   int64
}

// NewOp starts an empty journal.
func NewOp() *Op { return &Op{} }

// mark remembers the journal position on entry to a subtree.
func (op *Op) mark() int { return len(op.inserted) }

// rollbackTo deletes everything journaled after the mark, newest first, and
// truncates the journal back to it.
func (op *Op) rollbackTo(ctx context.Context, st store.Store, mark int) {
	for i := len(op.inserted) - 1; i >= mark; i-- {
		rec := op.inserted[i]
		if err := st.Delete(rec.kind, rec.id); err != nil {
			// The row may be gone if the store failed mid-insert;
			// rollback keeps going regardless.
			ctxlog.FromContext(ctx).Warn("rollback delete failed",
				"kind", rec.kind, "id", rec.id, "error", err)
		}
	}
	op.inserted = op.inserted[:mark]
}

// Rollback undoes the whole operation.
func (op *Op) Rollback(ctx context.Context, st store.Store) {
	op.rollbackTo(ctx, st, 0)
}

// Inserted reports how many rows the operation has stored and not rolled
// back.
func (op *Op) Inserted() int { return len(op.inserted) }

// NormalizeAndStore runs the duplicate check, name normalization,
// containing-entity registration, the insert, child recursion in build
// order, the late duplicate check for composite kinds, and child linking.
// parent is the containing entity, nil at top level.
//
// The returned state is terminal. On StateFailed the caller owns the
// decision to roll back the operation's journal; on StateDuplicate this
// subtree has already rolled back its own inserts and adopted the stored
// entity's identity.
func (p *Processor) NormalizeAndStore(ctx context.Context, st store.Store, op *Op, parent entity.Entity) (State, error) {
	if p.state != StateEntityConstructed && p.state != StateFieldsParsed {
		panic(fmt.Sprintf("processor: NormalizeAndStore in state %s", p.state))
	}
	ctx = ctxlog.With(ctx, "kind", p.kind.Name)
	logger := ctxlog.FromContext(ctx)

	if p.ent == nil {
		// Nothing was decoded; nothing to store or link.
		p.state = StateStored
		return p.state, nil
	}

	mark := op.mark()

	// Early duplicate check: adopt the stored twin and discard the fresh
	// entity.
	if p.kind.Policy.CheckDuplicates {
		if twin, found := st.FindFirst(p.kind.Name, func(e entity.Entity) bool {
			return p.kind.Equal(e, p.ent)
		}); found {
			logger.Debug("duplicate record, adopting stored entity",
				"name", twin.Name(), "id", twin.ID())
			p.ent = twin
			p.state = StateDuplicate
			return p.state, nil
		}
	}

	originalName := p.ent.Name()
	if p.kind.Policy.NormalizeNames {
		p.normalizeName(ctx, st)
	}

	if p.kind.Policy.OwnedByParent && parent != nil {
		if c, ok := p.ent.(entity.Containable); ok {
			c.SetContaining(parent)
		}
	}

	// Store before recursing so children can reference a valid persistent
	// identity.
	id, err := st.Insert(p.ent)
	if err != nil {
		p.state = StateFailed
		return p.state, fmt.Errorf("storing %s %q: %w", p.kind.Name, p.ent.Name(), err)
	}
	op.inserted = append(op.inserted, insertRec{kind: p.kind.Name, id: id})

	for _, group := range p.children {
		for _, child := range group.procs {
			if _, err := child.NormalizeAndStore(ctx, st, op, p.ent); err != nil {
				p.state = StateFailed
				return p.state, err
			}
		}
		p.linkGroup(ctx, group)
	}

	// Late duplicate check for kinds whose equality depends on their
	// children. Same equality test as the early check, run under the
	// originally parsed name: a twin of "Single Infusion" was renamed to
	// "Single Infusion (1)" before insert and would otherwise never match.
	if p.kind.Policy.CheckDuplicates && p.kind.Policy.LateDuplicateCheck {
		self := p.ent
		normalized := self.Name()
		self.SetName(originalName)
		twin, found := st.FindFirst(p.kind.Name, func(e entity.Entity) bool {
			return e.ID() != self.ID() && p.kind.Equal(e, self)
		})
		if found {
			logger.Debug("composite duplicate after children attached, adopting stored entity",
				"name", twin.Name(), "id", twin.ID())
			op.rollbackTo(ctx, st, mark)
			p.ent = twin
			p.state = StateDuplicate
			return p.state, nil
		}
		self.SetName(normalized)
	}

	p.state = StateStored
	return p.state, nil
}

// normalizeName appends or increments a parenthesized numeric suffix until
// no stored entity of the kind holds the candidate name.
func (p *Processor) normalizeName(ctx context.Context, st store.Store) {
	base := p.ent.Name()
	candidate := base
	for n := 1; ; n++ {
		taken := false
		if _, found := st.FindFirst(p.kind.Name, func(e entity.Entity) bool {
			return e.Name() == candidate
		}); found {
			taken = true
		}
		if !taken {
			break
		}
		candidate = fmt.Sprintf("%s (%d)", base, n)
	}
	if candidate != base {
		ctxlog.FromContext(ctx).Debug("name collision, renamed", "from", base, "to", candidate)
		p.ent.SetName(candidate)
	}
}

// linkGroup attaches a finished child group to the parent: through the
// field's property path when it carries a binding, otherwise linkage
// already happened via SetContaining and there is nothing to do here.
func (p *Processor) linkGroup(ctx context.Context, group *childGroup) {
	if group.field.Path.IsNull() || len(group.procs) == 0 {
		return
	}
	var v value.Value
	if group.field.Kind == schema.FieldListOfRecords {
		refs := make([]any, 0, len(group.procs))
		for _, child := range group.procs {
			if child.ent != nil {
				refs = append(refs, child.ent)
			}
		}
		v = value.RecordList(refs)
	} else {
		v = value.Record(group.procs[0].ent)
	}
	if err := group.field.Path.Set(p.ent, v); err != nil {
		// Interior sub-entity missing at runtime; the link is dropped,
		// not the record.
		ctxlog.FromContext(ctx).Warn("could not link children",
			"path", group.field.Path.AsExternalPath(), "error", err)
	}
}
