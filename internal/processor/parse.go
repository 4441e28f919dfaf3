package processor

import (
	"context"
	"fmt"

	"github.com/vk/brewdoc/internal/codec"
	"github.com/vk/brewdoc/internal/ctxlog"
	"github.com/vk/brewdoc/internal/schema"
	"github.com/vk/brewdoc/internal/value"
	"github.com/vk/brewdoc/internal/xmltree"
)

// Parse walks the schema in order, decoding leaf fields into the bundle and
// spawning child processors for nested records, then constructs the entity
// from the bundle. A decode failure on a bound field is fatal and aborts
// the whole node; on an unbound field it is logged and ignored.
func (p *Processor) Parse(ctx context.Context) error {
	if p.state != StateCreated {
		panic(fmt.Sprintf("processor: Parse in state %s", p.state))
	}
	ctx = ctxlog.With(ctx, "kind", p.kind.Name, "tag", p.kind.Tag)

	for _, f := range p.kind.Schema {
		var err error
		switch f.Kind {
		case schema.FieldRequiredConstant:
			// Exists only for export.
		case schema.FieldRecord:
			err = p.parseNested(ctx, f, true)
		case schema.FieldListOfRecords:
			err = p.parseNested(ctx, f, false)
		default:
			err = p.parseLeaf(ctx, f)
		}
		if err != nil {
			p.state = StateFailed
			return err
		}
	}
	p.state = StateFieldsParsed

	if p.bundle.Len() > 0 {
		p.ent = p.kind.New(p.bundle)
		p.state = StateEntityConstructed
	} else {
		ctxlog.FromContext(ctx).Debug("record has no decodable fields, nothing to construct")
	}
	return nil
}

// parseNested resolves the child nodes for a nested-record field and
// recurses into each in document order. An empty external path reuses this
// same node, flattening a synthetic wrapper level.
func (p *Processor) parseNested(ctx context.Context, f schema.Field, single bool) error {
	matches := p.node.Select(f.XPath)
	if single && len(matches) > 1 {
		ctxlog.FromContext(ctx).Warn("multiple matches for single nested record, extras ignored",
			"path", f.XPath, "matches", len(matches))
		matches = matches[:1]
	}
	if len(matches) == 0 {
		return nil
	}
	group := &childGroup{field: f}
	for _, m := range matches {
		child := New(p.reg, f.ChildKind, m, p.opts)
		if err := child.Parse(ctx); err != nil {
			p.children = append(p.children, group)
			return err
		}
		group.procs = append(group.procs, child)
	}
	p.children = append(p.children, group)
	return nil
}

// parseLeaf locates at most one matching node and decodes its text.
// Absence is not an error; the field is simply omitted from the bundle.
func (p *Processor) parseLeaf(ctx context.Context, f schema.Field) error {
	matches := p.node.Select(f.XPath)
	if len(matches) == 0 {
		return nil
	}
	if len(matches) > 1 {
		ctxlog.FromContext(ctx).Warn("multiple matches for leaf field, extras ignored",
			"path", f.XPath, "matches", len(matches))
	}
	v, err := p.decodeLeaf(f, matches[0])
	if err != nil {
		if f.Path.IsNull() {
			ctxlog.FromContext(ctx).Warn("ignoring decode failure on unbound field",
				"path", f.XPath, "error", err)
			return nil
		}
		return fmt.Errorf("field %q of %s: %w", f.XPath, p.kind.Name, err)
	}
	if f.Path.IsNull() {
		// Parsed and discarded: forward compatibility for fields the
		// object model does not need.
		return nil
	}
	optional := f.Path.TypeInfo(p.kind.Types).Optional()
	p.bundle.Put(f.Path.AsExternalPath(), codec.WrapOptional(v, optional))
	return nil
}

func (p *Processor) decodeLeaf(f schema.Field, node *xmltree.Node) (value.Value, error) {
	text := node.Text()
	switch f.Kind {
	case schema.FieldBool:
		b, err := codec.ParseBool(text)
		if err != nil {
			return value.Value{}, err
		}
		return value.Bool(b), nil
	case schema.FieldInt:
		i, err := codec.ParseInt(text)
		if err != nil {
			return value.Value{}, err
		}
		return value.Int(i), nil
	case schema.FieldUInt:
		u, err := codec.ParseUInt(text)
		if err != nil {
			return value.Value{}, err
		}
		return value.UInt(u), nil
	case schema.FieldDouble:
		d, err := codec.ParseDouble(text)
		if err != nil {
			return value.Value{}, err
		}
		return value.Double(d), nil
	case schema.FieldString:
		return value.String(text), nil
	case schema.FieldDate:
		t, err := codec.ParseDate(text)
		if err != nil {
			return value.Value{}, err
		}
		return value.Date(t), nil
	case schema.FieldEnum:
		ord, ok := f.Enum.Decode(text, p.opts.CaseInsensitiveEnums)
		if !ok {
			return value.Value{}, fmt.Errorf("codec: %q is not a recognized token", text)
		}
		return value.Enum(ord), nil
	case schema.FieldUnit:
		return f.Unit.Decode(text)
	default:
		panic(fmt.Sprintf("processor: field kind %s is not a leaf", f.Kind))
	}
}
