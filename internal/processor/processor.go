// Package processor implements the record processors at the heart of the
// engine: parsing one external node into a value bundle, constructing the
// entity, normalizing duplicates and names, storing the subtree
// transactionally, and exporting entities back out.
//
// One Processor instance handles one external node. It owns its bundle, its
// child processors (one per nested-record match, in document order), and,
// after processing, a reference to the constructed-or-adopted entity.
package processor

import (
	"fmt"

	"github.com/vk/brewdoc/internal/entity"
	"github.com/vk/brewdoc/internal/registry"
	"github.com/vk/brewdoc/internal/schema"
	"github.com/vk/brewdoc/internal/xmltree"
)

// State tracks a processor through its lifecycle. Duplicate, Stored, and
// Failed are terminal.
type State int

const (
	StateCreated State = iota
	StateFieldsParsed
	StateEntityConstructed
	StateDuplicate
	StateStored
	StateFailed
)

// String returns the state's name for diagnostics.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "Created"
	case StateFieldsParsed:
		return "FieldsParsed"
	case StateEntityConstructed:
		return "EntityConstructed"
	case StateDuplicate:
		return "Duplicate"
	case StateStored:
		return "Stored"
	case StateFailed:
		return "Failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether the state is one of the three outcomes.
func (s State) Terminal() bool {
	return s == StateDuplicate || s == StateStored || s == StateFailed
}

// Options tunes decoding behavior for a whole document.
type Options struct {
	// CaseInsensitiveEnums retries enum token decoding case-insensitively
	// after an exact miss.
	CaseInsensitiveEnums bool
}

// Processor processes one external node against one kind's schema.
type Processor struct {
	reg  *registry.Registry
	kind *registry.Kind
	node *xmltree.Node
	opts Options

	state  State
	bundle *entity.Bundle
	ent    entity.Entity

	// children holds one group per nested-record field that matched, in
	// schema order; each group's processors are in document order.
	children []*childGroup
}

type childGroup struct {
	field schema.Field
	procs []*Processor
}

// New creates a processor for one node of the given kind.
func New(reg *registry.Registry, kindName string, node *xmltree.Node, opts Options) *Processor {
	return &Processor{
		reg:    reg,
		kind:   reg.Lookup(kindName),
		node:   node,
		opts:   opts,
		state:  StateCreated,
		bundle: entity.NewBundle(),
	}
}

// State returns the current lifecycle state.
func (p *Processor) State() State { return p.state }

// Entity returns the constructed or adopted entity, nil before
// construction.
func (p *Processor) Entity() entity.Entity { return p.ent }
