package processor

import (
	"github.com/vk/brewdoc/internal/emit"
	"github.com/vk/brewdoc/internal/entity"
	"github.com/vk/brewdoc/internal/registry"
)

// ExportDocument renders a whole document: prolog, a root element, and each
// entity in order under it.
func ExportDocument(reg *registry.Registry, rootTag string, entities []entity.Entity) string {
	w := emit.NewWriter("")
	w.Prolog()
	w.OpenTag(rootTag)
	for _, e := range entities {
		Export(reg, e.Kind(), e, w)
	}
	w.CloseTag(rootTag)
	return w.String()
}
