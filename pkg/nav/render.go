package nav

import (
	"sort"

	"github.com/wayfare-dev/wayfare/pkg/route"
)

// Renderable is an opaque render tree produced by the external render
// engine. The pipeline composes Renderables bottom-up and never inspects
// them.
type Renderable any

// Engine builds one level of the render tree. It is an external
// collaborator: given a render-target identifier, the level's parameters,
// and the already-built inner content (the nested level's subtree plus any
// named slot subtrees), it returns the subtree for this level.
type Engine interface {
	Build(tag string, params route.Params, content []Renderable) Renderable
}

// Outlet is the sink the composed tree is handed to after a successful
// navigation.
type Outlet interface {
	Render(tree Renderable) error
}

// compose walks a matched chain from the innermost segment to the
// outermost, building each level's subtree with the inner level's subtree
// and any slot children as its content. Levels without a component pass
// their content through unchanged.
func (p *Pipeline) compose(seg *route.Segment) Renderable {
	if p.engine == nil {
		return nil
	}

	var content []Renderable
	for s := route.Spool(seg, false); s != nil; s = s.Parent {
		if s.Route == nil {
			continue
		}
		for _, name := range sortedSlotNames(s.Route.Slots) {
			content = append(content, p.engine.Build(s.Route.Slots[name], s.Params, nil))
		}
		if s.Route.Component == "" {
			continue
		}
		node := p.engine.Build(s.Route.Component, s.Params, content)
		content = []Renderable{node}
	}

	switch len(content) {
	case 0:
		return nil
	case 1:
		return content[0]
	default:
		return content
	}
}

// sortedSlotNames returns slot names in a stable order so composition is
// deterministic across runs.
func sortedSlotNames(slots map[string]string) []string {
	if len(slots) == 0 {
		return nil
	}
	names := make([]string, 0, len(slots))
	for name := range slots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
