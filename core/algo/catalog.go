package algo

import (
	"math"
	"sort"

	"github.com/huangsam/rankviz/schema"
)

// Catalog is a read-only lookup over the declared metrics of a dataset.
// The zero value is not useful; build one with NewCatalog.
type Catalog struct {
	defs         []schema.MetricDefinition
	index        map[string]int // name -> position in defs
	unknownOrder int
}

// NewCatalog builds a catalog from the declared metric list.
// When a name is declared twice, the first definition wins.
func NewCatalog(defs []schema.MetricDefinition) *Catalog {
	c := &Catalog{
		defs:         make([]schema.MetricDefinition, 0, len(defs)),
		index:        make(map[string]int, len(defs)),
		unknownOrder: schema.UnknownMetricOrder,
	}
	for _, d := range defs {
		if _, ok := c.index[d.Name]; ok {
			continue
		}
		c.index[d.Name] = len(c.defs)
		c.defs = append(c.defs, d)
		if d.Order >= c.unknownOrder && d.Order < math.MaxInt {
			c.unknownOrder = d.Order + 1
		}
	}
	return c
}

// Definition returns the declared definition of a metric.
func (c *Catalog) Definition(name string) (schema.MetricDefinition, bool) {
	i, ok := c.index[name]
	if !ok {
		return schema.MetricDefinition{}, false
	}
	return c.defs[i], true
}

// DirectionOf returns the optimization direction of a metric, Higher if unknown.
func (c *Catalog) DirectionOf(name string) schema.Direction {
	if d, ok := c.Definition(name); ok && d.Direction == schema.Lower {
		return schema.Lower
	}
	return schema.Higher
}

// OrderOf returns the display order of a metric. Unknown metrics get
// schema.UnknownMetricOrder, or one past the largest declared order when
// a declaration reaches it, so they always sort after declared metrics.
func (c *Catalog) OrderOf(name string) int {
	if d, ok := c.Definition(name); ok {
		return d.Order
	}
	return c.unknownOrder
}

// DirectionSymbol returns the axis arrow for a metric.
func (c *Catalog) DirectionSymbol(name string) string {
	return c.DirectionOf(name).Symbol()
}

// UnitOf returns the declared unit of a metric, empty if unknown.
func (c *Catalog) UnitOf(name string) string {
	d, _ := c.Definition(name)
	return d.Unit
}

// Names returns the declared metric names in declaration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.defs))
	for i, d := range c.defs {
		names[i] = d.Name
	}
	return names
}

// Len returns the number of distinct declared metrics.
func (c *Catalog) Len() int {
	return len(c.defs)
}

// OrderedNames sorts names ascending by OrderOf, dropping duplicates.
// Ties keep declaration order; undeclared metrics tie-break by name, so the
// result never depends on the order of the input.
func (c *Catalog) OrderedNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}

	sort.SliceStable(out, func(i, j int) bool {
		oi, oj := c.OrderOf(out[i]), c.OrderOf(out[j])
		if oi != oj {
			return oi < oj
		}
		ii, iok := c.index[out[i]]
		ij, jok := c.index[out[j]]
		switch {
		case iok && jok:
			return ii < ij
		case iok != jok:
			return iok // declared before undeclared
		default:
			return out[i] < out[j]
		}
	})
	return out
}
