// Package style holds the per-region style cascade of a chart.
//
// A Cascade maps a region name to an ordered list of properties. Property
// names are unique within a region: overriding a property removes the old
// entry and puts the new one at the front of the list.
package style

import "strings"

// Region names. The renderer never uses a region outside this list.
const (
	Container      = "container"
	Title          = "title"
	ChartContainer = "chart-container"
	Chart          = "chart"
	ChartElements  = "chart-elements"
	Legend         = "legend"
	LegendLabels   = "legend-labels"
)

// Regions is the fixed region vocabulary, outermost first.
var Regions = []string{Container, Title, ChartContainer, Chart, ChartElements, Legend, LegendLabels}

// IsRegion reports whether name belongs to the region vocabulary.
func IsRegion(name string) bool {
	for _, r := range Regions {
		if r == name {
			return true
		}
	}
	return false
}

// Property is a single presentation property, eg: {"padding", "3px"}.
type Property struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Value string `json:"value" yaml:"value" toml:"value"`
}

// P is shorthand for Property{name, value}.
func P(name, value string) Property {
	return Property{Name: name, Value: value}
}

// Cascade is an immutable region -> property list mapping.
// The zero value is an empty cascade ready to use.
type Cascade struct {
	order   []string // regions in the order they were seeded
	regions map[string][]Property
}

// New returns an empty cascade.
func New() Cascade {
	return Cascade{}
}

// Clone returns a deep copy; the result shares no memory with c.
func (c Cascade) Clone() Cascade {
	out := Cascade{
		order:   append([]string(nil), c.order...),
		regions: make(map[string][]Property, len(c.regions)),
	}
	for name, props := range c.regions {
		out.regions[name] = append([]Property{}, props...)
	}
	return out
}

// Has reports whether region has been seeded.
func (c Cascade) Has(region string) bool {
	_, ok := c.regions[region]
	return ok
}

// Regions returns the seeded regions in seeding order.
func (c Cascade) Regions() []string {
	return append([]string(nil), c.order...)
}

// Lookup returns a copy of the property list of region.
// A region that was never seeded resolves to an empty list.
func (c Cascade) Lookup(region string) []Property {
	return append([]Property{}, c.regions[region]...)
}

// Value returns the value of property name in region.
func (c Cascade) Value(region, name string) (string, bool) {
	for _, p := range c.regions[region] {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// Seed creates region when missing and then applies props with override
// semantics. Constructors use it to establish the default layout.
func (c Cascade) Seed(region string, props ...Property) Cascade {
	out := c.Clone()
	if _, ok := out.regions[region]; !ok {
		out.order = append(out.order, region)
		out.regions[region] = []Property{}
	}
	for _, p := range props {
		out.regions[region] = override(out.regions[region], p)
	}
	return out
}

// Override applies props to an existing region. Each property replaces any
// entry with the same name and is moved to the front of the list.
// Overriding a region that was never seeded leaves the cascade unchanged.
func (c Cascade) Override(region string, props ...Property) Cascade {
	out := c.Clone()
	list, ok := out.regions[region]
	if !ok {
		return out
	}
	for _, p := range props {
		list = override(list, p)
	}
	out.regions[region] = list
	return out
}

func override(list []Property, p Property) []Property {
	out := make([]Property, 0, len(list)+1)
	out = append(out, p)
	for _, old := range list {
		if old.Name != p.Name {
			out = append(out, old)
		}
	}
	return out
}

// Inline joins props into a css declaration list: "name:value;name:value".
func Inline(props ...[]Property) string {
	var b strings.Builder
	for _, list := range props {
		for _, p := range list {
			if b.Len() > 0 {
				b.WriteByte(';')
			}
			b.WriteString(p.Name)
			b.WriteByte(':')
			b.WriteString(p.Value)
		}
	}
	return b.String()
}
