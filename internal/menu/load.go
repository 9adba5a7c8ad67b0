package menu

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// schemaCUE constrains CUE menu files. Items are keyed by name so
// duplicates are impossible in that format.
const schemaCUE = `
#Item: {
	price:    number & >0
	category: string & !=""
}
items: [string]: #Item
`

// LoadFile reads a menu from a .yaml/.yml or .cue file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".cue":
		return ParseCUE(data, path)
	default:
		return nil, &DefinitionError{Message: fmt.Sprintf("unsupported menu file extension %q", ext)}
	}
}

type yamlMenu struct {
	Items []yamlItem `yaml:"items"`
}

type yamlItem struct {
	Name     string    `yaml:"name"`
	Price    yamlPrice `yaml:"price"`
	Category string    `yaml:"category"`
}

// yamlPrice parses the scalar text directly so "4.50" keeps its exact value.
type yamlPrice struct {
	decimal.Decimal
}

func (p *yamlPrice) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: price must be a scalar", n.Line)
	}
	d, err := decimal.NewFromString(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid price %q", n.Line, n.Value)
	}
	p.Decimal = d
	return nil
}

// ParseYAML builds a catalog from a YAML document of the form
//
//	items:
//	  - name: Pizza
//	    price: 10
//	    category: Fast Food
func ParseYAML(data []byte) (*Catalog, error) {
	var doc yamlMenu
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &DefinitionError{Message: err.Error()}
	}
	if len(doc.Items) == 0 {
		return nil, &DefinitionError{Message: "no items defined"}
	}

	entries := make([]Entry, 0, len(doc.Items))
	for _, it := range doc.Items {
		entries = append(entries, Entry{Name: it.Name, UnitPrice: it.Price.Decimal, Category: it.Category})
	}
	return New(entries...)
}

// ParseCUE builds a catalog from a CUE document of the form
//
//	items: {
//		"Pizza": {price: 10, category: "Fast Food"}
//	}
//
// filename is only used in error positions.
func ParseCUE(data []byte, filename string) (*Catalog, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("menu-schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile menu schema: %w", err)
	}

	value := ctx.CompileBytes(data, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return nil, &DefinitionError{Message: err.Error()}
	}

	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, &DefinitionError{Message: err.Error()}
	}

	itemsVal := value.LookupPath(cue.ParsePath("items"))
	if !itemsVal.Exists() {
		return nil, &DefinitionError{Message: "no items defined"}
	}
	iter, err := itemsVal.Fields()
	if err != nil {
		return nil, &DefinitionError{Message: fmt.Sprintf("iterating items: %v", err)}
	}

	var entries []Entry
	for iter.Next() {
		name := iter.Label()
		entry, err := cueEntry(name, iter.Value())
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if len(entries) == 0 {
		return nil, &DefinitionError{Message: "no items defined"}
	}
	return New(entries...)
}

func cueEntry(name string, v cue.Value) (Entry, error) {
	// MarshalJSON keeps the literal digits, avoiding a float round trip.
	raw, err := v.LookupPath(cue.ParsePath("price")).MarshalJSON()
	if err != nil {
		return Entry{}, &DefinitionError{Item: name, Message: fmt.Sprintf("price: %v", err)}
	}
	price, err := decimal.NewFromString(string(raw))
	if err != nil {
		return Entry{}, &DefinitionError{Item: name, Message: fmt.Sprintf("invalid price %s", raw)}
	}

	category, err := v.LookupPath(cue.ParsePath("category")).String()
	if err != nil {
		return Entry{}, &DefinitionError{Item: name, Message: fmt.Sprintf("category: %v", err)}
	}

	return Entry{Name: name, UnitPrice: price, Category: category}, nil
}
