package locale

import (
	"fmt"

	"golang.org/x/text/language"
)

// Catalog selects a Table for a requested language. The first table is the
// fallback.
type Catalog struct {
	tables  []*Table
	matcher language.Matcher
}

// NewCatalog builds a catalog over tables. It panics if tables is empty.
func NewCatalog(tables ...*Table) *Catalog {
	if len(tables) == 0 {
		panic("locale: NewCatalog needs at least one table")
	}
	tags := make([]language.Tag, len(tables))
	for i, t := range tables {
		tags[i] = t.Tag
	}
	return &Catalog{
		tables:  tables,
		matcher: language.NewMatcher(tags),
	}
}

// Default is a catalog of the built-in tables, English first.
func Default() *Catalog {
	return NewCatalog(&English, &German)
}

// Match returns the best table for the preferred tags.
func (c *Catalog) Match(preferred ...language.Tag) *Table {
	_, i, _ := c.matcher.Match(preferred...)
	return c.tables[i]
}

// Lookup parses a language name such as "de", "en-GB" or an Accept-Language
// style list and returns the best table.
func (c *Catalog) Lookup(name string) (*Table, error) {
	tags, _, err := language.ParseAcceptLanguage(name)
	if err != nil {
		return nil, fmt.Errorf("language %q: %w", name, err)
	}
	return c.Match(tags...), nil
}
