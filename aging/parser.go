package aging

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parser converts one QuickBooks CSV export format into aging Records.
type Parser interface {
	// Format returns the parser name, e.g. "summary".
	Format() string

	// Matches reports whether the parser understands a CSV with the given
	// header columns (normalised to lower case, whitespace stripped).
	Matches(header []string) bool

	Parse(r io.Reader) ([]Record, error)
}

// Registry holds the known CSV formats.
type Registry struct {
	parsers []Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a parser. Panics on a duplicate format name.
func (g *Registry) Register(p Parser) {
	for _, q := range g.parsers {
		if strings.EqualFold(q.Format(), p.Format()) {
			panic("duplicate parser format: " + p.Format())
		}
	}
	g.parsers = append(g.parsers, p)
}

// DefaultRegistry returns a registry with the built-in parsers.
func DefaultRegistry() *Registry {
	g := NewRegistry()
	g.Register(&SummaryParser{})
	g.Register(&DetailParser{})
	return g
}

// ParseFile reads the CSV at path, picks the parser whose format matches
// the header line and returns the parsed records. An unrecognisable header
// is a malformed input.
func (g *Registry) ParseFile(path string) ([]Record, string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", path, err)
	}

	header, err := headerOf(b)
	if err != nil {
		return nil, "", err
	}

	for _, p := range g.parsers {
		if p.Matches(header) {
			records, err := p.Parse(bytes.NewReader(b))
			return records, p.Format(), err
		}
	}

	return nil, "", fmt.Errorf("%w: unrecognised header %q", ErrMalformed, strings.Join(header, ","))
}

func headerOf(b []byte) ([]string, error) {
	r := csv.NewReader(bytes.NewReader(b))

	record, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file", ErrMalformed)
	} else if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	header := make([]string, len(record))
	for i, v := range record {
		header[i] = normalise(v)
	}

	return header, nil
}

func normalise(v string) string {
	return strings.ToLower(strings.ReplaceAll(v, " ", ""))
}

func contains(header []string, name string) bool {
	for _, h := range header {
		if h == name {
			return true
		}
	}
	return false
}
