// SPDX-License-Identifier: MIT

package graphio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
)

// ErrMalformedQuery indicates a query without a source or a target.
var ErrMalformedQuery = errors.New("graphio: malformed query")

// Query is one routing request.
type Query struct {
	From string `yaml:"from" json:"from"`
	To   string `yaml:"to" json:"to"`
}

// QueryDocument is the serialized form of a batch of queries.
type QueryDocument struct {
	Queries []Query `yaml:"queries" json:"queries"`
}

// DecodeQueries reads a query document from r.
// Every incomplete query is reported in one *multierror.Error.
func DecodeQueries(r io.Reader, format Format) ([]Query, error) {
	var doc QueryDocument
	if err := decodeInto(r, format, &doc); err != nil {
		return nil, err
	}

	var merr *multierror.Error
	for i, q := range doc.Queries {
		if q.From == "" || q.To == "" {
			merr = multierror.Append(merr, fmt.Errorf("%w: queries[%d]: from and to are required", ErrMalformedQuery, i))
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}

	return doc.Queries, nil
}

// LoadQueries reads the query document at path, choosing the format by extension.
func LoadQueries(path string) ([]Query, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open queries: %w", err)
	}
	defer f.Close()

	qs, err := DecodeQueries(f, format)
	if err != nil {
		return nil, fmt.Errorf("graphio: %s: %w", path, err)
	}

	return qs, nil
}

// EncodeQueries writes qs to w as a query document.
func EncodeQueries(w io.Writer, qs []Query, format Format) error {
	return encodeFrom(w, format, QueryDocument{Queries: qs})
}
