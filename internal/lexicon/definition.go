// Package lexicon loads entity definition documents and builds the catalog
// of canonical Names the rest of the service reads from.
package lexicon

import (
	"encoding/json"
	"fmt"
	"io"

	"namesmith/internal/name"
)

// Definition describes one entity whose Name the catalog will carry.
type Definition struct {
	ID   string      `json:"id"`
	Kind string      `json:"kind"`
	Name name.Record `json:"name"`
}

// Document is the on-disk shape of a definitions file.
type Document struct {
	Entities []Definition `json:"entities"`
}

// DecodeDocument reads a JSON definitions document. Unknown fields are
// rejected so typos in resource files surface as load errors instead of
// silently dropped data.
func DecodeDocument(r io.Reader) (Document, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("failed to decode definitions document: %w", err)
	}
	return doc, nil
}
