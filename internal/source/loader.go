package source

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"slices"

	"golang.org/x/net/html/charset"
)

// LoadFile loads and parses a schema 1.x file from the given path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read debate format %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Parse decodes a schema 1.x document and checks it is compatible.
func Parse(r io.Reader) (*Document, error) {
	var doc Document

	dec := xml.NewDecoder(r)
	// Schema 1.x files may declare a legacy encoding such as ISO-8859-1.
	dec.CharsetReader = charset.NewReaderLabel
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if err := CheckCompatibility(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// CheckCompatibility verifies the root element and declared schema version.
func CheckCompatibility(doc *Document) error {
	if doc.XMLName.Local != RootElement {
		return fmt.Errorf("%w: the root element is <%s>, not <%s>",
			ErrIncompatible, doc.XMLName.Local, RootElement)
	}

	if doc.SchemaVersion == nil {
		return fmt.Errorf("%w: no schema version declared", ErrIncompatible)
	}

	if !slices.Contains(SupportedVersions, *doc.SchemaVersion) {
		return fmt.Errorf("%w: schema version %q is not one of %v",
			ErrIncompatible, *doc.SchemaVersion, SupportedVersions)
	}

	return nil
}
