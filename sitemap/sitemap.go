package sitemap

import (
	"bytes"
	"compress/gzip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// MaxDocumentSize caps how much sitemap content Parse accepts, compressed
// or not. Sitemaps are capped at 50MB by the protocol; this leaves headroom.
const MaxDocumentSize = 64 << 20

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// Document is the parsed content of one sitemap file. URLs holds the page
// URLs of a urlset; Sitemaps holds the nested references of a sitemapindex.
// Exactly one of the two is populated per document.
type Document struct {
	URLs     []string `json:"urls" yaml:"urls"`
	Sitemaps []string `json:"sitemaps,omitempty" yaml:"sitemaps,omitempty"`
}

type locEntry struct {
	Loc string `xml:"loc"`
}

type urlsetXML struct {
	Entries []locEntry `xml:"url"`
}

type sitemapIndexXML struct {
	Entries []locEntry `xml:"sitemap"`
}

// Parse reads one sitemap document from raw bytes. Gzipped content is
// decompressed first, an oversized payload is an error, and the root
// element decides the document shape: urlset or sitemapindex.
func Parse(data []byte) (Document, error) {
	doc := Document{URLs: []string{}}

	if len(data) > MaxDocumentSize {
		return doc, fmt.Errorf("sitemap content exceeds %d bytes", MaxDocumentSize)
	}

	payload, err := decompress(data)
	if err != nil {
		return doc, err
	}
	payload = bytes.TrimPrefix(payload, utf8BOM)

	decoder := xml.NewDecoder(bytes.NewReader(payload))
	root, err := rootElement(decoder)
	if err != nil {
		return doc, fmt.Errorf("parse sitemap xml: %w", err)
	}

	switch root.Name.Local {
	case "urlset":
		var parsed urlsetXML
		if err := decoder.DecodeElement(&parsed, root); err != nil {
			return doc, fmt.Errorf("parse urlset: %w", err)
		}
		doc.URLs = collectLocs(parsed.Entries)

	case "sitemapindex":
		var parsed sitemapIndexXML
		if err := decoder.DecodeElement(&parsed, root); err != nil {
			return doc, fmt.Errorf("parse sitemapindex: %w", err)
		}
		doc.Sitemaps = collectLocs(parsed.Entries)

	default:
		return doc, fmt.Errorf("unrecognized sitemap root element %q", root.Name.Local)
	}

	return doc, nil
}

// ParseReader reads at most MaxDocumentSize bytes from r and parses them.
func ParseReader(r io.Reader) (Document, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxDocumentSize+1))
	if err != nil {
		return Document{URLs: []string{}}, fmt.Errorf("read sitemap content: %w", err)
	}
	return Parse(data)
}

// decompress unwraps gzipped payloads, identified by the gzip magic header.
// Everything else passes through untouched.
func decompress(data []byte) ([]byte, error) {
	if len(data) < 2 || data[0] != 0x1f || data[1] != 0x8b {
		return data, nil
	}

	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gunzip sitemap: %w", err)
	}
	defer func() { _ = reader.Close() }()

	payload, err := io.ReadAll(io.LimitReader(reader, MaxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("gunzip sitemap: %w", err)
	}
	if len(payload) > MaxDocumentSize {
		return nil, fmt.Errorf("decompressed sitemap exceeds %d bytes", MaxDocumentSize)
	}
	return payload, nil
}

// rootElement scans forward to the document's first start element.
func rootElement(decoder *xml.Decoder) (*xml.StartElement, error) {
	for {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		if start, ok := token.(xml.StartElement); ok {
			return &start, nil
		}
	}
}

// collectLocs gathers the non-empty loc values of a parsed entry list.
func collectLocs(entries []locEntry) []string {
	locs := []string{}
	for _, entry := range entries {
		if loc := strings.TrimSpace(entry.Loc); loc != "" {
			locs = append(locs, loc)
		}
	}
	return locs
}
