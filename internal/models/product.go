package models

import (
	"fmt"

	"github.com/fatah2004/KechEx/internal/store"
)

// Product is one catalog record. It is owned and mutated by an external
// catalog process; this service only ever reads a snapshot of it.
type Product struct {
	ProductName  string   `json:"productName"`
	ProductPrice float64  `json:"productPrice"`
	Description  string   `json:"description"`
	ImageURLs    []string `json:"imageUrls"`
}

// ProductFromDocument decodes schemaless document fields into a Product.
// Missing fields decode to zero values; imageUrls entries that are not
// strings are skipped.
func ProductFromDocument(doc *store.Document) (*Product, error) {
	if doc == nil {
		return nil, fmt.Errorf("nil product document")
	}

	p := &Product{}
	if v, ok := doc.Fields["productName"].(string); ok {
		p.ProductName = v
	}
	if v, ok := doc.Fields["description"].(string); ok {
		p.Description = v
	}
	switch v := doc.Fields["productPrice"].(type) {
	case float64:
		p.ProductPrice = v
	case int:
		p.ProductPrice = float64(v)
	}

	switch urls := doc.Fields["imageUrls"].(type) {
	case []string:
		p.ImageURLs = urls
	case []any:
		for _, u := range urls {
			if s, ok := u.(string); ok {
				p.ImageURLs = append(p.ImageURLs, s)
			}
		}
	}
	return p, nil
}

// Fields returns the document representation written by the catalog
// ingest endpoint.
func (p *Product) Fields() map[string]any {
	return map[string]any{
		"productName":  p.ProductName,
		"productPrice": p.ProductPrice,
		"description":  p.Description,
		"imageUrls":    p.ImageURLs,
	}
}
