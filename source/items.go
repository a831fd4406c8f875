package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// LoadItems reads CSL-JSON items from a file.
func LoadItems(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	items, err := DecodeItems(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return items, nil
}

// DecodeItems decodes a CSL-JSON document holding either an array of items or
// a single item. Numbers are kept as json.Number so that "12" and 12 are
// classified from their literal text.
func DecodeItems(data []byte) ([]Item, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw []map[string]any
	if data[0] == '[' {
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("parse item array: %w", err)
		}
	} else {
		var single map[string]any
		if err := dec.Decode(&single); err != nil {
			return nil, fmt.Errorf("parse item: %w", err)
		}
		raw = append(raw, single)
	}

	items := make([]Item, 0, len(raw))
	for _, fields := range raw {
		if fields == nil {
			continue
		}
		items = append(items, Item{ID: itemID(fields), Fields: fields})
	}
	return items, nil
}

// itemID returns the item's id as a string, generating one when missing.
func itemID(fields map[string]any) string {
	switch id := fields["id"].(type) {
	case string:
		if id != "" {
			return id
		}
	case json.Number:
		return id.String()
	}
	return uuid.New().String()
}
