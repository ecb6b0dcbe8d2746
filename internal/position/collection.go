package position

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SchemaVersion is written into every encoded collection.
const SchemaVersion = 1

var validate = validator.New()

type collection struct {
	Version   int        `json:"version" validate:"required"`
	Positions []Position `json:"positions" validate:"dive"`
}

// Encode serialises the whole collection as a versioned JSON document.
func Encode(positions []Position) ([]byte, error) {
	if positions == nil {
		positions = []Position{}
	}
	data, err := json.MarshalIndent(collection{Version: SchemaVersion, Positions: positions}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("position: encode collection: %w", err)
	}
	return data, nil
}

// Decode parses a stored collection. It accepts the versioned document
// written by Encode and the bare JSON array older builds wrote. Blank input
// decodes to an empty collection. Every record is validated and ids must be
// unique; any problem rejects the whole blob.
func Decode(data []byte) ([]Position, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return []Position{}, nil
	}
	var doc collection
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &doc.Positions); err != nil {
			return nil, fmt.Errorf("position: parse legacy collection: %w", err)
		}
		doc.Version = SchemaVersion
	case '{':
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("position: parse collection: %w", err)
		}
		if doc.Version != SchemaVersion {
			return nil, fmt.Errorf("position: unsupported collection version %d", doc.Version)
		}
	default:
		return nil, fmt.Errorf("position: collection must be a JSON object or array")
	}
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("position: invalid record: %w", describeValidation(err))
	}
	seen := make(map[string]struct{}, len(doc.Positions))
	for i, p := range doc.Positions {
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("position: duplicate id %q at index %d", p.ID, i)
		}
		seen[p.ID] = struct{}{}
	}
	if doc.Positions == nil {
		doc.Positions = []Position{}
	}
	return doc.Positions, nil
}

func describeValidation(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%s", strings.Join(parts, "; "))
}
