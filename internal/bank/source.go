package bank

import (
	"encoding/json"
	"io"
	"os"

	"github.com/Snickdx/project-graph/internal/types"
)

// SourceRecord is one template definition as produced by the surrounding
// ETL (JSON). The core validates only the fields it needs and treats the
// rest as opaque.
type SourceRecord struct {
	CanonicalQuestion string `json:"canonical_question"`
	QueryPattern      string `json:"query_pattern"`
	Description       string `json:"description"`
}

// Validate checks the record has the required fields.
func (s SourceRecord) Validate() error {
	if s.CanonicalQuestion == "" {
		return types.NewError(types.BANK_LOAD_FAILED, "canonical_question cannot be empty")
	}
	if Slug(s.CanonicalQuestion) == "" {
		return types.NewError(types.BANK_LOAD_FAILED, "canonical_question yields an empty key")
	}
	if s.QueryPattern == "" {
		return types.NewError(types.BANK_LOAD_FAILED, "query_pattern cannot be empty")
	}
	return nil
}

// ParseSources decodes a JSON array of source records.
func ParseSources(r io.Reader) ([]SourceRecord, error) {
	var records []SourceRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, types.WrapError(types.BANK_LOAD_FAILED, "failed to decode template sources", err)
	}
	return records, nil
}

// LoadSourceFile reads template source records from a JSON file.
func LoadSourceFile(path string) ([]SourceRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, types.WrapError(types.BANK_LOAD_FAILED, "failed to open template source file", err)
	}
	defer f.Close()
	return ParseSources(f)
}
