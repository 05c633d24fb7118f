package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ludwa6/customer-support/internal/core/domain"
	"github.com/ludwa6/customer-support/internal/core/ports/driven"
)

// Ensure MappingStore implements the interface.
var _ driven.MappingStore = (*MappingStore)(nil)

// mappingFileName is the JSON document holding the database mapping.
const mappingFileName = "databases.json"

// MappingStore persists the entity-type-to-database mapping as a single
// JSON document. The document is loaded once and cached; Save rewrites it
// wholesale and refreshes the cache, so readers after an explicit
// re-resolution pass see the new mapping.
type MappingStore struct {
	mu       sync.RWMutex
	filePath string
	loaded   bool
	cached   domain.DatabaseMapping
}

// NewMappingStore creates a mapping store in the given config directory.
// If configDir is empty, defaults to ~/.supportctl/databases.json.
func NewMappingStore(configDir string) (*MappingStore, error) {
	dir, err := resolveConfigDir(configDir)
	if err != nil {
		return nil, err
	}
	return &MappingStore{filePath: filepath.Join(dir, mappingFileName)}, nil
}

// mappingDocument is the on-disk layout. Unmapped types are null, not
// omitted, so the document always shows all four slots.
type mappingDocument struct {
	Databases mappingFields `json:"databases"`
}

type mappingFields struct {
	Categories     *string `json:"categories"`
	Articles       *string `json:"articles"`
	FAQs           *string `json:"faqs"`
	SupportTickets *string `json:"supportTickets"`
}

// Load reads the persisted mapping. A missing document loads as the zero
// mapping.
func (s *MappingStore) Load() (domain.DatabaseMapping, error) {
	s.mu.RLock()
	if s.loaded {
		defer s.mu.RUnlock()
		return s.cached, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.cached, nil
	}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.cached = domain.DatabaseMapping{}
			s.loaded = true
			return s.cached, nil
		}
		return domain.DatabaseMapping{}, fmt.Errorf("read mapping file: %w", err)
	}

	var doc mappingDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.DatabaseMapping{}, fmt.Errorf("parse mapping file %s: %w", s.filePath, err)
	}

	s.cached = domain.DatabaseMapping{
		Categories:     deref(doc.Databases.Categories),
		Articles:       deref(doc.Databases.Articles),
		FAQs:           deref(doc.Databases.FAQs),
		SupportTickets: deref(doc.Databases.SupportTickets),
	}
	s.loaded = true
	return s.cached, nil
}

// Save persists the mapping wholesale, replacing any previous document.
// The write goes through a temp file and rename so readers never observe
// a half-written document.
func (s *MappingStore) Save(mapping domain.DatabaseMapping) error {
	doc := mappingDocument{
		Databases: mappingFields{
			Categories:     ref(mapping.Categories),
			Articles:       ref(mapping.Articles),
			FAQs:           ref(mapping.FAQs),
			SupportTickets: ref(mapping.SupportTickets),
		},
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode mapping: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("write mapping file: %w", err)
	}
	if err := os.Rename(tmp, s.filePath); err != nil {
		return fmt.Errorf("replace mapping file: %w", err)
	}

	s.cached = mapping
	s.loaded = true
	return nil
}

// Path returns the mapping document path.
func (s *MappingStore) Path() string {
	return s.filePath
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ref(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
