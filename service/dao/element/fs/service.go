package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	neturl "net/url"
	"strings"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/graphid/idmanager"
	"github.com/viant/graphid/model/graph"
	"github.com/viant/graphid/service/dao"
	"github.com/viant/graphid/service/dao/criteria"
)

// Service implements a filesystem-based element storage. Every element is
// kept as a single JSON document under the base URL; any afs scheme works.
type Service struct {
	baseURL    string
	fs         afs.Service
	normalizer idmanager.Normalizer
	mu         sync.RWMutex
}

// Ensure Service implements dao.Service
var _ dao.Service[string, graph.Element] = (*Service)(nil)

// Option customises the service
type Option func(s *Service)

// WithNormalizer sets the normalizer applied to identifiers read back from storage
func WithNormalizer(normalizer idmanager.Normalizer) Option {
	return func(s *Service) {
		s.normalizer = normalizer
	}
}

// WithFS sets the afs service
func WithFS(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// Save persists an element
func (s *Service) Save(ctx context.Context, element *graph.Element) error {
	if element == nil {
		return dao.ErrNilEntity
	}
	if element.ID == "" {
		return dao.ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(element)
	if err != nil {
		return fmt.Errorf("failed to marshal element: %w", err)
	}
	URL := s.elementURL(element.ID)
	if err = s.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to save element to %s: %w", URL, err)
	}
	return nil
}

// Load retrieves an element
func (s *Service) Load(ctx context.Context, id string) (*graph.Element, error) {
	if id == "" {
		return nil, dao.ErrInvalidID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	URL := s.elementURL(id)
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to check if element exists: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("element %v: %w", id, dao.ErrNotFound)
	}
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read element file: %w", err)
	}
	element, err := s.decode(data)
	if err != nil {
		return nil, err
	}
	if element.ID != id {
		return nil, fmt.Errorf("element %v: stored id %v: %w", id, element.ID, dao.ErrInvalidID)
	}
	return element, nil
}

// Delete removes an element
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dao.ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	URL := s.elementURL(id)
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return fmt.Errorf("failed to check if element exists: %w", err)
	}
	if !exists {
		return fmt.Errorf("element %v: %w", id, dao.ErrNotFound)
	}
	if err := s.fs.Delete(ctx, URL); err != nil {
		return fmt.Errorf("failed to delete element file: %w", err)
	}
	return nil
}

// List returns all stored elements matching parameters. Unreadable documents
// are logged and skipped.
func (s *Service) List(ctx context.Context, parameters ...*dao.Parameter) ([]*graph.Element, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	objects, err := s.fs.List(ctx, s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to list element files: %w", err)
	}

	var elements []*graph.Element
	for _, object := range objects {
		if object.IsDir() || !strings.HasSuffix(object.Name(), ".json") {
			continue
		}
		data, err := s.fs.Download(ctx, object)
		if err != nil {
			log.Printf("graphid: failed to read element file %s: %v", object.URL(), err)
			continue
		}
		element, err := s.decode(data)
		if err != nil {
			log.Printf("graphid: skipping element file %s: %v", object.URL(), err)
			continue
		}
		if object.Name() != elementFile(element.ID) {
			log.Printf("graphid: skipping element file %s: stored id %v", object.URL(), element.ID)
			continue
		}
		if !criteria.Match(element, parameters) {
			continue
		}
		elements = append(elements, element)
	}
	return elements, nil
}

func (s *Service) decode(data []byte) (*graph.Element, error) {
	doc := &document{}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal element data: %w", err)
	}
	return doc.element(s.normalizer)
}

// elementURL escapes the id so that caller supplied identifiers cannot
// address files outside the base URL.
func (s *Service) elementURL(id string) string {
	return url.Join(s.baseURL, elementFile(id))
}

func elementFile(id string) string {
	return neturl.PathEscape(id) + ".json"
}

// New creates a new filesystem element storage service
func New(ctx context.Context, baseURL string, options ...Option) (*Service, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL cannot be empty")
	}
	ret := &Service{}
	for _, option := range options {
		option(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	if ret.normalizer == nil {
		ret.normalizer = idmanager.New("", nil)
	}

	baseURL = url.Normalize(baseURL, file.Scheme)
	exists, _ := ret.fs.Exists(ctx, baseURL)
	if !exists {
		if err := ret.fs.Create(ctx, baseURL, file.DefaultDirOsMode, true); err != nil {
			return nil, fmt.Errorf("failed to create base directory: %w", err)
		}
	}
	ret.baseURL = baseURL
	return ret, nil
}
