package adaptors

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"content_intelligence/internal/domain/models"
	"content_intelligence/internal/pkg/errors"

	log "github.com/sirupsen/logrus"
)

// FileDocumentSource serves documents from *.json files under a directory.
// A file holds one document or an array of them; a document without a
// collection takes the name of the directory it sits in.
type FileDocumentSource struct {
	dir  string
	log  *log.Logger
	once sync.Once
	docs map[string][]models.RawDocument
	err  error
}

func NewFileDocumentSource(dir string, log *log.Logger) *FileDocumentSource {
	return &FileDocumentSource{dir: dir, log: log}
}

func (s *FileDocumentSource) Fetch(ctx context.Context, collection string, limit int, offset int) ([]models.RawDocument, error) {
	if err := s.load(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	docs := s.docs[collection]
	if offset >= len(docs) {
		return nil, nil
	}
	end := len(docs)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return docs[offset:end], nil
}

// Collections lists the collection names found on disk.
func (s *FileDocumentSource) Collections() ([]string, error) {
	if err := s.load(); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(s.docs))
	for c := range s.docs {
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}

func (s *FileDocumentSource) load() error {
	s.once.Do(func() {
		s.docs = map[string][]models.RawDocument{}
		s.err = filepath.WalkDir(s.dir, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".json") {
				return nil
			}
			docs, err := ReadDocumentFile(path)
			if err != nil {
				s.log.WithError(err).WithField(`file`, path).Warn(`skipping unreadable document file`)
				return nil
			}
			for _, doc := range docs {
				if doc.Collection == "" {
					doc.Collection = filepath.Base(filepath.Dir(path))
				}
				if doc.ID == "" {
					doc.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
				}
				s.docs[doc.Collection] = append(s.docs[doc.Collection], doc)
			}
			return nil
		})
		if s.err != nil {
			s.err = errors.Wrap(s.err, `failed to read document directory`)
		}
		for _, docs := range s.docs {
			sort.SliceStable(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
		}
	})
	return s.err
}

// ReadDocumentFile decodes one document or an array of documents.
func ReadDocumentFile(path string) ([]models.RawDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, `failed to read document file`)
	}
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var docs []models.RawDocument
		if err := json.Unmarshal(data, &docs); err != nil {
			return nil, errors.Wrap(err, `failed to decode document list`)
		}
		return docs, nil
	}
	var doc models.RawDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, `failed to decode document`)
	}
	return []models.RawDocument{doc}, nil
}
