package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"lingolab/internal/library"
	"lingolab/internal/models"
)

// LibraryService caches the library scan for a configurable time
type LibraryService struct {
	root string
	ttl  time.Duration
	scan func(ctx context.Context, root string) (*library.Catalog, error)
	now  func() time.Time

	mu        sync.Mutex
	catalog   *library.Catalog
	scannedAt time.Time
}

// NewLibraryService creates a library service rooted at root. A ttl of zero
// rescans on every request.
func NewLibraryService(root string, ttl time.Duration) *LibraryService {
	return &LibraryService{
		root: root,
		ttl:  ttl,
		scan: library.Scan,
		now:  time.Now,
	}
}

// Root is the directory the library is served from
func (s *LibraryService) Root() string {
	return s.root
}

// Catalog returns the cached catalog, rescanning once it has expired
func (s *LibraryService) Catalog(ctx context.Context) (*library.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.catalog != nil && s.now().Sub(s.scannedAt) < s.ttl {
		return s.catalog, nil
	}
	return s.refreshLocked(ctx)
}

// Refresh forces a rescan
func (s *LibraryService) Refresh(ctx context.Context) (*library.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshLocked(ctx)
}

func (s *LibraryService) refreshLocked(ctx context.Context) (*library.Catalog, error) {
	start := s.now()
	cat, err := s.scan(ctx, s.root)
	if err != nil {
		return nil, err
	}
	s.catalog = cat
	s.scannedAt = s.now()
	slog.InfoContext(ctx, "library scanned",
		"root", s.root,
		"materials", len(cat.Materials),
		"audio", len(cat.Audio),
		"duration", s.scannedAt.Sub(start))
	return cat, nil
}

// Materials lists reading PDFs, optionally filtered by category
func (s *LibraryService) Materials(ctx context.Context, category string) ([]models.MaterialItem, error) {
	cat, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return library.FilterMaterials(cat.Materials, category), nil
}

func (s *LibraryService) Audio(ctx context.Context) ([]models.AudioFile, error) {
	cat, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return cat.Audio, nil
}

func (s *LibraryService) AudioGroups(ctx context.Context) ([]models.AudioGroup, error) {
	files, err := s.Audio(ctx)
	if err != nil {
		return nil, err
	}
	return library.GroupAudio(files), nil
}

// FindAudio looks a track up by its library path
func (s *LibraryService) FindAudio(ctx context.Context, path string) (*models.AudioFile, error) {
	files, err := s.Audio(ctx)
	if err != nil {
		return nil, err
	}
	for i := range files {
		if files[i].Path == path {
			f := files[i]
			return &f, nil
		}
	}
	return nil, nil
}

// Resolve maps a library path onto a file on disk
func (s *LibraryService) Resolve(rel string) (string, error) {
	return library.Resolve(s.root, rel)
}
