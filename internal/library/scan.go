// Package library discovers reading PDFs and listening tracks on disk and
// shapes them for the reading browser and the listening/dictation pickers.
package library

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"lingolab/internal/models"
)

const (
	CategoryIELTS = "IELTS"
	CategoryTOEFL = "TOEFL"

	ieltsMarker = "Cambridge IELTS"
	toeflMarker = "TOEFL"
)

var (
	sectionPattern = regexp.MustCompile(`(?i)IELTS\s+(\d+)\s+Test\s+(\d+)\s+Section\s+(\d+)`)
	testPattern    = regexp.MustCompile(`(?i)IELTS\s+(\d+)\s+Test\s+(\d+)`)
	numberPattern  = regexp.MustCompile(`\d+`)
)

// Catalog is the result of a full library scan
type Catalog struct {
	Materials []models.MaterialItem
	Audio     []models.AudioFile
}

// Scan walks root for materials and audio concurrently
func Scan(ctx context.Context, root string) (*Catalog, error) {
	var cat Catalog
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		items, err := ScanMaterials(ctx, root)
		if err != nil {
			return err
		}
		cat.Materials = items
		return nil
	})
	g.Go(func() error {
		files, err := ScanAudio(ctx, root)
		if err != nil {
			return err
		}
		cat.Audio = files
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// ScanMaterials returns every PDF under an IELTS or TOEFL directory
func ScanMaterials(ctx context.Context, root string) ([]models.MaterialItem, error) {
	items := []models.MaterialItem{}
	err := walkFiles(ctx, root, ".pdf", func(rel, name string) {
		if !strings.Contains(rel, ieltsMarker) && !strings.Contains(rel, toeflMarker) {
			return
		}
		category := CategoryTOEFL
		if strings.Contains(rel, "Cambridge") {
			category = CategoryIELTS
		}
		items = append(items, models.MaterialItem{Name: name, Category: category, Path: rel})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan materials: %w", err)
	}
	return items, nil
}

// ScanAudio returns every mp3 under a Cambridge IELTS directory, ordered by
// book, test and section
func ScanAudio(ctx context.Context, root string) ([]models.AudioFile, error) {
	files := []models.AudioFile{}
	err := walkFiles(ctx, root, ".mp3", func(rel, name string) {
		if !strings.Contains(rel, ieltsMarker) {
			return
		}
		files = append(files, ParseAudio(rel, name))
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan audio: %w", err)
	}
	SortAudio(files)
	return files, nil
}

// ParseAudio derives book, test and section from a track's file name,
// falling back to the "Cambridge IELTS N" directory for the book number.
func ParseAudio(rel, name string) models.AudioFile {
	book, test, section := "Unknown", "Unknown", "All"

	if m := sectionPattern.FindStringSubmatch(name); m != nil {
		book, test, section = m[1], m[2], m[3]
	} else if m := testPattern.FindStringSubmatch(name); m != nil {
		book, test = m[1], m[2]
	}

	if book == "Unknown" {
		for _, part := range strings.Split(rel, "/") {
			if strings.Contains(part, ieltsMarker) {
				if n := numberPattern.FindString(part); n != "" {
					book = n
				}
				break
			}
		}
	}

	return models.AudioFile{
		Name:    name,
		Book:    ieltsMarker + " " + book,
		Test:    test,
		Section: section,
		Path:    rel,
	}
}

// SortAudio orders tracks by (book, test, section); non-numeric parts sort as 0
func SortAudio(files []models.AudioFile) {
	sort.SliceStable(files, func(i, j int) bool {
		a, b := audioSortKey(files[i]), audioSortKey(files[j])
		for k := range a {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})
}

func audioSortKey(f models.AudioFile) [3]int {
	fields := strings.Fields(f.Book)
	last := ""
	if len(fields) > 0 {
		last = fields[len(fields)-1]
	}
	return [3]int{atoiOrZero(last), atoiOrZero(f.Test), atoiOrZero(f.Section)}
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// walkFiles calls fn with the slash-separated relative path and base name of
// every file under root whose extension matches ext case-insensitively.
func walkFiles(ctx context.Context, root, ext string, fn func(rel, name string)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(d.Name()), ext) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		fn(filepath.ToSlash(rel), d.Name())
		return nil
	})
}
