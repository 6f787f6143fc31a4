package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aretw0/automata/internal/compiler"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/loam"
)

// Loader adapts a Loam repository to the DescriptionLoader interface.
// A document describes an automaton either through its frontmatter
// (states, finals, alphabet, transitions) or, when the frontmatter carries
// none of those fields, through a text-format description in its body.
type Loader struct {
	Repo  *loam.TypedRepository[AutomatonMetadata]
	DocID string
}

// New creates a new Loam adapter reading the document docID.
func New(repo *loam.TypedRepository[AutomatonMetadata], docID string) *Loader {
	return &Loader{
		Repo:  repo,
		DocID: docID,
	}
}

// Open initializes a read-only Loam repository at dir and returns a loader for docID.
func Open(dir, docID string) (*Loader, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	// Strict mode keeps numeric frontmatter as json.Number; the simulator never
	// writes to the repository.
	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}

	return New(loam.NewTypedRepository[AutomatonMetadata](repo), docID), nil
}

// Load retrieves the document and builds the automaton it describes.
func (l *Loader) Load(ctx context.Context) (*domain.Automaton, error) {
	if l.DocID == "" {
		return nil, fmt.Errorf("%w: no loam document selected", domain.ErrDescriptionNotFound)
	}

	doc, err := l.Repo.Get(ctx, l.DocID)
	if err != nil {
		return nil, fmt.Errorf("%w: loam get failed for %s: %w", domain.ErrDescriptionNotFound, l.DocID, err)
	}

	desc := doc.Data.Description()
	var a *domain.Automaton
	if desc.Empty() {
		a, err = compiler.ParseText([]byte(doc.Content))
	} else {
		a, err = desc.Build()
	}
	if err != nil {
		return nil, fmt.Errorf("loam document %s: %w", l.DocID, err)
	}
	return a, nil
}

// ListDocuments lists the IDs of all documents in the repository, extensions stripped.
func (l *Loader) ListDocuments(ctx context.Context) ([]string, error) {
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string)
	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		// Use the ID from metadata if available, otherwise filename ID
		rawID := doc.Data.ID
		if rawID == "" {
			rawID = doc.ID
		}
		id := trimExtension(rawID)

		if existingPath, ok := seen[id]; ok {
			return nil, fmt.Errorf("collision detected: ID '%s' is defined in both '%s' and '%s'", id, existingPath, doc.ID)
		}
		seen[id] = doc.ID
		ids = append(ids, id)
	}
	return ids, nil
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}
