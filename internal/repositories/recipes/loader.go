package recipes

import (
	"context"
	"encoding/json"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/voxforge/storage-api/internal/errors"
)

// recipeFile is the on-disk format. A file may declare types, recipes, or
// both; definitions can be spread over a directory tree in any layout.
type recipeFile struct {
	Types   []RecipeType `json:"types,omitempty"`
	Recipes []Recipe     `json:"recipes,omitempty"`
}

// Loader imports recipe definitions from a directory of JSON files into a
// repository.
type Loader struct {
	repo   Repository
	logger *slog.Logger
}

// LoaderConfig holds the dependencies for a loader.
type LoaderConfig struct {
	Repository Repository
	// Logger is optional; nil disables load logging.
	Logger *slog.Logger
}

// Validate ensures all required dependencies are provided.
func (cfg *LoaderConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Repository == nil {
		return errors.InvalidArgument("repository cannot be nil")
	}
	return nil
}

// NewLoader creates a loader writing into the given repository.
func NewLoader(cfg *LoaderConfig) (*Loader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Loader{repo: cfg.Repository, logger: cfg.Logger}, nil
}

// LoadResult summarizes one LoadDir call.
type LoadResult struct {
	TypesAdded     int
	RecipesAdded   int
	Skipped        int // already-registered definitions
	FilesProcessed int
}

// LoadDir walks a directory tree, parses every .json file, and inserts
// all types before any recipe so cross-file type references resolve.
// Definitions that are already registered are skipped, which makes
// re-loading the same directory harmless; any other insertion failure
// aborts the load.
func (l *Loader) LoadDir(ctx context.Context, dir string) (*LoadResult, error) {
	var files []recipeFile
	result := &LoadResult{}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}

		data, err := os.ReadFile(path) // #nosec G304 -- path comes from the walked directory
		if err != nil {
			return err
		}
		var rf recipeFile
		if err := json.Unmarshal(data, &rf); err != nil {
			return errors.Wrapf(err, "failed to parse recipe file %s", path)
		}
		files = append(files, rf)
		result.FilesProcessed++
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk recipe directory %s", dir)
	}

	for _, rf := range files {
		for _, rt := range rf.Types {
			_, err := l.repo.PutRecipeType(ctx, PutRecipeTypeInput{RecipeType: rt})
			if err != nil {
				if errors.IsAlreadyExists(err) {
					result.Skipped++
					continue
				}
				return nil, err
			}
			result.TypesAdded++
		}
	}

	for _, rf := range files {
		for _, recipe := range rf.Recipes {
			_, err := l.repo.PutRecipe(ctx, PutRecipeInput{Recipe: recipe})
			if err != nil {
				if errors.IsAlreadyExists(err) {
					result.Skipped++
					continue
				}
				return nil, err
			}
			result.RecipesAdded++
		}
	}

	if l.logger != nil {
		l.logger.Info("recipe directory loaded",
			"dir", dir,
			"files", result.FilesProcessed,
			"types", result.TypesAdded,
			"recipes", result.RecipesAdded,
			"skipped", result.Skipped)
	}
	return result, nil
}
