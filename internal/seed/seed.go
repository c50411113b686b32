// Package seed loads brains, memberships and file vectors from YAML fixtures.
//
// A file already ingested elsewhere (same file_sha1) is linked to the new
// brain instead of being stored twice, so seeded brains share vectors the
// way the ingestion pipeline does.
package seed

import (
	"crypto/sha1" //nolint:gosec // file checksum, not a security boundary
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/fairyhunter13/brainstore/internal/domain"
	obsctx "github.com/fairyhunter13/brainstore/internal/observability"
	"github.com/fairyhunter13/brainstore/pkg/textx"
)

// VectorWriter stores a vector and returns its id.
type VectorWriter interface {
	CreateVector(ctx domain.Context, v domain.Vector) (uuid.UUID, error)
}

type fileYAML struct {
	Brains []brainYAML `yaml:"brains"`
}

type brainYAML struct {
	Name    string     `yaml:"name"`
	Owner   string     `yaml:"owner"`
	Default bool       `yaml:"default"`
	Files   []fileItem `yaml:"files"`
}

type fileItem struct {
	Name   string      `yaml:"name"`
	SHA1   string      `yaml:"sha1"`
	Chunks []chunkYAML `yaml:"chunks"`
}

type chunkYAML struct {
	Content   string    `yaml:"content"`
	Embedding []float32 `yaml:"embedding"`
}

// Stats summarizes one seeding run.
type Stats struct {
	Brains  int `json:"brains"`
	Vectors int `json:"vectors"`
	Reused  int `json:"reused"`
	Links   int `json:"links"`
}

// Loader writes fixtures through the repositories.
type Loader struct {
	Brains  domain.BrainRepository
	Vectors VectorWriter
}

// SeedFile ingests a single YAML fixture file.
func (l Loader) SeedFile(ctx domain.Context, path string) (Stats, error) {
	// constrain to the working directory unless explicitly allowed
	abs, err := filepath.Abs(path)
	if err != nil {
		return Stats{}, err
	}
	wd, err := os.Getwd()
	if err != nil {
		return Stats{}, err
	}
	abs, wd = filepath.Clean(abs), filepath.Clean(wd)
	if os.Getenv("SEED_ALLOW_ABSPATHS") != "1" {
		if !strings.HasPrefix(abs, wd+string(os.PathSeparator)) && abs != wd {
			return Stats{}, fmt.Errorf("%w: disallowed path: %s", domain.ErrInvalidArgument, abs)
		}
	}
	b, err := os.ReadFile(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Stats{}, fmt.Errorf("%w: seed file not found: %s", domain.ErrNotFound, path)
		}
		return Stats{}, err
	}
	return l.Seed(ctx, b)
}

// Seed ingests a YAML document.
func (l Loader) Seed(ctx domain.Context, doc []byte) (Stats, error) {
	var f fileYAML
	if err := yaml.Unmarshal(doc, &f); err != nil {
		return Stats{}, fmt.Errorf("%w: yaml parse: %v", domain.ErrInvalidArgument, err)
	}
	if len(f.Brains) == 0 {
		return Stats{}, fmt.Errorf("%w: no brains to seed", domain.ErrInvalidArgument)
	}
	var st Stats
	for _, by := range f.Brains {
		if err := l.seedBrain(ctx, by, &st); err != nil {
			return st, fmt.Errorf("brain %q: %w", by.Name, err)
		}
	}
	obsctx.Logger(ctx, "seed").Info("seed complete",
		"brains", st.Brains, "vectors", st.Vectors, "reused", st.Reused, "links", st.Links)
	return st, nil
}

func (l Loader) seedBrain(ctx domain.Context, by brainYAML, st *Stats) error {
	name := textx.SanitizeName(by.Name)
	if name == "" {
		return fmt.Errorf("%w: name required", domain.ErrInvalidArgument)
	}
	owner, err := uuid.Parse(by.Owner)
	if err != nil {
		return fmt.Errorf("%w: owner: %v", domain.ErrInvalidArgument, err)
	}
	brain, err := l.Brains.CreateBrain(ctx, name)
	if err != nil {
		return err
	}
	if _, err := l.Brains.CreateBrainUser(ctx, owner, brain.ID, domain.RightsOwner, by.Default); err != nil {
		if _, derr := l.Brains.DeleteBrain(ctx, brain.ID); derr != nil {
			return errors.Join(err, fmt.Errorf("remove unowned brain %s: %w", brain.ID, derr))
		}
		return err
	}
	st.Brains++
	for _, fi := range by.Files {
		if err := l.seedFile(ctx, brain.ID, fi, st); err != nil {
			return fmt.Errorf("file %q: %w", fi.Name, err)
		}
	}
	return nil
}

func (l Loader) seedFile(ctx domain.Context, brainID uuid.UUID, fi fileItem, st *Stats) error {
	if fi.Name == "" || len(fi.Chunks) == 0 {
		return fmt.Errorf("%w: file needs a name and chunks", domain.ErrInvalidArgument)
	}
	sum := fi.SHA1
	if sum == "" {
		sum = checksum(fi.Chunks)
	}
	ids, err := l.Brains.VectorIDsByFileSHA1(ctx, sum)
	if err != nil {
		return err
	}
	if len(ids) > 0 {
		st.Reused += len(ids)
	} else {
		for _, c := range fi.Chunks {
			id, err := l.Vectors.CreateVector(ctx, domain.Vector{
				Content:   c.Content,
				Metadata:  domain.VectorMetadata{domain.MetadataFileName: fi.Name, domain.MetadataFileSHA1: sum},
				Embedding: c.Embedding,
			})
			if err != nil {
				return err
			}
			ids = append(ids, id)
			st.Vectors++
		}
	}
	for _, id := range ids {
		if _, err := l.Brains.CreateBrainVector(ctx, brainID, id, sum); err != nil {
			return err
		}
		st.Links++
	}
	return nil
}

// checksum derives a stable file_sha1 from chunk contents when the fixture omits it.
func checksum(chunks []chunkYAML) string {
	h := sha1.New() //nolint:gosec
	for _, c := range chunks {
		h.Write([]byte(c.Content))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
