package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/brainstore/internal/cli"
	"github.com/fairyhunter13/brainstore/internal/config"
	"github.com/fairyhunter13/brainstore/internal/domain"
	"github.com/fairyhunter13/brainstore/internal/domain/mocks"
)

var (
	userID  = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	brainID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

var storedVector = domain.Vector{
	ID:        uuid.MustParse("44444444-4444-4444-4444-444444444444"),
	Content:   "page one",
	Metadata:  domain.VectorMetadata{"file_name": "doc.pdf", "file_sha1": "abc"},
	Embedding: []float32{0.5, 0.25},
}

type vectorStub struct{}

func (vectorStub) CreateVector(context.Context, domain.Vector) (uuid.UUID, error) {
	return uuid.New(), nil
}

func (vectorStub) GetVector(_ context.Context, id uuid.UUID) (*domain.Vector, error) {
	if id != storedVector.ID {
		return nil, nil
	}
	v := storedVector
	return &v, nil
}

func (vectorStub) CountByFileName(_ context.Context, name string) (int64, error) {
	if name == "doc.pdf" {
		return 3, nil
	}
	return 0, nil
}

type harness struct {
	repo     *mocks.MockBrainRepository
	migrated bool
	grace    time.Duration
	closed   bool
}

func setup(t *testing.T) *harness {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	return &harness{repo: mocks.NewMockBrainRepository(t)}
}

func (h *harness) open(context.Context, config.Config) (*cli.Backend, error) {
	return &cli.Backend{
		Brains:  h.repo,
		Vectors: vectorStub{},
		Migrate: func(context.Context) error { h.migrated = true; return nil },
		Sweep: func(_ context.Context, grace time.Duration) (int64, error) {
			h.grace = grace
			return 4, nil
		},
		Close: func() { h.closed = true },
	}, nil
}

func (h *harness) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := cli.Run(context.Background(), append([]string{"brainctl"}, args...), &out, h.open)
	return out.String(), err
}

func TestMigrate(t *testing.T) {
	h := setup(t)
	out, err := h.run(t, "migrate")
	require.NoError(t, err)
	assert.True(t, h.migrated)
	assert.True(t, h.closed)
	assert.Contains(t, out, "migrated")
}

func TestSweep_DefaultsToConfiguredGrace(t *testing.T) {
	h := setup(t)
	out, err := h.run(t, "sweep")
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, h.grace)
	assert.JSONEq(t, `{"collected":4}`, out)

	_, err = h.run(t, "sweep", "--grace", "1h")
	require.NoError(t, err)
	assert.Equal(t, time.Hour, h.grace)
}

func TestBrainsCreate(t *testing.T) {
	h := setup(t)
	h.repo.On("CreateBrain", mock.Anything, "Notes").Return(domain.Brain{ID: brainID, Name: "Notes"}, nil)
	h.repo.On("CreateBrainUser", mock.Anything, userID, brainID, domain.RightsOwner, true).Return(domain.BrainUser{}, nil)

	out, err := h.run(t, "brains", "create", "--user", userID.String(), "--name", "Notes", "--default")
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, brainID.String(), got["id"])
	assert.Equal(t, "Notes", got["name"])
}

func TestBrainsList(t *testing.T) {
	h := setup(t)
	h.repo.On("UserBrains", mock.Anything, userID).Return([]domain.BrainSummary{{ID: brainID, Name: "Notes"}}, nil)

	out, err := h.run(t, "brains", "list", "--user", userID.String())
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"`+brainID.String()+`","name":"Notes"}]`, out)
}

func TestBrainsShow_NotFound(t *testing.T) {
	h := setup(t)
	h.repo.On("BrainByID", mock.Anything, brainID).Return(nil, nil)

	_, err := h.run(t, "brains", "show", "--id", brainID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBrainsDelete_NotOwner(t *testing.T) {
	h := setup(t)
	h.repo.On("FindOwnerMembership", mock.Anything, userID, brainID).Return([]domain.BrainUser{}, nil)

	_, err := h.run(t, "brains", "delete", "--user", userID.String(), "--id", brainID.String())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBadUUID(t *testing.T) {
	h := setup(t)
	_, err := h.run(t, "brains", "list", "--user", "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestFilesDelete(t *testing.T) {
	h := setup(t)
	msg := "File doc.pdf in brain " + brainID.String() + " has been deleted."
	h.repo.On("FindOwnerMembership", mock.Anything, userID, brainID).
		Return([]domain.BrainUser{{BrainID: brainID, UserID: userID, Rights: domain.RightsOwner}}, nil)
	h.repo.On("DeleteFileFromBrain", mock.Anything, brainID, "doc.pdf").Return(msg, nil)

	out, err := h.run(t, "files", "delete", "--user", userID.String(), "--brain", brainID.String(), "--file", "doc.pdf")
	require.NoError(t, err)
	assert.Contains(t, out, msg)
}

func TestVectorsBySHA1(t *testing.T) {
	h := setup(t)
	v := uuid.MustParse("33333333-3333-3333-3333-333333333333")
	h.repo.On("VectorIDsByFileSHA1", mock.Anything, "abc").Return([]uuid.UUID{v}, nil)

	out, err := h.run(t, "vectors", "by-sha1", "--sha1", "abc")
	require.NoError(t, err)
	assert.JSONEq(t, `["`+v.String()+`"]`, out)
}

func TestOpenFailure(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	boom := errors.New("no db")
	err := cli.Run(context.Background(), []string{"brainctl", "migrate"}, &bytes.Buffer{},
		func(context.Context, config.Config) (*cli.Backend, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
}

func TestSeed(t *testing.T) {
	h := setup(t)
	t.Setenv("SEED_ALLOW_ABSPATHS", "1")
	p := filepath.Join(t.TempDir(), "fixture.yaml")
	require.NoError(t, os.WriteFile(p, []byte(`
brains:
  - name: Notes
    owner: `+userID.String()+`
    files:
      - name: a.txt
        sha1: s1
        chunks: [{content: hi}]
`), 0o600))
	h.repo.On("CreateBrain", mock.Anything, "Notes").Return(domain.Brain{ID: brainID, Name: "Notes"}, nil)
	h.repo.On("CreateBrainUser", mock.Anything, userID, brainID, domain.RightsOwner, false).Return(domain.BrainUser{}, nil)
	h.repo.On("VectorIDsByFileSHA1", mock.Anything, "s1").Return([]uuid.UUID{}, nil)
	h.repo.On("CreateBrainVector", mock.Anything, brainID, mock.Anything, "s1").Return(domain.BrainVector{}, nil)

	out, err := h.run(t, "seed", "--file", p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"brains":1,"vectors":1,"reused":0,"links":1}`, out)
}

func TestFilesCount(t *testing.T) {
	h := setup(t)
	out, err := h.run(t, "files", "count", "--name", "doc.pdf")
	require.NoError(t, err)
	assert.JSONEq(t, `{"vectors":3}`, out)
}

func TestVectorsShow(t *testing.T) {
	h := setup(t)
	out, err := h.run(t, "vectors", "show", "--id", storedVector.ID.String())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"`+storedVector.ID.String()+`","content":"page one",
		"metadata":{"file_name":"doc.pdf","file_sha1":"abc"},"embedding":[0.5,0.25]}`, out)

	_, err = h.run(t, "vectors", "show", "--id", uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
