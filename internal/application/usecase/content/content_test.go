package content

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-admin/internal/domain/skill"
	"portfolio-admin/pkg/apperror"
	"portfolio-admin/pkg/logger"
)

type fakeSkillRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]*skill.Skill
	listErr error
	saves   int
}

func newFakeSkillRepo() *fakeSkillRepo {
	return &fakeSkillRepo{records: map[uuid.UUID]*skill.Skill{}}
}

func (r *fakeSkillRepo) Save(_ context.Context, s *skill.Skill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	cp := *s
	r.records[s.ID] = &cp
	return nil
}

func (r *fakeSkillRepo) Update(_ context.Context, s *skill.Skill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.records[s.ID]
	if !ok || existing.OwnerID != s.OwnerID {
		return apperror.NewNotFound("skill", s.ID.String())
	}
	cp := *s
	r.records[s.ID] = &cp
	return nil
}

func (r *fakeSkillRepo) Delete(_ context.Context, id, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.records[id]
	if !ok || existing.OwnerID != ownerID {
		return apperror.NewNotFound("skill", id.String())
	}
	delete(r.records, id)
	return nil
}

func (r *fakeSkillRepo) FindByID(_ context.Context, id, ownerID uuid.UUID) (*skill.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.records[id]
	if !ok || existing.OwnerID != ownerID {
		return nil, apperror.NewNotFound("skill", id.String())
	}
	cp := *existing
	return &cp, nil
}

func (r *fakeSkillRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*skill.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := []*skill.Skill{}
	for _, s := range r.records {
		if s.OwnerID == ownerID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *recordingPublisher) PublishContentChanged(_ context.Context, _ uuid.UUID, kind, action, _ string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, kind+"."+action)
	return nil
}

func skillForm() map[string]string {
	return map[string]string{
		"name":     "Modélisation BIM",
		"level":    "80",
		"category": skill.CategoryTechnique,
	}
}

func TestAdd_InsertsValidatedRecord(t *testing.T) {
	repo := newFakeSkillRepo()
	events := &recordingPublisher{}
	uc := NewSkills(repo, events, logger.NewNop())
	ownerID := uuid.New()

	s, err := uc.Add(context.Background(), ownerID, skillForm())
	require.NoError(t, err)
	assert.Equal(t, ownerID, s.OwnerID)
	assert.Equal(t, 80, s.Level)
	assert.False(t, s.CreatedAt.IsZero())
	assert.Equal(t, []string{"skill.created"}, events.events)
}

func TestAdd_ValidationFailureNeverTouchesStore(t *testing.T) {
	repo := newFakeSkillRepo()
	uc := NewSkills(repo, &recordingPublisher{}, logger.NewNop())

	form := skillForm()
	form["level"] = "250"
	_, err := uc.Add(context.Background(), uuid.New(), form)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
	assert.Zero(t, repo.saves)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Fields["level"], "Le niveau doit être au plus 100")
}

func TestUpdate_CrossOwnerFailsLikeMissing(t *testing.T) {
	repo := newFakeSkillRepo()
	uc := NewSkills(repo, &recordingPublisher{}, logger.NewNop())

	ownerB := uuid.New()
	existing, err := uc.Add(context.Background(), ownerB, skillForm())
	require.NoError(t, err)

	ownerA := uuid.New()
	_, errForeign := uc.Update(context.Background(), ownerA, existing.ID, skillForm())
	_, errMissing := uc.Update(context.Background(), ownerA, uuid.New(), skillForm())

	require.Error(t, errForeign)
	require.Error(t, errMissing)
	assert.True(t, errors.Is(errForeign, apperror.ErrNotFound))
	assert.True(t, errors.Is(errMissing, apperror.ErrNotFound))
	// ownership violation and absence are indistinguishable
	assert.Equal(t, errorWithoutID(errMissing), errorWithoutID(errForeign))

	// store unchanged
	kept, err := uc.Get(context.Background(), ownerB, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, existing.Level, kept.Level)
}

// errorWithoutID strips the variable identifier so the two generic
// failure messages can be compared.
func errorWithoutID(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

func TestUpdate_MergesFieldsAndKeepsIdentity(t *testing.T) {
	repo := newFakeSkillRepo()
	uc := NewSkills(repo, &recordingPublisher{}, logger.NewNop())
	ownerID := uuid.New()

	created, err := uc.Add(context.Background(), ownerID, skillForm())
	require.NoError(t, err)

	form := skillForm()
	form["name"] = "Gestion de chantier"
	form["level"] = "65"
	form["category"] = skill.CategoryGestion

	updated, err := uc.Update(context.Background(), ownerID, created.ID, form)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, ownerID, updated.OwnerID)
	assert.Equal(t, "Gestion de chantier", updated.Name)
	assert.Equal(t, 65, updated.Level)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestDelete_RechecksOwnership(t *testing.T) {
	repo := newFakeSkillRepo()
	uc := NewSkills(repo, &recordingPublisher{}, logger.NewNop())

	ownerB := uuid.New()
	existing, err := uc.Add(context.Background(), ownerB, skillForm())
	require.NoError(t, err)

	err = uc.Delete(context.Background(), uuid.New(), existing.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	_, err = uc.Get(context.Background(), ownerB, existing.ID)
	assert.NoError(t, err)
}

func TestList_FailsOpenToEmpty(t *testing.T) {
	repo := newFakeSkillRepo()
	repo.listErr = errors.New("missing composite index")
	uc := NewSkills(repo, &recordingPublisher{}, logger.NewNop())

	recs, err := uc.List(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, recs)
	assert.NotNil(t, recs)
}

func TestList_EmptyOwnerYieldsEmptyList(t *testing.T) {
	uc := NewSkills(newFakeSkillRepo(), &recordingPublisher{}, logger.NewNop())

	recs, err := uc.List(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, recs)
}
