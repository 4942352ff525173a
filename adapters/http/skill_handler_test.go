package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-admin/internal/application/usecase/content"
	"portfolio-admin/internal/domain/skill"
	"portfolio-admin/pkg/apperror"
	"portfolio-admin/pkg/auth"
	"portfolio-admin/pkg/logger"
)

type memSkillRepo struct {
	records map[uuid.UUID]*skill.Skill
}

func newMemSkillRepo() *memSkillRepo {
	return &memSkillRepo{records: map[uuid.UUID]*skill.Skill{}}
}

func (r *memSkillRepo) Save(ctx context.Context, s *skill.Skill) error {
	cp := *s
	r.records[s.ID] = &cp
	return nil
}

func (r *memSkillRepo) Update(ctx context.Context, s *skill.Skill) error {
	existing, ok := r.records[s.ID]
	if !ok || existing.OwnerID != s.OwnerID {
		return apperror.NewNotFound("skill", s.ID.String())
	}
	cp := *s
	r.records[s.ID] = &cp
	return nil
}

func (r *memSkillRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	existing, ok := r.records[id]
	if !ok || existing.OwnerID != ownerID {
		return apperror.NewNotFound("skill", id.String())
	}
	delete(r.records, id)
	return nil
}

func (r *memSkillRepo) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*skill.Skill, error) {
	existing, ok := r.records[id]
	if !ok || existing.OwnerID != ownerID {
		return nil, apperror.NewNotFound("skill", id.String())
	}
	cp := *existing
	return &cp, nil
}

func (r *memSkillRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*skill.Skill, error) {
	out := []*skill.Skill{}
	for _, s := range r.records {
		if s.OwnerID == ownerID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func newSkillTestServer(t *testing.T, repo *memSkillRepo) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNop()
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	crud := content.NewSkills(repo, nil, log)
	handler := NewSkillHandler(crud, log)

	router := gin.New()
	router.Use(ErrorMiddleware(log))

	api := router.Group("/api")
	private := api.Group("/")
	private.Use(AuthMiddleware(jwtSvc))
	handler.RegisterRoutes(private)

	return router, jwtSvc
}

func postForm(t *testing.T, router *gin.Engine, token, method, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSkillHandler_Add(t *testing.T) {
	repo := newMemSkillRepo()
	router, jwtSvc := newSkillTestServer(t, repo)

	ownerID := uuid.New()
	token, err := jwtSvc.GenerateToken(ownerID)
	require.NoError(t, err)

	w := postForm(t, router, token, http.MethodPost, "/api/skills", url.Values{
		"name":     {"Conception bioclimatique"},
		"level":    {"85"},
		"category": {"conception"},
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Compétence ajoutée avec succès.", body["message"])
	assert.Len(t, repo.records, 1)
}

func TestSkillHandler_Add_ValidationErrors(t *testing.T) {
	repo := newMemSkillRepo()
	router, jwtSvc := newSkillTestServer(t, repo)

	token, err := jwtSvc.GenerateToken(uuid.New())
	require.NoError(t, err)

	w := postForm(t, router, token, http.MethodPost, "/api/skills", url.Values{
		"name":     {"AutoCAD"},
		"level":    {"150"},
		"category": {"logiciels"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Success bool                `json:"success"`
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "La validation a échoué.", body.Message)
	assert.Equal(t, []string{"Le niveau doit être au plus 100"}, body.Errors["level"])
	assert.Empty(t, repo.records)
}

func TestSkillHandler_Update_ForeignRecordLooksMissing(t *testing.T) {
	repo := newMemSkillRepo()
	router, jwtSvc := newSkillTestServer(t, repo)

	victimID := uuid.New()
	existing := &skill.Skill{
		ID:       uuid.New(),
		OwnerID:  victimID,
		Name:     "Revit",
		Level:    70,
		Category: skill.CategoryLogiciels,
	}
	repo.records[existing.ID] = existing

	attackerToken, err := jwtSvc.GenerateToken(uuid.New())
	require.NoError(t, err)

	w := postForm(t, router, attackerToken, http.MethodPut, "/api/skills/"+existing.ID.String(), url.Values{
		"name":     {"Hijacked"},
		"level":    {"1"},
		"category": {"logiciels"},
	})

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Opération non autorisée ou élément non trouvé.", body["message"])
	assert.Equal(t, "Revit", repo.records[existing.ID].Name)
}

func TestSkillHandler_RequiresToken(t *testing.T) {
	repo := newMemSkillRepo()
	router, _ := newSkillTestServer(t, repo)

	w := postForm(t, router, "", http.MethodGet, "/api/skills", url.Values{})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSkillHandler_List(t *testing.T) {
	repo := newMemSkillRepo()
	router, jwtSvc := newSkillTestServer(t, repo)

	ownerID := uuid.New()
	existing := &skill.Skill{ID: uuid.New(), OwnerID: ownerID, Name: "Urbanisme", Level: 60, Category: skill.CategoryConception}
	repo.records[existing.ID] = existing

	token, err := jwtSvc.GenerateToken(ownerID)
	require.NoError(t, err)

	w := postForm(t, router, token, http.MethodGet, "/api/skills", url.Values{})

	assert.Equal(t, http.StatusOK, w.Code)

	var skills []skill.Skill
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &skills))
	assert.Len(t, skills, 1)
	assert.Equal(t, "Urbanisme", skills[0].Name)
}
