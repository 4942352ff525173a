package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"portfolio-admin/internal/domain/personal"
	"portfolio-admin/internal/domain/project"
	"portfolio-admin/pkg/logger"
)

type ProjectRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool       *pgxpool.Pool
	pgContainer  *postgres.PostgresContainer
	testLogger   logger.Logger
	projectRepo  project.Repository
	personalRepo personal.Repository
	ownerID      uuid.UUID
	strangerID   uuid.UUID
}

func (s *ProjectRepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	s.testLogger = logger.NewNop()
	s.projectRepo = NewPostgresProjectRepo(s.dbPool, s.testLogger)
	s.personalRepo = NewPostgresPersonalRepo(s.dbPool, s.testLogger)

	s.ownerID = uuid.New()
	s.strangerID = uuid.New()
	query := `INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3)`
	for i, id := range []uuid.UUID{s.ownerID, s.strangerID} {
		email := []string{"owner@example.com", "stranger@example.com"}[i]
		if _, err := s.dbPool.Exec(ctx, query, id, email, "hashedpassword"); err != nil {
			s.T().Fatalf("Failed to seed user: %s", err)
		}
	}
}

func (s *ProjectRepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestProjectRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(ProjectRepoIntegrationTestSuite))
}

func (s *ProjectRepoIntegrationTestSuite) newProject(title string) *project.Project {
	now := time.Now().UTC()
	return &project.Project{
		ID:           uuid.New(),
		OwnerID:      s.ownerID,
		Title:        title,
		Description:  "Maison basse consommation",
		ImageURLs:    []string{"https://example.com/plan.png"},
		Category:     []string{"résidentiel", "durable"},
		Technologies: []string{"AutoCAD", "Revit"},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (s *ProjectRepoIntegrationTestSuite) Test_Save_And_FindByID() {
	ctx := context.Background()

	p := s.newProject("Maison Éco")
	s.NoError(s.projectRepo.Save(ctx, p))

	found, err := s.projectRepo.FindByID(ctx, p.ID, s.ownerID)

	s.NoError(err)
	s.NotNil(found)
	s.Equal(p.Title, found.Title)
	s.Equal(p.Category, found.Category)
	s.Equal(p.Technologies, found.Technologies)
}

func (s *ProjectRepoIntegrationTestSuite) Test_FindByID_ForeignOwner_IsNotFound() {
	ctx := context.Background()

	p := s.newProject("Tour Horizon")
	s.NoError(s.projectRepo.Save(ctx, p))

	found, err := s.projectRepo.FindByID(ctx, p.ID, s.strangerID)

	s.Error(err)
	s.Nil(found)
}

func (s *ProjectRepoIntegrationTestSuite) Test_Update_ForeignOwner_TouchesNothing() {
	ctx := context.Background()

	p := s.newProject("Pavillon Nord")
	s.NoError(s.projectRepo.Save(ctx, p))

	tampered := *p
	tampered.OwnerID = s.strangerID
	tampered.Title = "Hijacked"
	s.Error(s.projectRepo.Update(ctx, &tampered))

	found, err := s.projectRepo.FindByID(ctx, p.ID, s.ownerID)
	s.NoError(err)
	s.Equal("Pavillon Nord", found.Title)
}

func (s *ProjectRepoIntegrationTestSuite) Test_Delete_ScopedToOwner() {
	ctx := context.Background()

	p := s.newProject("Halle Centrale")
	s.NoError(s.projectRepo.Save(ctx, p))

	s.Error(s.projectRepo.Delete(ctx, p.ID, s.strangerID))
	s.NoError(s.projectRepo.Delete(ctx, p.ID, s.ownerID))

	_, err := s.projectRepo.FindByID(ctx, p.ID, s.ownerID)
	s.Error(err)
}

func (s *ProjectRepoIntegrationTestSuite) Test_ListByOwner_OnlyOwnRecords() {
	ctx := context.Background()

	mine := s.newProject("Atelier Sud")
	s.NoError(s.projectRepo.Save(ctx, mine))

	projects, err := s.projectRepo.ListByOwner(ctx, s.strangerID)

	s.NoError(err)
	s.Empty(projects)
}

func (s *ProjectRepoIntegrationTestSuite) Test_PersonalData_UpsertRoundTrip() {
	ctx := context.Background()

	absent, err := s.personalRepo.GetByOwner(ctx, s.ownerID)
	s.NoError(err)
	s.Nil(absent)

	data := &personal.PersonalData{
		ID:      s.ownerID,
		OwnerID: s.ownerID,
		Name:    "Sophie Martin",
		Title:   "Architecte DPLG",
		Email:   "sophie@example.com",
		Socials: []personal.Social{
			{ID: uuid.NewString(), URL: "https://linkedin.com/in/sophie", Icon: "linkedin"},
		},
		UpdatedAt: time.Now().UTC(),
	}
	s.NoError(s.personalRepo.Upsert(ctx, data))

	data.Title = "Architecte HMONP"
	s.NoError(s.personalRepo.Upsert(ctx, data))

	found, err := s.personalRepo.GetByOwner(ctx, s.ownerID)
	s.NoError(err)
	s.NotNil(found)
	s.Equal(s.ownerID, found.ID)
	s.Equal("Architecte HMONP", found.Title)
	s.Len(found.Socials, 1)
	s.Equal("linkedin", found.Socials[0].Icon)
}
