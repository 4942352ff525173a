package content

import (
	"time"

	"github.com/google/uuid"

	"portfolio-admin/internal/application/service"
	"portfolio-admin/internal/domain/project"
	"portfolio-admin/internal/domain/skill"
	"portfolio-admin/internal/domain/testimonial"
	"portfolio-admin/pkg/logger"
)

func NewProjects(repo project.Repository, events service.ContentEventPublisher, log logger.Logger) *CRUD[project.Project] {
	return &CRUD[project.Project]{
		kind:   "project",
		repo:   repo,
		decode: project.FromForm,
		merge: func(existing, incoming *project.Project) {
			existing.Title = incoming.Title
			existing.Description = incoming.Description
			existing.ImageURLs = incoming.ImageURLs
			existing.Category = incoming.Category
			existing.Technologies = incoming.Technologies
			existing.DemoURL = incoming.DemoURL
			existing.RepoURL = incoming.RepoURL
		},
		touch: func(p *project.Project, now time.Time, created bool) {
			if created {
				p.CreatedAt = now
			}
			p.UpdatedAt = now
		},
		id:     func(p *project.Project) uuid.UUID { return p.ID },
		events: events,
		logger: log,
	}
}

func NewSkills(repo skill.Repository, events service.ContentEventPublisher, log logger.Logger) *CRUD[skill.Skill] {
	return &CRUD[skill.Skill]{
		kind:   "skill",
		repo:   repo,
		decode: skill.FromForm,
		merge: func(existing, incoming *skill.Skill) {
			existing.Name = incoming.Name
			existing.Level = incoming.Level
			existing.Category = incoming.Category
		},
		touch: func(s *skill.Skill, now time.Time, created bool) {
			if created {
				s.CreatedAt = now
			}
			s.UpdatedAt = now
		},
		id:     func(s *skill.Skill) uuid.UUID { return s.ID },
		events: events,
		logger: log,
	}
}

func NewTestimonials(repo testimonial.Repository, events service.ContentEventPublisher, log logger.Logger) *CRUD[testimonial.Testimonial] {
	return &CRUD[testimonial.Testimonial]{
		kind:   "testimonial",
		repo:   repo,
		decode: testimonial.FromForm,
		merge: func(existing, incoming *testimonial.Testimonial) {
			existing.Name = incoming.Name
			existing.Position = incoming.Position
			existing.Company = incoming.Company
			existing.Avatar = incoming.Avatar
			existing.Text = incoming.Text
		},
		touch: func(t *testimonial.Testimonial, now time.Time, created bool) {
			if created {
				t.CreatedAt = now
			}
			t.UpdatedAt = now
		},
		id:     func(t *testimonial.Testimonial) uuid.UUID { return t.ID },
		events: events,
		logger: log,
	}
}
