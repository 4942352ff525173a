// Package project models portfolio projects: free-form work entries
// with gallery images and CSV-derived category/technology lists.
package project

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio-admin/pkg/apperror"
	"portfolio-admin/pkg/formval"
)

// PlaceholderImageURL is the reserved gallery placeholder injected by
// the form UI; it must never reach the store.
const PlaceholderImageURL = "https://placehold.co/100x100.png"

// MaxImages caps the gallery size. Exceeding it is a validation
// failure, not a silent truncation.
const MaxImages = 10

type Project struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"user_id"`
	Title        string    `json:"title" form:"title" validate:"required"`
	Description  string    `json:"description" form:"description" validate:"required"`
	ImageURLs    []string  `json:"image_urls" form:"imageUrls" validate:"max=10,dive,url"`
	Category     []string  `json:"category" form:"category"`
	Technologies []string  `json:"technologies" form:"technologies"`
	DemoURL      string    `json:"demo_url" form:"demoUrl" validate:"omitempty,url"`
	RepoURL      string    `json:"repo_url" form:"repoUrl" validate:"omitempty,url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Repository interface {
	Save(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
	// FindByID filters on both id and owner, so a foreign record is
	// indistinguishable from a missing one.
	FindByID(ctx context.Context, id, ownerID uuid.UUID) (*Project, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Project, error)
}

var messages = map[string]string{
	"title.required":       "Le titre est requis",
	"description.required": "La description est requise",
	"imageUrls.max":        "Vous pouvez télécharger un maximum de 10 images.",
	"imageUrls.url":        "Chaque URL d'image doit être une URL valide (ex: https://example.com/image.jpg).",
	"demoUrl.url":          "URL de démo invalide",
	"repoUrl.url":          "URL du dépôt invalide",
}

// FromForm decodes a submitted project form owned by ownerID.
// imageUrls/category/technologies arrive comma-joined; segments are
// trimmed and empties dropped, and the reserved placeholder image is
// discarded before validation.
func FromForm(ownerID uuid.UUID, form map[string]string) (*Project, apperror.FieldErrors) {
	p := &Project{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Title:        form["title"],
		Description:  form["description"],
		ImageURLs:    imageURLsFromForm(form["imageUrls"]),
		Category:     formval.SplitCSV(form["category"]),
		Technologies: formval.SplitCSV(form["technologies"]),
		DemoURL:      form["demoUrl"],
		RepoURL:      form["repoUrl"],
	}

	if fe := formval.Check(p, messages); fe != nil {
		return nil, fe
	}
	return p, nil
}

func imageURLsFromForm(raw string) []string {
	urls := []string{}
	for _, u := range formval.SplitCSV(raw) {
		if u == PlaceholderImageURL {
			continue
		}
		urls = append(urls, u)
	}
	return urls
}
