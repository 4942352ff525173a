// Package skill models the owner's rated competencies.
package skill

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"portfolio-admin/pkg/apperror"
	"portfolio-admin/pkg/formval"
)

// Skill categories, case-sensitive.
const (
	CategoryConception = "conception"
	CategoryTechnique  = "technique"
	CategoryLogiciels  = "logiciels"
	CategoryGestion    = "gestion"
)

var Categories = []string{CategoryConception, CategoryTechnique, CategoryLogiciels, CategoryGestion}

type Skill struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"user_id"`
	Name      string    `json:"name" form:"name" validate:"required"`
	Level     int       `json:"level" form:"level" validate:"gte=0,lte=100"`
	Category  string    `json:"category" form:"category" validate:"required,oneof=conception technique logiciels gestion"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Repository interface {
	Save(ctx context.Context, s *Skill) error
	Update(ctx context.Context, s *Skill) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id, ownerID uuid.UUID) (*Skill, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Skill, error)
}

var messages = map[string]string{
	"name.required":     "Le nom de la compétence est requis",
	"level.gte":         "Le niveau doit être au moins 0",
	"level.lte":         "Le niveau doit être au plus 100",
	"category.required": "Veuillez sélectionner une catégorie valide.",
	"category.oneof":    "Veuillez sélectionner une catégorie valide.",
}

// FromForm decodes a submitted skill form owned by ownerID. The level
// arrives as a string and is coerced to an integer in [0,100].
func FromForm(ownerID uuid.UUID, form map[string]string) (*Skill, apperror.FieldErrors) {
	level, err := strconv.Atoi(form["level"])
	if err != nil {
		fe := apperror.FieldErrors{}
		fe.Add("level", "Le niveau doit être un nombre")
		return nil, fe
	}

	s := &Skill{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		Name:     form["name"],
		Level:    level,
		Category: form["category"],
	}

	if fe := formval.Check(s, messages); fe != nil {
		return nil, fe
	}
	return s, nil
}
