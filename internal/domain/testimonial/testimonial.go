// Package testimonial models client quotes shown on the portfolio,
// each illustrated by one entry of a fixed avatar catalog.
package testimonial

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio-admin/pkg/apperror"
	"portfolio-admin/pkg/formval"
)

type Testimonial struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"user_id"`
	Name      string    `json:"name" form:"name" validate:"required"`
	Position  string    `json:"position" form:"position" validate:"required"`
	Company   string    `json:"company" form:"company" validate:"required"`
	Avatar    string    `json:"avatar" form:"avatar" validate:"required,oneof=man_lineart_01 man_comic_01 man_pencilsketch_01 woman_lineart_01 woman_comic_01 woman_pencilsketch_01 person_doodle_01 person_artistic_01"`
	Text      string    `json:"text" form:"text" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Repository interface {
	Save(ctx context.Context, t *Testimonial) error
	Update(ctx context.Context, t *Testimonial) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id, ownerID uuid.UUID) (*Testimonial, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Testimonial, error)
}

var messages = map[string]string{
	"name.required":     "Le nom est requis",
	"position.required": "Le poste est requis",
	"company.required":  "L'entreprise est requise",
	"avatar.required":   "La sélection d'un avatar est requise.",
	"avatar.oneof":      "Veuillez sélectionner un avatar valide.",
	"text.required":     "Le texte du témoignage est requis",
}

// FromForm decodes a submitted testimonial form owned by ownerID.
func FromForm(ownerID uuid.UUID, form map[string]string) (*Testimonial, apperror.FieldErrors) {
	t := &Testimonial{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		Name:     form["name"],
		Position: form["position"],
		Company:  form["company"],
		Avatar:   form["avatar"],
		Text:     form["text"],
	}

	if fe := formval.Check(t, messages); fe != nil {
		return nil, fe
	}
	return t, nil
}
