// Package personal holds the single per-owner identity record of the
// portfolio: who the owner is, how to reach them, and the imagery shown
// on the public site.
package personal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"portfolio-admin/pkg/apperror"
	"portfolio-admin/pkg/formval"
)

// Social icons are a closed, case-sensitive set.
const (
	IconLinkedIn  = "linkedin"
	IconInstagram = "instagram"
	IconTwitter   = "twitter"
	IconFacebook  = "facebook"
	IconGlobe     = "globe"
)

type Social struct {
	ID   string `json:"id" form:"id"`
	URL  string `json:"url" form:"url" validate:"required,url"`
	Icon string `json:"icon" form:"icon" validate:"required,oneof=linkedin instagram twitter facebook globe"`
}

// PersonalData is keyed by its owner: ID is the document key and must
// always equal OwnerID. A mismatch is a hard failure, never corrected.
type PersonalData struct {
	ID              uuid.UUID `json:"id"`
	OwnerID         uuid.UUID `json:"user_id"`
	Name            string    `json:"name" form:"name" validate:"required"`
	Title           string    `json:"title" form:"title" validate:"required"`
	Bio             string    `json:"bio" form:"bio" validate:"required"`
	Location        string    `json:"location" form:"location" validate:"required"`
	Email           string    `json:"email" form:"email" validate:"required,email"`
	Phone           string    `json:"phone" form:"phone" validate:"required"`
	Socials         []Social  `json:"socials" form:"socials" validate:"omitempty,dive"`
	ProfileImageURL string    `json:"profile_image_url" form:"profileImageUrl" validate:"omitempty,url"`
	CoverImageURL   string    `json:"cover_image_url" form:"coverImageUrl" validate:"omitempty,url"`
	AboutMe         string    `json:"about_me" form:"aboutMe"`
	WhoAmI          string    `json:"who_am_i" form:"whoAmI"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Repository interface {
	// GetByOwner returns (nil, nil) when no record exists.
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*PersonalData, error)
	Upsert(ctx context.Context, data *PersonalData) error
}

var messages = map[string]string{
	"name.required":       "Le nom est requis",
	"title.required":      "Le titre est requis",
	"bio.required":        "La biographie est requise",
	"location.required":   "La localisation est requise",
	"email.required":      "Adresse email invalide",
	"email.email":         "Adresse email invalide",
	"phone.required":      "Le numéro de téléphone est requis",
	"socials.url":         "URL invalide",
	"socials.icon":        "Veuillez sélectionner une icône valide.",
	"profileImageUrl.url": "URL de l'image de profil invalide",
	"coverImageUrl.url":   "URL de l'image de couverture invalide",
}

// FromForm decodes a submitted form into a PersonalData record owned by
// ownerID. The caller identity always wins over anything the client put
// in the form. Socials arrive as indexed keys socials[i].{id,url,icon}.
func FromForm(ownerID uuid.UUID, form map[string]string) (*PersonalData, apperror.FieldErrors) {
	data := &PersonalData{
		ID:              ownerID,
		OwnerID:         ownerID,
		Name:            form["name"],
		Title:           form["title"],
		Bio:             form["bio"],
		Location:        form["location"],
		Email:           form["email"],
		Phone:           form["phone"],
		Socials:         socialsFromForm(form),
		ProfileImageURL: form["profileImageUrl"],
		CoverImageURL:   form["coverImageUrl"],
		AboutMe:         form["aboutMe"],
		WhoAmI:          form["whoAmI"],
	}

	if fe := formval.Check(data, messages); fe != nil {
		return nil, fe
	}
	return data, nil
}

func socialsFromForm(form map[string]string) []Social {
	socials := []Social{}
	for i := 0; ; i++ {
		url, hasURL := form[fmt.Sprintf("socials[%d].url", i)]
		icon, hasIcon := form[fmt.Sprintf("socials[%d].icon", i)]
		if !hasURL && !hasIcon {
			break
		}
		// an entry missing either half is dropped, not rejected
		if url == "" || icon == "" {
			continue
		}
		id := form[fmt.Sprintf("socials[%d].id", i)]
		if id == "" {
			id = uuid.NewString()
		}
		socials = append(socials, Social{ID: id, URL: url, Icon: icon})
	}
	return socials
}
