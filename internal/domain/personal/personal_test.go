package personal

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() map[string]string {
	return map[string]string{
		"name":            "Jean Moreau",
		"title":           "Architecte DPLG",
		"bio":             "Vingt ans de pratique entre Paris et Lyon.",
		"location":        "Lyon, France",
		"email":           "jean@example.com",
		"phone":           "+33 6 12 34 56 78",
		"profileImageUrl": "",
		"coverImageUrl":   "",
		"aboutMe":         "",
		"whoAmI":          "",
	}
}

func TestFromForm_OwnerIdentityAlwaysWins(t *testing.T) {
	ownerID := uuid.New()
	form := validForm()
	// a tampering client cannot write into another user's record
	form["userId"] = uuid.NewString()
	form["id"] = uuid.NewString()

	data, fe := FromForm(ownerID, form)
	require.Nil(t, fe)
	assert.Equal(t, ownerID, data.ID)
	assert.Equal(t, ownerID, data.OwnerID)
}

func TestFromForm_RequiredFields(t *testing.T) {
	form := validForm()
	form["name"] = ""
	form["phone"] = ""

	_, fe := FromForm(uuid.New(), form)
	require.NotNil(t, fe)
	assert.Contains(t, fe["name"], "Le nom est requis")
	assert.Contains(t, fe["phone"], "Le numéro de téléphone est requis")
}

func TestFromForm_EmailValidated(t *testing.T) {
	form := validForm()
	form["email"] = "pas-un-email"

	_, fe := FromForm(uuid.New(), form)
	require.NotNil(t, fe)
	assert.Contains(t, fe["email"], "Adresse email invalide")
}

func TestFromForm_ImageURLsAcceptEmptyOrValid(t *testing.T) {
	form := validForm()
	form["profileImageUrl"] = "https://example.com/me.jpg"
	form["coverImageUrl"] = ""

	data, fe := FromForm(uuid.New(), form)
	require.Nil(t, fe)
	assert.Equal(t, "https://example.com/me.jpg", data.ProfileImageURL)
	assert.Empty(t, data.CoverImageURL)

	form["coverImageUrl"] = "pas-une-url"
	_, fe = FromForm(uuid.New(), form)
	require.NotNil(t, fe)
	assert.Contains(t, fe["coverImageUrl"], "URL de l'image de couverture invalide")
}

func TestFromForm_SocialsParsedFromIndexedKeys(t *testing.T) {
	form := validForm()
	form["socials[0].url"] = "https://linkedin.com/in/jean"
	form["socials[0].icon"] = IconLinkedIn
	form["socials[1].url"] = "https://example.com"
	form["socials[1].icon"] = IconGlobe

	data, fe := FromForm(uuid.New(), form)
	require.Nil(t, fe)
	require.Len(t, data.Socials, 2)
	assert.Equal(t, IconLinkedIn, data.Socials[0].Icon)
	assert.NotEmpty(t, data.Socials[0].ID)
	assert.Equal(t, IconGlobe, data.Socials[1].Icon)
}

func TestFromForm_SocialEntryMissingHalfIsDropped(t *testing.T) {
	form := validForm()
	form["socials[0].url"] = "https://linkedin.com/in/jean"
	form["socials[0].icon"] = ""

	data, fe := FromForm(uuid.New(), form)
	require.Nil(t, fe)
	assert.Empty(t, data.Socials)
}

func TestFromForm_RejectsUnknownSocialIcon(t *testing.T) {
	form := validForm()
	form["socials[0].url"] = "https://example.com"
	form["socials[0].icon"] = "myspace"

	_, fe := FromForm(uuid.New(), form)
	require.NotNil(t, fe)
	assert.Contains(t, fe["socials[0].icon"], "Veuillez sélectionner une icône valide.")
}
