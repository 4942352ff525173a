package testimonial

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() map[string]string {
	return map[string]string{
		"name":     "Claire Dubois",
		"position": "Directrice de projet",
		"company":  "Atelier Nord",
		"avatar":   "woman_comic_01",
		"text":     "Une collaboration exemplaire du début à la fin.",
	}
}

func TestFromForm_Valid(t *testing.T) {
	ownerID := uuid.New()

	tm, fe := FromForm(ownerID, validForm())
	require.Nil(t, fe)
	assert.Equal(t, ownerID, tm.OwnerID)
	assert.Equal(t, "woman_comic_01", tm.Avatar)
}

func TestFromForm_RequiredFields(t *testing.T) {
	form := validForm()
	form["position"] = ""
	form["text"] = ""

	_, fe := FromForm(uuid.New(), form)
	require.NotNil(t, fe)
	assert.Contains(t, fe["position"], "Le poste est requis")
	assert.Contains(t, fe["text"], "Le texte du témoignage est requis")
}

func TestFromForm_RejectsUnknownAvatar(t *testing.T) {
	form := validForm()
	form["avatar"] = "robot_3d_01"

	_, fe := FromForm(uuid.New(), form)
	require.NotNil(t, fe)
	assert.Contains(t, fe["avatar"], "Veuillez sélectionner un avatar valide.")
}

func TestAvatarDetails_KnownKey(t *testing.T) {
	opt := AvatarDetails("person_doodle_01")
	assert.Equal(t, "Personne - Style Doodle", opt.Name)
	assert.Equal(t, "person doodle", opt.Hint)
}

func TestAvatarDetails_FallsBackToFirstEntry(t *testing.T) {
	for _, key := range []string{"", "unknown_key"} {
		opt := AvatarDetails(key)
		assert.Equal(t, AvatarOptions[0].Key, opt.Key)
	}
}
