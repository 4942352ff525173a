package testimonial

// AvatarOption is one entry of the fixed avatar catalog. Hint feeds
// future image suggestions and is kept simple and distinct per entry.
type AvatarOption struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Hint string `json:"hint"`
}

var AvatarOptions = []AvatarOption{
	{Key: "man_lineart_01", Name: "Homme - Style Linéaire", URL: "https://placehold.co/100x100.png", Hint: "man lineart"},
	{Key: "man_comic_01", Name: "Homme - Style BD", URL: "https://placehold.co/100x100.png", Hint: "man comic"},
	{Key: "man_pencilsketch_01", Name: "Homme - Croquis Crayon", URL: "https://placehold.co/100x100.png", Hint: "man pencilsketch"},
	{Key: "woman_lineart_01", Name: "Femme - Style Linéaire", URL: "https://placehold.co/100x100.png", Hint: "woman lineart"},
	{Key: "woman_comic_01", Name: "Femme - Style BD", URL: "https://placehold.co/100x100.png", Hint: "woman comic"},
	{Key: "woman_pencilsketch_01", Name: "Femme - Croquis Crayon", URL: "https://placehold.co/100x100.png", Hint: "woman pencilsketch"},
	{Key: "person_doodle_01", Name: "Personne - Style Doodle", URL: "https://placehold.co/100x100.png", Hint: "person doodle"},
	{Key: "person_artistic_01", Name: "Personne - Style Artistique", URL: "https://placehold.co/100x100.png", Hint: "person artistic"},
}

// AvatarDetails resolves a catalog key to its display metadata, falling
// back to the first catalog entry for unknown or empty keys.
func AvatarDetails(key string) AvatarOption {
	for _, opt := range AvatarOptions {
		if opt.Key == key {
			return opt
		}
	}
	return AvatarOptions[0]
}
