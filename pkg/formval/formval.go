// Package formval translates validator tag failures into the per-field
// message maps carried by apperror.NewValidationFailed.
package formval

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"portfolio-admin/pkg/apperror"
)

var validate = newValidator()

var sliceIndexRe = regexp.MustCompile(`\[\d+\]`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Check runs tag validation on s. Messages are looked up by
// "<field>.<tag>" first, then by "<field>"; slice indexes are stripped
// for the lookup but kept in the reported field path.
func Check(s any, messages map[string]string) apperror.FieldErrors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fe := apperror.FieldErrors{}
		fe.Add("_form", "Les données fournies sont invalides.")
		return fe
	}

	fe := apperror.FieldErrors{}
	for _, e := range verrs {
		path := e.Namespace()
		if i := strings.Index(path, "."); i >= 0 {
			path = path[i+1:]
		}
		base := sliceIndexRe.ReplaceAllString(path, "")

		msg := messages[base+"."+e.Tag()]
		if msg == "" {
			msg = messages[base]
		}
		if msg == "" {
			msg = fmt.Sprintf("Le champ '%s' est invalide.", path)
		}
		fe.Add(path, msg)
	}
	return fe
}
