package validator

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"

	"cms-admin/pkg/slug"
)

var (
	initOnce  sync.Once
	sanitizer *bluemonday.Policy
)

// Init registers the custom binding tags with gin's validator and prepares
// the HTML sanitizer. It is safe to call more than once.
func Init() {
	initOnce.Do(func() {
		sanitizer = bluemonday.UGCPolicy()

		if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
			engine.RegisterValidation("slug_mode", validateSlugMode)
		}
	})
}

func SanitizeHTML(html string) string {
	Init()
	return sanitizer.Sanitize(html)
}

func validateSlugMode(fl validator.FieldLevel) bool {
	_, err := slug.ParseMode(fl.Field().String())
	return err == nil
}
