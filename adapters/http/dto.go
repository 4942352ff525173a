package http

import (
	"github.com/gin-gonic/gin"
)

// respondSuccess wraps mutation results in the envelope the admin forms
// expect.
func respondSuccess(c *gin.Context, status int, message string, data any) {
	out := gin.H{
		"success": true,
		"message": message,
	}
	if data != nil {
		out["data"] = data
	}
	c.JSON(status, out)
}

// formMap flattens the submitted form into the map the decoders work
// on, keeping the first value of each key.
func formMap(c *gin.Context) (map[string]string, error) {
	if err := c.Request.ParseForm(); err != nil {
		return nil, err
	}
	// no-op for urlencoded bodies
	_ = c.Request.ParseMultipartForm(32 << 20)

	form := map[string]string{}
	for key, values := range c.Request.PostForm {
		if len(values) > 0 {
			form[key] = values[0]
		}
	}
	if c.Request.MultipartForm != nil {
		for key, values := range c.Request.MultipartForm.Value {
			if len(values) > 0 {
				form[key] = values[0]
			}
		}
	}
	return form, nil
}
