package web

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
)

const indexTemplate = "index.gohtml"

//go:embed templates/*.gohtml
var templatesFS embed.FS

func LoadTemplates(r *gin.Engine) {
	r.SetHTMLTemplate(template.Must(template.New("").ParseFS(templatesFS, "templates/*.gohtml")))
}
