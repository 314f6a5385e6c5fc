package handlers

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"technews/internal/markup"
	"technews/internal/models"
	"technews/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

//go:embed templates/*.html
var templateFS embed.FS

// View names.
const (
	viewIndex      = "index.html"
	viewLogin      = "login.html"
	viewDashboard  = "dashboard.html"
	viewSinglePost = "single-post.html"
	viewCreatePost = "create-post.html"
	viewEditPost   = "edit-post.html"
	viewError      = "error.html"
)

const displayDateLayout = "Jan 2, 2006"

var views = template.Must(template.New("").Funcs(template.FuncMap{
	// user content is stored as plain text; markup is expanded and filtered here
	"markup": func(s string) template.HTML { return template.HTML(markup.RenderMarkup(s)) },
	// stored text is entity-escaped; decode it for display and let the template escape again
	"plain": markup.PlainText,
	"date":   func(t time.Time) string { return t.Format(displayDateLayout) },
}).ParseFS(templateFS, "templates/*.html"))

// page is the data every view receives.
type page struct {
	User     *service.Identity
	Errors   []string
	Posts    []models.Post
	Post     *models.PostWithAuthor
	IsAuthor bool
	Form     service.PostInput
}

func (h *Handler) render(c *gin.Context, status int, name string, p page) {
	if id, ok := currentIdentity(c); ok {
		p.User = &id
	}
	c.HTML(status, name, p)
}

// renderError logs err and answers with a generic 500 page.
func (h *Handler) renderError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	if h.log != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	h.render(c, http.StatusInternalServerError, viewError, page{})
}

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}

func redirectHome(c *gin.Context) {
	redirect(c, "/")
}

func postPath(id int) string {
	return "/posts/" + strconv.Itoa(id)
}

// postID parses the :id path parameter.
func postID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// validationMessages extracts the messages of a *service.ValidationError.
func validationMessages(err error) ([]string, bool) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		return verr.Messages, true
	}
	return nil, false
}

// formValues reads string fields from a form or JSON body. Missing or
// non-string values come back as "".
func formValues(c *gin.Context, keys ...string) map[string]string {
	out := make(map[string]string, len(keys))
	if c.ContentType() == binding.MIMEJSON {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err == nil {
			for _, k := range keys {
				if s, ok := body[k].(string); ok {
					out[k] = s
				}
			}
		}
	} else {
		for _, k := range keys {
			out[k] = c.PostForm(k)
		}
	}
	for _, k := range keys {
		if _, ok := out[k]; !ok {
			out[k] = ""
		}
	}
	return out
}
