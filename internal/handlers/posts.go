package handlers

import (
	"errors"
	"net/http"

	"technews/internal/models"
	"technews/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	fieldTitle   = "title"
	fieldContent = "content"
	statusOK     = "ok"
)

func postInput(c *gin.Context) service.PostInput {
	in := formValues(c, fieldTitle, fieldContent)
	return service.PostInput{Title: in[fieldTitle], Content: in[fieldContent]}
}

// denied handles the authorization outcomes every post mutation shares:
// missing posts and foreign posts both send the user home.
func (h *Handler) denied(c *gin.Context, err error, id int) bool {
	if !errors.Is(err, service.ErrPostNotFound) && !errors.Is(err, service.ErrNotOwner) {
		return false
	}
	if h.log != nil {
		who, _ := currentIdentity(c)
		h.log.Infow("post_access_denied", "post_id", id, "user_id", who.UserID, "reason", err.Error())
	}
	redirectHome(c)
	return true
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

// @Summary      Home
// @Description  Dashboard with the user's own posts (newest first) or the landing page for anonymous visitors.
// @Tags         posts
// @Produce      html
// @Success      200
// @Router       / [get]
func (h *Handler) home(c *gin.Context) {
	who, ok := currentIdentity(c)
	if !ok {
		h.render(c, http.StatusOK, viewIndex, page{})
		return
	}
	posts, err := h.services.ListByAuthor(c.Request.Context(), who.UserID)
	if err != nil {
		h.renderError(c, "post_list_failed", err, "user_id", who.UserID)
		return
	}
	h.render(c, http.StatusOK, viewDashboard, page{Posts: posts})
}

// @Summary      View post
// @Tags         posts
// @Produce      html
// @Param        id  path  int  true  "Post ID"
// @Success      200
// @Success      302  "post not found"
// @Router       /posts/{id} [get]
func (h *Handler) viewPost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		redirectHome(c)
		return
	}
	post, err := h.services.View(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			redirectHome(c)
			return
		}
		h.renderError(c, "post_view_failed", err, "post_id", id)
		return
	}

	who, authed := currentIdentity(c)
	h.render(c, http.StatusOK, viewSinglePost, page{
		Post:     post,
		IsAuthor: authed && who.UserID == post.AuthorID,
	})
}

// @Summary      Composer
// @Tags         posts
// @Produce      html
// @Success      200
// @Router       /create-post [get]
func (h *Handler) showCreatePost(c *gin.Context) {
	h.render(c, http.StatusOK, viewCreatePost, page{})
}

// @Summary      Create post
// @Description  Title and content are stored with all HTML removed; content is rendered as Markdown when viewed.
// @Tags         posts
// @Accept       x-www-form-urlencoded,json
// @Produce      html
// @Param        title    formData  string  true  "Title"
// @Param        content  formData  string  true  "Markdown body"
// @Success      302  "redirect to the new post"
// @Failure      200  "composer with errors"
// @Router       /create-post [post]
func (h *Handler) createPost(c *gin.Context) {
	who, _ := currentIdentity(c)
	in := postInput(c)

	id, err := h.services.Create(c.Request.Context(), who, in)
	if err != nil {
		if msgs, ok := validationMessages(err); ok {
			h.render(c, http.StatusOK, viewCreatePost, page{Errors: msgs, Form: in})
			return
		}
		h.renderError(c, "post_create_failed", err, "user_id", who.UserID)
		return
	}
	if h.log != nil {
		h.log.Infow("post_created", "post_id", id, "user_id", who.UserID)
	}
	redirect(c, postPath(id))
}

// @Summary      Editor
// @Tags         posts
// @Produce      html
// @Param        id  path  int  true  "Post ID"
// @Success      200
// @Success      302  "missing post or not the author"
// @Router       /edit-post/{id} [get]
func (h *Handler) showEditPost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		redirectHome(c)
		return
	}
	who, _ := currentIdentity(c)
	post, err := h.services.GetOwned(c.Request.Context(), who, id)
	if err != nil {
		if h.denied(c, err, id) {
			return
		}
		h.renderError(c, "post_edit_load_failed", err, "post_id", id)
		return
	}
	h.render(c, http.StatusOK, viewEditPost, page{
		Post: &models.PostWithAuthor{Post: *post, AuthorUsername: who.Username},
		Form: service.PostInput{Title: post.Title, Content: post.Content},
	})
}

// @Summary      Update post
// @Tags         posts
// @Accept       x-www-form-urlencoded,json
// @Produce      html
// @Param        id       path      int     true  "Post ID"
// @Param        title    formData  string  true  "Title"
// @Param        content  formData  string  true  "Markdown body"
// @Success      302
// @Failure      200  "editor with errors"
// @Router       /edit-post/{id} [post]
func (h *Handler) editPost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		redirectHome(c)
		return
	}
	who, _ := currentIdentity(c)
	in := postInput(c)

	err := h.services.Update(c.Request.Context(), who, id, in)
	if err != nil {
		if h.denied(c, err, id) {
			return
		}
		if msgs, ok := validationMessages(err); ok {
			h.render(c, http.StatusOK, viewEditPost, page{
				Errors: msgs,
				Post:   &models.PostWithAuthor{Post: models.Post{ID: id, AuthorID: who.UserID}, AuthorUsername: who.Username},
				Form:   in,
			})
			return
		}
		h.renderError(c, "post_update_failed", err, "post_id", id)
		return
	}
	redirect(c, postPath(id))
}

// @Summary      Delete post
// @Tags         posts
// @Param        id  path  int  true  "Post ID"
// @Success      302
// @Router       /delete-post/{id} [post]
func (h *Handler) deletePost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		redirectHome(c)
		return
	}
	who, _ := currentIdentity(c)

	if err := h.services.Delete(c.Request.Context(), who, id); err != nil {
		if h.denied(c, err, id) {
			return
		}
		h.renderError(c, "post_delete_failed", err, "post_id", id)
		return
	}
	if h.log != nil {
		h.log.Infow("post_deleted", "post_id", id, "user_id", who.UserID)
	}
	redirectHome(c)
}
