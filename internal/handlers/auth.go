package handlers

import (
	"errors"
	"net/http"

	"technews/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	fieldUsername = "username"
	fieldPassword = "password"
)

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.opts.CookieName, token, int(h.opts.SessionTTL.Seconds()), "/", "", h.opts.SecureCookie, true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.opts.CookieName, "", -1, "/", "", h.opts.SecureCookie, true)
}

// @Summary      Login page
// @Tags         auth
// @Produce      html
// @Success      200
// @Router       /login [get]
func (h *Handler) showLogin(c *gin.Context) {
	h.render(c, http.StatusOK, viewLogin, page{})
}

// @Summary      Register
// @Description  Creates the account, sets the session cookie and redirects home. Failed rules are listed on the re-rendered landing page.
// @Tags         auth
// @Accept       x-www-form-urlencoded,json
// @Produce      html
// @Param        username  formData  string  true  "3-10 letters or digits"
// @Param        password  formData  string  true  "7-17 characters"
// @Success      302
// @Failure      200  "landing page with errors"
// @Router       /register [post]
func (h *Handler) register(c *gin.Context) {
	in := formValues(c, fieldUsername, fieldPassword)

	token, err := h.services.SignUp(c.Request.Context(), in[fieldUsername], in[fieldPassword])
	if err != nil {
		if msgs, ok := validationMessages(err); ok {
			if h.log != nil {
				h.log.Infow("auth_sign_up_rejected", "username", in[fieldUsername], "errors", msgs)
			}
			h.render(c, http.StatusOK, viewIndex, page{Errors: msgs})
			return
		}
		h.renderError(c, "auth_sign_up_failed", err, "username", in[fieldUsername])
		return
	}

	h.setSessionCookie(c, token)
	redirectHome(c)
}

// @Summary      Log in
// @Tags         auth
// @Accept       x-www-form-urlencoded,json
// @Produce      html
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      302
// @Failure      200  "login page with a generic error"
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	in := formValues(c, fieldUsername, fieldPassword)

	token, err := h.services.GenerateToken(c.Request.Context(), in[fieldUsername], in[fieldPassword])
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			if h.log != nil {
				h.log.Infow("auth_sign_in_failed", "username", in[fieldUsername], "err", err)
			}
			h.render(c, http.StatusOK, viewLogin, page{Errors: []string{service.MsgInvalidCredential}})
			return
		}
		h.renderError(c, "auth_sign_in_error", err, "username", in[fieldUsername])
		return
	}

	h.setSessionCookie(c, token)
	redirectHome(c)
}

// @Summary      Log out
// @Tags         auth
// @Success      302
// @Router       /logout [get]
func (h *Handler) logout(c *gin.Context) {
	h.clearSessionCookie(c)
	redirectHome(c)
}
