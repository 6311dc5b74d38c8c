package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"user-form/config"
	"user-form/internal/application/ports"
	"user-form/internal/domain/user"
	"user-form/internal/interface/api/rest"
	dto "user-form/internal/interface/api/rest/dto/user"
	"user-form/internal/interface/api/rest/middleware"
)

type FormController struct {
	sessions ports.FormSessions
	logger   *zap.Logger
	ui       config.UI
}

func NewFormController(
	r *gin.Engine,
	sessions ports.FormSessions,
	logger *zap.Logger,
	ui config.UI,
) *FormController {
	fc := &FormController{
		sessions: sessions,
		logger:   logger,
		ui:       ui,
	}

	r.GET(rest.RouteIndex, fc.IndexHandler)
	r.POST(rest.RouteUsers, fc.SubmitHandler)
	r.POST(rest.RouteFetchUsers, fc.FetchUsersHandler)

	return fc
}

// IndexHandler always starts a fresh form: a reload drops the previous list.
func (fc *FormController) IndexHandler(c *gin.Context) {
	uf := fc.openForm(c)

	fc.render(c, http.StatusOK, uf, nil, "")
}

func (fc *FormController) SubmitHandler(c *gin.Context) {
	uf := fc.currentForm(c)

	var req dto.Request
	if err := c.ShouldBind(&req); err != nil {
		fc.logger.Debug("submit: bad form body", zap.Error(err))
		fc.render(c, http.StatusBadRequest, uf, nil, "")
		return
	}

	err := uf.Submit(c.Request.Context(), dto.ToDomainUser(req))

	var vErr *user.ValidationError
	switch {
	case errors.As(err, &vErr):
		fc.render(c, http.StatusUnprocessableEntity, uf, nil, "")
	case err != nil:
		_ = c.Error(err)
		fc.render(c, http.StatusBadGateway, uf, err, "")
	default:
		// the refetch may still have failed
		fc.render(c, http.StatusOK, uf, uf.Snapshot().Err, "User submitted.")
	}
}

func (fc *FormController) FetchUsersHandler(c *gin.Context) {
	uf := fc.currentForm(c)

	if err := uf.FetchUsers(c.Request.Context()); err != nil {
		_ = c.Error(err)
		fc.render(c, http.StatusBadGateway, uf, err, "")
		return
	}

	fc.render(c, http.StatusOK, uf, nil, "")
}

func (fc *FormController) render(c *gin.Context, status int, uf ports.UserForm, err error, success string) {
	pv := newPageView(fc.ui, uf.Snapshot())
	pv.Notice = noticeFor(err)
	pv.Success = success

	c.HTML(status, indexTemplate, pv)
}

func (fc *FormController) openForm(c *gin.Context) ports.UserForm {
	id, uf := fc.sessions.Open()

	c.SetSameSite(http.SameSiteLaxMode)
	// browser session cookie; server side expiry is the sessions TTL
	c.SetCookie(middleware.SessionCookie, id.String(), 0, "/", "", false, true)

	return uf
}

// currentForm resolves the session cookie; unknown or expired sessions get a
// fresh form.
func (fc *FormController) currentForm(c *gin.Context) ports.UserForm {
	raw, err := c.Cookie(middleware.SessionCookie)
	if err == nil {
		if id, perr := uuid.Parse(raw); perr == nil {
			if uf, ok := fc.sessions.Lookup(id); ok {
				return uf
			}
		}
	}

	return fc.openForm(c)
}
