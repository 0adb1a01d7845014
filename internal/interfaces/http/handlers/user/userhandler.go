package user

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"zenmai/internal/application/user/usecases"
	"zenmai/internal/interfaces/http/handlers/common"
	"zenmai/internal/interfaces/http/middleware"
	"zenmai/internal/shared/errors"
	"zenmai/internal/shared/logger"
	"zenmai/internal/shared/utils"
)

// UserForm carries the fields of the registration and profile-edit forms.
type UserForm struct {
	UserID         string `form:"user_id"`
	UserName       string `form:"user_name"`
	Password       string `form:"password"`
	PasswordRetype string `form:"password_retype"`
}

type LoginForm struct {
	UserID   string `form:"user_id"`
	Password string `form:"password"`
	Next     string `form:"next"`
}

type UserHandler struct {
	registerUserUC     usecases.RegisterUserExecutor
	authenticateUserUC usecases.AuthenticateUserExecutor
	getUserUC          usecases.GetUserExecutor
	updateProfileUC    usecases.UpdateProfileExecutor
	logger             logger.Interface
}

func NewUserHandler(
	registerUserUC usecases.RegisterUserExecutor,
	authenticateUserUC usecases.AuthenticateUserExecutor,
	getUserUC usecases.GetUserExecutor,
	updateProfileUC usecases.UpdateProfileExecutor,
) *UserHandler {
	return &UserHandler{
		registerUserUC:     registerUserUC,
		authenticateUserUC: authenticateUserUC,
		getUserUC:          getUserUC,
		updateProfileUC:    updateProfileUC,
		logger:             logger.NewLogger(),
	}
}

// ShowLogin handles GET /user/login/
func (h *UserHandler) ShowLogin(c *gin.Context) {
	common.Render(c, http.StatusOK, "login.html", gin.H{
		"Next": c.Query("next"),
	})
}

// Login handles POST /user/login/
func (h *UserHandler) Login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		common.RenderError(c, h.logger, errors.NewBadRequestError("invalid form data"))
		return
	}

	result, err := h.authenticateUserUC.Execute(c.Request.Context(), usecases.AuthenticateUserCommand{
		ID:       form.UserID,
		Password: form.Password,
	})
	if err != nil {
		common.RenderError(c, h.logger, err)
		return
	}

	if !result.Authenticated {
		common.Flash(c, common.FlashWarning, "id or password is incorrect.")
		c.Redirect(http.StatusFound, "/user/login/")
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionKeyUserID, result.UserID)
	if err := session.Save(); err != nil {
		common.RenderError(c, h.logger, errors.NewInternalError("failed to save session", err.Error()))
		return
	}

	target := utils.SafeRedirectTarget(form.Next, c.Request, "/")
	c.Redirect(http.StatusFound, target)
}

// Logout handles GET /user/logout/
func (h *UserHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(middleware.SessionKeyUserID)
	if err := session.Save(); err != nil {
		h.logger.Warnw("failed to save session on logout", "error", err)
	}
	c.Redirect(http.StatusFound, "/")
}

// ShowRegister handles GET /user/new/
func (h *UserHandler) ShowRegister(c *gin.Context) {
	common.Render(c, http.StatusOK, "new_user.html", nil)
}

// Register handles POST /user/new/
func (h *UserHandler) Register(c *gin.Context) {
	var form UserForm
	if err := c.ShouldBind(&form); err != nil {
		common.RenderError(c, h.logger, errors.NewBadRequestError("invalid form data"))
		return
	}

	result, err := h.registerUserUC.Execute(c.Request.Context(), usecases.RegisterUserCommand{
		ID:             form.UserID,
		Name:           form.UserName,
		Password:       form.Password,
		PasswordRetype: form.PasswordRetype,
	})
	if err != nil {
		if errors.IsValidationError(err) {
			common.Flash(c, common.FlashWarning, errors.GetAppError(err).Message)
			c.Redirect(http.StatusFound, "/user/new/")
			return
		}
		common.RenderError(c, h.logger, err)
		return
	}

	common.Flash(c, common.FlashSuccess,
		fmt.Sprintf("user '%s (id:%s)' is registered.", result.Name, result.ID))
	c.Redirect(http.StatusFound, "/user/login/")
}

// ShowEdit handles GET /user/edit/
func (h *UserHandler) ShowEdit(c *gin.Context) {
	current, err := h.getUserUC.Execute(c.Request.Context(), usecases.GetUserQuery{
		UserID: middleware.CurrentUserID(c),
	})
	if err != nil {
		common.RenderError(c, h.logger, err)
		return
	}

	common.Render(c, http.StatusOK, "edit_user.html", gin.H{
		"User": current,
	})
}

// Edit handles POST /user/edit/
func (h *UserHandler) Edit(c *gin.Context) {
	var form UserForm
	if err := c.ShouldBind(&form); err != nil {
		common.RenderError(c, h.logger, errors.NewBadRequestError("invalid form data"))
		return
	}

	result, err := h.updateProfileUC.Execute(c.Request.Context(), usecases.UpdateProfileCommand{
		UserID:         middleware.CurrentUserID(c),
		Name:           form.UserName,
		Password:       form.Password,
		PasswordRetype: form.PasswordRetype,
	})
	if err != nil {
		if errors.IsValidationError(err) {
			common.Flash(c, common.FlashWarning, errors.GetAppError(err).Message)
			c.Redirect(http.StatusFound, "/user/edit/")
			return
		}
		common.RenderError(c, h.logger, err)
		return
	}

	common.Flash(c, common.FlashSuccess,
		fmt.Sprintf("user '%s (id:%s)' is updated.", result.Name, result.ID))
	c.Redirect(http.StatusFound, "/user/edit/")
}
