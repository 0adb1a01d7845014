package issue

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"zenmai/internal/application/issue/usecases"
	"zenmai/internal/interfaces/http/handlers/common"
	"zenmai/internal/interfaces/http/middleware"
	"zenmai/internal/shared/errors"
	"zenmai/internal/shared/logger"
)

type IssueHandler struct {
	createIssueUC        usecases.CreateIssueExecutor
	addCommentUC         usecases.AddCommentExecutor
	getIssueUC           usecases.GetIssueExecutor
	listIssuesUC         usecases.ListIssuesExecutor
	listStatesUC         usecases.ListStatesExecutor
	downloadAttachmentUC usecases.DownloadAttachmentExecutor
	logger               logger.Interface
}

func NewIssueHandler(
	createIssueUC usecases.CreateIssueExecutor,
	addCommentUC usecases.AddCommentExecutor,
	getIssueUC usecases.GetIssueExecutor,
	listIssuesUC usecases.ListIssuesExecutor,
	listStatesUC usecases.ListStatesExecutor,
	downloadAttachmentUC usecases.DownloadAttachmentExecutor,
) *IssueHandler {
	return &IssueHandler{
		createIssueUC:        createIssueUC,
		addCommentUC:         addCommentUC,
		getIssueUC:           getIssueUC,
		listIssuesUC:         listIssuesUC,
		listStatesUC:         listStatesUC,
		downloadAttachmentUC: downloadAttachmentUC,
		logger:               logger.NewLogger(),
	}
}

// List handles GET /
func (h *IssueHandler) List(c *gin.Context) {
	issues, err := h.listIssuesUC.Execute(c.Request.Context())
	if err != nil {
		common.RenderError(c, h.logger, err)
		return
	}

	common.Render(c, http.StatusOK, "issues.html", gin.H{
		"Issues": issues,
	})
}

// Show handles GET /:id/
func (h *IssueHandler) Show(c *gin.Context) {
	issueID, err := parseIssueID(c)
	if err != nil {
		common.RenderError(c, h.logger, err)
		return
	}

	found, err := h.getIssueUC.Execute(c.Request.Context(), usecases.GetIssueQuery{IssueID: issueID})
	if err != nil {
		common.RenderError(c, h.logger, err)
		return
	}

	states, err := h.listStatesUC.Execute(c.Request.Context())
	if err != nil {
		common.RenderError(c, h.logger, err)
		return
	}

	common.Render(c, http.StatusOK, "detail.html", gin.H{
		"Issue":  found,
		"States": states,
	})
}

// NewForm handles GET /new/
func (h *IssueHandler) NewForm(c *gin.Context) {
	states, err := h.listStatesUC.Execute(c.Request.Context())
	if err != nil {
		common.RenderError(c, h.logger, err)
		return
	}

	common.Render(c, http.StatusOK, "new_issue.html", gin.H{
		"States": states,
	})
}

// Create handles POST /new/
func (h *IssueHandler) Create(c *gin.Context) {
	var form CommentForm
	if err := c.ShouldBind(&form); err != nil {
		h.handleFormError(c, err)
		return
	}

	files, err := collectUploads(c)
	if err != nil {
		h.handleFormError(c, err)
		return
	}

	cmd := usecases.CreateIssueCommand{
		Subject: form.NewSubject,
		StateID: form.NewState,
		Body:    form.NewBody,
		UserID:  middleware.CurrentUserID(c),
		Files:   files,
	}

	result, err := h.createIssueUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		if errors.IsValidationError(err) {
			common.Flash(c, common.FlashWarning, errors.GetAppError(err).Message)
			c.Redirect(http.StatusFound, "/new/")
			return
		}
		common.RenderError(c, h.logger, err)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/%d/", result.IssueID))
}

// AddComment handles POST /:id/
func (h *IssueHandler) AddComment(c *gin.Context) {
	issueID, err := parseIssueID(c)
	if err != nil {
		common.RenderError(c, h.logger, err)
		return
	}

	var form CommentForm
	if err := c.ShouldBind(&form); err != nil {
		h.handleFormError(c, err)
		return
	}

	files, err := collectUploads(c)
	if err != nil {
		h.handleFormError(c, err)
		return
	}

	cmd := usecases.AddCommentCommand{
		IssueID:    issueID,
		UserID:     middleware.CurrentUserID(c),
		Body:       form.NewBody,
		NewSubject: form.NewSubject,
		NewStateID: form.NewState,
		Files:      files,
	}

	detailPath := fmt.Sprintf("/%d/", issueID)

	if _, err := h.addCommentUC.Execute(c.Request.Context(), cmd); err != nil {
		if errors.IsValidationError(err) {
			common.Flash(c, common.FlashWarning, errors.GetAppError(err).Message)
			c.Redirect(http.StatusFound, detailPath)
			return
		}
		common.RenderError(c, h.logger, err)
		return
	}

	c.Redirect(http.StatusFound, detailPath)
}

// Download handles GET /download/:id/
func (h *IssueHandler) Download(c *gin.Context) {
	fileID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || fileID == 0 {
		common.RenderError(c, h.logger, errors.NewNotFoundError("attached file not found"))
		return
	}

	result, err := h.downloadAttachmentUC.Execute(c.Request.Context(), usecases.DownloadAttachmentQuery{
		FileID: uint(fileID),
	})
	if err != nil {
		common.RenderError(c, h.logger, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Name))
	c.Data(http.StatusOK, "application/octet-stream", result.Data)
}

// handleFormError distinguishes an oversized request body from a malformed
// form. Everything else about a bad form is the client's problem.
func (h *IssueHandler) handleFormError(c *gin.Context, err error) {
	if isBodyTooLarge(err) {
		c.HTML(http.StatusRequestEntityTooLarge, "error.html", gin.H{
			"Status":  http.StatusRequestEntityTooLarge,
			"Message": "request entity too large",
		})
		c.Abort()
		return
	}
	h.logger.Warnw("invalid form submission", "path", c.Request.URL.Path, "error", err)
	common.RenderError(c, h.logger, errors.NewBadRequestError("invalid form data"))
}

func parseIssueID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewNotFoundError("issue not found")
	}
	return uint(id), nil
}
