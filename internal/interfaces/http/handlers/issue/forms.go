package issue

import (
	stderrors "errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"zenmai/internal/application/issue/usecases"
)

// CommentForm carries the fields posted from both the new-issue form and
// the detail-page comment form. State arrives as the state row ID.
type CommentForm struct {
	NewSubject string `form:"new_subject"`
	NewBody    string `form:"new_body"`
	NewState   uint   `form:"new_state"`
}

// collectUploads reads every uploaded file out of the multipart form,
// regardless of field name. Parts with an empty filename (an untouched file
// input) are skipped. A plain urlencoded post yields no uploads.
func collectUploads(c *gin.Context) ([]usecases.FileUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if stderrors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	var uploads []usecases.FileUpload
	for _, headers := range form.File {
		for _, header := range headers {
			if header.Filename == "" {
				continue
			}

			f, err := header.Open()
			if err != nil {
				return nil, err
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				return nil, err
			}

			uploads = append(uploads, usecases.FileUpload{
				Name: header.Filename,
				Data: data,
			})
		}
	}

	return uploads, nil
}

// isBodyTooLarge reports whether err came from the request body size cap.
func isBodyTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	return stderrors.As(err, &maxBytesErr)
}
