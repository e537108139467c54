package rest

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ppgarage/backoffice/pkg/errors"
)

// RespondAppError sends the standard JSON error body. Conflicts surface as
// 400 on this API (the price editor treats a duplicate name as bad input).
func RespondAppError(c *gin.Context, err error) {
	code := errors.GetHTTPStatus(err)
	if errors.IsConflict(err) {
		code = http.StatusBadRequest
	}

	if code >= 500 {
		log.Printf("ERROR [%d] %s %s: %s", code, c.Request.Method, c.Request.URL.Path, err.Error())
	}

	c.JSON(code, gin.H{"error": err.Error()})
}

// BindJSON binds JSON and returns true if successful. If failed, it sends a
// bad request error.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		RespondAppError(c, errors.NewValidationError("body", err.Error()))
		return false
	}
	return true
}

// IDParam parses the :id path parameter. A non-numeric id responds 400 and
// returns false.
func IDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondAppError(c, errors.NewValidationError("id", "must be a numeric id"))
		return 0, false
	}
	return id, true
}

// RespondSuccess sends the bare {success:true} body the delete and simple
// update endpoints use.
func RespondSuccess(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}
