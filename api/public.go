package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

// trackRequest serves anonymous progress lookup by tracking code. The
// response is the sanitized view: status, category and timeline, never
// the requester's identity.
func (s *Server) trackRequest(c *gin.Context) {
	request, err := s.store.GetRequestByTrackingCode(c.Param("trackingCode"))
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": request.Tracked()})
}
