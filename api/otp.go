package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"github.com/aidlink-inc/aidlink-api/schema"
	"github.com/aidlink-inc/aidlink-api/store"
)

// requestOTP issues a verification code for a phone number. Delivery
// happens out of band through the background worker, the API only
// reports the issue result and lets the client run its resend cooldown.
func (s *Server) requestOTP(c *gin.Context) {
	var params struct {
		Phone string `json:"phone" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithValidation(c, err)
		return
	}

	session, err := s.store.IssueOTP(params.Phone)
	if err != nil {
		if err == store.ErrOTPCooldown {
			abortWithEncoding(c, http.StatusTooManyRequests, errorOTPCooldown)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if s.background != nil {
		if _, err := s.background.SendTask(&tasks.Signature{
			Name: "deliver_otp",
			Args: []tasks.Arg{
				{Type: "string", Value: session.Phone},
				{Type: "string", Value: session.Code},
			},
		}); err != nil {
			log.WithError(err).Error("enqueue otp delivery")
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"result":     "OK",
		"expires_at": session.ExpiresAt,
	})
}

// verifyOTP consumes a code and logs the citizen in, registering the
// account on first contact. Clients resume any persisted guest request
// right after this call succeeds.
func (s *Server) verifyOTP(c *gin.Context) {
	var params struct {
		Phone string `json:"phone" binding:"required"`
		Code  string `json:"code" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithValidation(c, err)
		return
	}

	if err := s.store.VerifyOTP(params.Phone, params.Code); err != nil {
		abortWithEncoding(c, http.StatusUnauthorized, errorOTPInvalid)
		return
	}

	citizen, err := s.store.GetCitizenByPhone(params.Phone)
	if gorm.IsRecordNotFoundError(err) {
		citizen, err = s.store.CreateCitizen(params.Phone)
	}
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	s.respondWithToken(c, citizen.ID.String(), schema.RoleCitizen, citizen)
}
