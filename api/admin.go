package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/aidlink-inc/aidlink-api/schema"
	"github.com/aidlink-inc/aidlink-api/store"
)

func (s *Server) adminListRequests(c *gin.Context) {
	var params struct {
		Status   schema.RequestStatus `form:"status"`
		Category schema.Category      `form:"category"`
		Search   string               `form:"search"`
		Flagged  bool                 `form:"flagged"`
		Region   string               `form:"region"`
		Page     int                  `form:"page"`
		PerPage  int                  `form:"per_page"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithValidation(c, err)
		return
	}

	requests, total, err := s.store.ListRequests(store.RequestFilter{
		Status:      params.Status,
		Category:    params.Category,
		Search:      params.Search,
		FlaggedOnly: params.Flagged,
		Region:      params.Region,
		Page:        params.Page,
		PerPage:     params.PerPage,
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, listResponse{Count: total, Results: requests})
}

// adminUpdateRequest is the supervision override: admins may force any
// status and rewrite priority, urgency and notes without the lifecycle
// stepping rules that bind the other roles.
func (s *Server) adminUpdateRequest(c *gin.Context) {
	var params struct {
		Status        *schema.RequestStatus `json:"status"`
		PriorityScore *int                  `json:"priority_score"`
		IsUrgent      *bool                 `json:"is_urgent"`
		AdminNotes    *string               `json:"admin_notes"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithValidation(c, err)
		return
	}

	if params.Status != nil && !params.Status.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	request, err := s.store.UpdateRequest(c.Param("requestID"), store.RequestUpdate{
		Status:        params.Status,
		PriorityScore: params.PriorityScore,
		IsUrgent:      params.IsUrgent,
		AdminNotes:    params.AdminNotes,
	})
	if err != nil {
		if err == store.ErrRequestNotExist {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": request})
}

// adminDeleteRequest removes a request at any status
func (s *Server) adminDeleteRequest(c *gin.Context) {
	err := s.store.DeleteRequest(c.Param("requestID"), nil)
	if err != nil {
		if err == store.ErrRequestNotExist {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) adminCancelAssignment(c *gin.Context) {
	assignment, err := s.store.CancelAssignment(c.Param("assignmentID"))
	if err != nil {
		if err == store.ErrAssignmentNotExist {
			abortWithEncoding(c, http.StatusConflict, errorAssignmentNotExist)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": assignment})
}

// adminCreateAdmin provisions another admin account. Only a superadmin
// may do this, and only a superadmin may grant the superadmin role.
// The generated password is in the response once and never again.
func (s *Server) adminCreateAdmin(c *gin.Context) {
	if schema.Role(c.GetString("role")) != schema.RoleSuperadmin {
		abortWithEncoding(c, http.StatusForbidden, errorForbiddenRole)
		return
	}

	var params struct {
		FullName string      `json:"full_name" binding:"required"`
		Email    string      `json:"email" binding:"required,email"`
		Phone    string      `json:"phone"`
		Role     schema.Role `json:"role"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithValidation(c, err)
		return
	}

	role := params.Role
	if role == "" {
		role = schema.RoleAdmin
	}
	if role != schema.RoleAdmin && role != schema.RoleSuperadmin {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	admin, password, err := s.store.CreateAdmin(params.FullName, params.Email, params.Phone, role)
	if err != nil {
		if err == store.ErrAccountTaken {
			abortWithEncoding(c, http.StatusConflict, errorAccountTaken)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": admin, "password": password})
}

func (s *Server) adminListAdmins(c *gin.Context) {
	admins, err := s.store.ListAdmins()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, listResponse{Count: len(admins), Results: admins})
}

func (s *Server) adminSuspendAdmin(c *gin.Context) {
	s.setAccountStatus(c, s.store.SetAdminStatus, schema.AccountSuspended)
}

func (s *Server) adminActivateAdmin(c *gin.Context) {
	s.setAccountStatus(c, s.store.SetAdminStatus, schema.AccountActive)
}

func (s *Server) adminDeleteAdmin(c *gin.Context) {
	if schema.Role(c.GetString("role")) != schema.RoleSuperadmin {
		abortWithEncoding(c, http.StatusForbidden, errorForbiddenRole)
		return
	}
	if c.Param("accountID") == c.GetString("requester") {
		abortWithEncoding(c, http.StatusConflict, errorInvalidParameters)
		return
	}
	s.deleteAccount(c, s.store.DeleteAdmin)
}

// adminCreateInspector provisions a field inspector. The access code is
// generated server side and shown once.
func (s *Server) adminCreateInspector(c *gin.Context) {
	var params struct {
		FullName string `json:"full_name" binding:"required"`
		Phone    string `json:"phone" binding:"required"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithValidation(c, err)
		return
	}

	inspector, code, err := s.store.CreateInspector(params.FullName, params.Phone)
	if err != nil {
		if err == store.ErrAccountTaken {
			abortWithEncoding(c, http.StatusConflict, errorAccountTaken)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": inspector, "access_code": code})
}

func (s *Server) adminListInspectors(c *gin.Context) {
	inspectors, err := s.store.ListInspectors()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, listResponse{Count: len(inspectors), Results: inspectors})
}

func (s *Server) adminSuspendInspector(c *gin.Context) {
	s.setAccountStatus(c, s.store.SetInspectorStatus, schema.AccountSuspended)
}

func (s *Server) adminActivateInspector(c *gin.Context) {
	s.setAccountStatus(c, s.store.SetInspectorStatus, schema.AccountActive)
}

func (s *Server) adminRegenerateInspectorCode(c *gin.Context) {
	s.regenerateCode(c, s.store.RegenerateInspectorCode)
}

func (s *Server) adminSetInspectorCode(c *gin.Context) {
	s.setCode(c, s.store.SetInspectorCode)
}

func (s *Server) adminDeleteInspector(c *gin.Context) {
	s.deleteAccount(c, s.store.DeleteInspector)
}

func (s *Server) adminCreateOrganization(c *gin.Context) {
	var params store.OrganizationParams
	if err := c.BindJSON(&params); err != nil {
		abortWithValidation(c, err)
		return
	}
	if params.Name == "" || params.ContactPhone == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	org, code, err := s.store.CreateOrganization(params)
	if err != nil {
		if err == store.ErrAccountTaken {
			abortWithEncoding(c, http.StatusConflict, errorAccountTaken)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": org, "access_code": code})
}

func (s *Server) adminListOrganizations(c *gin.Context) {
	orgs, err := s.store.ListOrganizations()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, listResponse{Count: len(orgs), Results: orgs})
}

func (s *Server) adminSuspendOrganization(c *gin.Context) {
	s.setAccountStatus(c, s.store.SetOrganizationStatus, schema.AccountSuspended)
}

func (s *Server) adminActivateOrganization(c *gin.Context) {
	s.setAccountStatus(c, s.store.SetOrganizationStatus, schema.AccountActive)
}

func (s *Server) adminRegenerateOrganizationCode(c *gin.Context) {
	s.regenerateCode(c, s.store.RegenerateOrganizationCode)
}

func (s *Server) adminSetOrganizationCode(c *gin.Context) {
	s.setCode(c, s.store.SetOrganizationCode)
}

func (s *Server) adminDeleteOrganization(c *gin.Context) {
	s.deleteAccount(c, s.store.DeleteOrganization)
}

func (s *Server) setAccountStatus(c *gin.Context, set func(string, schema.AccountStatus) error, status schema.AccountStatus) {
	if err := set(c.Param("accountID"), status); err != nil {
		if err == store.ErrAccountNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// regenerateCode replaces the account's access code with a fresh random
// one. The old code stops working the moment this returns.
func (s *Server) regenerateCode(c *gin.Context, regenerate func(string) (string, error)) {
	code, err := regenerate(c.Param("accountID"))
	if err != nil {
		if err == store.ErrAccountNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_code": code})
}

// setCode installs an admin-chosen access code after the shared format
// check: 6 to 20 characters, no whitespace.
func (s *Server) setCode(c *gin.Context, set func(string, string) error) {
	var params struct {
		AccessCode string `json:"access_code" binding:"required"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithValidation(c, err)
		return
	}

	if err := set(c.Param("accountID"), params.AccessCode); err != nil {
		switch err {
		case store.ErrInvalidAccessCode:
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidAccessCode)
		case store.ErrAccountNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) deleteAccount(c *gin.Context, del func(string) error) {
	if err := del(c.Param("accountID")); err != nil {
		if err == store.ErrAccountNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// adminExpireOTPSessions enqueues a sweep of stale login sessions
func (s *Server) adminExpireOTPSessions(c *gin.Context) {
	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "expire_otp_sessions",
	}); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// adminRecountCompletions enqueues a rebuild of every organization's
// completion counter from the assignment table
func (s *Server) adminRecountCompletions(c *gin.Context) {
	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "recount_org_completions",
	}); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
