package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/aidlink-inc/aidlink-api/lifecycle"
	"github.com/aidlink-inc/aidlink-api/schema"
	"github.com/aidlink-inc/aidlink-api/store"
)

// organizationListRequests shows the open pool: requests vetted into
// new and waiting for a pledge. Identity fields are already hidden at
// this stage because disclosure only happens on approval.
func (s *Server) organizationListRequests(c *gin.Context) {
	var params struct {
		Category schema.Category `form:"category"`
		Region   string          `form:"region"`
		Urgent   bool            `form:"urgent"`
		Page     int             `form:"page"`
		PerPage  int             `form:"per_page"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithValidation(c, err)
		return
	}

	requests, total, err := s.store.ListRequests(store.RequestFilter{
		Status:     schema.RequestNew,
		Category:   params.Category,
		Region:     params.Region,
		UrgentOnly: params.Urgent,
		Page:       params.Page,
		PerPage:    params.PerPage,
	})
	if shouldInterupt(err, c) {
		return
	}

	pool := make([]schema.ProviderRequest, 0, len(requests))
	for _, r := range requests {
		pool = append(pool, *r.ForProvider())
	}

	c.JSON(http.StatusOK, listResponse{Count: total, Results: pool})
}

// organizationRequestDetail serves the provider view of one request.
// The requester's name and phone never appear here; the approval
// snapshot on the organization's own assignment is the only channel
// for contact details, and only other organizations' pledges are
// filtered out.
func (s *Server) organizationRequestDetail(c *gin.Context) {
	request, err := s.store.GetRequest(c.Param("requestID"))
	if err != nil {
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		return
	}

	assignments, _, err := s.store.ListAssignments(store.AssignmentFilter{RequestID: request.ID.String()})
	if shouldInterupt(err, c) {
		return
	}

	viewer := viewerFromContext(c)
	actions := lifecycle.AllowedActions(viewer, request, assignments)
	list := make([]lifecycle.Action, 0, len(actions))
	for action := range actions {
		list = append(list, action)
	}

	own := make([]schema.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if a.OrganizationID.String() == viewer.ID {
			own = append(own, a)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"result":          request.ForProvider(),
		"assignments":     own,
		"allowed_actions": list,
	})
}

// organizationPledge offers fulfillment on an open request. The store
// guard makes the first pledge win, any later one conflicts.
func (s *Server) organizationPledge(c *gin.Context) {
	var params struct {
		Notes string `json:"notes"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithValidation(c, err)
		return
	}

	assignment, err := s.store.CreateAssignment(c.Param("requestID"),
		c.GetString("requester"), params.Notes)
	if err != nil {
		switch err {
		case store.ErrRequestNotExist:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		case store.ErrPledgeExists:
			abortWithEncoding(c, http.StatusConflict, errorPledgeExists)
		case store.ErrRequestNotEligible:
			abortWithEncoding(c, http.StatusConflict, errorRequestNotEligible)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": assignment})
}

func (s *Server) organizationListAssignments(c *gin.Context) {
	var params struct {
		Status  schema.AssignmentStatus `form:"status"`
		Page    int                     `form:"page"`
		PerPage int                     `form:"per_page"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithValidation(c, err)
		return
	}

	assignments, total, err := s.store.ListAssignments(store.AssignmentFilter{
		OrganizationID: c.GetString("requester"),
		Status:         params.Status,
		Page:           params.Page,
		PerPage:        params.PerPage,
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, listResponse{Count: total, Results: assignments})
}

// organizationCompleteAssignment reports delivery done. The store only
// matches the caller's own in-progress assignment, so finished or
// foreign ones come back as not-exist.
func (s *Server) organizationCompleteAssignment(c *gin.Context) {
	var params struct {
		Notes string `json:"notes"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithValidation(c, err)
		return
	}

	assignment, err := s.store.CompleteAssignment(c.Param("assignmentID"),
		c.GetString("requester"), params.Notes)
	if err != nil {
		if err == store.ErrAssignmentNotExist {
			abortWithEncoding(c, http.StatusConflict, errorAssignmentNotExist)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if s.background != nil {
		if _, err := s.background.SendTask(&tasks.Signature{
			Name: "notify_request_completed",
			Args: []tasks.Arg{
				{Type: "string", Value: assignment.RequestID.String()},
			},
		}); err != nil {
			log.WithError(err).Error("enqueue completion notice")
		}
	}

	c.JSON(http.StatusOK, gin.H{"result": assignment})
}

// organizationFailAssignment reports that delivery could not be done.
// A reason is mandatory so inspectors can triage the bounced request.
func (s *Server) organizationFailAssignment(c *gin.Context) {
	var params struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithValidation(c, err)
		return
	}

	assignment, err := s.store.FailAssignment(c.Param("assignmentID"),
		c.GetString("requester"), params.Reason)
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

func (s *Server) organizationProfile(c *gin.Context) {
	org, err := s.store.GetOrganization(c.GetString("requester"))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": org})
}
