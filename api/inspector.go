package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/aidlink-inc/aidlink-api/lifecycle"
	"github.com/aidlink-inc/aidlink-api/schema"
	"github.com/aidlink-inc/aidlink-api/store"
)

// nearbyOrganizationsRange is how far around a request we look for
// providers, in meters
const nearbyOrganizationsRange = 50000

// inspectorListRequests serves the inspector worklists: the pending
// vetting queue, the flagged review list and the general board, all
// through the same filter set.
func (s *Server) inspectorListRequests(c *gin.Context) {
	var params struct {
		Status   schema.RequestStatus `form:"status"`
		Category schema.Category      `form:"category"`
		Search   string               `form:"search"`
		Urgent   bool                 `form:"urgent"`
		Flagged  bool                 `form:"flagged"`
		Mine     bool                 `form:"mine"`
		Region   string               `form:"region"`
		Page     int                  `form:"page"`
		PerPage  int                  `form:"per_page"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithValidation(c, err)
		return
	}

	filter := store.RequestFilter{
		Status:      params.Status,
		Category:    params.Category,
		Search:      params.Search,
		UrgentOnly:  params.Urgent,
		FlaggedOnly: params.Flagged,
		Region:      params.Region,
		Page:        params.Page,
		PerPage:     params.PerPage,
	}
	if params.Mine {
		filter.InspectorID = c.GetString("requester")
	}

	requests, total, err := s.store.ListRequests(filter)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, listResponse{Count: total, Results: requests})
}

func (s *Server) inspectorRequestDetail(c *gin.Context) {
	s.requestDetail(c, c.Param("requestID"))
}

// inspectorActivateRequest vets a pending request into the open pool.
// The first inspector to activate becomes the request's supervisor for
// life, a concurrent second activate comes back not-found.
func (s *Server) inspectorActivateRequest(c *gin.Context) {
	request, err := s.store.ActivateRequest(c.Param("requestID"), c.GetString("requester"))
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

func (s *Server) inspectorRejectRequest(c *gin.Context) {
	var params struct {
		Reason string `json:"reason"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithValidation(c, err)
		return
	}

	request, err := s.store.RejectRequest(c.Param("requestID"), c.GetString("requester"), params.Reason)
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

// inspectorFlagRequest marks a request suspicious for the review
// worklist. Works at any status, never moves the status itself.
func (s *Server) inspectorFlagRequest(c *gin.Context) {
	var params struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithValidation(c, err)
		return
	}

	request, err := s.store.FlagRequest(c.Param("requestID"), c.GetString("requester"), params.Reason)
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

// inspectorAssignRequest pledges an organization onto a request on the
// inspector's initiative
func (s *Server) inspectorAssignRequest(c *gin.Context) {
	var params struct {
		OrganizationID string `json:"organization_id" binding:"required"`
		Notes          string `json:"notes"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithValidation(c, err)
		return
	}

	assignment, err := s.store.CreateAssignment(c.Param("requestID"), params.OrganizationID, params.Notes)
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

func (s *Server) inspectorUpdateRequest(c *gin.Context) {
	var params struct {
		Status         *schema.RequestStatus `json:"status"`
		InspectorNotes *string               `json:"inspector_notes"`
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
		Status:         params.Status,
		InspectorNotes: params.InspectorNotes,
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

// inspectorDeleteRequest removes a request while it is still inert:
// pending, new, rejected or cancelled. Anything in flight is admin
// territory.
func (s *Server) inspectorDeleteRequest(c *gin.Context) {
	err := s.store.DeleteRequest(c.Param("requestID"), []schema.RequestStatus{
		schema.RequestPending,
		schema.RequestNew,
		schema.RequestRejected,
		schema.RequestCancelled,
	})
	if err != nil {
		switch err {
		case store.ErrRequestNotExist:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		case store.ErrRequestNotDeletable:
			abortWithEncoding(c, http.StatusConflict, errorRequestNotDeletable)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// inspectorNearbyOrganizations lists providers covering the request's
// surroundings, nearest first
func (s *Server) inspectorNearbyOrganizations(c *gin.Context) {
	request, err := s.store.GetRequest(c.Param("requestID"))
	if err != nil {
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		return
	}

	if request.Coordinates == nil {
		c.JSON(http.StatusOK, listResponse{Count: 0, Results: []schema.Organization{}})
		return
	}

	ids, err := s.mongoStore.NearestOrganizations(nearbyOrganizationsRange, *request.Coordinates)
	if shouldInterupt(err, c) {
		return
	}

	orgs := make([]schema.Organization, 0, len(ids))
	for _, id := range ids {
		org, err := s.store.GetOrganization(id)
		if err != nil {
			continue
		}
		if org.Status == schema.AccountActive {
			orgs = append(orgs, *org)
		}
	}

	c.JSON(http.StatusOK, listResponse{Count: len(orgs), Results: orgs})
}

// inspectorApproveAssignment turns a pledge into active fulfillment and
// decides the contact the organization sees: the requester's own phone
// or an inspector-supplied substitute.
func (s *Server) inspectorApproveAssignment(c *gin.Context) {
	var params struct {
		ShowCitizenPhone bool   `json:"show_citizen_phone"`
		ContactName      string `json:"contact_name"`
		ContactPhone     string `json:"contact_phone"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithValidation(c, err)
		return
	}

	assignment, err := s.store.GetAssignment(c.Param("assignmentID"))
	if err != nil {
		abortWithEncoding(c, http.StatusNotFound, errorAssignmentNotExist)
		return
	}

	request, err := s.store.GetRequest(assignment.RequestID.String())
	if shouldInterupt(err, c) {
		return
	}

	name, phone := lifecycle.DisclosedContact(request, params.ShowCitizenPhone,
		params.ContactName, params.ContactPhone)

	approved, err := s.store.ApproveAssignment(assignment.ID.String(), name, phone)
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
			Name: "notify_pledge_approved",
			Args: []tasks.Arg{
				{Type: "string", Value: approved.ID.String()},
			},
		}); err != nil {
			log.WithError(err).Error("enqueue approval notification")
		}
	}

	c.JSON(http.StatusOK, gin.H{"result": approved})
}

// inspectorCancelAssignment voids a pledge and sends the request back
// to the open pool. Failed assignments are terminal and refuse this.
func (s *Server) inspectorCancelAssignment(c *gin.Context) {
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
