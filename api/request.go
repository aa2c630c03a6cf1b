package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/aidlink-inc/aidlink-api/geo"
	"github.com/aidlink-inc/aidlink-api/lifecycle"
	"github.com/aidlink-inc/aidlink-api/schema"
	"github.com/aidlink-inc/aidlink-api/store"
)

// listResponse is the envelope of every paginated collection
type listResponse struct {
	Count   int         `json:"count"`
	Results interface{} `json:"results"`
}

// viewerFromContext rebuilds the lifecycle viewer from the session
// claims the middleware stored.
func viewerFromContext(c *gin.Context) lifecycle.Viewer {
	return lifecycle.Viewer{
		ID:   c.GetString("requester"),
		Role: schema.Role(c.GetString("role")),
	}
}

// requestDetail is the detail payload every role shares: the entity,
// its pledge history and the actions the viewer may take next. Pages
// render buttons straight off allowed_actions instead of re-deriving
// the rules.
func (s *Server) requestDetail(c *gin.Context, requestID string) {
	request, err := s.store.GetRequest(requestID)
	if err != nil {
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		return
	}

	assignments, _, err := s.store.ListAssignments(store.AssignmentFilter{RequestID: requestID})
	if shouldInterupt(err, c) {
		return
	}

	viewer := viewerFromContext(c)
	actions := lifecycle.AllowedActions(viewer, request, assignments)

	list := make([]lifecycle.Action, 0, len(actions))
	for action := range actions {
		list = append(list, action)
	}

	c.JSON(http.StatusOK, gin.H{
		"result":          request,
		"assignments":     assignments,
		"allowed_actions": list,
		"is_owner":        lifecycle.IsOwner(viewer, request),
	})
}

// citizenCreateRequest opens a request for the logged-in citizen. The
// requester identity comes from the session, never from the payload.
func (s *Server) citizenCreateRequest(c *gin.Context) {
	requester := c.GetString("requester")

	var params store.RequestParams
	if err := c.BindJSON(&params); err != nil {
		abortWithValidation(c, err)
		return
	}

	if !params.Category.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	citizen, err := s.store.GetCitizen(requester)
	if err != nil {
		abortWithEncoding(c, http.StatusUnauthorized, errorAccountNotFound)
		return
	}

	params.RequesterID = requester
	params.Phone = citizen.Phone
	if params.RequesterName == "" {
		params.RequesterName = citizen.FullName
	}

	// fill the administrative area from coordinates when the form
	// left it out
	if params.Region == "" && params.Coordinates != nil {
		if resolved, err := geo.PoliticalInfo(*params.Coordinates); err == nil {
			params.Region = resolved.Region
			if params.City == "" {
				params.City = resolved.City
			}
		}
	}

	request, err := s.store.CreateRequest(params)
	if shouldInterupt(err, c) {
		return
	}

	if s.background != nil && bool(request.IsUrgent) {
		if _, err := s.background.SendTask(&tasks.Signature{
			Name: "broadcast_urgent_request",
			Args: []tasks.Arg{
				{Type: "string", Value: request.ID.String()},
			},
		}); err != nil {
			log.WithError(err).Error("enqueue urgent broadcast")
		}
	}

	c.JSON(http.StatusOK, gin.H{"result": request})
}

// citizenListRequests lists the citizen's own requests only
func (s *Server) citizenListRequests(c *gin.Context) {
	var params struct {
		Status   schema.RequestStatus `form:"status"`
		Category schema.Category      `form:"category"`
		Page     int                  `form:"page"`
		PerPage  int                  `form:"per_page"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithValidation(c, err)
		return
	}

	requests, total, err := s.store.ListRequests(store.RequestFilter{
		RequesterID: c.GetString("requester"),
		Status:      params.Status,
		Category:    params.Category,
		Page:        params.Page,
		PerPage:     params.PerPage,
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, listResponse{Count: total, Results: requests})
}

func (s *Server) citizenRequestDetail(c *gin.Context) {
	request, err := s.store.GetRequest(c.Param("requestID"))
	if err != nil || request.RequesterID != c.GetString("requester") {
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		return
	}
	s.requestDetail(c, c.Param("requestID"))
}

// citizenCancelRequest withdraws the citizen's own request. The store
// guard enforces ownership and the new status in one statement.
func (s *Server) citizenCancelRequest(c *gin.Context) {
	request, err := s.store.CancelOwnRequest(c.Param("requestID"), c.GetString("requester"))
	if err != nil {
		if err == store.ErrRequestNotExist {
			abortWithEncoding(c, http.StatusForbidden, errorRequestNotExist)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": request})
}

func (s *Server) citizenProfile(c *gin.Context) {
	citizen, err := s.store.GetCitizen(c.GetString("requester"))
	if err != nil {
		abortWithEncoding(c, http.StatusUnauthorized, errorAccountNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": citizen})
}

func (s *Server) citizenUpdateProfile(c *gin.Context) {
	var params struct {
		Email    *string `json:"email"`
		FullName *string `json:"full_name"`
		Address  *string `json:"address"`
		City     *string `json:"city"`
		Region   *string `json:"region"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithValidation(c, err)
		return
	}

	citizen, err := s.store.UpdateCitizen(c.GetString("requester"), store.CitizenUpdate{
		Email:    params.Email,
		FullName: params.FullName,
		Address:  params.Address,
		City:     params.City,
		Region:   params.Region,
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": citizen})
}
