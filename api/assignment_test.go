package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/aidlink-inc/aidlink-api/api/mocks"
	"github.com/aidlink-inc/aidlink-api/schema"
	"github.com/aidlink-inc/aidlink-api/store"
)

func TestInspectorActivateRequestAlreadyTaken(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAidCore(ctl)

	s := Server{
		store: a,
	}

	a.EXPECT().ActivateRequest("req-1", "inspector-1").
		Return(nil, store.ErrRequestNotExist).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(sessionAs("inspector-1", schema.RoleInspector))
	router.POST("/requests/:requestID/activate", s.inspectorActivateRequest)

	req := httptest.NewRequest("POST", "/requests/req-1/activate", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
}

func TestOrganizationPledgeConflict(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAidCore(ctl)

	s := Server{
		store: a,
	}

	a.EXPECT().CreateAssignment("req-1", "org-1", "we cover this ward").
		Return(nil, store.ErrPledgeExists).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(sessionAs("org-1", schema.RoleOrganization))
	router.POST("/requests/:requestID/pledge", s.organizationPledge)

	req := httptest.NewRequest("POST", "/requests/req-1/pledge",
		strings.NewReader(`{"notes": "we cover this ward"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")

	var resp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1203), resp.Code, "wrong error code")
}

// approving without disclosure must pass the substitute contact to the
// store, never the requester's own phone
func TestInspectorApproveAssignmentMasksContact(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAidCore(ctl)

	s := Server{
		store: a,
	}

	assignmentID := uuid.New()
	requestID := uuid.New()

	a.EXPECT().GetAssignment(assignmentID.String()).Return(&schema.Assignment{
		ID:        assignmentID,
		RequestID: requestID,
		Status:    schema.AssignmentPledged,
	}, nil).Times(1)

	a.EXPECT().GetRequest(requestID.String()).Return(&schema.AidRequest{
		RequesterName: "Sita Gurung",
		Phone:         "+9779812345678",
		Status:        schema.RequestAssigned,
	}, nil).Times(1)

	a.EXPECT().ApproveAssignment(assignmentID.String(), "Ward relay desk", "+9771423000").
		Return(&schema.Assignment{
			ID:           assignmentID,
			RequestID:    requestID,
			Status:       schema.AssignmentInProgress,
			ContactName:  "Ward relay desk",
			ContactPhone: "+9771423000",
		}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(sessionAs("inspector-1", schema.RoleInspector))
	router.POST("/assignments/:assignmentID/approve", s.inspectorApproveAssignment)

	req := httptest.NewRequest("POST", "/assignments/"+assignmentID.String()+"/approve",
		strings.NewReader(`{
			"show_citizen_phone": false,
			"contact_name": "Ward relay desk",
			"contact_phone": "+9771423000"
		}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	assert.NotContains(t, w.Body.String(), "+9779812345678")
}

func TestInspectorApproveAssignmentDisclosesWhenAsked(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAidCore(ctl)

	s := Server{
		store: a,
	}

	assignmentID := uuid.New()
	requestID := uuid.New()

	a.EXPECT().GetAssignment(assignmentID.String()).Return(&schema.Assignment{
		ID:        assignmentID,
		RequestID: requestID,
		Status:    schema.AssignmentPledged,
	}, nil).Times(1)

	a.EXPECT().GetRequest(requestID.String()).Return(&schema.AidRequest{
		RequesterName: "Sita Gurung",
		Phone:         "+9779812345678",
		Status:        schema.RequestAssigned,
	}, nil).Times(1)

	a.EXPECT().ApproveAssignment(assignmentID.String(), "Sita Gurung", "+9779812345678").
		Return(&schema.Assignment{
			ID:     assignmentID,
			Status: schema.AssignmentInProgress,
		}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(sessionAs("inspector-1", schema.RoleInspector))
	router.POST("/assignments/:assignmentID/approve", s.inspectorApproveAssignment)

	req := httptest.NewRequest("POST", "/assignments/"+assignmentID.String()+"/approve",
		strings.NewReader(`{"show_citizen_phone": true}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

// completing a foreign or finished assignment conflicts instead of
// double counting
func TestOrganizationCompleteAssignmentNotOwned(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAidCore(ctl)

	s := Server{
		store: a,
	}

	a.EXPECT().CompleteAssignment("assignment-1", "org-2", "").
		Return(nil, store.ErrAssignmentNotExist).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(sessionAs("org-2", schema.RoleOrganization))
	router.POST("/assignments/:assignmentID/complete", s.organizationCompleteAssignment)

	req := httptest.NewRequest("POST", "/assignments/assignment-1/complete",
		strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")
}

func TestOrganizationFailAssignmentRequiresReason(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAidCore(ctl)

	s := Server{
		store: a,
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(sessionAs("org-1", schema.RoleOrganization))
	router.POST("/assignments/:assignmentID/fail", s.organizationFailAssignment)

	req := httptest.NewRequest("POST", "/assignments/assignment-1/fail",
		strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}
