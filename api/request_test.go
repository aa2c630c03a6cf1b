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
	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/assert"

	"github.com/aidlink-inc/aidlink-api/api/mocks"
	"github.com/aidlink-inc/aidlink-api/schema"
	"github.com/aidlink-inc/aidlink-api/store"
)

// sessionAs fakes the claims authMiddleware would set after a valid
// token
func sessionAs(id string, role schema.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("requester", id)
		c.Set("role", string(role))
	}
}

func TestCitizenCreateRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAidCore(ctl)

	s := Server{
		store: a,
	}

	a.EXPECT().GetCitizen("citizen-1").Return(&schema.Citizen{
		Phone:    "+9779812345678",
		FullName: "Sita Gurung",
	}, nil).Times(1)

	a.EXPECT().CreateRequest(gomock.Any()).DoAndReturn(func(params store.RequestParams) (*schema.AidRequest, error) {
		assert.Equal(t, "citizen-1", params.RequesterID)
		assert.Equal(t, "+9779812345678", params.Phone)
		assert.Equal(t, schema.CategoryFood, params.Category)
		return &schema.AidRequest{
			Status:   schema.RequestPending,
			Category: params.Category,
		}, nil
	}).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(sessionAs("citizen-1", schema.RoleCitizen))
	router.POST("/", s.citizenCreateRequest)

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{
		"category": "food",
		"description": "rice and oil for four",
		"quantity": 4
	}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestCitizenCreateRequestRejectsUnknownCategory(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAidCore(ctl)

	s := Server{
		store: a,
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(sessionAs("citizen-1", schema.RoleCitizen))
	router.POST("/", s.citizenCreateRequest)

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"category": "gold"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var resp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1010), resp.Code, "wrong error code")
}

// a citizen cancelling someone else's request gets a 403, never a
// silent success
func TestCitizenCancelRequestNotOwned(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAidCore(ctl)

	s := Server{
		store: a,
	}

	a.EXPECT().CancelOwnRequest("req-1", "citizen-2").
		Return(nil, store.ErrRequestNotExist).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(sessionAs("citizen-2", schema.RoleCitizen))
	router.POST("/requests/:requestID/cancel", s.citizenCancelRequest)

	req := httptest.NewRequest("POST", "/requests/req-1/cancel", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
}

func TestTrackRequestHidesIdentity(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAidCore(ctl)

	s := Server{
		store: a,
	}

	a.EXPECT().GetRequestByTrackingCode("AR-2345678ric").Return(&schema.AidRequest{
		RequesterName: "Sita Gurung",
		Phone:         "+9779812345678",
		TrackingCode:  "AR-2345678ric",
		Category:      schema.CategoryShelter,
		Status:        schema.RequestInProgress,
		City:          "Pokhara",
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/track/:trackingCode", s.trackRequest)

	req := httptest.NewRequest("GET", "/track/AR-2345678ric", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	assert.NotContains(t, w.Body.String(), "Sita Gurung")
	assert.NotContains(t, w.Body.String(), "+9779812345678")
	assert.Contains(t, w.Body.String(), "in_progress")
}

func TestTrackRequestUnknownCode(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAidCore(ctl)

	s := Server{
		store: a,
	}

	a.EXPECT().GetRequestByTrackingCode("AR-nosuchcode").
		Return(nil, gorm.ErrRecordNotFound).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/track/:trackingCode", s.trackRequest)

	req := httptest.NewRequest("GET", "/track/AR-nosuchcode", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")

	var resp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1200), resp.Code, "wrong error code")
}

// organizations get the provider view: no requester identity, only
// their own pledge with its approval snapshot
func TestOrganizationRequestDetailHidesIdentity(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAidCore(ctl)

	s := Server{
		store: a,
	}

	orgID := uuid.MustParse("b39b2d1c-5a36-4f5e-9d0a-8f0f6b3c2a11")
	otherOrgID := uuid.MustParse("0d2f6a84-7c1b-4e9d-b5a3-6e8c91d4f722")

	a.EXPECT().GetRequest("req-1").Return(&schema.AidRequest{
		RequesterName: "Sita Gurung",
		Phone:         "+9779812345678",
		TrackingCode:  "AR-2345678ric",
		Category:      schema.CategoryShelter,
		Status:        schema.RequestInProgress,
		City:          "Pokhara",
	}, nil).Times(1)

	a.EXPECT().ListAssignments(gomock.Any()).Return([]schema.Assignment{
		{
			OrganizationID: otherOrgID,
			Status:         schema.AssignmentCancelled,
			ContactName:    "Sita Gurung",
			ContactPhone:   "+9779812345678",
		},
		{
			OrganizationID: orgID,
			Status:         schema.AssignmentInProgress,
			ContactName:    "Ward relay desk",
			ContactPhone:   "0600000000",
		},
	}, 2, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(sessionAs(orgID.String(), schema.RoleOrganization))
	router.GET("/requests/:requestID", s.organizationRequestDetail)

	req := httptest.NewRequest("GET", "/requests/req-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	assert.NotContains(t, w.Body.String(), "Sita Gurung")
	assert.NotContains(t, w.Body.String(), "+9779812345678")
	assert.Contains(t, w.Body.String(), "Ward relay desk")
	assert.Contains(t, w.Body.String(), "0600000000")
}

func TestRequestDetailListsAllowedActions(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAidCore(ctl)

	s := Server{
		store: a,
	}

	a.EXPECT().GetRequest("req-1").Return(&schema.AidRequest{
		RequesterID: "citizen-1",
		Status:      schema.RequestNew,
	}, nil).Times(2)

	a.EXPECT().ListAssignments(gomock.Any()).
		Return([]schema.Assignment{}, 0, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(sessionAs("citizen-1", schema.RoleCitizen))
	router.GET("/requests/:requestID", s.citizenRequestDetail)

	req := httptest.NewRequest("GET", "/requests/req-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		AllowedActions []string `json:"allowed_actions"`
		IsOwner        bool     `json:"is_owner"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.True(t, resp.IsOwner)
	assert.Contains(t, resp.AllowedActions, "cancel")
}
