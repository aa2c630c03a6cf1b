package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/aidlink-inc/aidlink-api/api/mocks"
	"github.com/aidlink-inc/aidlink-api/schema"
	"github.com/aidlink-inc/aidlink-api/store"
)

func TestAdminSetInspectorCodeRejectsBadFormat(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAidCore(ctl)

	s := Server{
		store: a,
	}

	a.EXPECT().SetInspectorCode("inspector-1", "a b c").
		Return(store.ErrInvalidAccessCode).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(sessionAs("admin-1", schema.RoleAdmin))
	router.PUT("/inspectors/:accountID/access-code", s.adminSetInspectorCode)

	req := httptest.NewRequest("PUT", "/inspectors/inspector-1/access-code",
		strings.NewReader(`{"access_code": "a b c"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var resp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1104), resp.Code, "wrong error code")
}

// the access code shows up exactly once, in the regenerate response
func TestAdminRegenerateOrganizationCode(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAidCore(ctl)

	s := Server{
		store: a,
	}

	a.EXPECT().RegenerateOrganizationCode("org-1").
		Return("W7K2M4P9QX", nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(sessionAs("admin-1", schema.RoleAdmin))
	router.POST("/organizations/:accountID/access-code", s.adminRegenerateOrganizationCode)

	req := httptest.NewRequest("POST", "/organizations/org-1/access-code", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		AccessCode string `json:"access_code"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "W7K2M4P9QX", resp.AccessCode)
}

func TestAdminCreateAdminNeedsSuperadmin(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAidCore(ctl)

	s := Server{
		store: a,
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(sessionAs("admin-1", schema.RoleAdmin))
	router.POST("/admins", s.adminCreateAdmin)

	req := httptest.NewRequest("POST", "/admins", strings.NewReader(`{
		"full_name": "New Admin",
		"email": "new@aidlink.test"
	}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
}

func TestAdminCreateAdminReturnsPasswordOnce(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAidCore(ctl)

	s := Server{
		store: a,
	}

	a.EXPECT().CreateAdmin("New Admin", "new@aidlink.test", "", schema.RoleAdmin).
		Return(&schema.Admin{
			FullName: "New Admin",
			Email:    "new@aidlink.test",
		}, "Xk29dLqR7w", nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(sessionAs("root-1", schema.RoleSuperadmin))
	router.POST("/admins", s.adminCreateAdmin)

	req := httptest.NewRequest("POST", "/admins", strings.NewReader(`{
		"full_name": "New Admin",
		"email": "new@aidlink.test"
	}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Password string `json:"password"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "Xk29dLqR7w", resp.Password)
}

func TestAdminDeleteOwnAccountRefused(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAidCore(ctl)

	s := Server{
		store: a,
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(sessionAs("root-1", schema.RoleSuperadmin))
	router.DELETE("/admins/:accountID", s.adminDeleteAdmin)

	req := httptest.NewRequest("DELETE", "/admins/root-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")
}
