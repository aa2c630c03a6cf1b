package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aidlink-inc/aidlink-api/logmodule"
	"github.com/aidlink-inc/aidlink-api/schema"
	"github.com/aidlink-inc/aidlink-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.AidCore
	mongoStore store.MongoStore

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// job pool enqueuer
	background *machinery.Server
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoClient *mongo.Client,
	backgroundServer *machinery.Server,
	jwtKey *rsa.PrivateKey) *Server {
	mongoStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
	)

	return &Server{
		store:         store.NewAidStore(ormDB, mongoStore),
		mongoStore:    mongoStore,
		jwtPrivateKey: jwtKey,
		background:    backgroundServer,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	authRoute := apiRoute.Group("/auth")
	{
		authRoute.POST("/login", s.adminLogin)
		authRoute.POST("/inspector", s.inspectorLogin)
		authRoute.POST("/org", s.organizationLogin)
	}
	authRoute.Use(s.authMiddleware())
	{
		authRoute.GET("/me", s.currentUser)
	}

	otpRoute := apiRoute.Group("/otp")
	{
		otpRoute.POST("/request", s.requestOTP)
		otpRoute.POST("/verify", s.verifyOTP)
	}

	publicRoute := apiRoute.Group("/public")
	{
		publicRoute.GET("/track/:trackingCode", s.trackRequest)
	}

	citizenRoute := apiRoute.Group("/citizen")
	citizenRoute.Use(s.authMiddleware())
	citizenRoute.Use(s.requireRoles(schema.RoleCitizen))
	{
		citizenRoute.POST("/requests", s.citizenCreateRequest)
		citizenRoute.GET("/requests", s.citizenListRequests)
		citizenRoute.GET("/requests/:requestID", s.citizenRequestDetail)
		citizenRoute.POST("/requests/:requestID/cancel", s.citizenCancelRequest)
		citizenRoute.GET("/me", s.citizenProfile)
		citizenRoute.PATCH("/me", s.citizenUpdateProfile)
	}

	inspectorRoute := apiRoute.Group("/inspector")
	inspectorRoute.Use(s.authMiddleware())
	inspectorRoute.Use(s.requireRoles(schema.RoleInspector))
	{
		inspectorRoute.GET("/requests", s.inspectorListRequests)
		inspectorRoute.GET("/requests/:requestID", s.inspectorRequestDetail)
		inspectorRoute.POST("/requests/:requestID/activate", s.inspectorActivateRequest)
		inspectorRoute.POST("/requests/:requestID/reject", s.inspectorRejectRequest)
		inspectorRoute.POST("/requests/:requestID/flag", s.inspectorFlagRequest)
		inspectorRoute.POST("/requests/:requestID/assign", s.inspectorAssignRequest)
		inspectorRoute.PATCH("/requests/:requestID", s.inspectorUpdateRequest)
		inspectorRoute.DELETE("/requests/:requestID", s.inspectorDeleteRequest)
		inspectorRoute.GET("/requests/:requestID/nearby-orgs", s.inspectorNearbyOrganizations)
		inspectorRoute.POST("/assignments/:assignmentID/approve", s.inspectorApproveAssignment)
		inspectorRoute.POST("/assignments/:assignmentID/cancel", s.inspectorCancelAssignment)
	}

	orgRoute := apiRoute.Group("/org")
	orgRoute.Use(s.authMiddleware())
	orgRoute.Use(s.requireRoles(schema.RoleOrganization))
	{
		orgRoute.GET("/requests", s.organizationListRequests)
		orgRoute.GET("/requests/:requestID", s.organizationRequestDetail)
		orgRoute.POST("/requests/:requestID/pledge", s.organizationPledge)
		orgRoute.GET("/assignments", s.organizationListAssignments)
		orgRoute.POST("/assignments/:assignmentID/complete", s.organizationCompleteAssignment)
		orgRoute.POST("/assignments/:assignmentID/fail", s.organizationFailAssignment)
		orgRoute.GET("/me", s.organizationProfile)
	}

	adminRoute := apiRoute.Group("/admin")
	adminRoute.Use(s.authMiddleware())
	adminRoute.Use(s.requireRoles(schema.RoleAdmin, schema.RoleSuperadmin))
	{
		adminRoute.GET("/requests", s.adminListRequests)
		adminRoute.PATCH("/requests/:requestID", s.adminUpdateRequest)
		adminRoute.DELETE("/requests/:requestID", s.adminDeleteRequest)
		adminRoute.POST("/assignments/:assignmentID/cancel", s.adminCancelAssignment)

		adminRoute.POST("/admins", s.adminCreateAdmin)
		adminRoute.GET("/admins", s.adminListAdmins)
		adminRoute.POST("/admins/:accountID/suspend", s.adminSuspendAdmin)
		adminRoute.POST("/admins/:accountID/activate", s.adminActivateAdmin)
		adminRoute.DELETE("/admins/:accountID", s.adminDeleteAdmin)

		adminRoute.POST("/inspectors", s.adminCreateInspector)
		adminRoute.GET("/inspectors", s.adminListInspectors)
		adminRoute.POST("/inspectors/:accountID/suspend", s.adminSuspendInspector)
		adminRoute.POST("/inspectors/:accountID/activate", s.adminActivateInspector)
		adminRoute.POST("/inspectors/:accountID/access-code", s.adminRegenerateInspectorCode)
		adminRoute.PUT("/inspectors/:accountID/access-code", s.adminSetInspectorCode)
		adminRoute.DELETE("/inspectors/:accountID", s.adminDeleteInspector)

		adminRoute.POST("/organizations", s.adminCreateOrganization)
		adminRoute.GET("/organizations", s.adminListOrganizations)
		adminRoute.POST("/organizations/:accountID/suspend", s.adminSuspendOrganization)
		adminRoute.POST("/organizations/:accountID/activate", s.adminActivateOrganization)
		adminRoute.POST("/organizations/:accountID/access-code", s.adminRegenerateOrganizationCode)
		adminRoute.PUT("/organizations/:accountID/access-code", s.adminSetOrganizationCode)
		adminRoute.DELETE("/organizations/:accountID", s.adminDeleteOrganization)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.POST("/expire-otp-sessions", s.adminExpireOTPSessions)
		secretRoute.POST("/recount-completions", s.adminRecountCompletions)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"categories":     schema.CategoryLabels,
			"system_version": "Aidlink 0.1",
			"docs":           viper.GetStringMap("docs"),
		},
	})
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	c.JSON(code, obj)
	c.Abort()
}

// abortWithValidation reports a binding failure the way validation
// errors travel on the wire: a `detail` array of {msg} objects.
func abortWithValidation(c *gin.Context, err error) {
	c.Error(err)
	c.JSON(http.StatusBadRequest, gin.H{
		"code": errorInvalidParameters.Code,
		"detail": []gin.H{
			{"msg": err.Error()},
		},
	})
	c.Abort()
}
