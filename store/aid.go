package store

import (
	"github.com/jinzhu/gorm"

	"github.com/aidlink-inc/aidlink-api/schema"
)

// aidlink main datastore
type AidCore interface {
	Ping() error

	// Requests
	CreateRequest(params RequestParams) (*schema.AidRequest, error)
	GetRequest(id string) (*schema.AidRequest, error)
	GetRequestByTrackingCode(code string) (*schema.AidRequest, error)
	ListRequests(filter RequestFilter) ([]schema.AidRequest, int, error)
	ActivateRequest(id, inspectorID string) (*schema.AidRequest, error)
	RejectRequest(id, inspectorID, reason string) (*schema.AidRequest, error)
	CancelOwnRequest(id, citizenID string) (*schema.AidRequest, error)
	FlagRequest(id, inspectorID, reason string) (*schema.AidRequest, error)
	UpdateRequest(id string, update RequestUpdate) (*schema.AidRequest, error)
	DeleteRequest(id string, allowed []schema.RequestStatus) error

	// Assignments
	CreateAssignment(requestID, organizationID, notes string) (*schema.Assignment, error)
	GetAssignment(id string) (*schema.Assignment, error)
	ListAssignments(filter AssignmentFilter) ([]schema.Assignment, int, error)
	ApproveAssignment(id, contactName, contactPhone string) (*schema.Assignment, error)
	CompleteAssignment(id, organizationID, notes string) (*schema.Assignment, error)
	FailAssignment(id, organizationID, reason string) (*schema.Assignment, error)
	CancelAssignment(id string) (*schema.Assignment, error)

	// Citizens
	CreateCitizen(phone string) (*schema.Citizen, error)
	GetCitizen(id string) (*schema.Citizen, error)
	GetCitizenByPhone(phone string) (*schema.Citizen, error)
	UpdateCitizen(id string, update CitizenUpdate) (*schema.Citizen, error)

	// Inspectors
	CreateInspector(fullName, phone string) (*schema.Inspector, string, error)
	GetInspector(id string) (*schema.Inspector, error)
	ListInspectors() ([]schema.Inspector, error)
	InspectorLogin(phone, accessCode string) (*schema.Inspector, error)
	SetInspectorStatus(id string, status schema.AccountStatus) error
	SetInspectorCode(id, code string) error
	RegenerateInspectorCode(id string) (string, error)
	DeleteInspector(id string) error

	// Organizations
	CreateOrganization(params OrganizationParams) (*schema.Organization, string, error)
	GetOrganization(id string) (*schema.Organization, error)
	ListOrganizations() ([]schema.Organization, error)
	OrganizationLogin(phone, accessCode string) (*schema.Organization, error)
	SetOrganizationStatus(id string, status schema.AccountStatus) error
	SetOrganizationCode(id, code string) error
	RegenerateOrganizationCode(id string) (string, error)
	DeleteOrganization(id string) error
	RecountOrganizationCompletions() error

	// Admins
	CreateAdmin(fullName, email, phone string, role schema.Role) (*schema.Admin, string, error)
	GetAdmin(id string) (*schema.Admin, error)
	ListAdmins() ([]schema.Admin, error)
	AdminLogin(email, password string) (*schema.Admin, error)
	SetAdminStatus(id string, status schema.AccountStatus) error
	DeleteAdmin(id string) error

	// OTP
	IssueOTP(phone string) (*schema.OTPSession, error)
	VerifyOTP(phone, code string) error
	ExpireOTPSessions() (int64, error)
}

// AidStore is an implementation of AidCore
type AidStore struct {
	ormDB *gorm.DB
	mongo MongoStore
}

func NewAidStore(ormDB *gorm.DB, mongo MongoStore) *AidStore {
	return &AidStore{
		ormDB: ormDB,
		mongo: mongo,
	}
}

// Ping is to check the storage health status
func (s *AidStore) Ping() error {
	return s.ormDB.DB().Ping()
}
