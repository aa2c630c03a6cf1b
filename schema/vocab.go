package schema

// Category of an aid request
type Category string

const (
	CategoryFood       Category = "food"
	CategoryWater      Category = "water"
	CategoryShelter    Category = "shelter"
	CategoryMedicine   Category = "medicine"
	CategoryClothes    Category = "clothes"
	CategoryBlankets   Category = "blankets"
	CategoryBabySupply Category = "baby_supplies"
	CategoryHygiene    Category = "hygiene"
	CategoryFinancial  Category = "financial"
	CategoryOther      Category = "other"
)

// CategoryLabels maps categories to their display labels
var CategoryLabels = map[Category]string{
	CategoryFood:       "Food",
	CategoryWater:      "Water",
	CategoryShelter:    "Shelter",
	CategoryMedicine:   "Medicine",
	CategoryClothes:    "Clothes",
	CategoryBlankets:   "Blankets",
	CategoryBabySupply: "Baby supplies",
	CategoryHygiene:    "Hygiene",
	CategoryFinancial:  "Financial",
	CategoryOther:      "Other",
}

func (c Category) Valid() bool {
	_, ok := CategoryLabels[c]
	return ok
}

// RequestStatus of an aid request
type RequestStatus string

const (
	RequestPending    RequestStatus = "pending"
	RequestNew        RequestStatus = "new"
	RequestAssigned   RequestStatus = "assigned"
	RequestInProgress RequestStatus = "in_progress"
	RequestCompleted  RequestStatus = "completed"
	RequestCancelled  RequestStatus = "cancelled"
	RequestRejected   RequestStatus = "rejected"
)

// RequestStatusColors maps request statuses to badge colors
var RequestStatusColors = map[RequestStatus]string{
	RequestPending:    "gray",
	RequestNew:        "blue",
	RequestAssigned:   "purple",
	RequestInProgress: "orange",
	RequestCompleted:  "green",
	RequestCancelled:  "gray",
	RequestRejected:   "red",
}

// Terminal reports whether no further transition can leave the status.
func (s RequestStatus) Terminal() bool {
	switch s {
	case RequestCompleted, RequestCancelled, RequestRejected:
		return true
	}
	return false
}

func (s RequestStatus) Valid() bool {
	_, ok := RequestStatusColors[s]
	return ok
}

// AssignmentStatus of a pledge made by an organization
type AssignmentStatus string

const (
	AssignmentPledged    AssignmentStatus = "pledged"
	AssignmentInProgress AssignmentStatus = "in_progress"
	AssignmentCompleted  AssignmentStatus = "completed"
	AssignmentFailed     AssignmentStatus = "failed"
	AssignmentCancelled  AssignmentStatus = "cancelled"
)

// Active reports whether the assignment is the one currently driving
// its request. A request holds at most one active assignment.
func (s AssignmentStatus) Active() bool {
	return s == AssignmentPledged || s == AssignmentInProgress
}

func (s AssignmentStatus) Terminal() bool {
	switch s {
	case AssignmentCompleted, AssignmentFailed, AssignmentCancelled:
		return true
	}
	return false
}

// AccountStatus for admins, inspectors and organizations
type AccountStatus string

const (
	AccountActive    AccountStatus = "active"
	AccountSuspended AccountStatus = "suspended"
)

// Role of an authenticated principal
type Role string

const (
	RoleCitizen      Role = "citizen"
	RoleInspector    Role = "inspector"
	RoleOrganization Role = "organization"
	RoleAdmin        Role = "admin"
	RoleSuperadmin   Role = "superadmin"
)
