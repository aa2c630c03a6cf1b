package api

import "github.com/aidlink-inc/aidlink-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",
		1004: "this action is not permitted for your role",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrAccountTaken.Error(),
		1101: store.ErrAccountNotFound.Error(),
		1102: store.ErrInvalidCredentials.Error(),
		1103: store.ErrAccountSuspended.Error(),
		1104: store.ErrInvalidAccessCode.Error(),

		1200: store.ErrRequestNotExist.Error(),
		1201: store.ErrRequestNotDeletable.Error(),
		1202: store.ErrRequestNotEligible.Error(),
		1203: store.ErrPledgeExists.Error(),
		1204: store.ErrAssignmentNotExist.Error(),

		1300: store.ErrOTPCooldown.Error(),
		1301: store.ErrOTPInvalid.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)
	errorForbiddenRole              = errorJSON(1004)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken       = errorJSON(1100)
	errorAccountNotFound    = errorJSON(1101)
	errorInvalidCredentials = errorJSON(1102)
	errorAccountSuspended   = errorJSON(1103)
	errorInvalidAccessCode  = errorJSON(1104)

	errorRequestNotExist     = errorJSON(1200)
	errorRequestNotDeletable = errorJSON(1201)
	errorRequestNotEligible  = errorJSON(1202)
	errorPledgeExists        = errorJSON(1203)
	errorAssignmentNotExist  = errorJSON(1204)

	errorOTPCooldown = errorJSON(1300)
	errorOTPInvalid  = errorJSON(1301)
)

// ErrorResponse is the wire shape of every non-2xx body. Clients only
// rely on `detail`.
type ErrorResponse struct {
	Code   int64  `json:"code"`
	Detail string `json:"detail"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var detail string
	if msg, ok := errorMessageMap[code]; ok {
		detail = msg
	} else {
		detail = "unknown"
	}

	return ErrorResponse{
		Code:   code,
		Detail: detail,
	}
}
