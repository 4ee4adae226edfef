package api

// ErrorResponse is the body of every failed request: a single error string,
// paired with the HTTP status that classifies it.
type ErrorResponse struct {
	Error string `json:"error"`
}

var (
	errorInternalServer = ErrorResponse{"internal server error"}

	errorNoAccessToken = ErrorResponse{"no access token provided"}
	errorInvalidToken  = ErrorResponse{"invalid or expired token"}

	errorCannotParseRequest = ErrorResponse{"cannot parse request"}

	errorMissingSignupFields  = ErrorResponse{"missing required fields"}
	errorInvalidCredentials   = ErrorResponse{"invalid email or password"}
	errorProfileNotFound      = ErrorResponse{"profile not found"}
	errorTitleContentRequired = ErrorResponse{"title and content are required"}
	errorEntryNotFound        = ErrorResponse{"journal entry not found"}
	errorRequiredFieldMissing = ErrorResponse{"required fields missing"}
	errorQuestionRequired     = ErrorResponse{"question is required"}
	errorQuestionNotFound     = ErrorResponse{"question not found"}
	errorResponseRequired     = ErrorResponse{"response is required"}
	errorAlertNotAuthorized   = ErrorResponse{"not authorized to create alerts"}
)
