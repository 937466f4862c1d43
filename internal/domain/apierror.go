package domain

import "fmt"

// ErrorKind classifies the numeric error codes returned in the API's
// failure envelope (https://6xq.net/pandora-apidoc/json/errorcodes/).
type ErrorKind int

const (
	// KindInternalError is code 0. Also observed when an account is
	// temporarily blocked for requesting playlists too frequently.
	KindInternalError ErrorKind = iota
	KindMaintenanceMode
	KindURLParamMissingMethod
	KindURLParamMissingAuthToken
	KindURLParamMissingPartnerID
	KindURLParamMissingUserID
	KindSecureProtocolRequired
	KindCertificateRequired
	KindParameterTypeMismatch
	KindParameterMissing
	KindParameterValueInvalid
	KindAPIVersionNotSupported
	// KindLicensingRestrictions is code 12: the service is not available
	// in the client's country.
	KindLicensingRestrictions
	// KindInsufficientConnectivity is code 13, usually a bad sync time.
	KindInsufficientConnectivity
	KindUnknownMethodName
	KindWrongProtocol
	KindReadOnlyMode
	// KindInvalidAuthToken is code 1001, returned once an auth token
	// expires. Interpreting this kind clears the session tokens.
	KindInvalidAuthToken
	KindInvalidPartnerLogin
	KindListenerNotAuthorized
	KindUserNotAuthorized
	KindMaxStationsReached
	KindStationDoesNotExist
	KindComplimentaryPeriodAlreadyInUse
	KindCallNotAllowed
	KindDeviceNotFound
	KindPartnerNotAuthorized
	KindInvalidUsername
	KindInvalidPassword
	KindUsernameAlreadyExists
	KindDeviceAlreadyAssociated
	KindUpgradeDeviceModelInvalid
	KindExplicitPinIncorrect
	KindExplicitPinMalformed
	KindDeviceModelInvalid
	KindZipCodeInvalid
	KindBirthYearInvalid
	KindBirthYearTooYoung
	KindInvalidCountryCode
	KindInvalidGender
	KindDeviceDisabled
	KindDailyTrialLimitReached
	KindInvalidSponsor
	KindUserAlreadyUsedTrial
	// KindPlaylistExceeded is code 1039: too many playlist requests.
	KindPlaylistExceeded
	// KindUnknownCode is any code not in the table; the raw value is
	// preserved on the APIError for inspection.
	KindUnknownCode
	// KindMissingCode is a failure envelope that carried no code at all.
	KindMissingCode
)

var kindByCode = map[int]ErrorKind{
	0:    KindInternalError,
	1:    KindMaintenanceMode,
	2:    KindURLParamMissingMethod,
	3:    KindURLParamMissingAuthToken,
	4:    KindURLParamMissingPartnerID,
	5:    KindURLParamMissingUserID,
	6:    KindSecureProtocolRequired,
	7:    KindCertificateRequired,
	8:    KindParameterTypeMismatch,
	9:    KindParameterMissing,
	10:   KindParameterValueInvalid,
	11:   KindAPIVersionNotSupported,
	12:   KindLicensingRestrictions,
	13:   KindInsufficientConnectivity,
	14:   KindUnknownMethodName,
	15:   KindWrongProtocol,
	1000: KindReadOnlyMode,
	1001: KindInvalidAuthToken,
	1002: KindInvalidPartnerLogin,
	1003: KindListenerNotAuthorized,
	1004: KindUserNotAuthorized,
	1005: KindMaxStationsReached,
	1006: KindStationDoesNotExist,
	1007: KindComplimentaryPeriodAlreadyInUse,
	1008: KindCallNotAllowed,
	1009: KindDeviceNotFound,
	1010: KindPartnerNotAuthorized,
	1011: KindInvalidUsername,
	1012: KindInvalidPassword,
	1013: KindUsernameAlreadyExists,
	1014: KindDeviceAlreadyAssociated,
	1015: KindUpgradeDeviceModelInvalid,
	1018: KindExplicitPinIncorrect,
	1020: KindExplicitPinMalformed,
	1023: KindDeviceModelInvalid,
	1024: KindZipCodeInvalid,
	1025: KindBirthYearInvalid,
	1026: KindBirthYearTooYoung,
	// The published docs list both INVALID_COUNTRY_CODE and INVALID_GENDER
	// as 1027; the country-code reading is the one seen in practice.
	1027: KindInvalidCountryCode,
	1034: KindDeviceDisabled,
	1035: KindDailyTrialLimitReached,
	1036: KindInvalidSponsor,
	1037: KindUserAlreadyUsedTrial,
	1039: KindPlaylistExceeded,
}

var kindLabels = map[ErrorKind]string{
	KindInternalError:                   "internal error",
	KindMaintenanceMode:                 "maintenance mode",
	KindURLParamMissingMethod:           "url param missing method",
	KindURLParamMissingAuthToken:        "url param missing auth token",
	KindURLParamMissingPartnerID:        "url param missing partner id",
	KindURLParamMissingUserID:           "url param missing user id",
	KindSecureProtocolRequired:          "secure protocol required",
	KindCertificateRequired:             "certificate required",
	KindParameterTypeMismatch:           "parameter type mismatch",
	KindParameterMissing:                "parameter missing",
	KindParameterValueInvalid:           "parameter value invalid",
	KindAPIVersionNotSupported:          "api version not supported",
	KindLicensingRestrictions:           "licensing restrictions",
	KindInsufficientConnectivity:        "insufficient connectivity",
	KindUnknownMethodName:               "unknown method name",
	KindWrongProtocol:                   "wrong protocol",
	KindReadOnlyMode:                    "read only mode",
	KindInvalidAuthToken:                "invalid auth token",
	KindInvalidPartnerLogin:             "invalid partner login",
	KindListenerNotAuthorized:           "listener not authorized",
	KindUserNotAuthorized:               "user not authorized",
	KindMaxStationsReached:              "max stations reached",
	KindStationDoesNotExist:             "station does not exist",
	KindComplimentaryPeriodAlreadyInUse: "complimentary period already in use",
	KindCallNotAllowed:                  "call not allowed",
	KindDeviceNotFound:                  "device not found",
	KindPartnerNotAuthorized:            "partner not authorized",
	KindInvalidUsername:                 "invalid username",
	KindInvalidPassword:                 "invalid password",
	KindUsernameAlreadyExists:           "username already exists",
	KindDeviceAlreadyAssociated:         "device already associated to account",
	KindUpgradeDeviceModelInvalid:       "upgrade device model invalid",
	KindExplicitPinIncorrect:            "explicit pin incorrect",
	KindExplicitPinMalformed:            "explicit pin malformed",
	KindDeviceModelInvalid:              "device model invalid",
	KindZipCodeInvalid:                  "zip code invalid",
	KindBirthYearInvalid:                "birth year invalid",
	KindBirthYearTooYoung:               "birth year too young",
	KindInvalidCountryCode:              "invalid country code",
	KindInvalidGender:                   "invalid gender",
	KindDeviceDisabled:                  "device disabled",
	KindDailyTrialLimitReached:          "daily trial limit reached",
	KindInvalidSponsor:                  "invalid sponsor",
	KindUserAlreadyUsedTrial:            "user already used trial",
	KindPlaylistExceeded:                "playlist exceeded",
	KindUnknownCode:                     "unrecognized error code",
	KindMissingCode:                     "missing error code",
}

// KindFromCode maps a numeric error code to its kind. Codes outside the
// table map to KindUnknownCode.
func KindFromCode(code int) ErrorKind {
	if kind, ok := kindByCode[code]; ok {
		return kind
	}
	return KindUnknownCode
}

func (k ErrorKind) String() string {
	if label, ok := kindLabels[k]; ok {
		return label
	}
	return fmt.Sprintf("error kind %d", int(k))
}

// APIError is a structured failure reported in the API's response
// envelope. Code holds the raw numeric code when one was present.
type APIError struct {
	Kind    ErrorKind
	Code    int
	HasCode bool
	Message string
}

// NewAPIError builds an APIError from the envelope's optional code and
// message. A nil code yields KindMissingCode.
func NewAPIError(code *int, message string) *APIError {
	if code == nil {
		return &APIError{Kind: KindMissingCode, Message: message}
	}

	return &APIError{
		Kind:    KindFromCode(*code),
		Code:    *code,
		HasCode: true,
		Message: message,
	}
}

func (e *APIError) Error() string {
	msg := "pandora api error: " + e.Kind.String()
	if e.Kind == KindUnknownCode {
		msg = fmt.Sprintf("%s (%d)", msg, e.Code)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}
