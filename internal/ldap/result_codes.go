package ldap

// ResultCode represents an LDAP result code as defined in RFC 4511 Section 4.1.9,
// extended with the client-side codes conventionally numbered 81-90.
type ResultCode int

// LDAP result codes per RFC 4511 Section 4.1.9
const (
	ResultSuccess                      ResultCode = 0
	ResultOperationsError              ResultCode = 1
	ResultProtocolError                ResultCode = 2
	ResultTimeLimitExceeded            ResultCode = 3
	ResultSizeLimitExceeded            ResultCode = 4
	ResultCompareFalse                 ResultCode = 5
	ResultCompareTrue                  ResultCode = 6
	ResultAuthMethodNotSupported       ResultCode = 7
	ResultStrongerAuthRequired         ResultCode = 8
	ResultReferral                     ResultCode = 10
	ResultAdminLimitExceeded           ResultCode = 11
	ResultUnavailableCriticalExtension ResultCode = 12
	ResultConfidentialityRequired      ResultCode = 13
	ResultSASLBindInProgress           ResultCode = 14
	ResultNoSuchObject                 ResultCode = 32
	ResultInvalidDNSyntax              ResultCode = 34
	ResultInvalidCredentials           ResultCode = 49
	ResultInsufficientAccessRights     ResultCode = 50
	ResultBusy                         ResultCode = 51
	ResultUnavailable                  ResultCode = 52
	ResultUnwillingToPerform           ResultCode = 53
	ResultOther                        ResultCode = 80
)

// Client-side result codes. These are never sent by a server; they classify
// failures detected locally before a request is sent or after a reply is read.
const (
	ResultServerDown    ResultCode = 81
	ResultLocalError    ResultCode = 82
	ResultEncodingError ResultCode = 83
	ResultDecodingError ResultCode = 84
	ResultTimeout       ResultCode = 85
	ResultAuthUnknown   ResultCode = 86
	ResultFilterError   ResultCode = 87
	ResultUserCancelled ResultCode = 88
	ResultParamError    ResultCode = 89
	ResultNoMemory      ResultCode = 90
)

var resultCodeNames = map[ResultCode]string{
	ResultSuccess:                      "success",
	ResultOperationsError:              "operationsError",
	ResultProtocolError:                "protocolError",
	ResultTimeLimitExceeded:            "timeLimitExceeded",
	ResultSizeLimitExceeded:            "sizeLimitExceeded",
	ResultCompareFalse:                 "compareFalse",
	ResultCompareTrue:                  "compareTrue",
	ResultAuthMethodNotSupported:       "authMethodNotSupported",
	ResultStrongerAuthRequired:         "strongerAuthRequired",
	ResultReferral:                     "referral",
	ResultAdminLimitExceeded:           "adminLimitExceeded",
	ResultUnavailableCriticalExtension: "unavailableCriticalExtension",
	ResultConfidentialityRequired:      "confidentialityRequired",
	ResultSASLBindInProgress:           "saslBindInProgress",
	ResultNoSuchObject:                 "noSuchObject",
	ResultInvalidDNSyntax:              "invalidDNSyntax",
	ResultInvalidCredentials:           "invalidCredentials",
	ResultInsufficientAccessRights:     "insufficientAccessRights",
	ResultBusy:                         "busy",
	ResultUnavailable:                  "unavailable",
	ResultUnwillingToPerform:           "unwillingToPerform",
	ResultOther:                        "other",
	ResultServerDown:                   "serverDown",
	ResultLocalError:                   "localError",
	ResultEncodingError:                "encodingError",
	ResultDecodingError:                "decodingError",
	ResultTimeout:                      "timeout",
	ResultAuthUnknown:                  "authUnknown",
	ResultFilterError:                  "filterError",
	ResultUserCancelled:                "userCancelled",
	ResultParamError:                   "paramError",
	ResultNoMemory:                     "noMemory",
}

// String returns the RFC name of the result code.
func (r ResultCode) String() string {
	if name, ok := resultCodeNames[r]; ok {
		return name
	}
	return "unknown"
}

// IsSuccess returns true if the result code indicates success.
func (r ResultCode) IsSuccess() bool {
	return r == ResultSuccess
}

// IsClientSide reports whether the code belongs to the client-side range.
func (r ResultCode) IsClientSide() bool {
	return r >= ResultServerDown && r <= ResultNoMemory
}
