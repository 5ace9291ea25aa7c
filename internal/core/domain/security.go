package domain

// RiskLevel grades the severity of a security detection or audit record.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// SecurityEventType keys the sliding-window counters kept by the security
// monitor.
type SecurityEventType string

const (
	SecurityEventOTPRequest    SecurityEventType = "OTP_REQUEST"
	SecurityEventVerifyFailure SecurityEventType = "OTP_VERIFY_FAILURE"
	SecurityEventVerifySuccess SecurityEventType = "OTP_VERIFY_SUCCESS"
)

// DetectionType names an abuse pattern recognized by the security monitor.
type DetectionType string

const (
	DetectionBruteForce         DetectionType = "BRUTE_FORCE"
	DetectionDistributedAttack  DetectionType = "DISTRIBUTED_ATTACK"
	DetectionAccountEnumeration DetectionType = "ACCOUNT_ENUMERATION"
)

// RecommendedAction is the monitor's suggested response to a detection.
type RecommendedAction string

const (
	ActionMonitor          RecommendedAction = "MONITOR"
	ActionTemporaryLockout RecommendedAction = "TEMPORARY_LOCKOUT"
	ActionManualReview     RecommendedAction = "MANUAL_REVIEW"
)

// Detection describes one triggered abuse pattern.
type Detection struct {
	Type      DetectionType     `json:"type"`
	Risk      RiskLevel         `json:"risk"`
	Action    RecommendedAction `json:"action"`
	SubjectID string            `json:"subject_id,omitempty"`
	ClientIP  string            `json:"client_ip,omitempty"`
	Observed  int64             `json:"observed"`
	Threshold int64             `json:"threshold"`
}
