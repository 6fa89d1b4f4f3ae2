package checks

// Status is the verdict of a single check.
type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
	StatusWarn Status = "WARN"
)

// Result is the outcome of a single deployment check.
type Result struct {
	Check   string `json:"check" example:"File: demo.html"`
	Status  Status `json:"status" example:"PASS"`
	Message string `json:"message" example:"File exists"`
}

func pass(check, message string) Result {
	return Result{Check: check, Status: StatusPass, Message: message}
}

func fail(check, message string) Result {
	return Result{Check: check, Status: StatusFail, Message: message}
}

func warn(check, message string) Result {
	return Result{Check: check, Status: StatusWarn, Message: message}
}
