package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// PREFIXES defines the valid mobile prefixes per operator
var PREFIXES = struct {
	MTN    []int
	AIRTEL []int
}{
	MTN:    []int{78, 79},
	AIRTEL: []int{72, 73},
}

var phonePattern *regexp.Regexp

func init() {
	all := append([]int{}, PREFIXES.MTN...)
	all = append(all, PREFIXES.AIRTEL...)
	prefixesStr := make([]string, len(all))
	for i, prefix := range all {
		prefixesStr[i] = fmt.Sprintf("%d", prefix)
	}
	phonePattern = regexp.MustCompile(fmt.Sprintf("^(%s)\\d{7}$", strings.Join(prefixesStr, "|")))
}

// ValidateMSISDN validates a Rwandan phone number and returns it in
// international format (2507xxxxxxxx) without the plus sign
func ValidateMSISDN(msisdn string) (bool, string, error) {
	// Clean the input by removing separators
	stripped := strings.ReplaceAll(msisdn, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.ReplaceAll(stripped, "+", "")

	// Remove country code or trunk prefix if present
	if strings.HasPrefix(stripped, "250") {
		stripped = stripped[3:]
	} else if strings.HasPrefix(stripped, "0") {
		stripped = stripped[1:]
	}

	if !phonePattern.MatchString(stripped) {
		return false, "", fmt.Errorf("invalid MSISDN format or unsupported operator")
	}

	return true, "250" + stripped, nil
}

// IsMTN reports whether a normalized MSISDN belongs to the MTN network
func IsMTN(formatted string) bool {
	trimmed := strings.TrimPrefix(formatted, "250")
	for _, prefix := range PREFIXES.MTN {
		if strings.HasPrefix(trimmed, fmt.Sprintf("%d", prefix)) {
			return true
		}
	}
	return false
}
