package utils

import (
	"fmt"
	"time"
)

const receiptTimeLayout = "20060102150405.000000"

// GenerateReceiptNumber derives a receipt number from the current time at microsecond
// resolution plus a short random suffix, e.g. "RCP-20230115093012.482913-9f3a".
// It is not collision-free; the payments table carries a UNIQUE constraint and inserts retry.
func GenerateReceiptNumber() (string, error) {
	return receiptNumberAt(time.Now())
}

func receiptNumberAt(t time.Time) (string, error) {
	suffix, err := GenerateSecureRandomString(2)
	if err != nil {
		return "", fmt.Errorf("failed to generate receipt suffix: %w", err)
	}
	return "RCP-" + t.UTC().Format(receiptTimeLayout) + "-" + suffix, nil
}
