package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateReportArchiveObjectName builds the object key used when archiving a
// generated report document to the storage bucket.
func GenerateReportArchiveObjectName(userID, reportID string) string {
	timestamp := time.Now().UTC().Format("20060102_150405")
	return fmt.Sprintf("reports/%s/%s_%s.json", userID, reportID, timestamp)
}
