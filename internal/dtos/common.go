package dtos

import "time"

// ISOTime renders timestamps the way the API serializes all dates.
func ISOTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func ptr[T any](v T) *T {
	return &v
}

type HealthCheckResponse struct {
	Status string `json:"status"`
}
