package services

import "time"

// parseDate converts an optional YYYY-MM-DD string (already shape-checked
// by the dto validator) into a nullable time.
func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
