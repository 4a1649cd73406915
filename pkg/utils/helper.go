package utils

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseFloat converts string to *float64, nil when empty or malformed
func ParseFloat(value string) *float64 {
	if value == "" {
		return nil
	}

	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}

	return &result
}

// ParseDate converts a YYYY-MM-DD string to *time.Time, nil when empty or malformed
func ParseDate(value string) *time.Time {
	if value == "" {
		return nil
	}

	result, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}

	return &result
}

// GenerateOrderID creates a unique order ID with timestamp
func GenerateOrderID() string {
	rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()

	// Format: TRIP-YYYYMMDD-HHMMSS-RANDOM
	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("TRIP-%s-%s-%s", datePart, timePart, randomPart)
}
