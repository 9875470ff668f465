package repository

import (
	"errors"
	"os"
	"strconv"
)

var errMissingSequenceAttribute = errors.New("sequence attribute missing from update result")

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stringToFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
