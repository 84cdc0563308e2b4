package domain

import "math"

// UploadSummary describes an uploaded file.
type UploadSummary struct {
	Filename    string  `json:"Filename"`
	ContentType string  `json:"Format"`
	SizeKB      float64 `json:"Size(kb)"`
}

// SizeKB converts a byte count to kilobytes rounded to two decimals.
func SizeKB(n int) float64 {
	return math.Round(float64(n)/1024*100) / 100
}
