package models

type Address struct {
	ID      int64   `json:"id"`
	Line1   string  `json:"line_1"`
	City    string  `json:"city"`
	State   string  `json:"state"`
	ZipCode *string `json:"zip_code,omitempty"`
}
