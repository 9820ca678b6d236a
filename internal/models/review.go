package models

// Review is one record of the source document. The source does not enforce a
// rating range or a date format, and neither do we.
type Review struct {
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
	Date   string  `json:"date"`
	Review string  `json:"review"`
}
