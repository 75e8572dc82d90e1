package models

type CardDetails struct {
	ID               int64  `json:"id"`
	RenterID         int64  `json:"renter_id"`
	CardNo           string `json:"card_no"`
	BillingAddressID int64  `json:"billing_address_id"`
	NameOnCard       string `json:"name_on_card"`
}

// CardListing is a card joined to its billing address.
type CardListing struct {
	CardID     int64  `json:"card_id"`
	CardNo     string `json:"card_no"`
	NameOnCard string `json:"name_on_card"`
	Line1      string `json:"line_1"`
	City       string `json:"city"`
	State      string `json:"state"`
}
