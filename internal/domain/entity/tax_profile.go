package entity

// TaxProfile holds the GST registration details of a client, keyed by
// client ID in the record store. The GSTIN is stored as entered by the user;
// structural validation happens in the export pipeline.
type TaxProfile struct {
	GSTIN         string
	HSNCode       string // harmonized classification code for the services billed
	PlaceOfSupply string // jurisdiction (state) name
}
