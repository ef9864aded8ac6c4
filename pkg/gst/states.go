// Package gst contains catalogues and structural validations aligned to the
// Indian Goods & Services Tax regime: GSTIN format, state codes and the
// CGST/SGST/IGST slab structure used on tax invoices.
package gst

// =============================================================================
// GST State Codes (first two digits of a GSTIN)
// Census of India codes 01-37, as published by the GSTN. A GSTIN whose leading
// two digits are not in this table does not belong to any registered
// jurisdiction and is structurally invalid.
// =============================================================================

// StateNames maps the numeric GST state code to the jurisdiction name.
var StateNames = map[int]string{
	1:  "Jammu and Kashmir",
	2:  "Himachal Pradesh",
	3:  "Punjab",
	4:  "Chandigarh",
	5:  "Uttarakhand",
	6:  "Haryana",
	7:  "Delhi",
	8:  "Rajasthan",
	9:  "Uttar Pradesh",
	10: "Bihar",
	11: "Sikkim",
	12: "Arunachal Pradesh",
	13: "Nagaland",
	14: "Manipur",
	15: "Mizoram",
	16: "Tripura",
	17: "Meghalaya",
	18: "Assam",
	19: "West Bengal",
	20: "Jharkhand",
	21: "Odisha",
	22: "Chhattisgarh",
	23: "Madhya Pradesh",
	24: "Gujarat",
	25: "Daman and Diu",
	26: "Dadra and Nagar Haveli",
	27: "Maharashtra",
	28: "Andhra Pradesh",
	29: "Karnataka",
	30: "Goa",
	31: "Lakshadweep",
	32: "Kerala",
	33: "Tamil Nadu",
	34: "Puducherry",
	35: "Andaman and Nicobar Islands",
	36: "Telangana",
	37: "Andhra Pradesh (New)",
}

// ValidStateCode reports whether code is a registered GST state code.
func ValidStateCode(code int) bool {
	_, ok := StateNames[code]
	return ok
}

// StateName returns the jurisdiction name for a state code, or "" if unknown.
func StateName(code int) string {
	return StateNames[code]
}
