package document

import "strings"

// DefaultHSCode is the harmonized-system code used when a product is not in
// the static table. 0805.10 (oranges) is the catch-all for citrus exports;
// an unrecognized product is a policy default, not an error.
const DefaultHSCode = "0805.10"

// hsCodes maps lowercased product names to harmonized-system tariff codes
// for chapter 08.05 (citrus fruit, fresh or dried).
func hsCodes() map[string]string {
	return map[string]string{
		"oranges":    "0805.10",
		"mandarins":  "0805.21",
		"lemons":     "0805.50",
		"grapefruit": "0805.40",
	}
}

// HSCodeForProduct looks up the HS tariff code for a product name.
// The lookup is case-insensitive and ignores surrounding whitespace;
// unrecognized products yield DefaultHSCode.
func HSCodeForProduct(product string) string {
	if code, ok := hsCodes()[strings.ToLower(strings.TrimSpace(product))]; ok {
		return code
	}
	return DefaultHSCode
}
