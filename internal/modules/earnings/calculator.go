package earnings

// Amount computes what a clip pays out: RPM is the rate per 1000 views, so
// the amount is (views / 1000) * rpm. No rounding happens here; displaying a
// currency-rounded value is the caller's concern, the ledger keeps the exact
// figure.
func Amount(views int64, rpm float64) float64 {
	return float64(views) / 1000 * rpm
}
