package model

// Characters used to present the preferability of groups.
const (
	PrefBad  byte = ' '
	PrefOk   byte = '1'
	PrefGood byte = '2'
)

func legalPref(pref byte) bool {
	return pref == PrefBad || pref == PrefOk || pref == PrefGood
}
