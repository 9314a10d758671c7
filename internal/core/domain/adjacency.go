package domain

// stateNeighbors maps a two-letter state code to its bordering states.
// State borders are static geographic facts, so the table is compiled in:
// lookups are O(1) and need no network or database access.
var stateNeighbors = map[string][]string{
	"CA": {"NV", "AZ", "OR"},
	"TX": {"NM", "OK", "AR", "LA"},
	"FL": {"GA", "AL"},
	"NY": {"PA", "NJ", "CT", "MA", "VT"},
	"CO": {"NM", "KS", "NE", "WY", "UT"},
	"WA": {"OR", "ID"},
	"IL": {"WI", "IN", "IA", "MO", "KY"},
	"OH": {"PA", "MI", "IN", "KY", "WV"},
	"GA": {"FL", "AL", "SC", "NC", "TN"},
	"NC": {"SC", "GA", "TN", "VA"},
	"VA": {"NC", "WV", "MD", "DC", "TN", "KY"},
	"PA": {"NY", "NJ", "DE", "MD", "WV", "OH"},
	"AZ": {"CA", "NV", "UT", "NM"},
	"NV": {"CA", "OR", "ID", "UT", "AZ"},
	"OR": {"WA", "ID", "NV", "CA"},
	"NM": {"AZ", "CO", "OK", "TX"},
	"OK": {"TX", "NM", "CO", "KS", "MO", "AR"},
	"LA": {"TX", "AR", "MS"},
	"MI": {"OH", "IN", "WI"},
	"WI": {"MI", "IL", "IA", "MN"},
	"MN": {"WI", "IA", "SD", "ND"},
	"MO": {"IA", "IL", "KY", "TN", "AR", "OK", "KS", "NE"},
	"UT": {"NV", "AZ", "CO", "WY", "ID"},
	"KS": {"CO", "NE", "MO", "OK"},
	"NE": {"WY", "SD", "IA", "MO", "KS", "CO"},
	"IA": {"MN", "WI", "IL", "MO", "NE", "SD"},
	"TN": {"KY", "VA", "NC", "GA", "AL", "MS", "AR", "MO"},
	"AL": {"TN", "GA", "FL", "MS"},
	"MS": {"TN", "AL", "LA", "AR"},
	"AR": {"MO", "TN", "MS", "LA", "TX", "OK"},
	"SC": {"NC", "GA"},
	"KY": {"OH", "WV", "VA", "TN", "MO", "IL", "IN"},
	"IN": {"MI", "OH", "KY", "IL"},
	"WV": {"OH", "PA", "MD", "VA", "KY"},
}

// NeighboringStates returns the states bordering the given two-letter code.
// Unknown codes return nil.
func NeighboringStates(state string) []string {
	return stateNeighbors[state]
}
