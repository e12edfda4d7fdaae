package catalog

// defaultVocabulary maps each canonical feature tag to the synonym phrases
// that count as a sighting of it in amenity lists and descriptions. Curated
// for the NYC rental market the dataset covers.
var defaultVocabulary = map[string][]string{
	// Laundry
	"in unit washer":      {"in unit washer", "washer in unit", "in unit dryer", "dryer in unit", "washer dryer in unit", "in unit laundry", "laundry in unit"},
	"in building laundry": {"in building laundry", "laundry in building", "shared laundry", "community laundry"},
	"no laundry":          {"no laundry", "no washer", "no dryer"},

	// Building
	"elevator": {"elevator", "lift", "elevator building"},
	"walk up":  {"walk up", "walkup", "no elevator", "walk-up building"},
	"doorman":  {"doorman", "concierge", "doorman building"},
	"gym":      {"gym", "fitness center", "workout room", "exercise room"},
	"rooftop":  {"rooftop", "roof deck", "roof access", "rooftop deck"},
	"garden":   {"garden", "backyard", "outdoor space", "patio"},
	"balcony":  {"balcony", "terrace", "outdoor balcony"},

	// Apartment
	"hardwood floors":  {"hardwood floors", "hardwood", "wood floors"},
	"high ceilings":    {"high ceilings", "tall ceilings", "ceiling height"},
	"exposed brick":    {"exposed brick", "brick walls", "brick"},
	"renovated":        {"renovated", "newly renovated", "recently renovated", "updated"},
	"new construction": {"new construction", "newly built", "new building"},
	"loft":             {"loft", "loft style", "loft apartment"},
	"studio":           {"studio", "studio apartment"},

	// Kitchen
	"dishwasher":                 {"dishwasher", "dish washer"},
	"stainless steel appliances": {"stainless steel appliances", "stainless appliances", "ss appliances"},
	"gas stove":                  {"gas stove", "gas range", "gas oven"},
	"island kitchen":             {"island kitchen", "kitchen island"},
	"open kitchen":               {"open kitchen", "open concept kitchen"},

	// Bathroom
	"en suite":           {"en suite", "ensuite", "private bathroom", "attached bathroom"},
	"renovated bathroom": {"renovated bathroom", "updated bathroom", "new bathroom"},

	// Closets
	"walk in closet": {"walk in closet", "walk-in closet", "large closet"},
	"custom closet":  {"custom closet", "built in closet", "closet system"},

	// Windows and light
	"natural light":     {"natural light", "natural sunlight", "sunlight", "bright"},
	"oversized windows": {"oversized windows", "large windows", "big windows"},
	"northern exposure": {"northern exposure", "north facing"},
	"southern exposure": {"southern exposure", "south facing"},

	// HVAC and utilities
	"central ac":         {"central ac", "central air", "central air conditioning"},
	"window ac":          {"window ac", "window air conditioning"},
	"heat included":      {"heat included", "heat and hot water included"},
	"hot water included": {"hot water included", "utilities included"},

	// Security and access
	"intercom": {"intercom", "voice intercom", "video intercom"},
	"key fob":  {"key fob", "key card", "building access"},
	"security": {"security", "building security", "secure building"},

	// Pets
	"pet friendly": {"pet friendly", "pets allowed", "dogs allowed", "cats allowed"},
	"no pets":      {"no pets", "no dogs", "no cats"},

	// Parking
	"parking": {"parking", "car parking", "parking available"},
	"garage":  {"garage", "parking garage"},

	// Location
	"near subway":      {"near subway", "close to subway", "subway nearby"},
	"quiet":            {"quiet", "quiet building", "quiet street"},
	"corner unit":      {"corner unit", "corner apartment"},
	"private entrance": {"private entrance", "private entry"},

	// Extras
	"fireplace":    {"fireplace", "wood burning fireplace"},
	"wine fridge":  {"wine fridge", "wine refrigerator"},
	"home office":  {"home office", "office space", "work space"},
	"storage":      {"storage", "storage unit", "additional storage"},
	"package room": {"package room", "package receiving", "package service"},
}
