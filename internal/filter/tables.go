package filter

// budgetAdjacency maps a selected budget bucket (lakh range) to the set of
// listing-side price buckets it accepts. Each range deliberately overlaps its
// neighbours at the boundary so a listing tagged right on a boundary bucket
// shows up for either adjacent range. A selected value with no entry here
// matches no listing.
var budgetAdjacency = map[string]map[string]bool{
	"0-50":     {"50l": true},
	"50-100":   {"50l": true, "1cr": true},
	"100-300":  {"1cr": true, "3cr": true},
	"300-1000": {"3cr": true, "10cr": true},
	"1000+":    {"10cr": true, "on-request": true},
}

// amenityAliases canonicalizes UI-facing amenity values to the tags stored on
// listings. Values already in canonical form pass through unchanged.
var amenityAliases = map[string]string{
	"swimming-pool": "pool",
	"gymnasium":     "gym",
	"club-house":    "clubhouse",
	"car-parking":   "parking",
	"kids-play":     "play-area",
}

// budgetLabels renders selected budget buckets for summaries.
var budgetLabels = map[string]string{
	"0-50":     "Under ₹50 Lakh",
	"50-100":   "₹50 Lakh – ₹1 Crore",
	"100-300":  "₹1 – ₹3 Crore",
	"300-1000": "₹3 – ₹10 Crore",
	"1000+":    "Above ₹10 Crore",
}

// bedroomLabels renders selected bedroom values for summaries.
var bedroomLabels = map[string]string{
	"1":  "1 BHK",
	"2":  "2 BHK",
	"3":  "3 BHK",
	"4":  "4 BHK",
	"5+": "5+ BHK",
}

// amenityLabels renders canonical amenity tags for summaries.
var amenityLabels = map[string]string{
	"pool":      "Swimming Pool",
	"gym":       "Gymnasium",
	"clubhouse": "Clubhouse",
	"garden":    "Landscaped Garden",
	"security":  "24x7 Security",
	"parking":   "Covered Parking",
	"play-area": "Kids Play Area",
}

// canonicalAmenity resolves a selected amenity value to its stored tag.
func canonicalAmenity(selected string) string {
	if canonical, ok := amenityAliases[selected]; ok {
		return canonical
	}
	return selected
}

// BudgetBuckets returns the recognized selected budget values in range order.
func BudgetBuckets() []string {
	return []string{"0-50", "50-100", "100-300", "300-1000", "1000+"}
}

// BudgetLabel returns the human label for a selected budget bucket,
// or the raw value when no label exists.
func BudgetLabel(bucket string) string {
	if label, ok := budgetLabels[bucket]; ok {
		return label
	}
	return bucket
}

// AmenityLabel returns the human label for an amenity value (aliases
// resolved first), or the raw value when no label exists.
func AmenityLabel(amenity string) string {
	if label, ok := amenityLabels[canonicalAmenity(amenity)]; ok {
		return label
	}
	return amenity
}

// BedroomLabel returns the human label for a selected bedroom value,
// or the raw value when no label exists.
func BedroomLabel(bhk string) string {
	if label, ok := bedroomLabels[bhk]; ok {
		return label
	}
	return bhk
}
