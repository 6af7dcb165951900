// Package gazetteer holds the static geographic tables: major Indian
// cities with coordinates, the archetype regions used to pad feed coverage,
// and the state list used for free-text state extraction.
package gazetteer

import "strings"

type City struct {
	Name  string  `json:"name"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	State string  `json:"state"`
	Type  string  `json:"type"`
}

// Find returns the city with the given name, case-insensitively.
func Find(name string) (City, bool) {
	lower := strings.ToLower(name)
	for _, c := range Cities {
		if strings.ToLower(c.Name) == lower {
			return c, true
		}
	}
	return City{}, false
}

// MentionedIn returns every city whose name appears as a substring of the
// given lowercased text, in table order.
func MentionedIn(text string) []City {
	var found []City
	for _, c := range Cities {
		if strings.Contains(text, strings.ToLower(c.Name)) {
			found = append(found, c)
		}
	}
	return found
}

// StateIn returns the first state from the known list mentioned in the
// lowercased text, title-cased, or "" when none matches.
func StateIn(text string) string {
	for _, s := range States {
		if strings.Contains(text, s) {
			return Title(s)
		}
	}
	return ""
}

// Title upper-cases the first letter of every word.
func Title(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// States known to the free-text extractor, lowercased.
var States = []string{
	"maharashtra", "uttar pradesh", "bihar", "west bengal", "madhya pradesh",
	"tamil nadu", "rajasthan", "karnataka", "gujarat", "andhra pradesh",
	"odisha", "telangana", "kerala", "jharkhand", "assam", "punjab",
	"chhattisgarh", "haryana", "delhi", "jammu and kashmir", "uttarakhand",
}

// Cities maps major Indian cities to WGS84 coordinates.
var Cities = []City{
	{Name: "Mumbai", Lat: 19.0760, Lon: 72.8777, State: "Maharashtra", Type: "city"},
	{Name: "Delhi", Lat: 28.6139, Lon: 77.2090, State: "Delhi", Type: "city"},
	{Name: "Bangalore", Lat: 12.9716, Lon: 77.5946, State: "Karnataka", Type: "city"},
	{Name: "Hyderabad", Lat: 17.3850, Lon: 78.4867, State: "Telangana", Type: "city"},
	{Name: "Chennai", Lat: 13.0827, Lon: 80.2707, State: "Tamil Nadu", Type: "city"},
	{Name: "Kolkata", Lat: 22.5726, Lon: 88.3639, State: "West Bengal", Type: "city"},
	{Name: "Pune", Lat: 18.5204, Lon: 73.8567, State: "Maharashtra", Type: "city"},
	{Name: "Ahmedabad", Lat: 23.0225, Lon: 72.5714, State: "Gujarat", Type: "city"},
	{Name: "Jaipur", Lat: 26.9124, Lon: 75.7873, State: "Rajasthan", Type: "city"},
	{Name: "Surat", Lat: 21.1702, Lon: 72.8311, State: "Gujarat", Type: "city"},
	{Name: "Lucknow", Lat: 26.8467, Lon: 80.9462, State: "Uttar Pradesh", Type: "city"},
	{Name: "Kanpur", Lat: 26.4499, Lon: 80.3319, State: "Uttar Pradesh", Type: "city"},
	{Name: "Nagpur", Lat: 21.1458, Lon: 79.0882, State: "Maharashtra", Type: "city"},
	{Name: "Indore", Lat: 22.7196, Lon: 75.8577, State: "Madhya Pradesh", Type: "city"},
	{Name: "Bhopal", Lat: 23.2599, Lon: 77.4126, State: "Madhya Pradesh", Type: "city"},
	{Name: "Visakhapatnam", Lat: 17.6868, Lon: 83.2185, State: "Andhra Pradesh", Type: "city"},
	{Name: "Patna", Lat: 25.5941, Lon: 85.1376, State: "Bihar", Type: "city"},
	{Name: "Vadodara", Lat: 22.3072, Lon: 73.1812, State: "Gujarat", Type: "city"},
	{Name: "Ghaziabad", Lat: 28.6692, Lon: 77.4538, State: "Uttar Pradesh", Type: "city"},
	{Name: "Ludhiana", Lat: 30.9010, Lon: 75.8573, State: "Punjab", Type: "city"},
	{Name: "Agra", Lat: 27.1767, Lon: 78.0081, State: "Uttar Pradesh", Type: "city"},
	{Name: "Nashik", Lat: 19.9975, Lon: 73.7898, State: "Maharashtra", Type: "city"},
	{Name: "Faridabad", Lat: 28.4089, Lon: 77.3178, State: "Haryana", Type: "city"},
	{Name: "Meerut", Lat: 28.9845, Lon: 77.7064, State: "Uttar Pradesh", Type: "city"},
	{Name: "Rajkot", Lat: 22.3039, Lon: 70.8022, State: "Gujarat", Type: "city"},
	{Name: "Kalyan", Lat: 19.2403, Lon: 73.1305, State: "Maharashtra", Type: "city"},
	{Name: "Vasai", Lat: 19.4912, Lon: 72.8054, State: "Maharashtra", Type: "city"},
	{Name: "Varanasi", Lat: 25.3176, Lon: 82.9739, State: "Uttar Pradesh", Type: "city"},
	{Name: "Srinagar", Lat: 34.0837, Lon: 74.7973, State: "Jammu and Kashmir", Type: "city"},
	{Name: "Aurangabad", Lat: 19.8762, Lon: 75.3433, State: "Maharashtra", Type: "city"},
	{Name: "Dhanbad", Lat: 23.7957, Lon: 86.4304, State: "Jharkhand", Type: "city"},
	{Name: "Amritsar", Lat: 31.6340, Lon: 74.8723, State: "Punjab", Type: "city"},
	{Name: "Navi Mumbai", Lat: 19.0330, Lon: 73.0297, State: "Maharashtra", Type: "city"},
	{Name: "Allahabad", Lat: 25.4358, Lon: 81.8463, State: "Uttar Pradesh", Type: "city"},
	{Name: "Ranchi", Lat: 23.3441, Lon: 85.3096, State: "Jharkhand", Type: "city"},
	{Name: "Howrah", Lat: 22.5958, Lon: 88.2636, State: "West Bengal", Type: "city"},
	{Name: "Coimbatore", Lat: 11.0168, Lon: 76.9558, State: "Tamil Nadu", Type: "city"},
	{Name: "Jabalpur", Lat: 23.1815, Lon: 79.9864, State: "Madhya Pradesh", Type: "city"},
	{Name: "Gwalior", Lat: 26.2183, Lon: 78.1828, State: "Madhya Pradesh", Type: "city"},
	{Name: "Vijayawada", Lat: 16.5062, Lon: 80.6480, State: "Andhra Pradesh", Type: "city"},
	{Name: "Jodhpur", Lat: 26.2389, Lon: 73.0243, State: "Rajasthan", Type: "city"},
	{Name: "Madurai", Lat: 9.9252, Lon: 78.1198, State: "Tamil Nadu", Type: "city"},
	{Name: "Raipur", Lat: 21.2514, Lon: 81.6296, State: "Chhattisgarh", Type: "city"},
	{Name: "Kota", Lat: 25.2138, Lon: 75.8648, State: "Rajasthan", Type: "city"},
	{Name: "Chandigarh", Lat: 30.7333, Lon: 76.7794, State: "Chandigarh", Type: "city"},
	{Name: "Guwahati", Lat: 26.1445, Lon: 91.7362, State: "Assam", Type: "city"},
	{Name: "Solapur", Lat: 17.6599, Lon: 75.9064, State: "Maharashtra", Type: "city"},
	{Name: "Hubli", Lat: 15.3647, Lon: 75.1240, State: "Karnataka", Type: "city"},
	{Name: "Bareilly", Lat: 28.3670, Lon: 79.4304, State: "Uttar Pradesh", Type: "city"},
	{Name: "Moradabad", Lat: 28.8386, Lon: 78.7733, State: "Uttar Pradesh", Type: "city"},
	{Name: "Mysore", Lat: 12.2958, Lon: 76.6394, State: "Karnataka", Type: "city"},
	{Name: "Gurgaon", Lat: 28.4595, Lon: 77.0266, State: "Haryana", Type: "city"},
	{Name: "Aligarh", Lat: 27.8974, Lon: 78.0880, State: "Uttar Pradesh", Type: "city"},
	{Name: "Jalandhar", Lat: 31.3260, Lon: 75.5762, State: "Punjab", Type: "city"},
	{Name: "Tiruchirappalli", Lat: 10.7905, Lon: 78.7047, State: "Tamil Nadu", Type: "city"},
	{Name: "Bhubaneswar", Lat: 20.2961, Lon: 85.8245, State: "Odisha", Type: "city"},
	{Name: "Salem", Lat: 11.6643, Lon: 78.1460, State: "Tamil Nadu", Type: "city"},
	{Name: "Warangal", Lat: 17.9689, Lon: 79.5941, State: "Telangana", Type: "city"},
	{Name: "Mira", Lat: 19.2952, Lon: 72.8694, State: "Maharashtra", Type: "city"},
	{Name: "Thiruvananthapuram", Lat: 8.5241, Lon: 76.9366, State: "Kerala", Type: "city"},
	{Name: "Bhiwandi", Lat: 19.3002, Lon: 73.0635, State: "Maharashtra", Type: "city"},
	{Name: "Saharanpur", Lat: 29.9680, Lon: 77.5552, State: "Uttar Pradesh", Type: "city"},
	{Name: "Guntur", Lat: 16.3067, Lon: 80.4365, State: "Andhra Pradesh", Type: "city"},
	{Name: "Amravati", Lat: 20.9374, Lon: 77.7796, State: "Maharashtra", Type: "city"},
	{Name: "Bikaner", Lat: 28.0229, Lon: 73.3119, State: "Rajasthan", Type: "city"},
	{Name: "Noida", Lat: 28.5355, Lon: 77.3910, State: "Uttar Pradesh", Type: "city"},
	{Name: "Jamshedpur", Lat: 22.8046, Lon: 86.2029, State: "Jharkhand", Type: "city"},
	{Name: "Bhilai Nagar", Lat: 21.1938, Lon: 81.3509, State: "Chhattisgarh", Type: "city"},
	{Name: "Cuttack", Lat: 20.4625, Lon: 85.8828, State: "Odisha", Type: "city"},
	{Name: "Firozabad", Lat: 27.1592, Lon: 78.3957, State: "Uttar Pradesh", Type: "city"},
	{Name: "Kochi", Lat: 9.9312, Lon: 76.2673, State: "Kerala", Type: "city"},
	{Name: "Bhavnagar", Lat: 21.7645, Lon: 72.1519, State: "Gujarat", Type: "city"},
	{Name: "Dehradun", Lat: 30.3165, Lon: 78.0322, State: "Uttarakhand", Type: "city"},
	{Name: "Durgapur", Lat: 23.4820, Lon: 87.3119, State: "West Bengal", Type: "city"},
	{Name: "Asansol", Lat: 23.6739, Lon: 86.9524, State: "West Bengal", Type: "city"},
	{Name: "Nanded", Lat: 19.1383, Lon: 77.3210, State: "Maharashtra", Type: "city"},
	{Name: "Kolhapur", Lat: 16.7050, Lon: 74.2433, State: "Maharashtra", Type: "city"},
	{Name: "Ajmer", Lat: 26.4499, Lon: 74.6399, State: "Rajasthan", Type: "city"},
	{Name: "Akola", Lat: 20.7002, Lon: 77.0082, State: "Maharashtra", Type: "city"},
	{Name: "Gulbarga", Lat: 17.3297, Lon: 76.8343, State: "Karnataka", Type: "city"},
	{Name: "Jamnagar", Lat: 22.4707, Lon: 70.0577, State: "Gujarat", Type: "city"},
	{Name: "Ujjain", Lat: 23.1765, Lon: 75.7885, State: "Madhya Pradesh", Type: "city"},
	{Name: "Loni", Lat: 28.7333, Lon: 77.2833, State: "Uttar Pradesh", Type: "city"},
	{Name: "Siliguri", Lat: 26.7271, Lon: 88.3953, State: "West Bengal", Type: "city"},
	{Name: "Jhansi", Lat: 25.4484, Lon: 78.5685, State: "Uttar Pradesh", Type: "city"},
	{Name: "Ulhasnagar", Lat: 19.2215, Lon: 73.1645, State: "Maharashtra", Type: "city"},
	{Name: "Jammu", Lat: 32.7266, Lon: 74.8570, State: "Jammu and Kashmir", Type: "city"},
	{Name: "Sangli", Lat: 16.8524, Lon: 74.5815, State: "Maharashtra", Type: "city"},
	{Name: "Mangalore", Lat: 12.9141, Lon: 74.8560, State: "Karnataka", Type: "city"},
	{Name: "Erode", Lat: 11.3410, Lon: 77.7172, State: "Tamil Nadu", Type: "city"},
	{Name: "Belgaum", Lat: 15.8497, Lon: 74.4977, State: "Karnataka", Type: "city"},
	{Name: "Ambattur", Lat: 13.1143, Lon: 80.1548, State: "Tamil Nadu", Type: "city"},
	{Name: "Tirunelveli", Lat: 8.7139, Lon: 77.7567, State: "Tamil Nadu", Type: "city"},
	{Name: "Malegaon", Lat: 20.5579, Lon: 74.5287, State: "Maharashtra", Type: "city"},
	{Name: "Gaya", Lat: 24.7914, Lon: 85.0002, State: "Bihar", Type: "city"},
	{Name: "Jalgaon", Lat: 21.0077, Lon: 75.5626, State: "Maharashtra", Type: "city"},
	{Name: "Udaipur", Lat: 24.5854, Lon: 73.7125, State: "Rajasthan", Type: "city"},
	{Name: "Maheshtala", Lat: 22.4967, Lon: 88.2467, State: "West Bengal", Type: "city"},
}

// Regions are the archetype zones appended to every snapshot so coverage
// always spans the whole country, including rural areas.
var Regions = []City{
	{Name: "Mumbai", Lat: 19.0760, Lon: 72.8777, State: "Maharashtra", Type: "city"},
	{Name: "Delhi", Lat: 28.6139, Lon: 77.2090, State: "Delhi", Type: "city"},
	{Name: "Bangalore", Lat: 12.9716, Lon: 77.5946, State: "Karnataka", Type: "city"},
	{Name: "Sundarbans", Lat: 21.9497, Lon: 89.1833, State: "West Bengal", Type: "rural"},
	{Name: "Kutch District", Lat: 23.7337, Lon: 69.8597, State: "Gujarat", Type: "district"},
	{Name: "Ladakh Region", Lat: 34.1526, Lon: 77.5771, State: "Ladakh", Type: "region"},
	{Name: "Andaman Islands", Lat: 11.7401, Lon: 92.6586, State: "Andaman & Nicobar", Type: "island"},
	{Name: "Lakshadweep", Lat: 10.5667, Lon: 72.6417, State: "Lakshadweep", Type: "island"},
	{Name: "Chamoli District", Lat: 30.4000, Lon: 79.3167, State: "Uttarakhand", Type: "mountain"},
	{Name: "Wayanad", Lat: 11.6854, Lon: 76.1320, State: "Kerala", Type: "hill_station"},
	{Name: "Mahabaleshwar", Lat: 17.9242, Lon: 73.6578, State: "Maharashtra", Type: "hill_station"},
	{Name: "Rann of Kutch", Lat: 24.0000, Lon: 70.0000, State: "Gujarat", Type: "desert"},
	{Name: "Thar Desert", Lat: 27.0000, Lon: 71.0000, State: "Rajasthan", Type: "desert"},
	{Name: "Konkan Coast", Lat: 16.0000, Lon: 73.5000, State: "Maharashtra", Type: "coastal"},
	{Name: "Malabar Coast", Lat: 11.0000, Lon: 75.5000, State: "Kerala", Type: "coastal"},
	{Name: "Eastern Ghats", Lat: 14.0000, Lon: 79.0000, State: "Andhra Pradesh", Type: "mountain"},
	{Name: "Western Ghats", Lat: 15.0000, Lon: 74.0000, State: "Karnataka", Type: "mountain"},
	{Name: "Brahmaputra Valley", Lat: 26.2006, Lon: 92.9376, State: "Assam", Type: "valley"},
	{Name: "Gangetic Plains", Lat: 26.0000, Lon: 82.0000, State: "Uttar Pradesh", Type: "plains"},
	{Name: "Deccan Plateau", Lat: 17.0000, Lon: 77.0000, State: "Telangana", Type: "plateau"},
}
