package templates

// seasonInfo carries the per-season text fragments shared by every profile.
type seasonInfo struct {
	DisplayName    string
	Adjective      string
	Highlights     [3]string
	Tags           []string
	Activities     []string
	Weather        string
	Crowds         string
	Considerations string
	Packing        string
	Timing         string
}

var seasonTable = map[string]seasonInfo{
	"spring": {
		DisplayName:    "Spring",
		Adjective:      "vibrant",
		Highlights:     [3]string{"blooming wildflowers", "cascading waterfalls", "mild hiking weather"},
		Tags:           []string{"wildflowers", "photography", "waterfalls"},
		Activities:     []string{"wildflower viewing", "photography", "hiking", "bird watching"},
		Weather:        "mild temperatures and occasional rain showers",
		Crowds:         "moderate, with weekends being busier",
		Considerations: "trails may be muddy, pack layers for changing weather",
		Packing:        "waterproof jacket and layered clothing for changing conditions",
		Timing:         "Early spring can be unpredictable, but late spring typically offers the best combination of mild weather and peak wildflower displays.",
	},
	"summer": {
		DisplayName:    "Summer",
		Adjective:      "peak",
		Highlights:     [3]string{"full trail access", "camping opportunities", "family activities"},
		Tags:           []string{"summer", "camping", "hiking"},
		Activities:     []string{"hiking", "camping", "ranger programs", "photography"},
		Weather:        "warm to hot temperatures with clear skies",
		Crowds:         "heaviest crowds, arrive early for parking",
		Considerations: "bring plenty of water, wear sun protection",
		Packing:        "sun protection including hat, sunglasses, and sunscreen",
		Timing:         "Early summer provides the best balance of accessible trails and manageable crowds; July and August bring the warmest weather but the highest visitor numbers.",
	},
	"fall": {
		DisplayName:    "Fall",
		Adjective:      "spectacular",
		Highlights:     [3]string{"stunning foliage", "crisp hiking weather", "fewer crowds"},
		Tags:           []string{"fall foliage", "photography", "scenic drives"},
		Activities:     []string{"leaf peeping", "photography", "hiking", "scenic drives"},
		Weather:        "crisp, clear days with cool evenings",
		Crowds:         "moderate, especially during peak foliage",
		Considerations: "weather can change quickly, dress in layers",
		Packing:        "warm layers for cool mornings and evenings",
		Timing:         "Peak foliage timing varies by elevation; higher elevations change first, with full color displays arriving mid to late fall.",
	},
	"winter": {
		DisplayName:    "Winter",
		Adjective:      "serene",
		Highlights:     [3]string{"peaceful solitude", "winter wildlife", "snow-covered landscapes"},
		Tags:           []string{"winter", "solitude", "wildlife"},
		Activities:     []string{"winter hiking", "wildlife viewing", "photography", "snowshoeing"},
		Weather:        "cold temperatures with possible snow",
		Crowds:         "minimal, offering peaceful experiences",
		Considerations: "check road conditions, bring winter gear",
		Packing:        "warm winter gear including insulated boots and gloves",
		Timing:         "Mid-winter offers the most reliable snow coverage; early and late winter bring more variable conditions.",
	},
}

func seasonData(season string) seasonInfo {
	if s, ok := seasonTable[season]; ok {
		return s
	}
	return seasonTable["spring"]
}
