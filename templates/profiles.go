package templates

// The registry holds every content angle the fallback can write. Weights
// follow the production rotation: seasonal and photography content slightly
// favored, heavy technical angles slightly suppressed.
var registry = []Profile{
	{
		ID:          "seasonal-spotlight",
		Name:        "Seasonal Spotlight",
		Description: "Focus on seasonal activities, weather, and timing",
		Weight:      1.2,
		Suitability: Suitability{
			PreferredSeasons: []string{"spring", "fall"},
			ParkTypes:        []string{"National Park", "National Seashore", "National Monument"},
			MinimumFeatures:  1,
		},
		TitleVariants: []string{
			"{season} at {park}: A Nature Lover's Paradise",
			"{park} in {season}: Your Complete Guide",
			"{season} Guide to {park}: Perfect Timing for Nature Lovers",
			"Experience {park}: {season}'s Finest Hours",
			"{park}'s {season} Magic: When Nature Puts on a Show",
		},
		Lead: "There's something magical about visiting {park} during {season}. The park transforms into a destination that offers visitors a fresh perspective on this incredible {type}.",
		Sections: []section{
			{Heading: "What Makes {season} Special at {park}", Body: "Each season reshapes {park}, and {season} brings out some of its best qualities. Conditions change week to week, so every visit feels different from the last."},
			{Heading: "Seasonal Highlights", Body: "From {activity} to quiet moments along less-traveled paths, {season} rewards visitors who come prepared. Keep an eye out for {feature} while you explore."},
			{Heading: "Timing Your Visit", Body: "Weekdays are quieter than weekends, and early mornings offer the best light and the best parking. Build flexibility into your plans so weather never derails the trip."},
		},
		Closing:  "Plan your visit during {season} and discover why this time of year transforms {park} into something truly special.",
		BaseTags: []string{"seasonal guide"},
	},
	{
		ID:          "hidden-gems",
		Name:        "Hidden Gems",
		Description: "Focus on lesser-known attractions and secret spots",
		Weight:      1.0,
		Suitability: Suitability{
			PreferredSeasons: []string{"spring", "fall"},
			ParkTypes:        []string{"National Park", "National Monument", "National Recreation Area"},
			MinimumFeatures:  2,
		},
		TitleVariants: []string{
			"Secret Spots in {park} Most Visitors Never See",
			"Beyond the Crowds: Hidden Corners of {park}",
			"{park}'s Best-Kept Secrets: A Local's Guide",
			"The Quiet Side of {park}: Off the Beaten Path",
		},
		Lead: "Most visitors to {park} stick to the main overlooks and famous trails. Step a little further and the park reveals a quieter, wilder character that few people ever experience.",
		Sections: []section{
			{Heading: "Why Skip the Crowds", Body: "The signature sights of {park} earn their reputation, but the park's character lives in its quieter corners. A short walk past the last parking lot often means having the scenery to yourself."},
			{Heading: "Where to Wander", Body: "Ask at the visitor center about lesser-used trailheads and secondary roads. Near {city}, locals favor early starts and out-and-back routes that dodge the midday rush."},
			{Heading: "Make It an Adventure", Body: "Pack a map, carry water, and give yourself permission to explore without a checklist. {activity} away from the main corridor is where {park} surprises you."},
		},
		Closing:  "The best stories from {park} come from the places the guidebooks barely mention. Go find yours.",
		BaseTags: []string{"hidden gems", "off the beaten path"},
	},
	{
		ID:          "historical-deep-dive",
		Name:        "Historical Deep Dive",
		Description: "Focus on historical and cultural significance",
		Weight:      0.8,
		Suitability: Suitability{
			PreferredSeasons: []string{"spring", "summer", "fall", "winter"},
			ParkTypes:        []string{"National Park", "National Monument", "National Historic Site"},
		},
		TitleVariants: []string{
			"The Story Behind {park}: A Journey Through Time",
			"{park}'s Past: History Written in the Landscape",
			"From Then to Now: The History of {park}",
			"Echoes of History at {park}",
		},
		Lead: "Every trail in {park} crosses paths with history. Long before it became a protected {type}, this landscape shaped, and was shaped by, the people who lived here.",
		Sections: []section{
			{Heading: "How {park} Came to Be", Body: "Protection rarely happens by accident. The campaign to preserve what is now {park} reflects decades of advocacy, and the boundaries you see on today's map tell that story."},
			{Heading: "Layers of the Past", Body: "From early inhabitants to the establishment era, each period left its mark near {city}. Interpretive signs and ranger talks connect the sites you can still visit with the events that happened there."},
			{Heading: "Walking Through History", Body: "Pair your hike with the park's historic structures and museum collections. Understanding what came before makes {feature} mean far more than scenery."},
		},
		Closing:  "Visit {park} with its history in mind and the landscape starts to speak. Few places in {state} reward curiosity so richly.",
		BaseTags: []string{"history", "cultural heritage"},
	},
	{
		ID:          "wildlife-encounters",
		Name:        "Wildlife Encounters",
		Description: "Focus on wildlife viewing, animal behavior, and safety",
		Weight:      1.1,
		Suitability: Suitability{
			PreferredSeasons: []string{"spring", "summer", "fall"},
			ParkTypes:        []string{"National Park", "National Wildlife Refuge", "National Preserve"},
			RequiredFeatures: []string{"wildlife viewing"},
		},
		TitleVariants: []string{
			"Wildlife Watching at {park}: Your Complete Guide",
			"Amazing Animals of {park}: When and Where to Find Them",
			"Wild Encounters: A Safari Guide to {park}",
			"The Wildlife Watcher's Guide to {park}",
		},
		Lead: "Few experiences compare to spotting wild animals in their own habitat, and {park} delivers those moments season after season.",
		Sections: []section{
			{Heading: "Who Lives at {park}", Body: "The park's habitats support a community of residents and seasonal visitors. Dawn and dusk are the busiest hours for wildlife, which is exactly when patient watchers are rewarded."},
			{Heading: "Where and When to Look", Body: "Water sources, forest edges, and meadow margins concentrate activity. Bring binoculars, move quietly, and let {activity} take a back seat while you watch."},
			{Heading: "Respecting the Wildlife", Body: "Keep your distance, never feed animals, and store food properly. A good encounter is one the animal never notices."},
		},
		Closing:  "Pack your binoculars, practice your patience, and let {park} introduce you to its wilder residents.",
		BaseTags: []string{"wildlife", "animal watching"},
	},
	{
		ID:          "adventure-planning",
		Name:        "Adventure Planning",
		Description: "Focus on trip planning and logistics",
		Weight:      1.0,
		Suitability: Suitability{
			PreferredSeasons: []string{"spring", "summer", "fall", "winter"},
		},
		TitleVariants: []string{
			"Planning Your {park} Adventure: A Practical Guide",
			"{park} Trip Planner: Everything You Need to Know",
			"Your {park} Itinerary: From Arrival to Last Light",
			"How to Plan the Perfect Trip to {park}",
		},
		Lead: "A great trip to {park} starts long before you reach {city}. A little planning turns a good visit into a trip you'll talk about for years.",
		Sections: []section{
			{Heading: "Before You Go", Body: "Check the park's official site for current conditions, reservation requirements, and seasonal closures. Book accommodations near {city} early in busy months."},
			{Heading: "Building Your Itinerary", Body: "Anchor each day around one highlight and leave room for detours. Mixing {activity} with shorter stops keeps energy up for groups of every age."},
			{Heading: "Logistics That Matter", Body: "Fuel up before entering, download offline maps, and carry more water than you think you need. Cell coverage in {park} is spotty by design."},
		},
		Closing:  "With the groundwork done, all that's left is to show up and enjoy {park} at your own pace.",
		BaseTags: []string{"trip planning", "travel tips"},
	},
	{
		ID:          "photography-focus",
		Name:        "Photography Focus",
		Description: "Focus on photography opportunities and techniques",
		Weight:      1.2,
		Suitability: Suitability{
			PreferredSeasons: []string{"spring", "summer", "fall", "winter"},
			MinimumFeatures:  1,
		},
		TitleVariants: []string{
			"Photographing {park}: A Shooter's Field Guide",
			"{park} Through the Lens: Where to Point Your Camera",
			"The Photographer's Guide to {park}",
			"Capturing {park}: Light, Landscapes, and Timing",
		},
		Lead: "From first light to star fields, {park} hands photographers one composition after another. Knowing where to stand, and when, makes all the difference.",
		Sections: []section{
			{Heading: "Chasing the Light", Body: "Golden hour transforms {park}. Scout compositions in the flat light of midday, then return when the sun drops and shadows carve depth into the landscape."},
			{Heading: "Signature Shots and Sleepers", Body: "The famous viewpoints earn their crowds, but side trails near {feature} reward photographers willing to carry gear a little further."},
			{Heading: "Gear and Technique", Body: "A sturdy tripod, a polarizer, and patience outperform any lens upgrade. For wildlife, long glass and distance keep both the image and the animal safe."},
		},
		Closing:  "However you shoot, {park} will fill your cards and your memory. Bring spare batteries.",
		BaseTags: []string{"photography", "scenic views"},
	},
	{
		ID:          "family-fun",
		Name:        "Family Fun",
		Description: "Focus on family-friendly activities and experiences",
		Weight:      1.0,
		Suitability: Suitability{
			PreferredSeasons: []string{"spring", "summer"},
		},
		TitleVariants: []string{
			"{park} with Kids: A Family Adventure Guide",
			"Family Fun at {park}: Activities for All Ages",
			"Making Memories: Your Family Guide to {park}",
			"{park} for Families: Where Adventure Meets Easy",
		},
		Lead: "{park} is one of {state}'s best outdoor classrooms. With the right plan, a family trip here balances adventure, learning, and the all-important snack breaks.",
		Sections: []section{
			{Heading: "Kid-Approved Highlights", Body: "Short trails with big payoffs keep young hikers engaged. The Junior Ranger program turns the whole visit into a scavenger hunt worth a badge."},
			{Heading: "Pacing the Day", Body: "Start early, plan a midday rest, and keep evenings simple. Alternating {activity} with visitor-center stops gives everyone a win."},
			{Heading: "Practical Family Tips", Body: "Pack layers, carry more snacks than seems reasonable, and set a meeting point at every stop. Restrooms and water refills are mapped at the visitor center."},
		},
		Closing:  "The best souvenirs from {park} are the stories your kids will retell all the way home to {city} and beyond.",
		BaseTags: []string{"family travel", "kids activities"},
	},
	{
		ID:          "geological-wonders",
		Name:        "Geological Wonders",
		Description: "Focus on geological features and earth processes",
		Weight:      0.7,
		Suitability: Suitability{
			PreferredSeasons: []string{"spring", "summer", "fall", "winter"},
			ParkTypes:        []string{"National Park", "National Monument"},
			MinimumFeatures:  1,
		},
		TitleVariants: []string{
			"The Geology of {park}: Reading the Rocks",
			"{park}'s Ancient Story: A Geological Journey",
			"Written in Stone: The Geological Wonders of {park}",
			"How the Earth Built {park}",
		},
		Lead: "The landscape of {park} is a stack of chapters written over unimaginable spans of time. Learning to read a few of them changes how you see every overlook.",
		Sections: []section{
			{Heading: "Forces That Shaped {park}", Body: "Uplift, erosion, water, and time did the heavy lifting here. The formations you photograph today are snapshots of processes still underway."},
			{Heading: "What to Look For", Body: "Layered rock, sculpted channels, and out-of-place boulders each tell a story. Interpretive stops along the main road near {city} decode the highlights."},
			{Heading: "Geology Underfoot", Body: "Trails double as transects through deep time. Pairing {activity} with a geology pamphlet from the visitor center turns a hike into a field lesson."},
		},
		Closing:  "Stand at the rim, look closely, and {park} will show you what patience on a planetary scale can build.",
		BaseTags: []string{"geology", "natural wonders"},
	},
	{
		ID:          "cultural-heritage",
		Name:        "Cultural Heritage",
		Description: "Focus on cultural significance and heritage",
		Weight:      0.9,
		Suitability: Suitability{
			PreferredSeasons: []string{"spring", "summer", "fall", "winter"},
			ParkTypes:        []string{"National Park", "National Monument", "National Historic Site"},
		},
		TitleVariants: []string{
			"The Living Heritage of {park}",
			"{park}: Where Culture and Landscape Meet",
			"Voices of {park}: A Cultural Journey",
			"Honoring the Heritage of {park}",
		},
		Lead: "{park} protects more than scenery. It safeguards the stories, traditions, and places of the communities whose history runs through this corner of {state}.",
		Sections: []section{
			{Heading: "The People of This Place", Body: "Indigenous nations, settlers, and conservationists all shaped the land now within {park}. Their presence survives in place names, structures, and ongoing traditions."},
			{Heading: "Sites Worth Slowing Down For", Body: "Cultural sites ask for a different pace than scenic ones. Read the interpretive panels, join a ranger talk, and let {feature} carry its full meaning."},
			{Heading: "Visiting with Respect", Body: "Treat cultural sites as you would someone's home. Stay on designated paths, leave artifacts where they rest, and photograph with care."},
		},
		Closing:  "A visit to {park} that honors its heritage leaves you with far more than photographs.",
		BaseTags: []string{"cultural heritage", "history"},
	},
	{
		ID:          "accessibility-spotlight",
		Name:        "Accessibility Spotlight",
		Description: "Focus on accessibility and inclusive experiences",
		Weight:      0.8,
		Suitability: Suitability{
			PreferredSeasons: []string{"spring", "summer", "fall", "winter"},
			ParkTypes:        []string{"National Park", "National Monument", "National Historic Site"},
		},
		TitleVariants: []string{
			"Everyone's Park: Accessible Adventures at {park}",
			"Breaking Barriers: Accessibility at {park}",
			"Inclusive Adventures: {park} for All Abilities",
			"Universal Access: Experiencing {park} Together",
		},
		Lead: "The best parks welcome everyone, and {park} keeps widening its front door. Here's how visitors of all abilities can experience its highlights.",
		Sections: []section{
			{Heading: "Accessible Highlights", Body: "Paved paths, accessible overlooks, and adaptive programs put the park's signature views within reach. The visitor center near {city} is the best first stop for current accessibility details."},
			{Heading: "Planning an Inclusive Visit", Body: "Call ahead about equipment loans, accessible parking, and service-animal guidance. Many ranger programs offer assistive listening and seated options."},
			{Heading: "Beyond the Pavement", Body: "Accessibility is more than ramps. Quiet hours, sensory-friendly materials, and shaded rest points make {park} comfortable for visitors who need them."},
		},
		Closing:  "{park} belongs to everyone. With a little planning, its best moments are open to the whole crew.",
		BaseTags: []string{"accessibility", "inclusive travel"},
	},
}
