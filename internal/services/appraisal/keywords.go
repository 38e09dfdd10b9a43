package appraisal

import "strings"

// Categories is the closed list of marketplace categories. The AI
// classifier is only ever allowed to pick from this list.
var Categories = []string{
	"Travel & Hotel", "Tech, Internet, Software", "E-Commerce & Retail",
	"Outdoor & Adventure", "Food & Drink", "Agency & Consulting",
	"Transportation", "Fashion & Clothing", "Video, Books & Magazines",
	"Entertainment & Arts", "Health & Wellness", "Professional Services",
	"Real Estate", "Event Planning & Services", "Events & Conferences",
	"Education & Training", "Green & Organic", "Beauty & Cosmetics",
	"Social & Networking", "Food Delivery & Meal Kits", "Automotive",
	"Property Management", "Finance", "Restaurants", "Life Coach, Motivational",
	"Fitness & Gym", "Marketing & Advertising", "Home & Garden", "Sports",
	"Non-Profit & Community", "Virtual Reality", "Home", "Location Specific, GEO",
	"Catering", "Interior Design", "News & Media", "Ride-Sharing", "Aerospace",
	"Sales & Marketing", "Games & Recreational", "Music & Audio",
	"Construction & Architecture", "Bots & AI", "Venture Capital & Investment",
	"Gaming", "Beer, Wine & Spirits", "Coffee & Tea", "Security", "Metaverse",
	"Furniture & Home Furnishings", "Community Organization", "Recruitment & Staffing",
	"Solar & Clean Energy", "Cryptocurrency, Blockchain", "Politics, Government",
	"Analytics", "Startup Incubator", "Bar & Brewery", "Medical & Dental",
	"Tutoring & Test Prep", "Dating & Relationship", "Spas & Salons", "Mobile App",
	"Agriculture Company", "Weddings & Bridal", "Manufacturing & Industrial", "Drone",
	"Cleaning", "Bikes Brand", "Fintech (Finance Technology)", "Insurance", "Kids & Baby",
	"Senior Living and Care", "Cannabis, Marijuana & CBD", "Science & Engineering",
	"Legal, Attorney, Law", "Photography", "Payment", "Video Streaming", "Jewelry",
	"Pets", "Internet of Things (IOT)", "NFT", "Website & Graphic Design", "Landscaping",
	"Movies & TV", "Biotech", "Food Trucks", "Something Else", "Co Working Space",
	"Footwear", "Vitamins and Supplements", "Storage", "Crowdfunding",
	"Pharma", "Office & Business Supplies", "Podcast", "Oil and Gas",
}

type keywordCategory struct {
	Keyword  string
	Category string
}

// keywordTable associates lowercase substring keywords with categories.
// Order matters: Classify returns the category of the first keyword found,
// scanning in this order.
//
// The list intentionally contains duplicate keys ("clinic", "market",
// "auto", "home", "fitness", "gym"). Upstream data kept the first position
// but the last value for such keys, so e.g. "market" ends up mapped to
// Marketing & Advertising while still being scanned in the e-commerce
// slot. That is almost certainly an accident in the source data, but the
// effective behavior is preserved here rather than fixed; see DESIGN.md.
var keywordTable = buildKeywordTable([]keywordCategory{
	// Tech & AI
	{"ai", "Bots & AI"}, {"bot", "Bots & AI"}, {"tech", "Tech, Internet, Software"},
	{"app", "Mobile App"}, {"cloud", "Tech, Internet, Software"}, {"data", "Analytics"},
	{"code", "Tech, Internet, Software"}, {"dev", "Tech, Internet, Software"},
	{"software", "Tech, Internet, Software"}, {"digital", "Tech, Internet, Software"},
	{"compute", "Tech, Internet, Software"}, {"net", "Tech, Internet, Software"},
	{"web", "Tech, Internet, Software"}, {"api", "Tech, Internet, Software"},
	{"io", "Tech, Internet, Software"}, {"it", "Tech, Internet, Software"},

	// Health & Wellness
	{"health", "Health & Wellness"}, {"med", "Medical & Dental"}, {"well", "Health & Wellness"},
	{"care", "Health & Wellness"}, {"clinic", "Medical & Dental"}, {"hospital", "Medical & Dental"},
	{"dental", "Medical & Dental"}, {"therapy", "Health & Wellness"}, {"fitness", "Fitness & Gym"},
	{"gym", "Fitness & Gym"}, {"yoga", "Fitness & Gym"}, {"wellness", "Health & Wellness"},
	{"medical", "Medical & Dental"}, {"doctor", "Medical & Dental"}, {"pharma", "Pharma"},
	{"clinic", "Medical & Dental"},

	// E-commerce & Retail
	{"shop", "E-Commerce & Retail"}, {"store", "E-Commerce & Retail"}, {"market", "E-Commerce & Retail"},
	{"buy", "E-Commerce & Retail"}, {"sale", "E-Commerce & Retail"}, {"deal", "E-Commerce & Retail"},
	{"mart", "E-Commerce & Retail"}, {"mall", "E-Commerce & Retail"}, {"cart", "E-Commerce & Retail"},
	{"trade", "E-Commerce & Retail"}, {"commerce", "E-Commerce & Retail"}, {"retail", "E-Commerce & Retail"},

	// Finance & Crypto
	{"finance", "Finance"}, {"bank", "Finance"}, {"pay", "Payment"}, {"coin", "Cryptocurrency, Blockchain"},
	{"crypto", "Cryptocurrency, Blockchain"}, {"bitcoin", "Cryptocurrency, Blockchain"},
	{"cryptocurrency", "Cryptocurrency, Blockchain"}, {"blockchain", "Cryptocurrency, Blockchain"},
	{"wallet", "Cryptocurrency, Blockchain"}, {"token", "Cryptocurrency, Blockchain"},
	{"nft", "NFT"}, {"defi", "Cryptocurrency, Blockchain"}, {"ether", "Cryptocurrency, Blockchain"},
	{"fintech", "Fintech (Finance Technology)"}, {"invest", "Venture Capital & Investment"},
	{"capital", "Venture Capital & Investment"}, {"wealth", "Finance"},

	// Food & Drink
	{"food", "Food & Drink"}, {"restaurant", "Restaurants"}, {"coffee", "Coffee & Tea"},
	{"brew", "Bar & Brewery"}, {"wine", "Beer, Wine & Spirits"}, {"beer", "Beer, Wine & Spirits"},
	{"tea", "Coffee & Tea"}, {"bistro", "Restaurants"}, {"cafe", "Restaurants"},
	{"pizza", "Restaurants"}, {"burger", "Restaurants"}, {"kitchen", "Restaurants"},
	{"bar", "Bar & Brewery"}, {"spirits", "Beer, Wine & Spirits"},

	// Real Estate
	{"realestate", "Real Estate"}, {"property", "Real Estate"}, {"home", "Home & Garden"},
	{"house", "Real Estate"}, {"estate", "Real Estate"}, {"rent", "Real Estate"},
	{"realtor", "Real Estate"}, {"properties", "Real Estate"}, {"homes", "Home & Garden"},
	{"villa", "Real Estate"}, {"apartment", "Real Estate"},

	// Automotive
	{"auto", "Automotive"}, {"car", "Automotive"}, {"vehicle", "Automotive"},
	{"drive", "Automotive"}, {"motor", "Automotive"}, {"cars", "Automotive"},
	{"auto", "Automotive"}, {"bike", "Bikes Brand"}, {"bikes", "Bikes Brand"},

	// Education
	{"edu", "Education & Training"}, {"learn", "Education & Training"}, {"course", "Education & Training"},
	{"school", "Education & Training"}, {"academy", "Education & Training"}, {"study", "Education & Training"},
	{"training", "Education & Training"}, {"tutor", "Tutoring & Test Prep"}, {"class", "Education & Training"},

	// Travel & Hospitality
	{"travel", "Travel & Hotel"}, {"hotel", "Travel & Hotel"}, {"tour", "Travel & Hotel"},
	{"vacation", "Travel & Hotel"}, {"flight", "Travel & Hotel"}, {"booking", "Travel & Hotel"},
	{"trip", "Travel & Hotel"}, {"holiday", "Travel & Hotel"},

	// Marketing & Business
	{"market", "Marketing & Advertising"}, {"ad", "Marketing & Advertising"},
	{"agency", "Agency & Consulting"}, {"consult", "Agency & Consulting"},
	{"business", "Professional Services"}, {"consulting", "Agency & Consulting"},
	{"brand", "Marketing & Advertising"}, {"media", "News & Media"},

	// Home & Garden
	{"garden", "Home & Garden"}, {"decor", "Home & Garden"}, {"furniture", "Furniture & Home Furnishings"},
	{"home", "Home & Garden"}, {"interior", "Interior Design"}, {"design", "Website & Graphic Design"},

	// Entertainment
	{"game", "Gaming"}, {"gaming", "Gaming"}, {"play", "Gaming"}, {"music", "Music & Audio"},
	{"audio", "Music & Audio"}, {"video", "Video Streaming"}, {"stream", "Video Streaming"},
	{"tv", "Movies & TV"}, {"movie", "Movies & TV"}, {"film", "Movies & TV"},
	{"entertainment", "Entertainment & Arts"},

	// Sports & Fitness
	{"sport", "Sports"}, {"fitness", "Fitness & Gym"}, {"workout", "Fitness & Gym"},
	{"gym", "Fitness & Gym"}, {"fit", "Fitness & Gym"},
})

// buildKeywordTable resolves duplicate keys the way an insertion-ordered
// map would: the key keeps its first position, the value of the last
// insertion wins.
func buildKeywordTable(entries []keywordCategory) []keywordCategory {
	index := make(map[string]int, len(entries))
	out := make([]keywordCategory, 0, len(entries))
	for _, e := range entries {
		if i, ok := index[e.Keyword]; ok {
			out[i].Category = e.Category
			continue
		}
		index[e.Keyword] = len(out)
		out = append(out, e)
	}
	return out
}

// ClassifyByKeywords returns the category of the first table keyword that
// occurs as a substring of the domain's name, or "" when none match.
func ClassifyByKeywords(domain string) string {
	name, _ := SplitDomain(domain)
	for _, e := range keywordTable {
		if strings.Contains(name, e.Keyword) {
			return e.Category
		}
	}
	return ""
}

// ExtractKeywords returns every table keyword present in the name, in scan
// order. Unlike classification this does not stop at the first hit.
func ExtractKeywords(domain string) []string {
	name, _ := SplitDomain(domain)
	var found []string
	for _, e := range keywordTable {
		if strings.Contains(name, e.Keyword) {
			found = append(found, e.Keyword)
		}
	}
	return found
}

// CategoriesForKeywords maps extracted keywords back to the set of
// categories they resolve to, used for phase-two listing retrieval.
func CategoriesForKeywords(keywords []string) map[string]bool {
	if len(keywords) == 0 {
		return nil
	}
	lookup := make(map[string]string, len(keywordTable))
	for _, e := range keywordTable {
		lookup[e.Keyword] = e.Category
	}
	cats := make(map[string]bool)
	for _, kw := range keywords {
		if c, ok := lookup[kw]; ok {
			cats[c] = true
		}
	}
	return cats
}
