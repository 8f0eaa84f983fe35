package kakao

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"biteengine/internal/models"
)

// Normalization of raw Kakao place documents into catalog entries. Everything
// here is a pure function of its inputs except the placeholder rating, which
// draws from the process random source.
//
// Kakao category names are Korean strings like "음식점 > 일식 > 초밥". All
// keyword tables below match against that raw text and are evaluated in a
// fixed order, since a category can contain keywords from several groups.

const (
	// Badge labels
	BadgeAIRecommended   = "AI recommended"
	BadgeNearOffice      = "near office"
	BadgeSpecialOccasion = "special occasion"
	BadgeBestValue       = "best value"

	// Entries within this many meters of the office get the proximity badge
	nearOfficeMeters = 300

	// Unknown-distance sentinel; Kakao occasionally omits the distance field
	distanceUnknown = "unknown"

	defaultImage = "/placeholder.svg"
)

// cuisineRules maps category keywords to a cuisine label. Order matters:
// "한정식" contains "정식" and steak houses are both Korean BBQ and western,
// so the first matching group wins.
var cuisineRules = []struct {
	cuisine  string
	keywords []string
}{
	{"Japanese", []string{"일식", "초밥", "라멘"}},
	{"Chinese", []string{"중식", "중국집"}},
	{"Korean", []string{"한식", "한정식", "고깃집"}},
	{"Western", []string{"양식", "이탈리안", "스테이크"}},
	{"Cafe/Dessert", []string{"카페", "디저트"}},
	{"Chicken", []string{"치킨", "닭"}},
	{"Pizza", []string{"피자"}},
	{"Indian", []string{"인도", "커리"}},
	{"Mexican", []string{"멕시칸", "타코"}},
	{"Vietnamese", []string{"베트남", "쌀국수"}},
	{"Thai", []string{"태국"}},
}

// Price-tier keyword groups, evaluated premium first
var (
	premiumKeywords = []string{"고급", "한정식", "스테이크", "오마카세"}
	midKeywords     = []string{"일식", "양식", "이탈리안", "중식", "뷔페"}

	// Course-style premium places that suit a team celebration
	occasionKeywords = []string{"고급", "한정식", "오마카세"}
	// Budget chains
	valueKeywords = []string{"치킨", "피자", "중국집"}
)

// Dietary-tag rules, unioned across all that match
var dietaryRules = []struct {
	tags     []string
	keywords []string
}{
	{[]string{"vegetarian", "vegan option"}, []string{"채식", "샐러드"}},
	{[]string{"gluten-free"}, []string{"일식", "양식", "샐러드"}},
	{[]string{"meat heavy"}, []string{"고깃집", "삼겹살", "스테이크"}},
	{[]string{"spicy"}, []string{"인도", "태국", "매운"}},
}

// NormalizePlace maps one raw place document into a catalog entry without an
// ID. isFirstInBatch marks the top search result, which carries the
// recommendation badge.
func NormalizePlace(place Place, isFirstInBatch bool) *models.Restaurant {
	restaurant := &models.Restaurant{
		Name:       place.PlaceName,
		Cuisine:    cuisineFromCategory(place.CategoryName),
		Image:      defaultImage,
		Rating:     estimateRating(),
		Distance:   formatDistance(place.Distance),
		PriceRange: estimatePriceRange(place.CategoryName),
		Badges:     generateBadges(place.CategoryName, place.Distance, isFirstInBatch),
		Dietary:    estimateDietary(place.CategoryName),
	}

	if lat, err := strconv.ParseFloat(place.Y, 64); err == nil {
		restaurant.LocationLat = &lat
	}
	if lng, err := strconv.ParseFloat(place.X, 64); err == nil {
		restaurant.LocationLng = &lng
	}

	return restaurant
}

// NormalizeBatch maps a search result in input order; only the first document
// is flagged as the recommended one.
func NormalizeBatch(places []Place) []*models.Restaurant {
	restaurants := make([]*models.Restaurant, 0, len(places))
	for i, place := range places {
		restaurants = append(restaurants, NormalizePlace(place, i == 0))
	}
	return restaurants
}

// cuisineFromCategory picks the first matching cuisine group, or "Other"
func cuisineFromCategory(category string) string {
	for _, rule := range cuisineRules {
		if containsAny(category, rule.keywords) {
			return rule.cuisine
		}
	}
	return "Other"
}

// formatDistance renders raw meters as "350m" or "1.2km". Non-numeric input
// yields the unknown sentinel rather than an error.
func formatDistance(meters string) string {
	m, err := strconv.Atoi(meters)
	if err != nil {
		return distanceUnknown
	}
	if m < 1000 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%.1fkm", float64(m)/1000)
}

// estimatePriceRange guesses a price tier from the category text
func estimatePriceRange(category string) string {
	if containsAny(category, premiumKeywords) {
		return "$$$"
	}
	if containsAny(category, midKeywords) {
		return "$$"
	}
	return "$"
}

// generateBadges derives the descriptive badge set. Badges may co-occur.
func generateBadges(category, distance string, isFirst bool) []string {
	badges := []string{}

	if isFirst {
		badges = append(badges, BadgeAIRecommended)
	}

	if m, err := strconv.Atoi(distance); err == nil && m <= nearOfficeMeters {
		badges = append(badges, BadgeNearOffice)
	}

	if containsAny(category, occasionKeywords) {
		badges = append(badges, BadgeSpecialOccasion)
	}

	if containsAny(category, valueKeywords) {
		badges = append(badges, BadgeBestValue)
	}

	return badges
}

// estimateDietary unions every matching dietary rule, defaulting to "standard"
func estimateDietary(category string) []string {
	dietary := []string{}
	seen := make(map[string]bool)

	for _, rule := range dietaryRules {
		if containsAny(category, rule.keywords) {
			for _, tag := range rule.tags {
				if !seen[tag] {
					seen[tag] = true
					dietary = append(dietary, tag)
				}
			}
		}
	}

	if len(dietary) == 0 {
		dietary = append(dietary, "standard")
	}

	return dietary
}

// estimateRating returns a placeholder quality signal in [4.0, 4.9] with one
// decimal. It is not derived from any real review data.
func estimateRating() float64 {
	rating := 4.0 + rand.Float64()*0.9
	return float64(int(rating*10+0.5)) / 10
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
