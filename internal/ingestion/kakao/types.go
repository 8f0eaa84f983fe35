package kakao

// Kakao Local keyword-search response shapes.
// https://dapi.kakao.com/v2/local/search/keyword.json

// Place is one raw place document as returned by the Kakao Local API.
// Coordinates and distance arrive as strings.
type Place struct {
	PlaceName       string `json:"place_name"`
	CategoryName    string `json:"category_name"`
	Phone           string `json:"phone"`
	AddressName     string `json:"address_name"`
	RoadAddressName string `json:"road_address_name"`
	X               string `json:"x"` // longitude
	Y               string `json:"y"` // latitude
	PlaceURL        string `json:"place_url"`
	Distance        string `json:"distance"` // meters from the search origin
}

type SearchMeta struct {
	TotalCount    int  `json:"total_count"`
	PageableCount int  `json:"pageable_count"`
	IsEnd         bool `json:"is_end"`
}

type SearchResponse struct {
	Documents []Place    `json:"documents"`
	Meta      SearchMeta `json:"meta"`
}
