package address

import (
	"strings"

	"matzip-radar/internal/providers/googlemaps"
)

// Placeholder strings used when the provider gives us nothing usable.
const (
	PlaceholderAddress = "위치 확인됨"
	GenericComment     = "맛집 탐험을 시작해보세요! 🍽️"

	countryGenericName = "대한민국"
	ruralComment       = "자연과 함께하는 향토 맛집들이 있는 곳! 🌾"
)

// commentRule maps a substring of a road or district name to a themed
// comment. Rules are evaluated top to bottom; the first match wins, so more
// specific names must come before generic suffix rules.
type commentRule struct {
	substr  string
	comment string
}

var roadComments = []commentRule{
	{"테헤란로", "IT와 비즈니스의 중심가! 고급 맛집들이 즐비해요 💼"},
	{"강남대로", "강남의 메인 스트리트! 트렌디한 맛집 천국 ✨"},
	{"홍익로", "젊음과 예술이 살아있는 홍대! 핫한 맛집들 🎨"},
	{"와우산로", "젊음과 예술이 살아있는 홍대! 핫한 맛집들 🎨"},
	{"명동길", "서울의 심장부! 전통과 현대가 만나는 맛의 거리 🏛️"},
	{"을지로", "서울의 심장부! 전통과 현대가 만나는 맛의 거리 🏛️"},
	{"이태원로", "세계 각국의 맛을 한 번에! 다국적 맛집 거리 🌍"},
	{"건대입구로", "대학가 특유의 맛있고 합리적인 맛집들! 🎓"},
	{"아차산로", "대학가 특유의 맛있고 합리적인 맛집들! 🎓"},
	{"신촌로", "청춘이 가득한 신촌! 추억의 맛집들 💫"},
	{"연세로", "청춘이 가득한 신촌! 추억의 맛집들 💫"},
	{"가로수길", "세련된 카페와 레스토랑이 가득한 거리 🌳"},
	{"경리단길", "숨겨진 맛집들의 보고! 로컬 핫플레이스 🔥"},
	{"성수일로", "힙한 성수동! 개성 넘치는 맛집들 🏭"},
	{"성수이로", "힙한 성수동! 개성 넘치는 맛집들 🏭"},
	{"로", "도로변 맛집들을 탐험해보세요! 🛣️"},
}

const roadFallbackComment = "새로운 맛집 발견의 기회! 🔍"

var districtComments = []commentRule{
	{"강남", "트렌디한 맛집들이 가득한 곳이네요! ✨"},
	{"마포", "젊음과 활기가 넘치는 핫플레이스! 🎉"},
	{"중구", "전통과 현대가 만나는 맛의 중심지! 🏛️"},
	{"용산", "다양한 세계 음식을 만날 수 있는 곳! 🌍"},
	{"광진", "대학가 특유의 맛있고 저렴한 맛집들! 🎓"},
	{"서대문", "청춘이 가득한 맛집 천국! 💫"},
	{"성동", "힙한 성수동과 왕십리! 개성 넘치는 맛집들 🏭"},
	{"시", "지역 특색이 살아있는 맛집들을 찾아보세요! 🏘️"},
}

const districtFallbackComment = "숨겨진 로컬 맛집들이 기다리고 있어요! 🗺️"

// Format composes a short Korean display address and a one-line comment from
// a geocoding result's address components.
//
// The address is built as "[시/도] [동/읍/면 or 구/군] [도로명 건물번호]",
// omitting whatever is missing. When the components repeat a type, the last
// occurrence wins. Addresses that collapse to nothing, to the bare country
// name, or to the region alone are replaced with a generic placeholder.
func Format(components []googlemaps.AddressComponent) (address, comment string) {
	var city, district, sublocality, roadName, buildingNumber string

	for _, component := range components {
		switch {
		case hasType(component, "administrative_area_level_1"):
			city = component.LongName
		case hasType(component, "administrative_area_level_2"):
			district = component.LongName
		case hasType(component, "sublocality_level_1"):
			sublocality = component.LongName
		case hasType(component, "route"):
			roadName = component.LongName
		case hasType(component, "street_number"):
			buildingNumber = component.LongName
		}
	}

	var parts []string
	if city != "" {
		parts = append(parts, city)
	}
	// The neighborhood reads more naturally than the district, so it takes
	// the middle slot when both are known.
	if sublocality != "" {
		parts = append(parts, sublocality)
	} else if district != "" {
		parts = append(parts, district)
	}
	if roadName != "" {
		road := roadName
		if buildingNumber != "" {
			road += " " + buildingNumber
		}
		parts = append(parts, road)
	}

	address = strings.Join(parts, " ")
	if address == "" || strings.TrimSpace(address) == countryGenericName || strings.TrimSpace(address) == city {
		address = PlaceholderAddress
	}

	switch {
	case roadName != "":
		comment = matchComment(roadComments, roadName, roadFallbackComment)
	case district != "":
		comment = matchComment(districtComments, district, districtFallbackComment)
	default:
		comment = GenericComment
	}

	// Rural townships get their own comment no matter what the road or
	// district tables said.
	if sublocality != "" && (strings.Contains(sublocality, "읍") || strings.Contains(sublocality, "면")) {
		comment = ruralComment
	}

	return address, comment
}

func matchComment(rules []commentRule, name, fallback string) string {
	for _, rule := range rules {
		if strings.Contains(name, rule.substr) {
			return rule.comment
		}
	}
	return fallback
}

func hasType(component googlemaps.AddressComponent, want string) bool {
	for _, t := range component.Types {
		if t == want {
			return true
		}
	}
	return false
}
