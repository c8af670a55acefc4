package format

import "fmt"

// cityByCenterID covers the national center network. Centers the table does
// not know fall back to a generic display name.
var cityByCenterID = map[string]string{
	"101": "الرياض",
	"102": "جدة",
	"103": "الدمام",
	"104": "مكة المكرمة",
	"105": "المدينة المنورة",
	"106": "الخبر",
	"107": "الطائف",
	"108": "بريدة",
	"109": "تبوك",
	"110": "أبها",
}

// CityByCenterID returns the city for a known center id, or a generic
// "المركز <id>" label when the center is unknown.
func CityByCenterID(centerID string) string {
	if city, ok := cityByCenterID[centerID]; ok {
		return city
	}
	return fmt.Sprintf("المركز %s", centerID)
}

// CenterDisplayName returns a display name for a center, tolerating missing
// name data.
func CenterDisplayName(centerID, name string) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("مركز الأحوال المدنية - %s", CityByCenterID(centerID))
}
