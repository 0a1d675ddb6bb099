package airports

import (
	"strings"

	"github.com/rizkypratama/flightdesk/internal/multicity"
)

type airportInfo struct {
	City        string
	CountryCode string
}

var airportCities = map[string]airportInfo{
	// Indonesia
	"CGK": {"Jakarta", "ID"},
	"HLP": {"Jakarta", "ID"},
	"BDO": {"Bandung", "ID"},
	"SUB": {"Surabaya", "ID"},
	"SRG": {"Semarang", "ID"},
	"JOG": {"Yogyakarta", "ID"},
	"SOC": {"Solo", "ID"},
	"PLM": {"Palembang", "ID"},
	"PNK": {"Pontianak", "ID"},
	"BTH": {"Batam", "ID"},
	"PKU": {"Pekanbaru", "ID"},
	"PDG": {"Padang", "ID"},
	"KNO": {"Medan", "ID"},
	"BTJ": {"Banda Aceh", "ID"},
	"DPS": {"Denpasar", "ID"},
	"LOP": {"Lombok", "ID"},
	"UPG": {"Makassar", "ID"},
	"BPN": {"Balikpapan", "ID"},
	"MDC": {"Manado", "ID"},
	"KDI": {"Kendari", "ID"},
	"DJJ": {"Jayapura", "ID"},
	"AMQ": {"Ambon", "ID"},

	// Southeast Asia
	"SIN": {"Singapore", "SG"},
	"KUL": {"Kuala Lumpur", "MY"},
	"PEN": {"Penang", "MY"},
	"BKK": {"Bangkok", "TH"},
	"HKT": {"Phuket", "TH"},
	"SGN": {"Ho Chi Minh City", "VN"},
	"HAN": {"Hanoi", "VN"},
	"MNL": {"Manila", "PH"},
	"CEB": {"Cebu", "PH"},

	// East Asia
	"HKG": {"Hong Kong", "HK"},
	"TPE": {"Taipei", "TW"},
	"NRT": {"Tokyo", "JP"},
	"HND": {"Tokyo", "JP"},
	"KIX": {"Osaka", "JP"},
	"ICN": {"Seoul", "KR"},
	"PEK": {"Beijing", "CN"},
	"PVG": {"Shanghai", "CN"},
	"CAN": {"Guangzhou", "CN"},

	// South Asia and Middle East
	"DEL": {"Delhi", "IN"},
	"BOM": {"Mumbai", "IN"},
	"CMB": {"Colombo", "LK"},
	"DXB": {"Dubai", "AE"},
	"AUH": {"Abu Dhabi", "AE"},
	"DOH": {"Doha", "QA"},
	"JED": {"Jeddah", "SA"},
	"RUH": {"Riyadh", "SA"},

	// Europe
	"LHR": {"London", "GB"},
	"LGW": {"London", "GB"},
	"CDG": {"Paris", "FR"},
	"AMS": {"Amsterdam", "NL"},
	"FRA": {"Frankfurt", "DE"},
	"MUC": {"Munich", "DE"},
	"IST": {"Istanbul", "TR"},
	"MAD": {"Madrid", "ES"},
	"FCO": {"Rome", "IT"},
	"ZRH": {"Zurich", "CH"},

	// Americas and Oceania
	"JFK": {"New York", "US"},
	"LAX": {"Los Angeles", "US"},
	"SFO": {"San Francisco", "US"},
	"YYZ": {"Toronto", "CA"},
	"SYD": {"Sydney", "AU"},
	"MEL": {"Melbourne", "AU"},
	"AKL": {"Auckland", "NZ"},
}

// StaticLookup resolves airports from the built-in table. Additions are a
// code change, not a data migration.
type StaticLookup struct{}

func NewStaticLookup() *StaticLookup {
	return &StaticLookup{}
}

func (l *StaticLookup) GetCityInfo(iataCode string) *multicity.CityInfo {
	info, ok := airportCities[strings.ToUpper(iataCode)]
	if !ok {
		return nil
	}
	return &multicity.CityInfo{City: info.City, CountryCode: info.CountryCode}
}
