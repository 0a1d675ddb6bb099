package alliance

import "strings"

type Alliance string

const (
	StarAlliance Alliance = "Star Alliance"
	Oneworld     Alliance = "Oneworld"
	SkyTeam      Alliance = "SkyTeam"
)

// All returns the alliances in fixed declaration order. Facet output
// depends on this order being stable.
func All() []Alliance {
	return []Alliance{StarAlliance, Oneworld, SkyTeam}
}

var carrierAlliances = map[string]Alliance{
	// Star Alliance
	"A3": StarAlliance, // Aegean Airlines
	"AC": StarAlliance, // Air Canada
	"CA": StarAlliance, // Air China
	"AI": StarAlliance, // Air India
	"NZ": StarAlliance, // Air New Zealand
	"NH": StarAlliance, // ANA
	"OZ": StarAlliance, // Asiana Airlines
	"OS": StarAlliance, // Austrian Airlines
	"AV": StarAlliance, // Avianca
	"SN": StarAlliance, // Brussels Airlines
	"CM": StarAlliance, // Copa Airlines
	"OU": StarAlliance, // Croatia Airlines
	"MS": StarAlliance, // EgyptAir
	"ET": StarAlliance, // Ethiopian Airlines
	"BR": StarAlliance, // EVA Air
	"LO": StarAlliance, // LOT Polish Airlines
	"LH": StarAlliance, // Lufthansa
	"ZH": StarAlliance, // Shenzhen Airlines
	"SQ": StarAlliance, // Singapore Airlines
	"SA": StarAlliance, // South African Airways
	"LX": StarAlliance, // Swiss
	"TP": StarAlliance, // TAP Air Portugal
	"TG": StarAlliance, // Thai Airways
	"TK": StarAlliance, // Turkish Airlines
	"UA": StarAlliance, // United Airlines

	// Oneworld
	"AS": Oneworld, // Alaska Airlines
	"AA": Oneworld, // American Airlines
	"BA": Oneworld, // British Airways
	"CX": Oneworld, // Cathay Pacific
	"FJ": Oneworld, // Fiji Airways
	"AY": Oneworld, // Finnair
	"IB": Oneworld, // Iberia
	"JL": Oneworld, // Japan Airlines
	"MH": Oneworld, // Malaysia Airlines
	"QF": Oneworld, // Qantas
	"QR": Oneworld, // Qatar Airways
	"AT": Oneworld, // Royal Air Maroc
	"RJ": Oneworld, // Royal Jordanian
	"UL": Oneworld, // SriLankan Airlines

	// SkyTeam
	"AR": SkyTeam, // Aerolineas Argentinas
	"AM": SkyTeam, // Aeromexico
	"UX": SkyTeam, // Air Europa
	"AF": SkyTeam, // Air France
	"CI": SkyTeam, // China Airlines
	"MU": SkyTeam, // China Eastern
	"OK": SkyTeam, // Czech Airlines
	"DL": SkyTeam, // Delta Air Lines
	"GA": SkyTeam, // Garuda Indonesia
	"KQ": SkyTeam, // Kenya Airways
	"KL": SkyTeam, // KLM
	"KE": SkyTeam, // Korean Air
	"ME": SkyTeam, // Middle East Airlines
	"SV": SkyTeam, // Saudia
	"SK": SkyTeam, // SAS
	"RO": SkyTeam, // TAROM
	"VN": SkyTeam, // Vietnam Airlines
	"VS": SkyTeam, // Virgin Atlantic
	"MF": SkyTeam, // Xiamen Airlines
}

// Lookup returns the alliance a carrier belongs to. Most carriers are
// unaffiliated, so the second return value must be checked.
func Lookup(carrierCode string) (Alliance, bool) {
	a, ok := carrierAlliances[strings.ToUpper(carrierCode)]
	return a, ok
}
