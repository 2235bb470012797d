package teams

// Team is a league club identified by its three-letter code.
type Team struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Branding drives the banner widget's colors and typography.
type Branding struct {
	Background string
	Foreground string
	Accent     string
	FontFamily string
	// FontHref is an optional stylesheet URL for FontFamily.
	FontHref string
}

// DefaultBranding is used for clubs without a preset.
var DefaultBranding = Branding{
	Background: "linear-gradient(90deg, #111827 0%, #0b1220 100%)",
	Foreground: "rgba(255,255,255,0.92)",
	Accent:     "rgba(255,255,255,0.25)",
	FontFamily: `system-ui, -apple-system, "Segoe UI", Roboto, Helvetica, Arial, sans-serif`,
}

var brandings = map[string]Branding{
	"MIN": {
		Background: "linear-gradient(90deg, #154734 0%, #0b2f25 100%)",
		Foreground: "rgba(255,255,255,0.95)",
		Accent:     "#A6192E",
		FontFamily: `"Oswald", system-ui, -apple-system, "Segoe UI", Roboto, Helvetica, Arial, sans-serif`,
		FontHref:   "https://fonts.googleapis.com/css2?family=Oswald:wght@500;600;700&display=swap",
	},
}

// BrandingFor returns the preset for code, or DefaultBranding.
func BrandingFor(code string) Branding {
	if b, ok := brandings[code]; ok {
		return b
	}
	return DefaultBranding
}

// canonicalNames are the display names used ahead of anything the upstream reports.
var canonicalNames = map[string]string{
	"ANA": "Anaheim Ducks",
	"ARI": "Arizona Coyotes",
	"BOS": "Boston Bruins",
	"BUF": "Buffalo Sabres",
	"CGY": "Calgary Flames",
	"CAR": "Carolina Hurricanes",
	"CHI": "Chicago Blackhawks",
	"COL": "Colorado Avalanche",
	"CBJ": "Columbus Blue Jackets",
	"DAL": "Dallas Stars",
	"DET": "Detroit Red Wings",
	"EDM": "Edmonton Oilers",
	"FLA": "Florida Panthers",
	"LAK": "Los Angeles Kings",
	"MIN": "Minnesota Wild",
	"MTL": "Montreal Canadiens",
	"NSH": "Nashville Predators",
	"NJD": "New Jersey Devils",
	"NYI": "New York Islanders",
	"NYR": "New York Rangers",
	"OTT": "Ottawa Senators",
	"PHI": "Philadelphia Flyers",
	"PIT": "Pittsburgh Penguins",
	"SJS": "San Jose Sharks",
	"SEA": "Seattle Kraken",
	"STL": "St. Louis Blues",
	"TBL": "Tampa Bay Lightning",
	"TOR": "Toronto Maple Leafs",
	"VAN": "Vancouver Canucks",
	"VGK": "Vegas Golden Knights",
	"WSH": "Washington Capitals",
	"WPG": "Winnipeg Jets",
}

// CanonicalName returns the built-in display name for code.
func CanonicalName(code string) (string, bool) {
	name, ok := canonicalNames[code]
	return name, ok
}
