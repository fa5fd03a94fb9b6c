package refdata

// League is fixed metadata for a known tournament, used by mappers when
// the provider payload lacks the field.
type League struct {
	ID          int64
	Name        string
	Country     string
	CountryCode string
	Logo        string
}

var leagues = map[int64]League{
	17:  {ID: 17, Name: "Premier League", Country: "England", CountryCode: "GB", Logo: "https://img.sportstats.dev/league/17.png"},
	8:   {ID: 8, Name: "LaLiga", Country: "Spain", CountryCode: "ES", Logo: "https://img.sportstats.dev/league/8.png"},
	23:  {ID: 23, Name: "Serie A", Country: "Italy", CountryCode: "IT", Logo: "https://img.sportstats.dev/league/23.png"},
	35:  {ID: 35, Name: "Bundesliga", Country: "Germany", CountryCode: "DE", Logo: "https://img.sportstats.dev/league/35.png"},
	34:  {ID: 34, Name: "Ligue 1", Country: "France", CountryCode: "FR", Logo: "https://img.sportstats.dev/league/34.png"},
	7:   {ID: 7, Name: "UEFA Champions League", Country: "Europe", CountryCode: "EU", Logo: "https://img.sportstats.dev/league/7.png"},
	679: {ID: 679, Name: "UEFA Europa League", Country: "Europe", CountryCode: "EU", Logo: "https://img.sportstats.dev/league/679.png"},
	37:  {ID: 37, Name: "Eredivisie", Country: "Netherlands", CountryCode: "NL", Logo: "https://img.sportstats.dev/league/37.png"},
}

// Lookup returns fixed metadata for a tournament ID.
func Lookup(id int64) (League, bool) {
	l, ok := leagues[id]
	return l, ok
}

// LookupName returns the tournament name, or fallback when unknown.
func LookupName(id int64, fallback string) string {
	if l, ok := leagues[id]; ok {
		return l.Name
	}
	return fallback
}

// Known lists every tournament ID with fixed metadata, in no particular
// order.
func Known() []League {
	out := make([]League, 0, len(leagues))
	for _, l := range leagues {
		out = append(out, l)
	}
	return out
}
