package igdb

// Endpoint names of the remote API. They double as mirror collection
// names, since the data dumps are exported per endpoint.
const (
	Characters        = "characters"
	Companies         = "companies"
	Covers            = "covers"
	Franchises        = "franchises"
	GameModes         = "game_modes"
	Games             = "games"
	Genres            = "genres"
	InvolvedCompanies = "involved_companies"
	Keywords          = "keywords"
	Platforms         = "platforms"
	ReleaseDates      = "release_dates"
	Screenshots       = "screenshots"
	Themes            = "themes"
	Websites          = "websites"
)
