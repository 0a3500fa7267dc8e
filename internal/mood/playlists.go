package mood

// Playlist is a static pointer to an uplifting music playlist.
type Playlist struct {
	ID          string
	Name        string
	Description string
	URL         string
}

// Playlists returns the fixed uplifting playlist catalog.
func Playlists() []Playlist {
	return playlists
}

var playlists = []Playlist{
	{
		ID:          "37i9dQZF1DXdPec7aLTmlC",
		Name:        "Happy Hits!",
		Description: "The best happy songs to brighten your day",
		URL:         "https://open.spotify.com/playlist/37i9dQZF1DXdPec7aLTmlC",
	},
	{
		ID:          "37i9dQZF1DX0XUsuxWHRQd",
		Name:        "RapCaviar",
		Description: "New music and big hits in hip-hop",
		URL:         "https://open.spotify.com/playlist/37i9dQZF1DX0XUsuxWHRQd",
	},
	{
		ID:          "37i9dQZF1DX1lVhptIYRda",
		Name:        "Hot Country",
		Description: "The hottest 50 in country music",
		URL:         "https://open.spotify.com/playlist/37i9dQZF1DX1lVhptIYRda",
	},
	{
		ID:          "37i9dQZF1DWXRqgorJj26U",
		Name:        "Rock Classics",
		Description: "Rock legends & epic songs",
		URL:         "https://open.spotify.com/playlist/37i9dQZF1DWXRqgorJj26U",
	},
	{
		ID:          "37i9dQZF1DX4JAvHpjipBk",
		Name:        "New Music Friday",
		Description: "The best new music in one playlist",
		URL:         "https://open.spotify.com/playlist/37i9dQZF1DX4JAvHpjipBk",
	},
	{
		ID:          "37i9dQZF1DX4SBhb3fqCJd",
		Name:        "Anti Pop",
		Description: "The edge of pop music",
		URL:         "https://open.spotify.com/playlist/37i9dQZF1DX4SBhb3fqCJd",
	},
	{
		ID:          "37i9dQZF1DX3rxVfibe1L0",
		Name:        "Mood Booster",
		Description: "Get happy with these energizing favorites",
		URL:         "https://open.spotify.com/playlist/37i9dQZF1DX3rxVfibe1L0",
	},
	{
		ID:          "37i9dQZF1DXc5V2Ggs4TFN",
		Name:        "Feel Good Friday",
		Description: "Good vibes for good times",
		URL:         "https://open.spotify.com/playlist/37i9dQZF1DXc5V2Ggs4TFN",
	},
	{
		ID:          "37i9dQZF1DX6GwdWRQMQpq",
		Name:        "Singing in the Car",
		Description: "Belt it out with these sing-along favorites",
		URL:         "https://open.spotify.com/playlist/37i9dQZF1DX6GwdWRQMQpq",
	},
}
