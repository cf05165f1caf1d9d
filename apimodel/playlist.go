package apimodel

// SongRequest is the body of the song creation endpoints.
type SongRequest struct {
	Title string `json:"title"`
}

// CurrentSong is returned by cursor moves. Title is null when no song is selected.
type CurrentSong struct {
	Title *string `json:"title"`
}

type RemoveResult struct {
	Removed bool    `json:"removed"`
	Current *string `json:"current"`
}

type Playlist struct {
	PlaylistId string   `json:"playlist_id"`
	Titles     []string `json:"titles"`
	Current    *string  `json:"current"`
}

// OptionalTitle turns a (title, ok) pair into a JSON nullable title.
func OptionalTitle(title string, ok bool) *string {
	if !ok {
		return nil
	}
	return &title
}
