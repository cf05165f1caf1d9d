package device

import (
	"github.com/google/uuid"
	"github.com/jypelle/vekiplaylist/apimodel"
	"github.com/jypelle/vekiplaylist/internal/playlist"
	"github.com/jypelle/vekiplaylist/internal/srv/metrics"
	"github.com/sirupsen/logrus"
)

// PlaylistPlayer serves the playlist operations. It is owned by the event loop
// and must not be shared between goroutines.
type PlaylistPlayer struct {
	playlistId string
	playlist   *playlist.Playlist
}

func NewPlaylistPlayer() *PlaylistPlayer {
	d := &PlaylistPlayer{
		playlistId: uuid.NewString(),
		playlist:   playlist.New(),
	}
	d.refreshGauges()
	return d
}

func (d *PlaylistPlayer) Start() {
	logrus.Infof("Start playlist player device %s", d.playlistId)
}

func (d *PlaylistPlayer) PlaylistId() string {
	return d.playlistId
}

// Load appends titles in order.
func (d *PlaylistPlayer) Load(titles []string) {
	for _, title := range titles {
		d.playlist.AddSong(title)
	}
	logrus.Infof("Loaded %d songs", len(titles))
	d.refreshGauges()
}

func (d *PlaylistPlayer) AddSong(title string) {
	logrus.Debugf("Add song \"%s\"", title)
	d.playlist.AddSong(title)
	d.record(metrics.OpAddSong)
}

func (d *PlaylistPlayer) PlayFirst() apimodel.CurrentSong {
	title, ok := d.playlist.PlayFirst()
	logrus.Debugf("Play first song: %s", describe(title, ok))
	d.record(metrics.OpPlayFirst)
	return apimodel.CurrentSong{Title: apimodel.OptionalTitle(title, ok)}
}

func (d *PlaylistPlayer) Next() apimodel.CurrentSong {
	title, ok := d.playlist.Next()
	logrus.Debugf("Next song: %s", describe(title, ok))
	d.record(metrics.OpNext)
	return apimodel.CurrentSong{Title: apimodel.OptionalTitle(title, ok)}
}

func (d *PlaylistPlayer) Prev() apimodel.CurrentSong {
	title, ok := d.playlist.Prev()
	logrus.Debugf("Previous song: %s", describe(title, ok))
	d.record(metrics.OpPrev)
	return apimodel.CurrentSong{Title: apimodel.OptionalTitle(title, ok)}
}

func (d *PlaylistPlayer) InsertAfterCurrent(title string) {
	logrus.Debugf("Insert song \"%s\" after current one", title)
	d.playlist.InsertAfterCurrent(title)
	d.record(metrics.OpInsertAfterCurrent)
}

func (d *PlaylistPlayer) RemoveCurrent() apimodel.RemoveResult {
	removed := d.playlist.RemoveCurrent()
	title, ok := d.playlist.Current()
	if removed {
		logrus.Debugf("Current song removed, now on: %s", describe(title, ok))
	} else {
		logrus.Debugf("No current song to remove")
	}
	d.record(metrics.OpRemoveCurrent)
	return apimodel.RemoveResult{
		Removed: removed,
		Current: apimodel.OptionalTitle(title, ok),
	}
}

func (d *PlaylistPlayer) Snapshot() apimodel.Playlist {
	title, ok := d.playlist.Current()
	d.record(metrics.OpList)
	return apimodel.Playlist{
		PlaylistId: d.playlistId,
		Titles:     d.playlist.ToList(),
		Current:    apimodel.OptionalTitle(title, ok),
	}
}

func (d *PlaylistPlayer) record(operation string) {
	metrics.OperationsTotal.WithLabelValues(operation).Inc()
	d.refreshGauges()
}

func (d *PlaylistPlayer) refreshGauges() {
	metrics.Songs.Set(float64(d.playlist.Len()))
	if _, ok := d.playlist.Current(); ok {
		metrics.CursorSet.Set(1)
	} else {
		metrics.CursorSet.Set(0)
	}
}

func describe(title string, ok bool) string {
	if !ok {
		return "none"
	}
	return "\"" + title + "\""
}
