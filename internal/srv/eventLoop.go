package srv

import (
	"github.com/jypelle/vekiplaylist/internal/srv/event"
	"github.com/sirupsen/logrus"
)

// eventLoop is the only goroutine touching the playlist player.
func (s *ServerApp) eventLoop() {
	for loop := true; loop; {
		select {
		case ev := <-s.apiDevice.EventChannel():
			switch data := ev.Data.(type) {
			case event.ApiEventListData:
				ev.Result <- s.playlistPlayerDevice.Snapshot()
			case event.ApiEventAddSongData:
				s.playlistPlayerDevice.AddSong(data.Title)
				ev.Result <- nil
			case event.ApiEventPlayFirstData:
				ev.Result <- s.playlistPlayerDevice.PlayFirst()
			case event.ApiEventNextData:
				ev.Result <- s.playlistPlayerDevice.Next()
			case event.ApiEventPrevData:
				ev.Result <- s.playlistPlayerDevice.Prev()
			case event.ApiEventInsertAfterCurrentData:
				s.playlistPlayerDevice.InsertAfterCurrent(data.Title)
				ev.Result <- nil
			case event.ApiEventRemoveCurrentData:
				ev.Result <- s.playlistPlayerDevice.RemoveCurrent()
			default:
				logrus.Warnf("Unknown api event: %T", ev.Data)
				ev.Result <- nil
			}
		case <-s.eventLoopAskDone:
			loop = false
		}
	}
	s.eventLoopDone <- true
}
