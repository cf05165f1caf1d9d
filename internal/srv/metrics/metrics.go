package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Playlist metrics
var (
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vekiplaylist_operations_total",
			Help: "Total number of playlist operations served",
		},
		[]string{"operation"},
	)

	Songs = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vekiplaylist_songs",
			Help: "Number of songs in the playlist",
		},
	)

	CursorSet = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vekiplaylist_cursor_set",
			Help: "1 when a song is selected, 0 otherwise",
		},
	)
)

// API metrics
var (
	ApiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vekiplaylist_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "path"},
	)
)

// Operation names used as label values
const (
	OpList               = "to_list"
	OpAddSong            = "add_song"
	OpPlayFirst          = "play_first"
	OpNext               = "next"
	OpPrev               = "prev"
	OpInsertAfterCurrent = "insert_after_current"
	OpRemoveCurrent      = "remove_current"
)
