package srv

import (
	"github.com/jypelle/vekiplaylist/internal/srv/config"
	"github.com/jypelle/vekiplaylist/internal/srv/device"
	"github.com/jypelle/vekiplaylist/internal/version"
	"github.com/sirupsen/logrus"
)

type ServerApp struct {
	*config.ServerConfig
	playlistPlayerDevice *device.PlaylistPlayer
	apiDevice            *device.Api

	eventLoopAskDone chan bool
	eventLoopDone    chan bool
}

func NewServerApp(configDir string, debugMode bool) *ServerApp {

	logrus.Debugf("Creation of vekiplaylist server %s ...", version.AppVersion.String())

	app := &ServerApp{
		eventLoopAskDone: make(chan bool),
		eventLoopDone:    make(chan bool),
		ServerConfig:     config.NewServerConfig(configDir, debugMode),
	}

	app.playlistPlayerDevice = device.NewPlaylistPlayer()
	app.apiDevice = device.NewApi(app.ServerConfig)

	logrus.Debugln("Server created")

	return app
}

func (s *ServerApp) Start() {
	logrus.Printf("Starting vekiplaylist server ...")

	// Start playlist player device
	s.playlistPlayerDevice.Start()
	s.playlistPlayerDevice.Load(s.PlaylistParam.InitialSongs)
	if s.PlaylistParam.Autoplay {
		s.playlistPlayerDevice.PlayFirst()
	}

	// Start event loop
	go s.eventLoop()

	// Start api device
	s.apiDevice.Start()
}

func (s *ServerApp) Stop() {
	logrus.Printf("Stopping vekiplaylist server ...")

	// Stop api
	s.apiDevice.StopSendingEvent()

	// Stop event loop
	logrus.Infof("Stop event loop")
	s.eventLoopAskDone <- true
	<-s.eventLoopDone

	logrus.Printf("Server stopped")
}
