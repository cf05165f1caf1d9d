package device

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/jypelle/vekiplaylist/apimodel"
	"github.com/jypelle/vekiplaylist/internal/srv/config"
	"github.com/jypelle/vekiplaylist/internal/srv/event"
	"github.com/jypelle/vekiplaylist/internal/srv/metrics"
	"github.com/jypelle/vekiplaylist/internal/tool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"time"
)

type Api struct {
	eventChannel chan event.ApiEvent

	router    *mux.Router
	apiRouter *mux.Router
	handler   http.Handler
	server    *http.Server

	config *config.ServerConfig
}

func NewApi(config *config.ServerConfig) *Api {
	api := Api{
		config:       config,
		eventChannel: make(chan event.ApiEvent),
	}

	api.router = mux.NewRouter().StrictSlash(false)
	api.router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// API Routes
	api.apiRouter = api.router.PathPrefix("/api").Subrouter()
	api.apiRouter.NotFoundHandler = http.HandlerFunc(ErrorNotFoundAction)
	api.apiRouter.MethodNotAllowedHandler = http.HandlerFunc(ErrorMethodNotAllowedAction)

	// Auth middleware
	api.apiRouter.Use(
		func(handler http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				defer func() {
					if rec := recover(); rec != nil {
						logrus.Warningf("recovered from panic : [%v] - stack trace : \n [%s]", rec, debug.Stack())
						strMessage := fmt.Sprintf("%v", rec)
						GlobalErrorAction(w, strMessage, http.StatusInternalServerError)
					}
				}()

				// Check API Key
				apiKey := r.Header.Get("x-api-key")
				if apiKey != config.ServerParam.ApiParam.ApiKey {
					ErrorStatusAction(w, r, http.StatusForbidden)
					return
				}

				path := r.URL.Path
				if route := mux.CurrentRoute(r); route != nil {
					if tpl, err := route.GetPathTemplate(); err == nil {
						path = tpl
					}
				}
				metrics.ApiRequestsTotal.WithLabelValues(r.Method, path).Inc()
				logrus.Debugf("PATH: %s %s %s", r.Method, r.Host, r.URL.Path)

				handler.ServeHTTP(w, r)
			})
		})

	// Create server check endpoint
	api.apiRouter.HandleFunc("/is_alive",
		func(w http.ResponseWriter, r *http.Request) {
			ErrorStatusAction(w, r, http.StatusOK)
		}).Methods("GET")

	api.apiRouter.HandleFunc("/playlist",
		func(w http.ResponseWriter, r *http.Request) {
			api.dispatchAndSend(w, event.ApiEventListData{})
		}).Methods("GET")
	api.apiRouter.HandleFunc("/playlist/songs",
		func(w http.ResponseWriter, r *http.Request) {
			title, ok := readSongTitle(w, r)
			if !ok {
				return
			}
			api.dispatch(event.ApiEventAddSongData{Title: title})
			ErrorStatusAction(w, r, http.StatusOK)
		}).Methods("POST")
	api.apiRouter.HandleFunc("/playlist/play_first",
		func(w http.ResponseWriter, r *http.Request) {
			api.dispatchAndSend(w, event.ApiEventPlayFirstData{})
		}).Methods("POST")
	api.apiRouter.HandleFunc("/playlist/next",
		func(w http.ResponseWriter, r *http.Request) {
			api.dispatchAndSend(w, event.ApiEventNextData{})
		}).Methods("POST")
	api.apiRouter.HandleFunc("/playlist/prev",
		func(w http.ResponseWriter, r *http.Request) {
			api.dispatchAndSend(w, event.ApiEventPrevData{})
		}).Methods("POST")
	api.apiRouter.HandleFunc("/playlist/insert_after_current",
		func(w http.ResponseWriter, r *http.Request) {
			title, ok := readSongTitle(w, r)
			if !ok {
				return
			}
			api.dispatch(event.ApiEventInsertAfterCurrentData{Title: title})
			ErrorStatusAction(w, r, http.StatusOK)
		}).Methods("POST")
	api.apiRouter.HandleFunc("/playlist/current",
		func(w http.ResponseWriter, r *http.Request) {
			api.dispatchAndSend(w, event.ApiEventRemoveCurrentData{})
		}).Methods("DELETE")

	// Tell the browser that it's OK for JS to communicate with the server
	allowedOrigins := config.ServerParam.ApiParam.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	headersOk := handlers.AllowedHeaders([]string{"Authorization", "Content-Type", "X-Api-Key"})
	originsOk := handlers.AllowedOrigins(allowedOrigins)
	methodsOk := handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})

	api.handler = handlers.CompressHandler(handlers.CORS(originsOk, headersOk, methodsOk)(api.router))

	api.server = &http.Server{
		Addr:         ":" + strconv.FormatInt(config.ServerParam.ApiParam.Port, 10),
		Handler:      api.handler,
		ReadTimeout:  time.Second * 240,
		WriteTimeout: time.Second * 240,
		IdleTimeout:  time.Second * 240,
	}

	return &api
}

// Handler returns the complete HTTP handler, middlewares included.
func (d *Api) Handler() http.Handler {
	return d.handler
}

func (d *Api) Start() {
	if !d.config.ServerParam.ApiParam.Enabled {
		logrus.Infof("Api device disabled")
		return
	}

	logrus.Infof("Start api device on %s", d.server.Addr)

	if !d.config.ServerParam.ApiParam.Ssl {
		go func() {
			err := d.server.ListenAndServe()
			if err != nil && err != http.ErrServerClosed {
				logrus.Error(err)
			}
		}()
		return
	}

	existServerCert, err := tool.IsFileExists(d.config.GetCompleteCertFilename())
	if err != nil {
		logrus.Fatalf("Unable to access %s: %v\n", d.config.GetCompleteCertFilename(), err)
	}

	existServerKey, err := tool.IsFileExists(d.config.GetCompleteKeyFilename())
	if err != nil {
		logrus.Fatalf("Unable to access %s: %v\n", d.config.GetCompleteKeyFilename(), err)
	}

	if !existServerCert || !existServerKey {
		logrus.Info("Missing cert and key files, trying to generate them...")
		err = tool.GenerateTlsCertificate(
			"jypelle",
			"Vekiplaylist Server",
			d.config.GetCompleteKeyFilename(),
			d.config.GetCompleteCertFilename(),
			[]string{"localhost", "127.0.0.1"})
		if err != nil {
			logrus.Fatalf("Unable to generate cert and key files : %v\n", err)
		}
		logrus.Info("Self-signed cert and key files generated")
	}

	// Launch https server
	go func() {
		err := d.server.ListenAndServeTLS(d.config.GetCompleteCertFilename(), d.config.GetCompleteKeyFilename())
		if err != nil && err != http.ErrServerClosed {
			logrus.Error(err)
		}
	}()
}

func (d *Api) StopSendingEvent() {
	logrus.Infof("Stop api device")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := d.server.Shutdown(ctx); err != nil {
		logrus.Warnf("Unable to shutdown api server: %v", err)
	}
}

func (d *Api) EventChannel() chan event.ApiEvent {
	return d.eventChannel
}

// dispatch hands data over to the event loop and waits for its answer.
func (d *Api) dispatch(data interface{}) interface{} {
	result := make(chan interface{})
	d.eventChannel <- event.ApiEvent{Result: result, Data: data}
	return <-result
}

func (d *Api) dispatchAndSend(w http.ResponseWriter, data interface{}) {
	SendJson(w, d.dispatch(data))
}

func readSongTitle(w http.ResponseWriter, r *http.Request) (string, bool) {
	var songRequest apimodel.SongRequest
	if err := json.NewDecoder(r.Body).Decode(&songRequest); err != nil {
		logrus.Warnf("Unable to decode song request: %v", err)
		apimodel.WrongParametersErrorMessage.SendError(w)
		return "", false
	}
	if strings.TrimSpace(songRequest.Title) == "" {
		apimodel.MissingTitleErrorMessage.SendError(w)
		return "", false
	}
	return songRequest.Title, true
}

func SendJson(w http.ResponseWriter, value interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(value); err != nil {
		logrus.Errorf("Unable to encode response: %v", err)
	}
}

func ErrorNotFoundAction(w http.ResponseWriter, r *http.Request) {
	ErrorStatusAction(w, r, http.StatusNotFound)
}

func ErrorMethodNotAllowedAction(w http.ResponseWriter, r *http.Request) {
	ErrorStatusAction(w, r, http.StatusMethodNotAllowed)
}

func ErrorStatusAction(w http.ResponseWriter, r *http.Request, status int) {
	ErrorMessageAction(w, "", status)
}

func GlobalErrorAction(w http.ResponseWriter, message string, status int) {
	ErrorMessageAction(w, message, status)
}

func ErrorMessageAction(w http.ResponseWriter, title string, status int) {
	apimodel.ErrorMessage{
		ErrStatusCode: status,
		ErrMessage:    title,
	}.SendError(w)
}
