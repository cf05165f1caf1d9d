package event

// Api
type ApiEvent struct {
	Result chan interface{}
	Data   interface{}
}

type ApiEventListData struct{}

type ApiEventAddSongData struct {
	Title string
}

type ApiEventPlayFirstData struct{}
type ApiEventNextData struct{}
type ApiEventPrevData struct{}

type ApiEventInsertAfterCurrentData struct {
	Title string
}

type ApiEventRemoveCurrentData struct{}
