package playlist

// handle references a slot of the entries arena, offset by one so that the
// zero value means "no entry".
type handle uint32

const none handle = 0

func (h handle) isSet() bool {
	return h != none
}

type entry struct {
	title string
	prev  handle
	next  handle
}

// Playlist is an ordered list of song titles with a playback cursor.
// The zero value is an empty playlist ready to use.
// A Playlist must not be used from several goroutines at once.
type Playlist struct {
	entries []entry
	free    []handle

	head    handle
	tail    handle
	current handle

	size int
}

func New() *Playlist {
	return &Playlist{}
}

func (p *Playlist) at(h handle) *entry {
	return &p.entries[h-1]
}

func (p *Playlist) newEntry(title string) handle {
	if n := len(p.free); n > 0 {
		h := p.free[n-1]
		p.free = p.free[:n-1]
		*p.at(h) = entry{title: title}
		p.size++
		return h
	}
	p.entries = append(p.entries, entry{title: title})
	p.size++
	return handle(len(p.entries))
}

func (p *Playlist) releaseEntry(h handle) {
	*p.at(h) = entry{}
	p.free = append(p.free, h)
	p.size--
}

func (p *Playlist) appendEntry(h handle) {
	if !p.head.isSet() {
		p.head = h
		p.tail = h
		return
	}
	p.at(p.tail).next = h
	p.at(h).prev = p.tail
	p.tail = h
}

// title returns the title under h, ok is false when h is absent.
func (p *Playlist) title(h handle) (string, bool) {
	if !h.isSet() {
		return "", false
	}
	return p.at(h).title, true
}

// AddSong appends a song at the end of the playlist. The cursor is left untouched.
func (p *Playlist) AddSong(title string) {
	p.appendEntry(p.newEntry(title))
}

// PlayFirst moves the cursor to the first song and returns its title.
// ok is false when the playlist is empty.
func (p *Playlist) PlayFirst() (string, bool) {
	p.current = p.head
	return p.title(p.current)
}

// Next moves the cursor to the following song, staying on the last one when
// there is none. ok is false when no song is selected.
func (p *Playlist) Next() (string, bool) {
	if !p.current.isSet() {
		return "", false
	}
	if next := p.at(p.current).next; next.isSet() {
		p.current = next
	}
	return p.title(p.current)
}

// Prev moves the cursor to the preceding song, staying on the first one when
// there is none. ok is false when no song is selected.
func (p *Playlist) Prev() (string, bool) {
	if !p.current.isSet() {
		return "", false
	}
	if prev := p.at(p.current).prev; prev.isSet() {
		p.current = prev
	}
	return p.title(p.current)
}

// InsertAfterCurrent inserts a song right after the selected one without
// moving the cursor.
//
// Without a selected song the new song is appended instead. It also becomes
// the selected song when the playlist was empty; on a non-empty playlist the
// cursor stays unset.
func (p *Playlist) InsertAfterCurrent(title string) {
	h := p.newEntry(title)

	if !p.current.isSet() {
		wasEmpty := !p.head.isSet()
		p.appendEntry(h)
		if wasEmpty {
			p.current = h
		}
		return
	}

	cur := p.at(p.current)
	next := cur.next
	cur.next = h

	e := p.at(h)
	e.prev = p.current
	e.next = next

	if next.isSet() {
		p.at(next).prev = h
	} else {
		p.tail = h
	}
}

// RemoveCurrent unlinks the selected song. The cursor moves to the following
// song, or to the preceding one when the last song was removed, or is unset
// when the playlist becomes empty.
// It returns false, changing nothing, when no song is selected.
func (p *Playlist) RemoveCurrent() bool {
	if !p.current.isSet() {
		return false
	}

	removed := p.current
	e := p.at(removed)
	prev, next := e.prev, e.next

	if prev.isSet() {
		p.at(prev).next = next
	} else {
		p.head = next
	}

	if next.isSet() {
		p.at(next).prev = prev
	} else {
		p.tail = prev
	}

	if next.isSet() {
		p.current = next
	} else {
		p.current = prev
	}

	p.releaseEntry(removed)
	return true
}

// ToList returns every title from first to last.
func (p *Playlist) ToList() []string {
	titles := make([]string, 0, p.size)
	for h := p.head; h.isSet(); h = p.at(h).next {
		titles = append(titles, p.at(h).title)
	}
	return titles
}

// Current returns the title of the selected song.
func (p *Playlist) Current() (string, bool) {
	return p.title(p.current)
}

func (p *Playlist) Len() int {
	return p.size
}
