package imagecache

import (
	"slices"

	"github.com/gogpu/imview/core"
)

// Images holds the metadata of every known image in arrival order, with
// pinned images listed first.
type Images struct {
	data   map[core.ImageID]core.ImageInfo
	order  []core.ImageID
	pinned []core.ImageID
}

// NewImages returns an empty store.
func NewImages() *Images {
	return &Images{data: make(map[core.ImageID]core.ImageInfo)}
}

// Insert stores info, replacing older metadata for the same id. New ids are
// appended to the end of the order.
func (s *Images) Insert(info core.ImageInfo) {
	if _, ok := s.data[info.ID]; !ok {
		s.order = append(s.order, info.ID)
	}
	s.data[info.ID] = info
}

// Get returns the metadata of id.
func (s *Images) Get(id core.ImageID) (core.ImageInfo, bool) {
	info, ok := s.data[id]
	return info, ok
}

// Len returns the number of images.
func (s *Images) Len() int { return len(s.data) }

// IDs returns pinned ids in pin order, then the remaining ids in arrival
// order.
func (s *Images) IDs() []core.ImageID {
	out := make([]core.ImageID, 0, len(s.order))
	out = append(out, s.pinned...)
	for _, id := range s.order {
		if !slices.Contains(s.pinned, id) {
			out = append(out, id)
		}
	}
	return out
}

// Clear drops every image of session and returns the removed ids.
func (s *Images) Clear(session core.SessionID) []core.ImageID {
	var removed []core.ImageID
	s.order = slices.DeleteFunc(s.order, func(id core.ImageID) bool {
		if id.Session != session {
			return false
		}
		removed = append(removed, id)
		delete(s.data, id)
		return true
	})
	s.pinned = slices.DeleteFunc(s.pinned, func(id core.ImageID) bool {
		return id.Session == session
	})
	return removed
}

// Next returns the id after current in IDs order, wrapping around.
func (s *Images) Next(current core.ImageID) (core.ImageID, bool) {
	return s.step(current, 1)
}

// Previous returns the id before current in IDs order, wrapping around.
func (s *Images) Previous(current core.ImageID) (core.ImageID, bool) {
	return s.step(current, -1)
}

func (s *Images) step(current core.ImageID, d int) (core.ImageID, bool) {
	ids := s.IDs()
	if len(ids) == 0 {
		return core.ImageID{}, false
	}
	i := slices.Index(ids, current)
	if i < 0 {
		return ids[0], true
	}
	return ids[(i+d+len(ids))%len(ids)], true
}

// Pin moves id to the front of the pinned list. Unknown ids are ignored.
func (s *Images) Pin(id core.ImageID) {
	if _, ok := s.data[id]; !ok {
		return
	}
	s.pinned = slices.DeleteFunc(s.pinned, func(p core.ImageID) bool { return p == id })
	s.pinned = slices.Insert(s.pinned, 0, id)
}

// Unpin removes id from the pinned list.
func (s *Images) Unpin(id core.ImageID) {
	s.pinned = slices.DeleteFunc(s.pinned, func(p core.ImageID) bool { return p == id })
}

// IsPinned reports whether id is pinned.
func (s *Images) IsPinned(id core.ImageID) bool {
	return slices.Contains(s.pinned, id)
}
