package models

// MaterialItem is a reading PDF found in the library
type MaterialItem struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Path     string `json:"path"`
}

// AudioFile is a listening track found in the library
type AudioFile struct {
	Name    string `json:"name"`
	Book    string `json:"book"`
	Test    string `json:"test"`
	Section string `json:"section"`
	Path    string `json:"path"`
}

// GroupKey returns the book+test key used to group tracks for display
func (a AudioFile) GroupKey() string {
	return a.Book + " - Test " + a.Test
}

// AudioGroup is a set of tracks sharing the same book and test
type AudioGroup struct {
	Key   string      `json:"key"`
	Files []AudioFile `json:"files"`
}
