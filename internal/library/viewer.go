package library

import "path"

// Viewer is the state of the reading modal
type Viewer struct {
	Source  string `json:"source"`
	Title   string `json:"title"`
	Visible bool   `json:"visible"`
}

// Open shows the PDF at the library-relative path p
func (v *Viewer) Open(p string) {
	v.Source = "/pdfs/" + p
	v.Title = path.Base(p)
	v.Visible = true
}

// Close hides the viewer and clears its source so the document unloads
func (v *Viewer) Close() {
	v.Source = ""
	v.Title = ""
	v.Visible = false
}
