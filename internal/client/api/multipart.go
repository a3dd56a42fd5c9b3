package api

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
)

// MultipartForm assembles a multipart/form-data body by plain byte-buffer
// concatenation: text fields in insertion order, then at most one file part,
// then the closing boundary appended exactly once. The layout matches what
// the backend's upload endpoints expect.
type MultipartForm struct {
	boundary string
	fields   []formField
	file     *filePart
}

type formField struct {
	name  string
	value string
}

type filePart struct {
	name     string
	filename string
	mimeType string
	data     []byte
}

// NewMultipartForm creates an empty form with a freshly generated boundary
// token.
func NewMultipartForm() *MultipartForm {
	return &MultipartForm{boundary: "Boundary-" + uuid.NewString()}
}

// Boundary returns the boundary token used between parts.
func (f *MultipartForm) Boundary() string { return f.boundary }

// ContentType returns the value for the Content-Type request header.
func (f *MultipartForm) ContentType() string {
	return "multipart/form-data; boundary=" + f.boundary
}

// AddField appends a text field. Fields are encoded in the order they were
// added.
func (f *MultipartForm) AddField(name, value string) {
	f.fields = append(f.fields, formField{name: name, value: value})
}

// SetFile attaches the single binary part. Calling it again replaces the
// previous file.
func (f *MultipartForm) SetFile(name, filename, mimeType string, data []byte) {
	f.file = &filePart{name: name, filename: filename, mimeType: mimeType, data: data}
}

// Encode renders the complete body.
func (f *MultipartForm) Encode() []byte {
	var body bytes.Buffer

	for _, field := range f.fields {
		fmt.Fprintf(&body, "--%s\r\n", f.boundary)
		fmt.Fprintf(&body, "Content-Disposition: form-data; name=%q\r\n\r\n", field.name)
		fmt.Fprintf(&body, "%s\r\n", field.value)
	}

	if f.file != nil {
		fmt.Fprintf(&body, "--%s\r\n", f.boundary)
		fmt.Fprintf(&body, "Content-Disposition: form-data; name=%q; filename=%q\r\n", f.file.name, f.file.filename)
		fmt.Fprintf(&body, "Content-Type: %s\r\n\r\n", f.file.mimeType)
		body.Write(f.file.data)
		body.WriteString("\r\n")
	}

	fmt.Fprintf(&body, "--%s--\r\n", f.boundary)
	return body.Bytes()
}
