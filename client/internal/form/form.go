// Package form builds multipart/form-data bodies for file uploads.
package form

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ErrNotImage is returned by RequireImage when an uploaded file is not an image.
var ErrNotImage = errors.New("please select an image file")

var errFinalized = errors.New("form already finalized")

// File describes one file part as it was added to the form.
type File struct {
	Field       string
	Filename    string
	ContentType string
	Size        int
}

// Form is an in-memory multipart body. The zero value is not usable; call New.
type Form struct {
	buf   bytes.Buffer
	w     *multipart.Writer
	files []File
	err   error
	done  bool
}

// New returns an empty form.
func New() *Form {
	f := &Form{}
	f.w = multipart.NewWriter(&f.buf)
	return f
}

// AddField appends a plain text field.
func (f *Form) AddField(name, value string) *Form {
	if !f.writable() {
		return f
	}
	f.err = f.w.WriteField(name, value)
	return f
}

// AddJSON appends v as a JSON-encoded text field.
func (f *Form) AddJSON(name string, v any) *Form {
	if !f.writable() {
		return f
	}
	b, err := json.Marshal(v)
	if err != nil {
		f.err = fmt.Errorf("encode field %s: %w", name, err)
		return f
	}
	return f.AddField(name, string(b))
}

// AddFile appends a file part read fully from r. The part's content type is
// sniffed from its bytes.
func (f *Form) AddFile(name, filename string, r io.Reader) *Form {
	if !f.writable() {
		return f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		f.err = fmt.Errorf("read file %s: %w", filename, err)
		return f
	}
	ct := mimetype.Detect(data).String()

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		escapeQuotes(name), escapeQuotes(filename)))
	h.Set("Content-Type", ct)
	part, err := f.w.CreatePart(h)
	if err != nil {
		f.err = err
		return f
	}
	if _, err := part.Write(data); err != nil {
		f.err = err
		return f
	}
	f.files = append(f.files, File{Field: name, Filename: filename, ContentType: ct, Size: len(data)})
	return f
}

// AddFilePath appends the file at path, using its base name as filename.
func (f *Form) AddFilePath(name, path string) *Form {
	return f.AddFilePathAs(name, filepath.Base(path), path)
}

// AddFilePathAs appends the file at path under the given filename.
func (f *Form) AddFilePathAs(name, filename, path string) *Form {
	if !f.writable() {
		return f
	}
	fh, err := os.Open(path)
	if err != nil {
		f.err = err
		return f
	}
	defer func() { _ = fh.Close() }()
	return f.AddFile(name, filename, fh)
}

// Files lists the file parts added so far.
func (f *Form) Files() []File {
	return append([]File(nil), f.files...)
}

// RequireImage fails unless every file part sniffed as image/*.
func (f *Form) RequireImage() error {
	for _, file := range f.files {
		if !strings.HasPrefix(file.ContentType, "image/") {
			return fmt.Errorf("%w: %s is %s", ErrNotImage, file.Filename, file.ContentType)
		}
	}
	return nil
}

// ContentType is the multipart content type including the boundary.
func (f *Form) ContentType() string {
	return f.w.FormDataContentType()
}

// Reader finalizes the form and returns its encoded body. It may be called
// repeatedly; Add calls after the first Reader fail the form.
func (f *Form) Reader() (io.Reader, error) {
	if f.err != nil {
		return nil, f.err
	}
	if !f.done {
		if err := f.w.Close(); err != nil {
			return nil, err
		}
		f.done = true
	}
	return bytes.NewReader(f.buf.Bytes()), nil
}

func (f *Form) writable() bool {
	if f.done && f.err == nil {
		f.err = errFinalized
	}
	return f.err == nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string { return quoteEscaper.Replace(s) }
