package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
)

// StagedFile describes an upload written to local scratch space.
type StagedFile struct {
	Path         string
	OriginalName string
	ContentType  string
	Size         int64
}

// Stager copies multipart uploads into Dir under unique names.
type Stager struct {
	Dir string
}

func NewStager(dir string) *Stager {
	return &Stager{Dir: dir}
}

// Stage writes the part to a new file in the staging directory. Size and
// content type are not checked.
func (s *Stager) Stage(fh *multipart.FileHeader) (*StagedFile, error) {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return nil, fmt.Errorf("create staging dir: %w", err)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.CreateTemp(s.Dir, "upload-*")
	if err != nil {
		return nil, fmt.Errorf("create staged file: %w", err)
	}

	n, err := io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(dst.Name())
		return nil, fmt.Errorf("write staged file: %w", err)
	}

	return &StagedFile{
		Path:         dst.Name(),
		OriginalName: fh.Filename,
		ContentType:  fh.Header.Get("Content-Type"),
		Size:         n,
	}, nil
}

// Remove deletes a staged file. Nil or already removed files are ignored.
func (s *Stager) Remove(f *StagedFile) error {
	return RemoveStaged(f)
}

func RemoveStaged(f *StagedFile) error {
	if f == nil || f.Path == "" {
		return nil
	}
	if err := os.Remove(f.Path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
