package services

import (
	"io"
	"os"

	"advanced-notepad/internal/debug"
	"advanced-notepad/internal/logger"

	"fyne.io/fyne/v2"
)

const fileComponent = "FileService"

// FileService reads and writes whole documents as plain text. Content is
// passed through byte for byte; no line ending or encoding conversion.
type FileService struct {
	files  debug.FileTracker
	timing debug.TimingTracker
	logger logger.Logger
}

func NewFileService(dc debug.Coordinator) *FileService {
	return &FileService{
		files:  dc.FileTracker(),
		timing: dc.TimingTracker(),
		logger: dc.Logger(),
	}
}

// Load returns the full content of the file at path
func (fs *FileService) Load(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fs.fail(OpRead, path, err)
	}
	return fs.read(f, path)
}

// LoadFrom reads everything from a reader handed out by the open dialog and closes it
func (fs *FileService) LoadFrom(reader fyne.URIReadCloser) (string, error) {
	return fs.read(reader, reader.URI().Path())
}

// Save writes content to path, truncating whatever was there
func (fs *FileService) Save(path, content string) error {
	f, err := os.Create(path)
	if err != nil {
		return fs.fail(OpWrite, path, err)
	}
	return fs.write(f, path, content)
}

// SaveTo writes content to a writer handed out by the save dialog and closes it
func (fs *FileService) SaveTo(writer fyne.URIWriteCloser, content string) error {
	return fs.write(writer, writer.URI().Path(), content)
}

func (fs *FileService) read(rc io.ReadCloser, path string) (content string, err error) {
	ctx := fs.timing.StartTiming("file_load")
	defer fs.timing.EndTiming(ctx)

	handle := fs.files.TrackOpen(path, "read")
	defer func() {
		closeErr := rc.Close()
		fs.files.TrackClose(handle)
		if err == nil && closeErr != nil {
			content, err = "", fs.fail(OpRead, path, closeErr)
		}
	}()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", fs.fail(OpRead, path, err)
	}

	fs.logger.Info(fileComponent, "file loaded", map[string]interface{}{
		"path":  path,
		"bytes": len(data),
	})

	return string(data), nil
}

func (fs *FileService) write(wc io.WriteCloser, path, content string) (err error) {
	ctx := fs.timing.StartTiming("file_save")
	defer fs.timing.EndTiming(ctx)

	handle := fs.files.TrackOpen(path, "write")
	defer func() {
		closeErr := wc.Close()
		fs.files.TrackClose(handle)
		if err == nil && closeErr != nil {
			err = fs.fail(OpWrite, path, closeErr)
		}
	}()

	if _, err := io.WriteString(wc, content); err != nil {
		return fs.fail(OpWrite, path, err)
	}

	fs.logger.Info(fileComponent, "file saved", map[string]interface{}{
		"path":  path,
		"bytes": len(content),
	})

	return nil
}

func (fs *FileService) fail(op, path string, err error) error {
	ioErr := &IOError{Op: op, Path: path, Err: err}
	fs.logger.Error(fileComponent, ioErr, map[string]interface{}{
		"path": path,
	})
	return ioErr
}
