// Package output opens report destinations: stdout, a local file, or a
// Google Cloud Storage object.
package output

import (
	"context"
	"io"
	"net/url"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"go.uber.org/zap"

	"github.com/charlieparkes/geometry/internal/app"
)

// Writer is an open report destination. Close commits what was written;
// Abort throws it away instead.
type Writer interface {
	io.WriteCloser
	Abort() error
}

// Create opens path for writing. An empty path or "-" selects stdout, and a
// gs://bucket/object URL writes to that bucket.
func Create(ctx context.Context, path string, stdout io.Writer) (Writer, error) {
	if path == "" || path == "-" {
		app.Log.Debug("writing to stdout")
		return streamWriter{stdout}, nil
	}

	if bucket, object, ok := ParseGS(path); ok {
		client, err := storage.NewClient(ctx)
		if err != nil {
			return nil, err
		}
		// Cancelling the writer's context is the only way to stop an
		// upload without committing the object.
		ctx, cancel := context.WithCancel(ctx)
		app.Log.Info("writing to google storage", zap.String("bucket", bucket), zap.String("object", object))
		return &gsWriter{
			Writer: client.Bucket(bucket).Object(object).NewWriter(ctx),
			client: client,
			cancel: cancel,
		}, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	app.Log.Info("writing to disk", zap.String("path", path))
	return fileWriter{file}, nil
}

// ParseGS splits a gs://bucket/object URL. ok is false for anything that is
// not a gs URL naming both a bucket and an object.
func ParseGS(path string) (bucket, object string, ok bool) {
	u, err := url.Parse(path)
	if err != nil || u.Scheme != "gs" {
		return "", "", false
	}
	object = strings.TrimLeft(u.Path, "/")
	if u.Host == "" || object == "" {
		return "", "", false
	}
	return u.Host, object, true
}

type gsWriter struct {
	*storage.Writer
	client *storage.Client
	cancel context.CancelFunc
}

func (w *gsWriter) Close() error {
	defer w.cancel()
	err := w.Writer.Close()
	if cerr := w.client.Close(); err == nil {
		err = cerr
	}
	return err
}

func (w *gsWriter) Abort() error {
	w.cancel()
	// Close reports the cancellation; the object is not created.
	_ = w.Writer.Close()
	app.Log.Info("aborted google storage upload", zap.String("bucket", w.Bucket), zap.String("object", w.Name))
	return w.client.Close()
}

type fileWriter struct {
	*os.File
}

func (w fileWriter) Abort() error {
	_ = w.File.Close()
	app.Log.Info("removing partial report", zap.String("path", w.Name()))
	return os.Remove(w.Name())
}

type streamWriter struct {
	io.Writer
}

func (streamWriter) Close() error { return nil }
func (streamWriter) Abort() error { return nil }
