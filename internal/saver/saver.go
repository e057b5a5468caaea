// Package saver writes decoded images to a folder chosen by the user.
package saver

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"image-saver/internal/files"
	"image-saver/internal/imagedata"
	"image-saver/internal/logger"
	"image-saver/internal/picker"
)

const DefaultExtension = ".jpg"

type Payload struct {
	Filename string
	Data     string
	Subdir   string
}

type Options struct {
	// MatchExtension names files after the decoded MIME type instead of
	// always using DefaultExtension.
	MatchExtension bool
}

type Result struct {
	Path string
}

func (r Result) Message() string {
	return "Image saved to: " + r.Path
}

type Summary struct {
	Saved      int
	Failed     int
	BaseFolder string
}

func (s Summary) Message() string {
	if s.Failed == 0 {
		return fmt.Sprintf("Successfully saved %d images to %s", s.Saved, s.BaseFolder)
	}
	return fmt.Sprintf("Saved %d images, %d failed. Location: %s", s.Saved, s.Failed, s.BaseFolder)
}

type Service struct {
	picker picker.Picker
	log    logger.LoggerService
	opts   Options
}

func New(p picker.Picker, log logger.LoggerService, opts Options) *Service {
	if log == nil {
		log = logger.NewWriter(nil)
	}
	return &Service{picker: p, log: log, opts: opts}
}

// SaveImage asks for a folder and writes one image to
// <folder>[/<subdir>]/<filename>.jpg.
func (s *Service) SaveImage(ctx context.Context, data, filename, subdir string) (Result, error) {
	base, err := s.pickFolder(ctx)
	if err != nil {
		return Result{}, err
	}

	path, err := s.write(base, Payload{Filename: filename, Data: data, Subdir: subdir})
	if err != nil {
		s.log.Error(fmt.Sprintf("failed to save %s", filename), err)
		return Result{}, err
	}

	s.log.Success("image saved to " + path)
	return Result{Path: path}, nil
}

// SaveImageAs asks for a target file, suggesting <filename>.jpg, and writes
// the image there. The data is decoded first: some save dialogs create the
// chosen file, and bad data must not leave an empty or truncated file behind.
func (s *Service) SaveImageAs(ctx context.Context, data, filename string) (Result, error) {
	img, err := decode(filename, data)
	if err != nil {
		s.log.Error(fmt.Sprintf("failed to decode %s", filename), err)
		return Result{}, err
	}

	suggested := strings.TrimSpace(filename)
	if suggested != "" {
		suggested += DefaultExtension
	}

	path, err := s.picker.PickSaveFile(ctx, suggested, picker.JPEGFilter)
	if err != nil {
		return Result{}, pickerError(err)
	}

	if err := writeFile(filename, path, img.Data); err != nil {
		s.log.Error(fmt.Sprintf("failed to save %s", filename), err)
		return Result{}, err
	}

	s.log.Success("image saved to " + path)
	return Result{Path: path}, nil
}

// SaveImages asks for one folder and writes every item under it. A failing
// item is logged and counted; the rest of the batch still runs. Only a
// picker failure aborts the call.
func (s *Service) SaveImages(ctx context.Context, images []Payload) (Summary, error) {
	base, err := s.pickFolder(ctx)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{BaseFolder: base}
	for _, item := range images {
		if _, err := s.write(base, item); err != nil {
			s.log.Error(fmt.Sprintf("failed to save %s", item.Filename), err)
			summary.Failed++
			continue
		}
		summary.Saved++
	}

	if summary.Failed == 0 {
		s.log.Success(summary.Message())
	} else {
		s.log.Warn(summary.Message())
	}
	return summary, nil
}

func (s *Service) pickFolder(ctx context.Context) (string, error) {
	folder, err := s.picker.PickFolder(ctx)
	if err != nil {
		return "", pickerError(err)
	}
	return folder, nil
}

// write resolves the item's folder, creates it, decodes and writes the file.
func (s *Service) write(base string, item Payload) (string, error) {
	folder, err := files.ResolveFolder(base, item.Subdir)
	if err != nil {
		return "", &Error{Kind: KindDirectory, Filename: item.Filename, Path: base, Err: err}
	}
	if err := files.EnsureDir(folder); err != nil {
		return "", &Error{Kind: KindDirectory, Filename: item.Filename, Path: folder, Err: err}
	}

	img, err := decode(item.Filename, item.Data)
	if err != nil {
		return "", err
	}

	path, err := files.FilePath(folder, item.Filename, s.extension(img.MIME))
	if err != nil {
		return "", &Error{Kind: KindWrite, Filename: item.Filename, Path: folder, Err: err}
	}
	if err := files.WriteAtomic(path, img.Data); err != nil {
		return "", &Error{Kind: KindWrite, Filename: item.Filename, Path: path, Err: err}
	}
	return path, nil
}

func (s *Service) extension(mime string) string {
	if !s.opts.MatchExtension {
		return DefaultExtension
	}
	return imagedata.Extension(mime, DefaultExtension)
}

func decode(filename, data string) (imagedata.Image, error) {
	img, err := imagedata.Parse(data)
	if err == nil {
		return img, nil
	}
	kind := KindDecode
	if errors.Is(err, imagedata.ErrInvalidFormat) {
		kind = KindFormat
	}
	return imagedata.Image{}, &Error{Kind: kind, Filename: filename, Err: err}
}

func pickerError(err error) error {
	if errors.Is(err, picker.ErrCancelled) {
		return &Error{Kind: KindCancelled, Err: err}
	}
	return &Error{Kind: KindPicker, Err: err}
}

// writeFile writes to a path picked by a save-file dialog, creating its
// parent folder if needed.
func writeFile(filename, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := files.EnsureDir(dir); err != nil {
		return &Error{Kind: KindDirectory, Filename: filename, Path: dir, Err: err}
	}
	if err := files.WriteAtomic(path, data); err != nil {
		return &Error{Kind: KindWrite, Filename: filename, Path: path, Err: err}
	}
	return nil
}
