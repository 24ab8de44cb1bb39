// Package rasterizers provides implementations for rendering PDF pages to image files.
package rasterizers

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/GabrielNunesIT/go-libs/logger"
	"github.com/GabrielNunesIT/ppt2images/internal/domain"
	"github.com/dustin/go-humanize"
	"github.com/gen2brain/go-fitz"
)

const outputDirPerm = 0o755

// Document is the subset of a rendered PDF the rasterizer needs.
type Document interface {
	NumPage() int
	Image(pageNumber int) (image.Image, error)
	Close() error
}

// OpenFunc opens a PDF document by path.
type OpenFunc func(path string) (Document, error)

// FitzRasterizer renders PDF pages with MuPDF through go-fitz.
type FitzRasterizer struct {
	open OpenFunc
	log  logger.ILogger
}

// NewFitzRasterizer creates a new MuPDF-backed rasterizer.
func NewFitzRasterizer(log logger.ILogger) *FitzRasterizer {
	return NewRasterizer(OpenFitz, log)
}

// NewRasterizer creates a rasterizer over an arbitrary document opener.
func NewRasterizer(open OpenFunc, log logger.ILogger) *FitzRasterizer {
	return &FitzRasterizer{
		open: open,
		log:  log,
	}
}

// OpenFitz opens a PDF with go-fitz.
func OpenFitz(path string) (Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, err
	}

	return fitzDocument{doc}, nil
}

type fitzDocument struct {
	*fitz.Document
}

// Image renders a 0-based page at the library's default resolution.
// go-fitz renders at 300 DPI, so an A4 slide comes out near 3508x2481 pixels. That is
// about four times the size of a 72 DPI pixmap, the usual default of MuPDF-based tools.
func (d fitzDocument) Image(pageNumber int) (image.Image, error) {
	return d.Document.Image(pageNumber)
}

// Rasterize writes every page of pdfPath to outputDir/page_NNN.png in document order.
// Pages written before a failure stay on disk.
func (r *FitzRasterizer) Rasterize(ctx context.Context, pdfPath, outputDir string) ([]domain.PageImage, error) {
	if err := os.MkdirAll(outputDir, outputDirPerm); err != nil {
		return nil, domain.IOError(fmt.Sprintf("failed to create output directory %s", outputDir), err)
	}

	doc, err := r.open(pdfPath)
	if err != nil {
		if errors.Is(err, fitz.ErrNoSuchFile) || errors.Is(err, os.ErrNotExist) {
			return nil, domain.IOError(fmt.Sprintf("failed to open PDF %s", pdfPath), err)
		}

		return nil, domain.FormatError(fmt.Sprintf("failed to open PDF %s", pdfPath), err)
	}
	defer doc.Close()

	pageCount := doc.NumPage()
	r.log.Infof("Rendering %d page(s) from %s", pageCount, pdfPath)

	pages := make([]domain.PageImage, 0, pageCount)

	for pageNum := 0; pageNum < pageCount; pageNum++ {
		if err := ctx.Err(); err != nil {
			return pages, err
		}

		page, err := r.renderPage(doc, pageNum, outputDir)
		if err != nil {
			return pages, err
		}

		r.log.Infof("Saved: %s (%s)", page.Path, humanize.Bytes(uint64(page.Bytes)))
		pages = append(pages, page)
	}

	return pages, nil
}

func (r *FitzRasterizer) renderPage(doc Document, pageNum int, outputDir string) (domain.PageImage, error) {
	index := pageNum + 1

	img, err := doc.Image(pageNum)
	if err != nil {
		return domain.PageImage{}, domain.FormatError(fmt.Sprintf("failed to render page %d", index), err)
	}

	path := domain.PageImagePath(outputDir, index)

	file, err := os.Create(path)
	if err != nil {
		return domain.PageImage{}, domain.IOError(fmt.Sprintf("failed to create image for page %d", index), err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return domain.PageImage{}, domain.IOError(fmt.Sprintf("failed to encode page %d as PNG", index), err)
	}

	if err := file.Close(); err != nil {
		return domain.PageImage{}, domain.IOError(fmt.Sprintf("failed to write image for page %d", index), err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return domain.PageImage{}, domain.IOError(fmt.Sprintf("failed to stat image for page %d", index), err)
	}

	bounds := img.Bounds()

	return domain.PageImage{
		Index:  index,
		Path:   path,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Bytes:  info.Size(),
	}, nil
}
