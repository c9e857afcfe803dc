package services

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"
	"image/png"
	"strings"
	"time"

	"github.com/gen2brain/go-fitz"
	"github.com/klauspost/compress/zip"
	"github.com/ledongthuc/pdf"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"golang.org/x/image/tiff"

	"idocx/dao"
	"idocx/errs"
	"idocx/models"
	"idocx/storage"
)

// ConversionService converts stored PDF documents into other formats. Image
// and text formats are produced per page and windowed by the page/size
// parameters; package formats (ZIP, DOC, DOCX, XLSX) convert the whole
// document into a single payload.
type ConversionService struct {
	files    dao.FileMetadataRepository
	store    storage.Adapter
	maxPages int
}

func NewConversionService(files dao.FileMetadataRepository, store storage.Adapter, maxPages int) *ConversionService {
	return &ConversionService{
		files:    files,
		store:    store,
		maxPages: maxPages,
	}
}

// Convert renders the document identified by id into the requested format.
// Each returned payload is one output file.
func (cs *ConversionService) Convert(id, format string, page, size int) ([][]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	target, ok := models.ParseConversionFormat(format)
	if !ok {
		return nil, errs.Newf(errs.CodeUnsupported, "unsupported conversion format: %s", format)
	}

	file, err := cs.findFile(ctx, id)
	if err != nil {
		return nil, err
	}

	data, err := cs.store.Read(file.DirectoryName)
	if err != nil {
		return nil, errs.Wrap(errs.CodeFileReading, "could not read file: "+file.DirectoryName, err)
	}

	logrus.WithFields(logrus.Fields{
		"id":     id,
		"file":   file.FileName,
		"format": target,
	}).Info("Converting document")

	switch target {
	case models.FormatZIP:
		payload, err := compressToZip(file.FileName, data)
		if err != nil {
			return nil, err
		}
		return [][]byte{payload}, nil
	case models.FormatTXT:
		return cs.extractTextPages(data, page, size)
	case models.FormatDOC, models.FormatDOCX:
		payload, err := cs.buildWordDocument(data)
		if err != nil {
			return nil, err
		}
		return [][]byte{payload}, nil
	case models.FormatXLSX:
		payload, err := cs.buildSpreadsheet(data)
		if err != nil {
			return nil, err
		}
		return [][]byte{payload}, nil
	default:
		return cs.renderImagePages(data, target, page, size)
	}
}

func (cs *ConversionService) findFile(ctx context.Context, id string) (*models.FileMetadata, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, errs.Newf(errs.CodeResourceNotFound, "file with id: %s not found", id)
	}
	file, err := cs.files.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, errs.Newf(errs.CodeResourceNotFound, "file with id: %s not found", id)
	}
	return file, nil
}

// pageWindow bounds a paged conversion. Returns the half-open page index
// range [start, end) for the requested page number and size.
func (cs *ConversionService) pageWindow(page, size, totalPages int) (int, int, error) {
	if size <= 0 {
		size = 10
	}
	if size > cs.maxPages {
		return 0, 0, errs.Newf(errs.CodeLimitExceeding,
			"requested page size %d exceeds the limit of %d pages", size, cs.maxPages)
	}

	start := page * size
	if start >= totalPages {
		return 0, 0, errs.Newf(errs.CodeLimitExceeding,
			"requested page %d is beyond the document's %d pages", page, totalPages)
	}

	end := start + size
	if end > totalPages {
		end = totalPages
	}
	return start, end, nil
}

// compressToZip wraps the original bytes in a zip archive under the original
// file name.
func compressToZip(fileName string, data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	entry, err := zw.Create(fileName)
	if err != nil {
		return nil, errs.Wrap(errs.CodeFailedToCompress, "failed to compress "+fileName, err)
	}
	if _, err := entry.Write(data); err != nil {
		return nil, errs.Wrap(errs.CodeFailedToCompress, "failed to compress "+fileName, err)
	}
	if err := zw.Close(); err != nil {
		return nil, errs.Wrap(errs.CodeFailedToCompress, "failed to compress "+fileName, err)
	}
	return buf.Bytes(), nil
}

// extractTextPages returns the plain text of each page in the window, one
// payload per page.
func (cs *ConversionService) extractTextPages(data []byte, page, size int) ([][]byte, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, errs.Wrap(errs.CodeFileReading, "failed to parse pdf", err)
	}

	total := reader.NumPage()
	start, end, err := cs.pageWindow(page, size, total)
	if err != nil {
		return nil, err
	}

	payloads := make([][]byte, 0, end-start)
	for i := start + 1; i <= end; i++ {
		p := reader.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return nil, errs.Wrap(errs.CodeFileReading, fmt.Sprintf("failed to extract text from page %d", i), err)
		}
		payloads = append(payloads, []byte(text))
	}
	return payloads, nil
}

func extractAllText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errs.Wrap(errs.CodeFileReading, "failed to parse pdf", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		p := reader.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return "", errs.Wrap(errs.CodeFileReading, fmt.Sprintf("failed to extract text from page %d", i), err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// buildWordDocument converts the extracted text into a minimal OOXML word
// package. DOC requests get the same package; legacy binary .doc is not
// produced.
func (cs *ConversionService) buildWordDocument(data []byte) ([]byte, error) {
	text, err := extractAllText(data)
	if err != nil {
		return nil, err
	}
	return buildDocx(text)
}

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// buildDocx assembles a word processing package with one paragraph per line
// of text.
func buildDocx(text string) ([]byte, error) {
	var body strings.Builder
	body.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	body.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, line := range strings.Split(text, "\n") {
		body.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
		body.WriteString(escapeXML(line))
		body.WriteString(`</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRels},
		{"word/document.xml", body.String()},
	}
	for _, part := range parts {
		entry, err := zw.Create(part.name)
		if err != nil {
			return nil, errs.Wrap(errs.CodeFailedToCompress, "failed to build word package", err)
		}
		if _, err := entry.Write([]byte(part.content)); err != nil {
			return nil, errs.Wrap(errs.CodeFailedToCompress, "failed to build word package", err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, errs.Wrap(errs.CodeFailedToCompress, "failed to build word package", err)
	}
	return buf.Bytes(), nil
}

func escapeXML(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}

// buildSpreadsheet converts the extracted text into a workbook with one line
// per row.
func (cs *ConversionService) buildSpreadsheet(data []byte) ([]byte, error) {
	text, err := extractAllText(data)
	if err != nil {
		return nil, err
	}

	workbook := excelize.NewFile()
	defer workbook.Close()

	for i, line := range strings.Split(text, "\n") {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, errs.Wrap(errs.CodeFailedToCompress, "failed to build spreadsheet", err)
		}
		if err := workbook.SetCellValue("Sheet1", cell, line); err != nil {
			return nil, errs.Wrap(errs.CodeFailedToCompress, "failed to build spreadsheet", err)
		}
	}

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		return nil, errs.Wrap(errs.CodeFailedToCompress, "failed to build spreadsheet", err)
	}
	return buf.Bytes(), nil
}

// renderImagePages rasterizes each page in the window and encodes it in the
// requested image format, one payload per page.
func (cs *ConversionService) renderImagePages(data []byte, format models.ConversionFormat, page, size int) ([][]byte, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, errs.Wrap(errs.CodeFileReading, "failed to open pdf for rendering", err)
	}
	defer doc.Close()

	total := doc.NumPage()
	start, end, err := cs.pageWindow(page, size, total)
	if err != nil {
		return nil, err
	}

	payloads := make([][]byte, 0, end-start)
	for i := start; i < end; i++ {
		img, err := doc.Image(i)
		if err != nil {
			return nil, errs.Wrap(errs.CodeFileReading, fmt.Sprintf("failed to render page %d", i+1), err)
		}

		var buf bytes.Buffer
		switch format {
		case models.FormatJPEG:
			err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
		case models.FormatPNG:
			err = png.Encode(&buf, img)
		case models.FormatTIFF:
			err = tiff.Encode(&buf, img, nil)
		default:
			return nil, errs.Newf(errs.CodeUnsupported, "unsupported conversion format: %s", format)
		}
		if err != nil {
			return nil, errs.Wrap(errs.CodeFileReading, fmt.Sprintf("failed to encode page %d", i+1), err)
		}
		payloads = append(payloads, buf.Bytes())
	}
	return payloads, nil
}
