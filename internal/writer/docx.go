package writer

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/transcript-merger/internal/errors"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	titleSize = 16
)

type docxWriter struct{}

// Write saves text as a Word document titled after the output file name
func (w *docxWriter) Write(ctx context.Context, path, text string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return errors.Wrap(err, errors.ErrIO, "create docx document")
	}

	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	addRun(doc.AddParagraph(""), title, true, titleSize)
	addRun(doc.AddParagraph(""), text, false, fontSize)

	if err := doc.SaveTo(path); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "write %s", path)
	}
	return nil
}

func (w *docxWriter) Ext() string { return ".docx" }

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
