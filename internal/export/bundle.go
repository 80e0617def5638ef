// Package export assembles palette export bundles as zip archives.
package export

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zip"

	"github.com/swatchgrab/swatchgrab/internal/ase"
	"github.com/swatchgrab/swatchgrab/internal/colour"
)

// Entry is a single named file inside an export bundle.
type Entry struct {
	Name string
	Data []byte
}

// PaletteEntries builds the standard bundle contents for a palette: the
// binary ASE swatch file, the JSON description and a plain hex listing.
func PaletteEntries(p *colour.Palette) ([]Entry, error) {
	jsonData, err := p.ToJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to encode palette JSON: %w", err)
	}

	var hexList []byte
	for _, hex := range p.ToHex() {
		hexList = append(hexList, hex...)
		hexList = append(hexList, '\n')
	}

	return []Entry{
		{Name: "palette.ase", Data: ase.Encode(p)},
		{Name: "palette.json", Data: jsonData},
		{Name: "palette.txt", Data: hexList},
	}, nil
}

// WriteBundle writes the entries to w as a zip archive. Entry timestamps are
// left at the zero value so the same inputs always produce the same archive.
func WriteBundle(w io.Writer, entries []Entry) error {
	zw := zip.NewWriter(w)

	for _, entry := range entries {
		header := &zip.FileHeader{
			Name:   entry.Name,
			Method: zip.Deflate,
		}
		f, err := zw.CreateHeader(header)
		if err != nil {
			return fmt.Errorf("failed to create bundle entry %s: %w", entry.Name, err)
		}
		if _, err := f.Write(entry.Data); err != nil {
			return fmt.Errorf("failed to write bundle entry %s: %w", entry.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize bundle: %w", err)
	}
	return nil
}
