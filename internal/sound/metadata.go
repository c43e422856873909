package sound

import (
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2/v2"
)

// ReadTitle returns the ID3v2 title of an MP3 file, falling back to the
// file name without extension.
func ReadTitle(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".mp3") {
		tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
		if err == nil {
			defer tag.Close()
			if title := strings.TrimSpace(tag.Title()); title != "" {
				return title
			}
		}
	}

	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
