package imaging

import (
	"bytes"
	"strings"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
	"github.com/rwcarlsen/goexif/exif"
)

// Metadata red flags
const (
	FlagNoEXIF = "No metadata found - may be stripped or screenshot"
)

// ReadMetadata inspects the EXIF block of an image. Images without a
// decodable EXIF block (including formats that carry none) are reported as
// having no metadata.
func ReadMetadata(data []byte) model.MetadataRecord {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return model.MetadataRecord{
			HasMetadata: false,
			RedFlags:    []string{FlagNoEXIF},
		}
	}

	record := model.MetadataRecord{
		HasMetadata: true,
		CameraMake:  stringTag(x, exif.Make),
		CameraModel: stringTag(x, exif.Model),
		DateTime:    stringTag(x, exif.DateTime),
		Software:    stringTag(x, exif.Software),
	}

	if record.Software != "" {
		record.Edited = true
		record.RedFlags = append(record.RedFlags, "Image edited with: "+record.Software)
	}
	if _, _, err := x.LatLong(); err == nil {
		record.GPSLocation = "Present"
	} else if _, err := x.Get(exif.GPSInfoIFDPointer); err == nil {
		record.GPSLocation = "Present"
	}

	return record
}

func stringTag(x *exif.Exif, name exif.FieldName) string {
	tag, err := x.Get(name)
	if err != nil {
		return ""
	}
	s, err := tag.StringVal()
	if err != nil {
		return strings.TrimSpace(tag.String())
	}
	return strings.TrimSpace(strings.TrimRight(s, "\x00"))
}
