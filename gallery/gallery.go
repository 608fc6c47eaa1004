// Package gallery lists the forum's image directory, keeping the
// designated main image first and the historical ordering for the
// rest.
package gallery

import (
	"os"
	"path"
	"strings"

	"github.com/joel3500/Forum-de-Discussion-ENT/utils"
	"github.com/pkg/errors"
)

// MainImage is the file promoted to the top of the page when present.
const MainImage = "image_principale_ent.jpeg"

// preferredOrder is the historical display order; files outside this
// list are appended after it, in directory order.
var preferredOrder = []string{
	MainImage, "1.jpeg", "2.jpeg", "3.jpeg", "4.jpeg", "5.jpeg", "6.jpeg",
}

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif"}

// Listing is the resolved gallery for one render: the main image URL
// (empty when the directory holds no image at all) and the URLs of the
// remaining images.
type Listing struct {
	MainURL     string
	GalleryURLs []string
}

// List scans dir for image files. An unreadable directory is an error;
// a readable directory without images is a valid empty Listing.
func List(dir string) (Listing, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Listing{}, errors.Wrap(err, "fail to read image directory")
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if utils.ContainsString(imageExtensions, strings.ToLower(path.Ext(e.Name()))) {
			names = append(names, e.Name())
		}
	}

	ordered := make([]string, 0, len(names))
	for _, want := range preferredOrder {
		if utils.ContainsString(names, want) {
			ordered = append(ordered, want)
		}
	}
	for _, n := range names {
		if !utils.ContainsString(ordered, n) {
			ordered = append(ordered, n)
		}
	}

	if len(ordered) == 0 {
		return Listing{}, nil
	}

	main := ordered[0]
	if utils.ContainsString(ordered, MainImage) {
		main = MainImage
	}

	listing := Listing{MainURL: "img/" + main}
	for _, n := range ordered {
		if n != main {
			listing.GalleryURLs = append(listing.GalleryURLs, "img/"+n)
		}
	}
	return listing, nil
}
