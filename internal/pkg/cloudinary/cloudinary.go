package cloudinary

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
)

// Resolver turns the photoUrl values stored on reports into absolute URLs.
// The API has stored three kinds over time: absolute URLs, paths relative to
// the API host (/uploads/...), and bare Cloudinary public ids.
type Resolver struct {
	apiOrigin string
	cld       *cloudinary.Cloudinary
}

// NewResolver builds a resolver for photos served next to apiBaseURL. Cloudinary
// public ids are only resolved when all three credentials are set.
func NewResolver(apiBaseURL, cloudName, apiKey, apiSecret string) (*Resolver, error) {
	origin, err := originOf(apiBaseURL)
	if err != nil {
		return nil, err
	}

	r := &Resolver{apiOrigin: origin}
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return r, nil
	}

	cloudinaryURL := fmt.Sprintf("cloudinary://%s:%s@%s", apiKey, apiSecret, cloudName)
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary client: %w", err)
	}
	r.cld = cld
	return r, nil
}

// UsesCloudinary reports whether bare public ids resolve to Cloudinary URLs.
func (r *Resolver) UsesCloudinary() bool { return r.cld != nil }

// Resolve returns an absolute URL for photo, or "" when there is no photo.
func (r *Resolver) Resolve(photo string) string {
	photo = strings.TrimSpace(photo)
	switch {
	case photo == "":
		return ""
	case strings.HasPrefix(photo, "http://"), strings.HasPrefix(photo, "https://"), strings.HasPrefix(photo, "data:"):
		return photo
	case strings.HasPrefix(photo, "/"):
		return r.apiOrigin + photo
	}

	if r.cld != nil {
		if asset, err := r.cld.Image(photo); err == nil {
			if u, err := asset.String(); err == nil {
				return u
			}
		}
	}
	return r.apiOrigin + "/" + photo
}

func originOf(apiBaseURL string) (string, error) {
	u, err := url.Parse(apiBaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid api base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("api base url must be absolute")
	}
	return u.Scheme + "://" + u.Host, nil
}
