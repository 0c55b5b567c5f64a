package sale

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/iov-one/photosale/errors"
)

// DescriptorPrefix starts every encoded descriptor.
const DescriptorPrefix = "data:application/json;base64,"

// Descriptor is the self describing view of a photo. All values are
// strings so generic viewers can render it.
type Descriptor struct {
	ID          uint64
	Name        string
	Description string
	Image       string
}

// NewDescriptor returns the descriptor of given photo.
func NewDescriptor(id uint64, p *Photo) Descriptor {
	return Descriptor{
		ID:          id,
		Name:        p.Name,
		Description: p.Description,
		Image:       p.Image,
	}
}

// Encode returns the descriptor as a data URI carrying a JSON object with
// keys in sorted order.
func (d Descriptor) Encode() (string, error) {
	// encoding/json writes map keys sorted.
	body, err := json.Marshal(map[string]string{
		"description": d.Description,
		"id":          strconv.FormatUint(d.ID, 10),
		"image":       d.Image,
		"name":        d.Name,
	})
	if err != nil {
		return "", errors.Wrap(errors.ErrInput, err.Error())
	}
	return DescriptorPrefix + base64.StdEncoding.EncodeToString(body), nil
}

// ParseDescriptor decodes a data URI created by Descriptor.Encode.
func ParseDescriptor(uri string) (Descriptor, error) {
	if !strings.HasPrefix(uri, DescriptorPrefix) {
		return Descriptor{}, errors.Wrap(errors.ErrInput, "missing data uri prefix")
	}
	body, err := base64.StdEncoding.DecodeString(uri[len(DescriptorPrefix):])
	if err != nil {
		return Descriptor{}, errors.Wrapf(errors.ErrInput, "base64: %s", err)
	}
	var fields map[string]string
	if err := json.Unmarshal(body, &fields); err != nil {
		return Descriptor{}, errors.Wrapf(errors.ErrInput, "json: %s", err)
	}
	id, err := strconv.ParseUint(fields["id"], 10, 64)
	if err != nil {
		return Descriptor{}, errors.Wrapf(errors.ErrInput, "id: %s", err)
	}
	return Descriptor{
		ID:          id,
		Name:        fields["name"],
		Description: fields["description"],
		Image:       fields["image"],
	}, nil
}
