package sale

import "github.com/iov-one/photosale"

// RegisterQuery exposes photos under "/photos" (and "/photos/holder") and
// prices under "/prices". Both are keyed by the 8 byte big endian id.
func RegisterQuery(qr photosale.QueryRouter) {
	NewPhotoBucket().Register("photos", qr)
	NewPriceBucket().Register("prices", qr)
}
